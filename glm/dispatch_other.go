//go:build !amd64 && !arm64

package glm

func init() {
	// math.FMA is emulated in software here, which is far slower than
	// rounding twice.
	currentLevel = DispatchScalar
}
