//go:build arm64

package glm

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		currentLevel = DispatchScalar
		return
	}

	// FMADD is part of the ARMv8-A floating point base, so HasFP is
	// enough.
	if cpu.ARM64.HasFP {
		currentLevel = DispatchFMA
	} else {
		currentLevel = DispatchScalar
	}
}
