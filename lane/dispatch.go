// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set a call will use.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go fallback.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX-2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go. For DispatchScalar this is 16, so scalar
// builds still process a reasonable "dense lane" worth of elements per
// register in the generic kernel bodies above this package.
var currentWidth int

// CurrentLevel returns the SIMD instruction set this process dispatches to.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes: 16 for NEON/scalar,
// 32 for AVX-2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// HasSIMD reports whether hardware SIMD acceleration is in use.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether VECALGEBRA_NO_SIMD is set, forcing the scalar
// fallback regardless of detected CPU features. Useful for testing the
// fallback path and for agreement-with-scalar-reference property tests.
func NoSimdEnv() bool {
	val := os.Getenv("VECALGEBRA_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T a Register holds at the
// currently detected dispatch level: CurrentWidth() / sizeof(T).
func MaxLanes[T Number]() int {
	var dummy T
	elemSize := int(unsafe.Sizeof(dummy))
	if elemSize == 0 {
		return 0
	}
	return currentWidth / elemSize
}

// BlockSize returns B(T, backend): the number of elements processed per
// dense-loop iteration, equal to 8 lanes-per-register (one DenseLane).
func BlockSize[T Number]() int {
	return 8 * MaxLanes[T]()
}
