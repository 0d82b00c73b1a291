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

//go:build amd64 && !goexperiment.simd

package lane

// Without GOEXPERIMENT=simd the Go toolchain gives us no way to emit
// AVX-2/AVX-512 instructions directly, so the dispatcher has nothing safe
// to select beyond the portable scalar fallback. Build with
// GOEXPERIMENT=simd (see dispatch_amd64_simd.go) for real CPU detection and
// archsimd-backed shims.

func init() {
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
