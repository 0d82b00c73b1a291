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

//go:build vecalgebra_avx512

package lane

// avx512Enabled gates AVX-512 as an opt-in build: the dispatcher only probes
// for and selects AVX-512 when the module is built with -tags
// vecalgebra_avx512. The AVX-512 shims themselves compile whenever the build
// is amd64 with GOEXPERIMENT=simd, tag or no tag; without the tag the
// dispatcher never selects them.
const avx512Enabled = true
