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

// simd_hooks.go declares the seam between the portable Register[T] body and
// the archsimd-backed shims in shims_avx2.go / shims_avx512.go. Those files
// only compile under "amd64 && goexperiment.simd"; on every other build this
// file's nil hooks mean ReduceSum/FMA always take the portable path in
// register.go.
// Only a representative type subset (f32, f64, i32, i64) gets a hardware
// shim — the rest of Number always uses the generic loop.

var (
	reduceSumF32Hook func([]float32) (float32, bool)
	reduceSumF64Hook func([]float64) (float64, bool)
	reduceSumI32Hook func([]int32) (int32, bool)
	reduceSumI64Hook func([]int64) (int64, bool)

	fmaF32Hook func(a, b, c []float32) ([]float32, bool)
	fmaF64Hook func(a, b, c []float64) ([]float64, bool)
	fmaI32Hook func(a, b, c []int32) ([]int32, bool)
	fmaI64Hook func(a, b, c []int64) ([]int64, bool)
)

// simdReduceSum tries the hardware-backed reduction for T; ok is false when
// no shim applies (wrong type, or hook unset on this build) and the caller
// should fall back to the portable loop.
func simdReduceSum[T Number](data []T) (sum T, ok bool) {
	switch d := any(data).(type) {
	case []float32:
		if reduceSumF32Hook != nil {
			if s, matched := reduceSumF32Hook(d); matched {
				return any(s).(T), true
			}
		}
	case []float64:
		if reduceSumF64Hook != nil {
			if s, matched := reduceSumF64Hook(d); matched {
				return any(s).(T), true
			}
		}
	case []int32:
		if reduceSumI32Hook != nil {
			if s, matched := reduceSumI32Hook(d); matched {
				return any(s).(T), true
			}
		}
	case []int64:
		if reduceSumI64Hook != nil {
			if s, matched := reduceSumI64Hook(d); matched {
				return any(s).(T), true
			}
		}
	}
	var zero T
	return zero, false
}

// simdFMA tries the hardware-backed fused multiply-add for T.
func simdFMA[T Number](a, b, c []T) (result []T, ok bool) {
	switch av := any(a).(type) {
	case []float32:
		if fmaF32Hook != nil {
			if r, matched := fmaF32Hook(av, any(b).([]float32), any(c).([]float32)); matched {
				return any(r).([]T), true
			}
		}
	case []float64:
		if fmaF64Hook != nil {
			if r, matched := fmaF64Hook(av, any(b).([]float64), any(c).([]float64)); matched {
				return any(r).([]T), true
			}
		}
	case []int32:
		if fmaI32Hook != nil {
			if r, matched := fmaI32Hook(av, any(b).([]int32), any(c).([]int32)); matched {
				return any(r).([]T), true
			}
		}
	case []int64:
		if fmaI64Hook != nil {
			if r, matched := fmaI64Hook(av, any(b).([]int64), any(c).([]int64)); matched {
				return any(r).([]T), true
			}
		}
	}
	return nil, false
}
