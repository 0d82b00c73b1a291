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

//go:build amd64 && goexperiment.simd

package lane

import "simd/archsimd"

// AVX-512 shims layer on top of shims_avx2.go: init() here runs after that
// file's (Go runs same-package init()s in filename order, and "avx512" sorts
// after "avx2"), so these assignments are the ones that win whenever the
// process actually dispatches to AVX-512; the AVX-2 hooks remain in place
// for AVX-2 dispatch.

func init() {
	avx2ReduceSumF32 := reduceSumF32Hook
	avx2ReduceSumF64 := reduceSumF64Hook
	avx2ReduceSumI32 := reduceSumI32Hook
	avx2ReduceSumI64 := reduceSumI64Hook
	avx2FMAF32 := fmaF32Hook
	avx2FMAF64 := fmaF64Hook

	reduceSumF32Hook = func(data []float32) (float32, bool) {
		if currentLevel == DispatchAVX512 && len(data) == 16 {
			v := archsimd.LoadFloat32x16Slice(data)
			lo := v.GetLo()
			hi := v.GetHi()
			sum := ReduceSum(Register[float32]{data: sliceFromFloat32x8(lo.Add(hi))})
			return sum, true
		}
		return avx2ReduceSumF32(data)
	}
	reduceSumF64Hook = func(data []float64) (float64, bool) {
		if currentLevel == DispatchAVX512 && len(data) == 8 {
			v := archsimd.LoadFloat64x8Slice(data)
			lo := v.GetLo()
			hi := v.GetHi()
			sum := ReduceSum(Register[float64]{data: sliceFromFloat64x4(lo.Add(hi))})
			return sum, true
		}
		return avx2ReduceSumF64(data)
	}
	reduceSumI32Hook = func(data []int32) (int32, bool) {
		if currentLevel == DispatchAVX512 && len(data) == 16 {
			v := archsimd.LoadInt32x16Slice(data)
			lo := v.GetLo()
			hi := v.GetHi()
			sum := ReduceSum(Register[int32]{data: sliceFromInt32x8(lo.Add(hi))})
			return sum, true
		}
		return avx2ReduceSumI32(data)
	}
	reduceSumI64Hook = func(data []int64) (int64, bool) {
		if currentLevel == DispatchAVX512 && len(data) == 8 {
			v := archsimd.LoadInt64x8Slice(data)
			lo := v.GetLo()
			hi := v.GetHi()
			sum := ReduceSum(Register[int64]{data: sliceFromInt64x4(lo.Add(hi))})
			return sum, true
		}
		return avx2ReduceSumI64(data)
	}
	fmaF32Hook = func(a, b, c []float32) ([]float32, bool) {
		if currentLevel == DispatchAVX512 && len(a) == 16 && len(b) == 16 && len(c) == 16 {
			va := archsimd.LoadFloat32x16Slice(a)
			vb := archsimd.LoadFloat32x16Slice(b)
			vc := archsimd.LoadFloat32x16Slice(c)
			r := va.Mul(vb).Add(vc)
			out := make([]float32, 16)
			r.StoreSlice(out)
			return out, true
		}
		return avx2FMAF32(a, b, c)
	}
	fmaF64Hook = func(a, b, c []float64) ([]float64, bool) {
		if currentLevel == DispatchAVX512 && len(a) == 8 && len(b) == 8 && len(c) == 8 {
			va := archsimd.LoadFloat64x8Slice(a)
			vb := archsimd.LoadFloat64x8Slice(b)
			vc := archsimd.LoadFloat64x8Slice(c)
			r := va.Mul(vb).Add(vc)
			out := make([]float64, 8)
			r.StoreSlice(out)
			return out, true
		}
		return avx2FMAF64(a, b, c)
	}
}

func sliceFromFloat32x8(v archsimd.Float32x8) []float32 {
	out := make([]float32, 8)
	v.StoreSlice(out)
	return out
}

func sliceFromFloat64x4(v archsimd.Float64x4) []float64 {
	out := make([]float64, 4)
	v.StoreSlice(out)
	return out
}

func sliceFromInt32x8(v archsimd.Int32x8) []int32 {
	out := make([]int32, 8)
	v.StoreSlice(out)
	return out
}

func sliceFromInt64x4(v archsimd.Int64x4) []int64 {
	out := make([]int64, 4)
	v.StoreSlice(out)
	return out
}
