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

// This file provides the AVX-2 archsimd shims for the representative type
// subset (f32, f64, i32, i64). Each hook only fires a matched result when
// the process dispatched to AVX-2 and the slice is exactly the expected
// register width; otherwise it reports ok=false and register.go falls back
// to the portable loop.

func init() {
	reduceSumF32Hook = reduceSumAVX2F32
	reduceSumF64Hook = reduceSumAVX2F64
	reduceSumI32Hook = reduceSumAVX2I32
	reduceSumI64Hook = reduceSumAVX2I64

	fmaF32Hook = fmaAVX2F32
	fmaF64Hook = fmaAVX2F64
	// i32/i64 FMA has no dedicated hardware instruction on AVX2; the
	// integer-SIMD-gap escape hatch applies and the portable loop handles
	// it (fmaI32Hook/fmaI64Hook stay nil).
}

func reduceSumAVX2F32(data []float32) (float32, bool) {
	if currentLevel != DispatchAVX2 || len(data) != 8 {
		return 0, false
	}
	v := archsimd.LoadFloat32x8Slice(data)
	lo := v.GetLo()
	hi := v.GetHi()
	sum4 := lo.Add(hi)
	return sum4.GetElem(0) + sum4.GetElem(1) + sum4.GetElem(2) + sum4.GetElem(3), true
}

func reduceSumAVX2F64(data []float64) (float64, bool) {
	if currentLevel != DispatchAVX2 || len(data) != 4 {
		return 0, false
	}
	v := archsimd.LoadFloat64x4Slice(data)
	lo := v.GetLo()
	hi := v.GetHi()
	sum2 := lo.Add(hi)
	return sum2.GetElem(0) + sum2.GetElem(1), true
}

func reduceSumAVX2I32(data []int32) (int32, bool) {
	if currentLevel != DispatchAVX2 || len(data) != 8 {
		return 0, false
	}
	v := archsimd.LoadInt32x8Slice(data)
	lo := v.GetLo()
	hi := v.GetHi()
	sum4 := lo.Add(hi)
	return sum4.GetElem(0) + sum4.GetElem(1) + sum4.GetElem(2) + sum4.GetElem(3), true
}

func reduceSumAVX2I64(data []int64) (int64, bool) {
	if currentLevel != DispatchAVX2 || len(data) != 4 {
		return 0, false
	}
	v := archsimd.LoadInt64x4Slice(data)
	lo := v.GetLo()
	hi := v.GetHi()
	sum2 := lo.Add(hi)
	return sum2.GetElem(0) + sum2.GetElem(1), true
}

func fmaAVX2F32(a, b, c []float32) ([]float32, bool) {
	if currentLevel != DispatchAVX2 || len(a) != 8 || len(b) != 8 || len(c) != 8 {
		return nil, false
	}
	va := archsimd.LoadFloat32x8Slice(a)
	vb := archsimd.LoadFloat32x8Slice(b)
	vc := archsimd.LoadFloat32x8Slice(c)
	r := va.Mul(vb).Add(vc)
	out := make([]float32, 8)
	r.StoreSlice(out)
	return out, true
}

func fmaAVX2F64(a, b, c []float64) ([]float64, bool) {
	if currentLevel != DispatchAVX2 || len(a) != 4 || len(b) != 4 || len(c) != 4 {
		return nil, false
	}
	va := archsimd.LoadFloat64x4Slice(a)
	vb := archsimd.LoadFloat64x4Slice(b)
	vc := archsimd.LoadFloat64x4Slice(c)
	r := va.Mul(vb).Add(vc)
	out := make([]float64, 4)
	r.StoreSlice(out)
	return out, true
}
