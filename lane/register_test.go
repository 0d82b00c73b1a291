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

import "testing"

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Fatal("Load created empty register")
	}
	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.Data()[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.Data()[i], data[i])
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)
	for i := 0; i < v.NumLanes(); i++ {
		if v.Data()[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want 42.0", i, v.Data()[i])
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()
	for i := 0; i < v.NumLanes(); i++ {
		if v.Data()[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.Data()[i])
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](5.0)
	result := Add(a, b)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Data()[i] != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.Data()[i])
		}
	}
}

func TestSub(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](3.0)
	result := Sub(a, b)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Data()[i] != 7.0 {
			t.Errorf("Sub: lane %d: got %v, want 7.0", i, result.Data()[i])
		}
	}
}

func TestMul(t *testing.T) {
	a := Set[float32](4.0)
	b := Set[float32](5.0)
	result := Mul(a, b)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Data()[i] != 20.0 {
			t.Errorf("Mul: lane %d: got %v, want 20.0", i, result.Data()[i])
		}
	}
}

func TestDivInt(t *testing.T) {
	a := Set[int32](20)
	b := Set[int32](4)
	result := Div(a, b)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Data()[i] != 5 {
			t.Errorf("Div: lane %d: got %v, want 5", i, result.Data()[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	a := Load([]int32{1, 9, 3, 9})
	b := Load([]int32{9, 1, 9, 3})

	lo := Min(a, b)
	hi := Max(a, b)
	want := []int32{1, 1, 3, 3}
	wantHi := []int32{9, 9, 9, 9}
	for i := range want {
		if lo.Data()[i] != want[i] {
			t.Errorf("Min: lane %d: got %v, want %v", i, lo.Data()[i], want[i])
		}
		if hi.Data()[i] != wantHi[i] {
			t.Errorf("Max: lane %d: got %v, want %v", i, hi.Data()[i], wantHi[i])
		}
	}
}

func TestFMA(t *testing.T) {
	a := Set[float64](2.0)
	b := Set[float64](3.0)
	c := Set[float64](1.0)
	result := FMA(a, b, c)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Data()[i] != 7.0 {
			t.Errorf("FMA: lane %d: got %v, want 7.0", i, result.Data()[i])
		}
	}
}

func TestFMAIntegerFallsBackToScalar(t *testing.T) {
	a := Set[int64](2)
	b := Set[int64](3)
	c := Set[int64](1)
	result := FMA(a, b, c)
	for i := 0; i < result.NumLanes(); i++ {
		if result.Data()[i] != 7 {
			t.Errorf("FMA: lane %d: got %v, want 7", i, result.Data()[i])
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4})
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum: got %v, want 10", got)
	}
}

func TestReduceMinMax(t *testing.T) {
	v := Load([]int32{5, 1, 9, 3})
	if got := ReduceMin(v); got != 1 {
		t.Errorf("ReduceMin: got %v, want 1", got)
	}
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax: got %v, want 9", got)
	}
}

func TestStore(t *testing.T) {
	v := Load([]float32{1, 2, 3, 4})
	dst := make([]float32, 4)
	v.Store(dst)
	for i, want := range []float32{1, 2, 3, 4} {
		if dst[i] != want {
			t.Errorf("Store: index %d: got %v, want %v", i, dst[i], want)
		}
	}
}
