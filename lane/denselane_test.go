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

func TestLoadStoreDense(t *testing.T) {
	n := BlockSize[float32]()
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i)
	}

	d := LoadDense[float32](src)
	dst := make([]float32, n)
	StoreDense(d, dst)

	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("LoadDense/StoreDense roundtrip: index %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestAddDense(t *testing.T) {
	n := BlockSize[int32]()
	a := make([]int32, n)
	b := make([]int32, n)
	for i := range a {
		a[i] = int32(i)
		b[i] = int32(2 * i)
	}

	da := LoadDense[int32](a)
	db := LoadDense[int32](b)
	sum := AddDense(da, db)

	dst := make([]int32, n)
	StoreDense(sum, dst)
	for i := range dst {
		if want := a[i] + b[i]; dst[i] != want {
			t.Errorf("AddDense: index %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestReduceToRegister(t *testing.T) {
	n := BlockSize[float64]()
	src := make([]float64, n)
	var want float64
	for i := range src {
		src[i] = 1
		want += 1
	}

	d := LoadDense[float64](src)
	r := d.ReduceToRegister(Add)
	if got := ReduceSum(r); got != want {
		t.Errorf("ReduceToRegister+ReduceSum: got %v, want %v", got, want)
	}
}

func TestZeroDense(t *testing.T) {
	d := ZeroDense[int32]()
	for _, r := range d {
		for _, x := range r.Data() {
			if x != 0 {
				t.Errorf("ZeroDense: got nonzero lane %v", x)
			}
		}
	}
}
