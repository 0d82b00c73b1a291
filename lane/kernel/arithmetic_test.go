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

package kernel

import (
	"testing"

	"github.com/ajroetker/go-vecalgebra/lane"
)

// Scenario 1: f32_xany_add_value(1.0, [1.0,2.0,3.0], result) == [2.0,3.0,4.0].
func TestF32XAnyAddValueScenario(t *testing.T) {
	a := []float32{1.0, 2.0, 3.0}
	result := make([]float32, 3)
	F32XAnyAddValue(1.0, a, result)

	want := []float32{2.0, 3.0, 4.0}
	for i := range want {
		if result[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, result[i], want[i])
		}
	}
}

// Scenario 2: f32_xany_mul_vector([1,2,3],[1,2,3],result) == [1,4,9].
func TestF32XAnyMulVectorScenario(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2, 3}
	result := make([]float32, 3)
	F32XAnyMulVector(a, b, result)

	want := []float32{1, 4, 9}
	for i := range want {
		if result[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, result[i], want[i])
		}
	}
}

// Scenario 5: i32_xany_div_vector([10,10,10,10],[2,5,10,1],result) == [5,2,1,10].
func TestI32XAnyDivVectorScenario(t *testing.T) {
	a := []int32{10, 10, 10, 10}
	b := []int32{2, 5, 10, 1}
	result := make([]int32, 4)
	I32XAnyDivVector(a, b, result)

	want := []int32{5, 2, 1, 10}
	for i := range want {
		if result[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, result[i], want[i])
		}
	}
}

func TestXAnySubValueAndMulValue(t *testing.T) {
	for _, n := range boundaryLengths {
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(i)
		}

		subResult := make([]float64, n)
		XAnySubValue(1.0, a, subResult)
		for i := range a {
			if want := a[i] - 1.0; subResult[i] != want {
				t.Errorf("SubValue n=%d index %d: got %v, want %v", n, i, subResult[i], want)
			}
		}

		mulResult := make([]float64, n)
		XAnyMulValue(2.0, a, mulResult)
		for i := range a {
			if want := a[i] * 2.0; mulResult[i] != want {
				t.Errorf("MulValue n=%d index %d: got %v, want %v", n, i, mulResult[i], want)
			}
		}
	}
}

func TestXAnyAddVectorAndSubVector(t *testing.T) {
	for _, n := range boundaryLengths {
		a := make([]int64, n)
		b := make([]int64, n)
		for i := range a {
			a[i] = int64(i)
			b[i] = int64(2 * i)
		}

		addResult := make([]int64, n)
		XAnyAddVector(a, b, addResult)
		for i := range a {
			if want := a[i] + b[i]; addResult[i] != want {
				t.Errorf("AddVector n=%d index %d: got %v, want %v", n, i, addResult[i], want)
			}
		}

		subResult := make([]int64, n)
		XAnySubVector(a, b, subResult)
		for i := range a {
			if want := a[i] - b[i]; subResult[i] != want {
				t.Errorf("SubVector n=%d index %d: got %v, want %v", n, i, subResult[i], want)
			}
		}
	}
}

func TestXConstAddValueRequiresEqualLen(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("XConstAddValue: expected panic on result-length mismatch")
		}
	}()
	block := lane.BlockSize[float32]()
	a := make([]float32, block)
	result := make([]float32, block-1)
	XConstAddValue(block, 1.0, a, result)
}
