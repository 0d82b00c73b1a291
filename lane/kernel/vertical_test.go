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

import "testing"

func TestXAnyMaxVerticalMinVertical(t *testing.T) {
	a := []float32{1, 9, 3, 9, 5}
	b := []float32{9, 1, 9, 3, 5}

	maxResult := make([]float32, 5)
	XAnyMaxVertical(a, b, maxResult)
	wantMax := []float32{9, 9, 9, 9, 5}
	for i := range wantMax {
		if maxResult[i] != wantMax[i] {
			t.Errorf("MaxVertical index %d: got %v, want %v", i, maxResult[i], wantMax[i])
		}
	}

	minResult := make([]float32, 5)
	XAnyMinVertical(a, b, minResult)
	wantMin := []float32{1, 1, 3, 3, 5}
	for i := range wantMin {
		if minResult[i] != wantMin[i] {
			t.Errorf("MinVertical index %d: got %v, want %v", i, minResult[i], wantMin[i])
		}
	}
}

// Scenario 4: f64_xany_sum_vertical over 25 copies of a 537-long vector v
// produces, elementwise, 25*v.
func TestSumRowsScenario(t *testing.T) {
	width := 537
	v := make([]float64, width)
	for i := range v {
		v[i] = float64(i%11) + 0.5
	}

	rows := make([][]float64, 25)
	for i := range rows {
		rows[i] = v
	}

	got := SumRows(rows)
	for i := range v {
		want := 25 * v[i]
		if got[i] != want {
			t.Errorf("SumRows index %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestMaxRowsMinRows(t *testing.T) {
	rows := [][]int32{
		{1, 9, 3, 9, 1, 2, 3, 4, 5},
		{9, 1, 9, 1, 9, 2, 3, 4, 5},
		{5, 5, 5, 5, 5, 2, 3, 4, 5},
	}

	max := MaxRows(rows)
	wantMax := []int32{9, 9, 9, 9, 9, 2, 3, 4, 5}
	for i := range wantMax {
		if max[i] != wantMax[i] {
			t.Errorf("MaxRows index %d: got %v, want %v", i, max[i], wantMax[i])
		}
	}

	min := MinRows(rows)
	wantMin := []int32{1, 1, 3, 1, 1, 2, 3, 4, 5}
	for i := range wantMin {
		if min[i] != wantMin[i] {
			t.Errorf("MinRows index %d: got %v, want %v", i, min[i], wantMin[i])
		}
	}
}

func TestSumRowsPanicsOnEmptyMatrix(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("SumRows: expected panic on empty matrix")
		}
	}()
	SumRows[float32](nil)
}

func TestSumRowsPanicsOnRaggedRows(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("SumRows: expected panic on ragged rows")
		}
	}()
	SumRows([][]float32{{1, 2, 3}, {1, 2}})
}
