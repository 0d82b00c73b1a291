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
	"math"
	"testing"
)

func TestMathArith(t *testing.T) {
	if got := MathAdd[int32](2, 3); got != 5 {
		t.Errorf("MathAdd: got %v, want 5", got)
	}
	if got := MathSub[int32](5, 3); got != 2 {
		t.Errorf("MathSub: got %v, want 2", got)
	}
	if got := MathMul[int32](4, 5); got != 20 {
		t.Errorf("MathMul: got %v, want 20", got)
	}
	if got := MathDiv[int32](20, 4); got != 5 {
		t.Errorf("MathDiv: got %v, want 5", got)
	}
}

func TestMathCmpMinMax(t *testing.T) {
	if got := MathCmpMin[int32](3, 7); got != 3 {
		t.Errorf("MathCmpMin: got %v, want 3", got)
	}
	if got := MathCmpMax[int32](3, 7); got != 7 {
		t.Errorf("MathCmpMax: got %v, want 7", got)
	}
}

func TestMathZeroOne(t *testing.T) {
	if got := MathZero[int32](); got != 0 {
		t.Errorf("MathZero: got %v, want 0", got)
	}
	if got := MathOne[int32](); got != 1 {
		t.Errorf("MathOne: got %v, want 1", got)
	}
}

func TestMathSqrt(t *testing.T) {
	if got := MathSqrt(float64(4)); got != 2 {
		t.Errorf("MathSqrt(float64): got %v, want 2", got)
	}
	if got := MathSqrt(float32(9)); got != 3 {
		t.Errorf("MathSqrt(float32): got %v, want 3", got)
	}
}

func TestMathIsNaN(t *testing.T) {
	if !MathIsNaN(float64(math.NaN())) {
		t.Error("MathIsNaN: expected true for NaN")
	}
	if MathIsNaN(float64(1.0)) {
		t.Error("MathIsNaN: expected false for 1.0")
	}
}

func TestMathToFloat64(t *testing.T) {
	if got := MathToFloat64(float32(1.5)); got != 1.5 {
		t.Errorf("MathToFloat64: got %v, want 1.5", got)
	}
}
