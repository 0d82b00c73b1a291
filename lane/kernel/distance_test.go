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
	"math"
	"testing"
)

func TestXAnyEuclidean(t *testing.T) {
	for _, n := range boundaryLengths {
		a := make([]float64, n)
		b := make([]float64, n)
		var want float64
		for i := range a {
			a[i] = float64(i)
			b[i] = float64(i%3) + 1
			d := a[i] - b[i]
			want += d * d
		}
		if got := XAnyEuclidean(a, b); got != want {
			t.Errorf("XAnyEuclidean(n=%d): got %v, want %v", n, got, want)
		}
	}
}

func TestXAnyEuclideanIdentical(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := XAnyEuclidean(a, a); got != 0 {
		t.Errorf("XAnyEuclidean(a,a): got %v, want 0", got)
	}
}

// Scenario 6: f32_xany_cosine(&a, &a) for any non-zero a must be ~0.0.
func TestF32XAnyCosineSelf(t *testing.T) {
	a := []float32{3, 1, 4, 1, 5, 9, 2, 6, 1, 1, 3}
	got := XAnyCosine(a, a)
	if math.Abs(float64(got)) > 1e-5 {
		t.Errorf("XAnyCosine(a,a): got %v, want ~0.0", got)
	}
}

func TestXAnyCosineZeroNormIsNaN(t *testing.T) {
	a := make([]float64, 16)
	b := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	got := XAnyCosine(a, b)
	if !math.IsNaN(got) {
		t.Errorf("XAnyCosine(zero-norm, b): got %v, want NaN", got)
	}
}

func TestXAnyCosineOrthogonal(t *testing.T) {
	a := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	b := []float64{0, 1, 0, 0, 0, 0, 0, 0}
	got := XAnyCosine(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("XAnyCosine(orthogonal): got %v, want 1.0", got)
	}
}
