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

func TestXAnyNorm(t *testing.T) {
	for _, n := range boundaryLengths {
		v := make([]float64, n)
		var want float64
		for i := range v {
			v[i] = float64(i % 4)
			want += v[i] * v[i]
		}
		if got := XAnyNorm(v); got != want {
			t.Errorf("XAnyNorm(n=%d): got %v, want %v", n, got, want)
		}
	}
}

func TestXAnyNormSignedInt(t *testing.T) {
	v := []int32{1, -2, 3, -4}
	if got := XAnyNorm(v); got != 30 {
		t.Errorf("XAnyNorm(signed ints): got %v, want 30", got)
	}
}
