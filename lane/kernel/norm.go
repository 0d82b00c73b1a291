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

import "github.com/ajroetker/go-vecalgebra/lane"

// normAny computes the squared L2 norm of v: sum(v[i]*v[i]). No square root
// is taken, matching the source op's "norm" contract. Unsigned integers are
// excluded (NormableNumber).
func normAny[T NormableNumber](v []T) T {
	return dotAny(v, v)
}

// XAnyNorm returns the squared L2 norm of v.
func XAnyNorm[T NormableNumber](v []T) T {
	return normAny(v)
}

// XConstNorm returns the squared L2 norm of v under the xconst shape
// contract.
func XConstNorm[T NormableNumber](dims int, v []T) T {
	lane.RequireConstDims("xconst_norm", dims, len(v), lane.BlockSize[T]())
	return normAny(v)
}
