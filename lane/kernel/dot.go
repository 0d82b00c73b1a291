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

// dotAny computes sum(a[i]*b[i]) over the shorter of a, b via FMA
// accumulation into an 8-wide dense lane.
func dotAny[T lane.Number](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		var zero T
		return zero
	}

	acc := lane.ZeroDense[T]()
	var scalarSum T

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			acc = lane.FMADense(da, db, acc)
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			scalarSum += lane.ReduceSum(lane.FMA(ra, rb, lane.Zero[T]()))
		},
		func(offset, count int) {
			for i := range count {
				scalarSum += a[offset+i] * b[offset+i]
			}
		},
	)

	return lane.ReduceSum(acc.ReduceToRegister(lane.Add)) + scalarSum
}

// XAnyDot returns the dot product of a and b, using the shorter length if
// they differ.
func XAnyDot[T lane.Number](a, b []T) T {
	return dotAny(a, b)
}

// XConstDot returns the dot product of a and b under the xconst shape
// contract: dims must equal both len(a) and len(b).
func XConstDot[T lane.Number](dims int, a, b []T) T {
	lane.RequireConstDims("xconst_dot", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_dot", len(a), len(b))
	return dotAny(a, b)
}
