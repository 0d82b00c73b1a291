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

// sumAny computes the horizontal sum of v using the three-phase dense
// block / register tail / scalar tail shape. Returns 0 for an empty slice.
func sumAny[T lane.Number](v []T) T {
	if len(v) == 0 {
		var zero T
		return zero
	}

	acc := lane.ZeroDense[T]()
	var scalarSum T

	lane.ProcessDense[T](len(v),
		func(offset int) {
			d := lane.LoadDense[T](v[offset:])
			acc = lane.AddDense(acc, d)
		},
		func(offset, count int) {
			r := lane.Load(v[offset:])
			scalarSum += lane.ReduceSum(r)
		},
		func(offset, count int) {
			for i := range count {
				scalarSum += v[offset+i]
			}
		},
	)

	return lane.ReduceSum(acc.ReduceToRegister(lane.Add)) + scalarSum
}

// maxHorizontalAny returns the maximum element of v. Panics on an empty v.
func maxHorizontalAny[T lane.Number](v []T) T {
	requireNonEmptyLocal("max_horizontal", len(v))

	lanes := lane.MaxLanes[T]()
	if len(v) < lanes {
		m := v[0]
		for _, x := range v[1:] {
			if x > m {
				m = x
			}
		}
		return m
	}

	acc := lane.ZeroDense[T]()
	for i := range acc {
		acc[i] = lane.Load(v)
	}
	var scalarMax T
	haveScalar := false

	lane.ProcessDense[T](len(v),
		func(offset int) {
			d := lane.LoadDense[T](v[offset:])
			acc = lane.MaxDense(acc, d)
		},
		func(offset, count int) {
			r := lane.Load(v[offset:])
			m := lane.ReduceMax(r)
			if !haveScalar || m > scalarMax {
				scalarMax = m
				haveScalar = true
			}
		},
		func(offset, count int) {
			for i := range count {
				x := v[offset+i]
				if !haveScalar || x > scalarMax {
					scalarMax = x
					haveScalar = true
				}
			}
		},
	)

	result := lane.ReduceMax(acc.ReduceToRegister(lane.Max))
	if haveScalar && scalarMax > result {
		result = scalarMax
	}
	return result
}

// minHorizontalAny returns the minimum element of v. Panics on an empty v.
func minHorizontalAny[T lane.Number](v []T) T {
	requireNonEmptyLocal("min_horizontal", len(v))

	lanes := lane.MaxLanes[T]()
	if len(v) < lanes {
		m := v[0]
		for _, x := range v[1:] {
			if x < m {
				m = x
			}
		}
		return m
	}

	acc := lane.ZeroDense[T]()
	for i := range acc {
		acc[i] = lane.Load(v)
	}
	var scalarMin T
	haveScalar := false

	lane.ProcessDense[T](len(v),
		func(offset int) {
			d := lane.LoadDense[T](v[offset:])
			acc = lane.MinDense(acc, d)
		},
		func(offset, count int) {
			r := lane.Load(v[offset:])
			m := lane.ReduceMin(r)
			if !haveScalar || m < scalarMin {
				scalarMin = m
				haveScalar = true
			}
		},
		func(offset, count int) {
			for i := range count {
				x := v[offset+i]
				if !haveScalar || x < scalarMin {
					scalarMin = x
					haveScalar = true
				}
			}
		},
	)

	result := lane.ReduceMin(acc.ReduceToRegister(lane.Min))
	if haveScalar && scalarMin < result {
		result = scalarMin
	}
	return result
}

func requireNonEmptyLocal(op string, n int) {
	lane.RequireNonEmpty(op, n)
}

// XAnySum returns the sum of v's elements, dispatched via the dense/register/
// scalar tail kernel shape.
func XAnySum[T lane.Number](v []T) T {
	return sumAny(v)
}

// XConstSum returns the sum of v's elements. dims must equal len(v) and be a
// multiple of BlockSize[T](); violating either panics with a *lane.ShapeError.
func XConstSum[T lane.Number](dims int, v []T) T {
	lane.RequireConstDims("xconst_sum", dims, len(v), lane.BlockSize[T]())
	return sumAny(v)
}

// XAnyMaxHorizontal returns the maximum element of v. Panics on empty v.
func XAnyMaxHorizontal[T lane.Number](v []T) T {
	return maxHorizontalAny(v)
}

// XConstMaxHorizontal returns the maximum element of v under the xconst
// shape contract.
func XConstMaxHorizontal[T lane.Number](dims int, v []T) T {
	lane.RequireConstDims("xconst_max_horizontal", dims, len(v), lane.BlockSize[T]())
	return maxHorizontalAny(v)
}

// XAnyMinHorizontal returns the minimum element of v. Panics on empty v.
func XAnyMinHorizontal[T lane.Number](v []T) T {
	return minHorizontalAny(v)
}

// XConstMinHorizontal returns the minimum element of v under the xconst
// shape contract.
func XConstMinHorizontal[T lane.Number](dims int, v []T) T {
	lane.RequireConstDims("xconst_min_horizontal", dims, len(v), lane.BlockSize[T]())
	return minHorizontalAny(v)
}
