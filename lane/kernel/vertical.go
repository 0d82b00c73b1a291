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

// This file covers the two vertical shapes: lanewise min/max between two
// equal-length vectors, and whole-matrix reductions across a sequence of
// equal-length rows. The matrix reductions iterate rows-inside,
// columns-outside: for each block of columns, every row is folded into
// that block's accumulator before moving to the next column block. This
// keeps one row's worth of cache locality per accumulator step rather than
// re-streaming the whole matrix once per row.

// maxVerticalAny writes result[i] = max(a[i], b[i]).
func maxVerticalAny[T lane.Number](a, b, result []T) {
	n := min(len(a), min(len(b), len(result)))
	if n == 0 {
		return
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			lane.StoreDense(lane.MaxDense(da, db), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			lane.Max(ra, rb).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = lane.MathCmpMax(a[offset+i], b[offset+i])
			}
		},
	)
}

// minVerticalAny writes result[i] = min(a[i], b[i]).
func minVerticalAny[T lane.Number](a, b, result []T) {
	n := min(len(a), min(len(b), len(result)))
	if n == 0 {
		return
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			lane.StoreDense(lane.MinDense(da, db), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			lane.Min(ra, rb).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = lane.MathCmpMin(a[offset+i], b[offset+i])
			}
		},
	)
}

// XAnyMaxVertical writes result[i] = max(a[i], b[i]) over the xany shape
// contract.
func XAnyMaxVertical[T lane.Number](a, b, result []T) { maxVerticalAny(a, b, result) }

// XConstMaxVertical writes result[i] = max(a[i], b[i]) under the xconst
// shape contract.
func XConstMaxVertical[T lane.Number](dims int, a, b, result []T) {
	lane.RequireConstDims("xconst_max_vertical", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_max_vertical", len(a), len(b))
	lane.RequireEqualLen("xconst_max_vertical", len(a), len(result))
	maxVerticalAny(a, b, result)
}

// XAnyMinVertical writes result[i] = min(a[i], b[i]) over the xany shape
// contract.
func XAnyMinVertical[T lane.Number](a, b, result []T) { minVerticalAny(a, b, result) }

// XConstMinVertical writes result[i] = min(a[i], b[i]) under the xconst
// shape contract.
func XConstMinVertical[T lane.Number](dims int, a, b, result []T) {
	lane.RequireConstDims("xconst_min_vertical", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_min_vertical", len(a), len(b))
	lane.RequireEqualLen("xconst_min_vertical", len(a), len(result))
	minVerticalAny(a, b, result)
}

// requireMatrix validates that rows is non-empty and that every row shares
// the first row's length. An empty matrix has no well-defined row width.
func requireMatrix[T any](op string, rows [][]T) int {
	lane.RequireNonEmpty(op, len(rows))
	width := len(rows[0])
	for _, row := range rows[1:] {
		lane.RequireEqualRowLen(op, width, len(row))
	}
	return width
}

// sumRowsAny returns, for each column j, the sum of rows[i][j] over all
// rows i. Processes column blocks outermost, rows innermost.
func sumRowsAny[T lane.Number](rows [][]T) []T {
	width := requireMatrix("sum_rows", rows)
	result := make([]T, width)

	lane.ProcessDense[T](width,
		func(offset int) {
			acc := lane.ZeroDense[T]()
			for _, row := range rows {
				acc = lane.AddDense(acc, lane.LoadDense[T](row[offset:]))
			}
			lane.StoreDense(acc, result[offset:])
		},
		func(offset, count int) {
			acc := lane.Zero[T]()
			for _, row := range rows {
				acc = lane.Add(acc, lane.Load(row[offset:]))
			}
			acc.Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				var sum T
				for _, row := range rows {
					sum += row[offset+i]
				}
				result[offset+i] = sum
			}
		},
	)

	return result
}

// maxRowsAny returns, for each column j, the maximum of rows[i][j] over
// all rows i.
func maxRowsAny[T lane.Number](rows [][]T) []T {
	width := requireMatrix("max_rows", rows)
	result := make([]T, width)

	lane.ProcessDense[T](width,
		func(offset int) {
			acc := lane.LoadDense[T](rows[0][offset:])
			for _, row := range rows[1:] {
				acc = lane.MaxDense(acc, lane.LoadDense[T](row[offset:]))
			}
			lane.StoreDense(acc, result[offset:])
		},
		func(offset, count int) {
			acc := lane.Load(rows[0][offset:])
			for _, row := range rows[1:] {
				acc = lane.Max(acc, lane.Load(row[offset:]))
			}
			acc.Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				m := rows[0][offset+i]
				for _, row := range rows[1:] {
					m = lane.MathCmpMax(m, row[offset+i])
				}
				result[offset+i] = m
			}
		},
	)

	return result
}

// minRowsAny returns, for each column j, the minimum of rows[i][j] over
// all rows i.
func minRowsAny[T lane.Number](rows [][]T) []T {
	width := requireMatrix("min_rows", rows)
	result := make([]T, width)

	lane.ProcessDense[T](width,
		func(offset int) {
			acc := lane.LoadDense[T](rows[0][offset:])
			for _, row := range rows[1:] {
				acc = lane.MinDense(acc, lane.LoadDense[T](row[offset:]))
			}
			lane.StoreDense(acc, result[offset:])
		},
		func(offset, count int) {
			acc := lane.Load(rows[0][offset:])
			for _, row := range rows[1:] {
				acc = lane.Min(acc, lane.Load(row[offset:]))
			}
			acc.Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				m := rows[0][offset+i]
				for _, row := range rows[1:] {
					m = lane.MathCmpMin(m, row[offset+i])
				}
				result[offset+i] = m
			}
		},
	)

	return result
}

// SumRows returns, column by column, the sum across all rows.
func SumRows[T lane.Number](rows [][]T) []T { return sumRowsAny(rows) }

// MaxRows returns, column by column, the maximum across all rows.
func MaxRows[T lane.Number](rows [][]T) []T { return maxRowsAny(rows) }

// MinRows returns, column by column, the minimum across all rows.
func MinRows[T lane.Number](rows [][]T) []T { return minRowsAny(rows) }
