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

	"github.com/ajroetker/go-vecalgebra/lane"
)

// euclideanAny computes the squared Euclidean distance between a and b:
// sum((a[i]-b[i])^2), accumulated via FMA on the difference in a single
// pass. Uses the shorter of the two lengths.
func euclideanAny[T lane.Number](a, b []T) T {
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
			diff := lane.SubDense(da, db)
			acc = lane.FMADense(diff, diff, acc)
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			diff := lane.Sub(ra, rb)
			scalarSum += lane.ReduceSum(lane.FMA(diff, diff, lane.Zero[T]()))
		},
		func(offset, count int) {
			for i := range count {
				d := a[offset+i] - b[offset+i]
				scalarSum += d * d
			}
		},
	)

	return lane.ReduceSum(acc.ReduceToRegister(lane.Add)) + scalarSum
}

// XAnyEuclidean returns the squared Euclidean distance between a and b.
func XAnyEuclidean[T lane.Number](a, b []T) T {
	return euclideanAny(a, b)
}

// XConstEuclidean returns the squared Euclidean distance between a and b
// under the xconst shape contract.
func XConstEuclidean[T lane.Number](dims int, a, b []T) T {
	lane.RequireConstDims("xconst_euclidean", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_euclidean", len(a), len(b))
	return euclideanAny(a, b)
}

// cosineAny computes 1 - dot(a,b)/(sqrt(norm(a))*sqrt(norm(b))) in one pass
// over a and b, fusing the dot/norm-a/norm-b accumulator chains. When either
// norm is zero it returns NaN for floating-point T and 0 for signed integer
// T. Restricted to NormableNumber (floats and signed integers); unsigned
// types have no cosine.
func cosineAny[T NormableNumber](a, b []T) T {
	n := min(len(a), len(b))

	dotAcc := lane.ZeroDense[T]()
	normAAcc := lane.ZeroDense[T]()
	normBAcc := lane.ZeroDense[T]()
	var scalarDot, scalarNormA, scalarNormB T

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			dotAcc = lane.FMADense(da, db, dotAcc)
			normAAcc = lane.FMADense(da, da, normAAcc)
			normBAcc = lane.FMADense(db, db, normBAcc)
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			scalarDot += lane.ReduceSum(lane.FMA(ra, rb, lane.Zero[T]()))
			scalarNormA += lane.ReduceSum(lane.FMA(ra, ra, lane.Zero[T]()))
			scalarNormB += lane.ReduceSum(lane.FMA(rb, rb, lane.Zero[T]()))
		},
		func(offset, count int) {
			for i := range count {
				av, bv := a[offset+i], b[offset+i]
				scalarDot += av * bv
				scalarNormA += av * av
				scalarNormB += bv * bv
			}
		},
	)

	dot := lane.ReduceSum(dotAcc.ReduceToRegister(lane.Add)) + scalarDot
	normA := lane.ReduceSum(normAAcc.ReduceToRegister(lane.Add)) + scalarNormA
	normB := lane.ReduceSum(normBAcc.ReduceToRegister(lane.Add)) + scalarNormB

	if normA == lane.MathZero[T]() || normB == lane.MathZero[T]() {
		return nanOf[T]()
	}

	one := lane.MathOne[T]()
	denom := sqrtNormable(normA) * sqrtNormable(normB)
	return one - dot/denom
}

// sqrtNormable computes the square root of a NormableNumber scalar, widening
// through float64 for the signed-integer members of the constraint since
// lane.MathSqrt only accepts Floats. The integer result is truncated back to
// T, same as any other integer op in this package.
func sqrtNormable[T NormableNumber](v T) T {
	switch x := any(v).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(x)))).(T)
	case float64:
		return any(math.Sqrt(x)).(T)
	default:
		return T(math.Sqrt(float64(v)))
	}
}

// nanOf returns T's NaN representation for floating-point T, or T's zero
// value for signed integer T (which has no "undefined" representation).
func nanOf[T NormableNumber]() T {
	switch any(*new(T)).(type) {
	case float32:
		return any(float32(math.NaN())).(T)
	case float64:
		return any(math.NaN()).(T)
	default:
		return lane.MathZero[T]()
	}
}

// XAnyCosine returns the cosine distance 1-cos(theta) between a and b,
// using the shorter length if they differ.
func XAnyCosine[T NormableNumber](a, b []T) T {
	return cosineAny(a, b)
}

// XConstCosine returns the cosine distance between a and b under the
// xconst shape contract.
func XConstCosine[T NormableNumber](dims int, a, b []T) T {
	lane.RequireConstDims("xconst_cosine", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_cosine", len(a), len(b))
	return cosineAny(a, b)
}
