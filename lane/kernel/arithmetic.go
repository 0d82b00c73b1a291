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

// This file covers the value- and vector-broadcast element-wise transforms:
// add/sub/mul/div of a vector by a scalar value, and add/sub/mul/div of two
// vectors lane by lane, each written into a caller-supplied result slice.

// addValueAny writes result[i] = a[i] + value.
func addValueAny[T lane.Number](value T, a, result []T) {
	n := min(len(a), len(result))
	if n == 0 {
		return
	}
	broadcast := lane.Set(value)
	broadcastDense := lane.ZeroDense[T]()
	for i := range broadcastDense {
		broadcastDense[i] = broadcast
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			lane.StoreDense(lane.AddDense(da, broadcastDense), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			lane.Add(ra, broadcast).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] + value
			}
		},
	)
}

// subValueAny writes result[i] = a[i] - value.
func subValueAny[T lane.Number](value T, a, result []T) {
	n := min(len(a), len(result))
	if n == 0 {
		return
	}
	broadcast := lane.Set(value)
	broadcastDense := lane.ZeroDense[T]()
	for i := range broadcastDense {
		broadcastDense[i] = broadcast
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			lane.StoreDense(lane.SubDense(da, broadcastDense), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			lane.Sub(ra, broadcast).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] - value
			}
		},
	)
}

// mulValueAny writes result[i] = a[i] * value.
func mulValueAny[T lane.Number](value T, a, result []T) {
	n := min(len(a), len(result))
	if n == 0 {
		return
	}
	broadcast := lane.Set(value)
	broadcastDense := lane.ZeroDense[T]()
	for i := range broadcastDense {
		broadcastDense[i] = broadcast
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			lane.StoreDense(lane.MulDense(da, broadcastDense), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			lane.Mul(ra, broadcast).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] * value
			}
		},
	)
}

// divValueAny writes result[i] = a[i] / value.
func divValueAny[T lane.Number](value T, a, result []T) {
	n := min(len(a), len(result))
	if n == 0 {
		return
	}
	broadcast := lane.Set(value)
	broadcastDense := lane.ZeroDense[T]()
	for i := range broadcastDense {
		broadcastDense[i] = broadcast
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			lane.StoreDense(lane.DivDense(da, broadcastDense), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			lane.Div(ra, broadcast).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] / value
			}
		},
	)
}

// addVectorAny writes result[i] = a[i] + b[i].
func addVectorAny[T lane.Number](a, b, result []T) {
	n := min(len(a), min(len(b), len(result)))
	if n == 0 {
		return
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			lane.StoreDense(lane.AddDense(da, db), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			lane.Add(ra, rb).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] + b[offset+i]
			}
		},
	)
}

// subVectorAny writes result[i] = a[i] - b[i].
func subVectorAny[T lane.Number](a, b, result []T) {
	n := min(len(a), min(len(b), len(result)))
	if n == 0 {
		return
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			lane.StoreDense(lane.SubDense(da, db), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			lane.Sub(ra, rb).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] - b[offset+i]
			}
		},
	)
}

// mulVectorAny writes result[i] = a[i] * b[i].
func mulVectorAny[T lane.Number](a, b, result []T) {
	n := min(len(a), min(len(b), len(result)))
	if n == 0 {
		return
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			lane.StoreDense(lane.MulDense(da, db), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			lane.Mul(ra, rb).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] * b[offset+i]
			}
		},
	)
}

// divVectorAny writes result[i] = a[i] / b[i].
func divVectorAny[T lane.Number](a, b, result []T) {
	n := min(len(a), min(len(b), len(result)))
	if n == 0 {
		return
	}

	lane.ProcessDense[T](n,
		func(offset int) {
			da := lane.LoadDense[T](a[offset:])
			db := lane.LoadDense[T](b[offset:])
			lane.StoreDense(lane.DivDense(da, db), result[offset:])
		},
		func(offset, count int) {
			ra := lane.Load(a[offset:])
			rb := lane.Load(b[offset:])
			lane.Div(ra, rb).Store(result[offset : offset+count])
		},
		func(offset, count int) {
			for i := range count {
				result[offset+i] = a[offset+i] / b[offset+i]
			}
		},
	)
}

// XAnyAddValue writes result[i] = a[i] + value over the xany shape contract.
func XAnyAddValue[T lane.Number](value T, a, result []T) { addValueAny(value, a, result) }

// XConstAddValue writes result[i] = a[i] + value under the xconst shape
// contract.
func XConstAddValue[T lane.Number](dims int, value T, a, result []T) {
	lane.RequireConstDims("xconst_add_value", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_add_value", len(a), len(result))
	addValueAny(value, a, result)
}

// XAnySubValue writes result[i] = a[i] - value over the xany shape contract.
func XAnySubValue[T lane.Number](value T, a, result []T) { subValueAny(value, a, result) }

// XConstSubValue writes result[i] = a[i] - value under the xconst shape
// contract.
func XConstSubValue[T lane.Number](dims int, value T, a, result []T) {
	lane.RequireConstDims("xconst_sub_value", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_sub_value", len(a), len(result))
	subValueAny(value, a, result)
}

// XAnyMulValue writes result[i] = a[i] * value over the xany shape contract.
func XAnyMulValue[T lane.Number](value T, a, result []T) { mulValueAny(value, a, result) }

// XConstMulValue writes result[i] = a[i] * value under the xconst shape
// contract.
func XConstMulValue[T lane.Number](dims int, value T, a, result []T) {
	lane.RequireConstDims("xconst_mul_value", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_mul_value", len(a), len(result))
	mulValueAny(value, a, result)
}

// XAnyDivValue writes result[i] = a[i] / value over the xany shape contract.
func XAnyDivValue[T lane.Number](value T, a, result []T) { divValueAny(value, a, result) }

// XConstDivValue writes result[i] = a[i] / value under the xconst shape
// contract.
func XConstDivValue[T lane.Number](dims int, value T, a, result []T) {
	lane.RequireConstDims("xconst_div_value", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_div_value", len(a), len(result))
	divValueAny(value, a, result)
}

// XAnyAddVector writes result[i] = a[i] + b[i] over the xany shape contract.
func XAnyAddVector[T lane.Number](a, b, result []T) { addVectorAny(a, b, result) }

// XConstAddVector writes result[i] = a[i] + b[i] under the xconst shape
// contract.
func XConstAddVector[T lane.Number](dims int, a, b, result []T) {
	lane.RequireConstDims("xconst_add_vector", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_add_vector", len(a), len(b))
	lane.RequireEqualLen("xconst_add_vector", len(a), len(result))
	addVectorAny(a, b, result)
}

// XAnySubVector writes result[i] = a[i] - b[i] over the xany shape contract.
func XAnySubVector[T lane.Number](a, b, result []T) { subVectorAny(a, b, result) }

// XConstSubVector writes result[i] = a[i] - b[i] under the xconst shape
// contract.
func XConstSubVector[T lane.Number](dims int, a, b, result []T) {
	lane.RequireConstDims("xconst_sub_vector", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_sub_vector", len(a), len(b))
	lane.RequireEqualLen("xconst_sub_vector", len(a), len(result))
	subVectorAny(a, b, result)
}

// XAnyMulVector writes result[i] = a[i] * b[i] over the xany shape contract.
func XAnyMulVector[T lane.Number](a, b, result []T) { mulVectorAny(a, b, result) }

// XConstMulVector writes result[i] = a[i] * b[i] under the xconst shape
// contract.
func XConstMulVector[T lane.Number](dims int, a, b, result []T) {
	lane.RequireConstDims("xconst_mul_vector", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_mul_vector", len(a), len(b))
	lane.RequireEqualLen("xconst_mul_vector", len(a), len(result))
	mulVectorAny(a, b, result)
}

// XAnyDivVector writes result[i] = a[i] / b[i] over the xany shape contract.
func XAnyDivVector[T lane.Number](a, b, result []T) { divVectorAny(a, b, result) }

// XConstDivVector writes result[i] = a[i] / b[i] under the xconst shape
// contract.
func XConstDivVector[T lane.Number](dims int, a, b, result []T) {
	lane.RequireConstDims("xconst_div_vector", dims, len(a), lane.BlockSize[T]())
	lane.RequireEqualLen("xconst_div_vector", len(a), len(b))
	lane.RequireEqualLen("xconst_div_vector", len(a), len(result))
	divVectorAny(a, b, result)
}
