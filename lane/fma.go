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

import "math"

// fma computes a*b+c, using math.FMA's single-rounding semantics for the two
// native float types and plain multiply-add for every integer type.
func fma[T Number](a, b, c T) T {
	switch av := any(a).(type) {
	case float32:
		bv := any(b).(float32)
		cv := any(c).(float32)
		return any(float32(math.FMA(float64(av), float64(bv), float64(cv)))).(T)
	case float64:
		bv := any(b).(float64)
		cv := any(c).(float64)
		return any(math.FMA(av, bv, cv)).(T)
	default:
		return a*b + c
	}
}
