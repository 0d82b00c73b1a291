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

// This file is the concrete per-type entry-point layer: one named function
// per <T>_x<const|any>_<op> combination, translated into Go's exported
// identifier casing (f32_xany_sum -> F32XAnySum). Each function is a direct,
// unconditional call into the generic body above — no logic lives here,
// only the monomorphizing name. norm/cosine are omitted for the four
// unsigned types, for which the sum of squares and the square-root-ratio
// they imply have no well-defined unsigned semantics.

// --- F32 (float32) ---

func F32XAnyAddValue(value float32, a, result []float32) { XAnyAddValue(value, a, result) }
func F32XConstAddValue(dims int, value float32, a, result []float32) { XConstAddValue(dims, value, a, result) }
func F32XAnySubValue(value float32, a, result []float32) { XAnySubValue(value, a, result) }
func F32XConstSubValue(dims int, value float32, a, result []float32) { XConstSubValue(dims, value, a, result) }
func F32XAnyMulValue(value float32, a, result []float32) { XAnyMulValue(value, a, result) }
func F32XConstMulValue(dims int, value float32, a, result []float32) { XConstMulValue(dims, value, a, result) }
func F32XAnyDivValue(value float32, a, result []float32) { XAnyDivValue(value, a, result) }
func F32XConstDivValue(dims int, value float32, a, result []float32) { XConstDivValue(dims, value, a, result) }

func F32XAnyAddVector(a, b, result []float32) { XAnyAddVector(a, b, result) }
func F32XConstAddVector(dims int, a, b, result []float32) { XConstAddVector(dims, a, b, result) }
func F32XAnySubVector(a, b, result []float32) { XAnySubVector(a, b, result) }
func F32XConstSubVector(dims int, a, b, result []float32) { XConstSubVector(dims, a, b, result) }
func F32XAnyMulVector(a, b, result []float32) { XAnyMulVector(a, b, result) }
func F32XConstMulVector(dims int, a, b, result []float32) { XConstMulVector(dims, a, b, result) }
func F32XAnyDivVector(a, b, result []float32) { XAnyDivVector(a, b, result) }
func F32XConstDivVector(dims int, a, b, result []float32) { XConstDivVector(dims, a, b, result) }

func F32XAnySum(v []float32) float32 { return XAnySum(v) }
func F32XConstSum(dims int, v []float32) float32 { return XConstSum(dims, v) }
func F32XAnyMaxHorizontal(v []float32) float32 { return XAnyMaxHorizontal(v) }
func F32XConstMaxHorizontal(dims int, v []float32) float32 { return XConstMaxHorizontal(dims, v) }
func F32XAnyMinHorizontal(v []float32) float32 { return XAnyMinHorizontal(v) }
func F32XConstMinHorizontal(dims int, v []float32) float32 { return XConstMinHorizontal(dims, v) }

func F32XAnyMaxVertical(a, b, result []float32) { XAnyMaxVertical(a, b, result) }
func F32XConstMaxVertical(dims int, a, b, result []float32) { XConstMaxVertical(dims, a, b, result) }
func F32XAnyMinVertical(a, b, result []float32) { XAnyMinVertical(a, b, result) }
func F32XConstMinVertical(dims int, a, b, result []float32) { XConstMinVertical(dims, a, b, result) }

func F32XAnyDot(a, b []float32) float32 { return XAnyDot(a, b) }
func F32XConstDot(dims int, a, b []float32) float32 { return XConstDot(dims, a, b) }
func F32XAnyEuclidean(a, b []float32) float32 { return XAnyEuclidean(a, b) }
func F32XConstEuclidean(dims int, a, b []float32) float32 { return XConstEuclidean(dims, a, b) }

func F32XAnyNorm(v []float32) float32 { return XAnyNorm(v) }
func F32XConstNorm(dims int, v []float32) float32 { return XConstNorm(dims, v) }
func F32XAnyCosine(a, b []float32) float32 { return XAnyCosine(a, b) }
func F32XConstCosine(dims int, a, b []float32) float32 { return XConstCosine(dims, a, b) }

// --- F64 (float64) ---

func F64XAnyAddValue(value float64, a, result []float64) { XAnyAddValue(value, a, result) }
func F64XConstAddValue(dims int, value float64, a, result []float64) { XConstAddValue(dims, value, a, result) }
func F64XAnySubValue(value float64, a, result []float64) { XAnySubValue(value, a, result) }
func F64XConstSubValue(dims int, value float64, a, result []float64) { XConstSubValue(dims, value, a, result) }
func F64XAnyMulValue(value float64, a, result []float64) { XAnyMulValue(value, a, result) }
func F64XConstMulValue(dims int, value float64, a, result []float64) { XConstMulValue(dims, value, a, result) }
func F64XAnyDivValue(value float64, a, result []float64) { XAnyDivValue(value, a, result) }
func F64XConstDivValue(dims int, value float64, a, result []float64) { XConstDivValue(dims, value, a, result) }

func F64XAnyAddVector(a, b, result []float64) { XAnyAddVector(a, b, result) }
func F64XConstAddVector(dims int, a, b, result []float64) { XConstAddVector(dims, a, b, result) }
func F64XAnySubVector(a, b, result []float64) { XAnySubVector(a, b, result) }
func F64XConstSubVector(dims int, a, b, result []float64) { XConstSubVector(dims, a, b, result) }
func F64XAnyMulVector(a, b, result []float64) { XAnyMulVector(a, b, result) }
func F64XConstMulVector(dims int, a, b, result []float64) { XConstMulVector(dims, a, b, result) }
func F64XAnyDivVector(a, b, result []float64) { XAnyDivVector(a, b, result) }
func F64XConstDivVector(dims int, a, b, result []float64) { XConstDivVector(dims, a, b, result) }

func F64XAnySum(v []float64) float64 { return XAnySum(v) }
func F64XConstSum(dims int, v []float64) float64 { return XConstSum(dims, v) }
func F64XAnyMaxHorizontal(v []float64) float64 { return XAnyMaxHorizontal(v) }
func F64XConstMaxHorizontal(dims int, v []float64) float64 { return XConstMaxHorizontal(dims, v) }
func F64XAnyMinHorizontal(v []float64) float64 { return XAnyMinHorizontal(v) }
func F64XConstMinHorizontal(dims int, v []float64) float64 { return XConstMinHorizontal(dims, v) }

func F64XAnyMaxVertical(a, b, result []float64) { XAnyMaxVertical(a, b, result) }
func F64XConstMaxVertical(dims int, a, b, result []float64) { XConstMaxVertical(dims, a, b, result) }
func F64XAnyMinVertical(a, b, result []float64) { XAnyMinVertical(a, b, result) }
func F64XConstMinVertical(dims int, a, b, result []float64) { XConstMinVertical(dims, a, b, result) }

func F64XAnyDot(a, b []float64) float64 { return XAnyDot(a, b) }
func F64XConstDot(dims int, a, b []float64) float64 { return XConstDot(dims, a, b) }
func F64XAnyEuclidean(a, b []float64) float64 { return XAnyEuclidean(a, b) }
func F64XConstEuclidean(dims int, a, b []float64) float64 { return XConstEuclidean(dims, a, b) }

func F64XAnyNorm(v []float64) float64 { return XAnyNorm(v) }
func F64XConstNorm(dims int, v []float64) float64 { return XConstNorm(dims, v) }
func F64XAnyCosine(a, b []float64) float64 { return XAnyCosine(a, b) }
func F64XConstCosine(dims int, a, b []float64) float64 { return XConstCosine(dims, a, b) }

// --- U8 (uint8) ---

func U8XAnyAddValue(value uint8, a, result []uint8) { XAnyAddValue(value, a, result) }
func U8XConstAddValue(dims int, value uint8, a, result []uint8) { XConstAddValue(dims, value, a, result) }
func U8XAnySubValue(value uint8, a, result []uint8) { XAnySubValue(value, a, result) }
func U8XConstSubValue(dims int, value uint8, a, result []uint8) { XConstSubValue(dims, value, a, result) }
func U8XAnyMulValue(value uint8, a, result []uint8) { XAnyMulValue(value, a, result) }
func U8XConstMulValue(dims int, value uint8, a, result []uint8) { XConstMulValue(dims, value, a, result) }
func U8XAnyDivValue(value uint8, a, result []uint8) { XAnyDivValue(value, a, result) }
func U8XConstDivValue(dims int, value uint8, a, result []uint8) { XConstDivValue(dims, value, a, result) }

func U8XAnyAddVector(a, b, result []uint8) { XAnyAddVector(a, b, result) }
func U8XConstAddVector(dims int, a, b, result []uint8) { XConstAddVector(dims, a, b, result) }
func U8XAnySubVector(a, b, result []uint8) { XAnySubVector(a, b, result) }
func U8XConstSubVector(dims int, a, b, result []uint8) { XConstSubVector(dims, a, b, result) }
func U8XAnyMulVector(a, b, result []uint8) { XAnyMulVector(a, b, result) }
func U8XConstMulVector(dims int, a, b, result []uint8) { XConstMulVector(dims, a, b, result) }
func U8XAnyDivVector(a, b, result []uint8) { XAnyDivVector(a, b, result) }
func U8XConstDivVector(dims int, a, b, result []uint8) { XConstDivVector(dims, a, b, result) }

func U8XAnySum(v []uint8) uint8 { return XAnySum(v) }
func U8XConstSum(dims int, v []uint8) uint8 { return XConstSum(dims, v) }
func U8XAnyMaxHorizontal(v []uint8) uint8 { return XAnyMaxHorizontal(v) }
func U8XConstMaxHorizontal(dims int, v []uint8) uint8 { return XConstMaxHorizontal(dims, v) }
func U8XAnyMinHorizontal(v []uint8) uint8 { return XAnyMinHorizontal(v) }
func U8XConstMinHorizontal(dims int, v []uint8) uint8 { return XConstMinHorizontal(dims, v) }

func U8XAnyMaxVertical(a, b, result []uint8) { XAnyMaxVertical(a, b, result) }
func U8XConstMaxVertical(dims int, a, b, result []uint8) { XConstMaxVertical(dims, a, b, result) }
func U8XAnyMinVertical(a, b, result []uint8) { XAnyMinVertical(a, b, result) }
func U8XConstMinVertical(dims int, a, b, result []uint8) { XConstMinVertical(dims, a, b, result) }

func U8XAnyDot(a, b []uint8) uint8 { return XAnyDot(a, b) }
func U8XConstDot(dims int, a, b []uint8) uint8 { return XConstDot(dims, a, b) }
func U8XAnyEuclidean(a, b []uint8) uint8 { return XAnyEuclidean(a, b) }
func U8XConstEuclidean(dims int, a, b []uint8) uint8 { return XConstEuclidean(dims, a, b) }

// --- U16 (uint16) ---

func U16XAnyAddValue(value uint16, a, result []uint16) { XAnyAddValue(value, a, result) }
func U16XConstAddValue(dims int, value uint16, a, result []uint16) { XConstAddValue(dims, value, a, result) }
func U16XAnySubValue(value uint16, a, result []uint16) { XAnySubValue(value, a, result) }
func U16XConstSubValue(dims int, value uint16, a, result []uint16) { XConstSubValue(dims, value, a, result) }
func U16XAnyMulValue(value uint16, a, result []uint16) { XAnyMulValue(value, a, result) }
func U16XConstMulValue(dims int, value uint16, a, result []uint16) { XConstMulValue(dims, value, a, result) }
func U16XAnyDivValue(value uint16, a, result []uint16) { XAnyDivValue(value, a, result) }
func U16XConstDivValue(dims int, value uint16, a, result []uint16) { XConstDivValue(dims, value, a, result) }

func U16XAnyAddVector(a, b, result []uint16) { XAnyAddVector(a, b, result) }
func U16XConstAddVector(dims int, a, b, result []uint16) { XConstAddVector(dims, a, b, result) }
func U16XAnySubVector(a, b, result []uint16) { XAnySubVector(a, b, result) }
func U16XConstSubVector(dims int, a, b, result []uint16) { XConstSubVector(dims, a, b, result) }
func U16XAnyMulVector(a, b, result []uint16) { XAnyMulVector(a, b, result) }
func U16XConstMulVector(dims int, a, b, result []uint16) { XConstMulVector(dims, a, b, result) }
func U16XAnyDivVector(a, b, result []uint16) { XAnyDivVector(a, b, result) }
func U16XConstDivVector(dims int, a, b, result []uint16) { XConstDivVector(dims, a, b, result) }

func U16XAnySum(v []uint16) uint16 { return XAnySum(v) }
func U16XConstSum(dims int, v []uint16) uint16 { return XConstSum(dims, v) }
func U16XAnyMaxHorizontal(v []uint16) uint16 { return XAnyMaxHorizontal(v) }
func U16XConstMaxHorizontal(dims int, v []uint16) uint16 { return XConstMaxHorizontal(dims, v) }
func U16XAnyMinHorizontal(v []uint16) uint16 { return XAnyMinHorizontal(v) }
func U16XConstMinHorizontal(dims int, v []uint16) uint16 { return XConstMinHorizontal(dims, v) }

func U16XAnyMaxVertical(a, b, result []uint16) { XAnyMaxVertical(a, b, result) }
func U16XConstMaxVertical(dims int, a, b, result []uint16) { XConstMaxVertical(dims, a, b, result) }
func U16XAnyMinVertical(a, b, result []uint16) { XAnyMinVertical(a, b, result) }
func U16XConstMinVertical(dims int, a, b, result []uint16) { XConstMinVertical(dims, a, b, result) }

func U16XAnyDot(a, b []uint16) uint16 { return XAnyDot(a, b) }
func U16XConstDot(dims int, a, b []uint16) uint16 { return XConstDot(dims, a, b) }
func U16XAnyEuclidean(a, b []uint16) uint16 { return XAnyEuclidean(a, b) }
func U16XConstEuclidean(dims int, a, b []uint16) uint16 { return XConstEuclidean(dims, a, b) }

// --- U32 (uint32) ---

func U32XAnyAddValue(value uint32, a, result []uint32) { XAnyAddValue(value, a, result) }
func U32XConstAddValue(dims int, value uint32, a, result []uint32) { XConstAddValue(dims, value, a, result) }
func U32XAnySubValue(value uint32, a, result []uint32) { XAnySubValue(value, a, result) }
func U32XConstSubValue(dims int, value uint32, a, result []uint32) { XConstSubValue(dims, value, a, result) }
func U32XAnyMulValue(value uint32, a, result []uint32) { XAnyMulValue(value, a, result) }
func U32XConstMulValue(dims int, value uint32, a, result []uint32) { XConstMulValue(dims, value, a, result) }
func U32XAnyDivValue(value uint32, a, result []uint32) { XAnyDivValue(value, a, result) }
func U32XConstDivValue(dims int, value uint32, a, result []uint32) { XConstDivValue(dims, value, a, result) }

func U32XAnyAddVector(a, b, result []uint32) { XAnyAddVector(a, b, result) }
func U32XConstAddVector(dims int, a, b, result []uint32) { XConstAddVector(dims, a, b, result) }
func U32XAnySubVector(a, b, result []uint32) { XAnySubVector(a, b, result) }
func U32XConstSubVector(dims int, a, b, result []uint32) { XConstSubVector(dims, a, b, result) }
func U32XAnyMulVector(a, b, result []uint32) { XAnyMulVector(a, b, result) }
func U32XConstMulVector(dims int, a, b, result []uint32) { XConstMulVector(dims, a, b, result) }
func U32XAnyDivVector(a, b, result []uint32) { XAnyDivVector(a, b, result) }
func U32XConstDivVector(dims int, a, b, result []uint32) { XConstDivVector(dims, a, b, result) }

func U32XAnySum(v []uint32) uint32 { return XAnySum(v) }
func U32XConstSum(dims int, v []uint32) uint32 { return XConstSum(dims, v) }
func U32XAnyMaxHorizontal(v []uint32) uint32 { return XAnyMaxHorizontal(v) }
func U32XConstMaxHorizontal(dims int, v []uint32) uint32 { return XConstMaxHorizontal(dims, v) }
func U32XAnyMinHorizontal(v []uint32) uint32 { return XAnyMinHorizontal(v) }
func U32XConstMinHorizontal(dims int, v []uint32) uint32 { return XConstMinHorizontal(dims, v) }

func U32XAnyMaxVertical(a, b, result []uint32) { XAnyMaxVertical(a, b, result) }
func U32XConstMaxVertical(dims int, a, b, result []uint32) { XConstMaxVertical(dims, a, b, result) }
func U32XAnyMinVertical(a, b, result []uint32) { XAnyMinVertical(a, b, result) }
func U32XConstMinVertical(dims int, a, b, result []uint32) { XConstMinVertical(dims, a, b, result) }

func U32XAnyDot(a, b []uint32) uint32 { return XAnyDot(a, b) }
func U32XConstDot(dims int, a, b []uint32) uint32 { return XConstDot(dims, a, b) }
func U32XAnyEuclidean(a, b []uint32) uint32 { return XAnyEuclidean(a, b) }
func U32XConstEuclidean(dims int, a, b []uint32) uint32 { return XConstEuclidean(dims, a, b) }

// --- U64 (uint64) ---

func U64XAnyAddValue(value uint64, a, result []uint64) { XAnyAddValue(value, a, result) }
func U64XConstAddValue(dims int, value uint64, a, result []uint64) { XConstAddValue(dims, value, a, result) }
func U64XAnySubValue(value uint64, a, result []uint64) { XAnySubValue(value, a, result) }
func U64XConstSubValue(dims int, value uint64, a, result []uint64) { XConstSubValue(dims, value, a, result) }
func U64XAnyMulValue(value uint64, a, result []uint64) { XAnyMulValue(value, a, result) }
func U64XConstMulValue(dims int, value uint64, a, result []uint64) { XConstMulValue(dims, value, a, result) }
func U64XAnyDivValue(value uint64, a, result []uint64) { XAnyDivValue(value, a, result) }
func U64XConstDivValue(dims int, value uint64, a, result []uint64) { XConstDivValue(dims, value, a, result) }

func U64XAnyAddVector(a, b, result []uint64) { XAnyAddVector(a, b, result) }
func U64XConstAddVector(dims int, a, b, result []uint64) { XConstAddVector(dims, a, b, result) }
func U64XAnySubVector(a, b, result []uint64) { XAnySubVector(a, b, result) }
func U64XConstSubVector(dims int, a, b, result []uint64) { XConstSubVector(dims, a, b, result) }
func U64XAnyMulVector(a, b, result []uint64) { XAnyMulVector(a, b, result) }
func U64XConstMulVector(dims int, a, b, result []uint64) { XConstMulVector(dims, a, b, result) }
func U64XAnyDivVector(a, b, result []uint64) { XAnyDivVector(a, b, result) }
func U64XConstDivVector(dims int, a, b, result []uint64) { XConstDivVector(dims, a, b, result) }

func U64XAnySum(v []uint64) uint64 { return XAnySum(v) }
func U64XConstSum(dims int, v []uint64) uint64 { return XConstSum(dims, v) }
func U64XAnyMaxHorizontal(v []uint64) uint64 { return XAnyMaxHorizontal(v) }
func U64XConstMaxHorizontal(dims int, v []uint64) uint64 { return XConstMaxHorizontal(dims, v) }
func U64XAnyMinHorizontal(v []uint64) uint64 { return XAnyMinHorizontal(v) }
func U64XConstMinHorizontal(dims int, v []uint64) uint64 { return XConstMinHorizontal(dims, v) }

func U64XAnyMaxVertical(a, b, result []uint64) { XAnyMaxVertical(a, b, result) }
func U64XConstMaxVertical(dims int, a, b, result []uint64) { XConstMaxVertical(dims, a, b, result) }
func U64XAnyMinVertical(a, b, result []uint64) { XAnyMinVertical(a, b, result) }
func U64XConstMinVertical(dims int, a, b, result []uint64) { XConstMinVertical(dims, a, b, result) }

func U64XAnyDot(a, b []uint64) uint64 { return XAnyDot(a, b) }
func U64XConstDot(dims int, a, b []uint64) uint64 { return XConstDot(dims, a, b) }
func U64XAnyEuclidean(a, b []uint64) uint64 { return XAnyEuclidean(a, b) }
func U64XConstEuclidean(dims int, a, b []uint64) uint64 { return XConstEuclidean(dims, a, b) }

// --- I8 (int8) ---

func I8XAnyAddValue(value int8, a, result []int8) { XAnyAddValue(value, a, result) }
func I8XConstAddValue(dims int, value int8, a, result []int8) { XConstAddValue(dims, value, a, result) }
func I8XAnySubValue(value int8, a, result []int8) { XAnySubValue(value, a, result) }
func I8XConstSubValue(dims int, value int8, a, result []int8) { XConstSubValue(dims, value, a, result) }
func I8XAnyMulValue(value int8, a, result []int8) { XAnyMulValue(value, a, result) }
func I8XConstMulValue(dims int, value int8, a, result []int8) { XConstMulValue(dims, value, a, result) }
func I8XAnyDivValue(value int8, a, result []int8) { XAnyDivValue(value, a, result) }
func I8XConstDivValue(dims int, value int8, a, result []int8) { XConstDivValue(dims, value, a, result) }

func I8XAnyAddVector(a, b, result []int8) { XAnyAddVector(a, b, result) }
func I8XConstAddVector(dims int, a, b, result []int8) { XConstAddVector(dims, a, b, result) }
func I8XAnySubVector(a, b, result []int8) { XAnySubVector(a, b, result) }
func I8XConstSubVector(dims int, a, b, result []int8) { XConstSubVector(dims, a, b, result) }
func I8XAnyMulVector(a, b, result []int8) { XAnyMulVector(a, b, result) }
func I8XConstMulVector(dims int, a, b, result []int8) { XConstMulVector(dims, a, b, result) }
func I8XAnyDivVector(a, b, result []int8) { XAnyDivVector(a, b, result) }
func I8XConstDivVector(dims int, a, b, result []int8) { XConstDivVector(dims, a, b, result) }

func I8XAnySum(v []int8) int8 { return XAnySum(v) }
func I8XConstSum(dims int, v []int8) int8 { return XConstSum(dims, v) }
func I8XAnyMaxHorizontal(v []int8) int8 { return XAnyMaxHorizontal(v) }
func I8XConstMaxHorizontal(dims int, v []int8) int8 { return XConstMaxHorizontal(dims, v) }
func I8XAnyMinHorizontal(v []int8) int8 { return XAnyMinHorizontal(v) }
func I8XConstMinHorizontal(dims int, v []int8) int8 { return XConstMinHorizontal(dims, v) }

func I8XAnyMaxVertical(a, b, result []int8) { XAnyMaxVertical(a, b, result) }
func I8XConstMaxVertical(dims int, a, b, result []int8) { XConstMaxVertical(dims, a, b, result) }
func I8XAnyMinVertical(a, b, result []int8) { XAnyMinVertical(a, b, result) }
func I8XConstMinVertical(dims int, a, b, result []int8) { XConstMinVertical(dims, a, b, result) }

func I8XAnyDot(a, b []int8) int8 { return XAnyDot(a, b) }
func I8XConstDot(dims int, a, b []int8) int8 { return XConstDot(dims, a, b) }
func I8XAnyEuclidean(a, b []int8) int8 { return XAnyEuclidean(a, b) }
func I8XConstEuclidean(dims int, a, b []int8) int8 { return XConstEuclidean(dims, a, b) }

func I8XAnyNorm(v []int8) int8 { return XAnyNorm(v) }
func I8XConstNorm(dims int, v []int8) int8 { return XConstNorm(dims, v) }
func I8XAnyCosine(a, b []int8) int8 { return XAnyCosine(a, b) }
func I8XConstCosine(dims int, a, b []int8) int8 { return XConstCosine(dims, a, b) }

// --- I16 (int16) ---

func I16XAnyAddValue(value int16, a, result []int16) { XAnyAddValue(value, a, result) }
func I16XConstAddValue(dims int, value int16, a, result []int16) { XConstAddValue(dims, value, a, result) }
func I16XAnySubValue(value int16, a, result []int16) { XAnySubValue(value, a, result) }
func I16XConstSubValue(dims int, value int16, a, result []int16) { XConstSubValue(dims, value, a, result) }
func I16XAnyMulValue(value int16, a, result []int16) { XAnyMulValue(value, a, result) }
func I16XConstMulValue(dims int, value int16, a, result []int16) { XConstMulValue(dims, value, a, result) }
func I16XAnyDivValue(value int16, a, result []int16) { XAnyDivValue(value, a, result) }
func I16XConstDivValue(dims int, value int16, a, result []int16) { XConstDivValue(dims, value, a, result) }

func I16XAnyAddVector(a, b, result []int16) { XAnyAddVector(a, b, result) }
func I16XConstAddVector(dims int, a, b, result []int16) { XConstAddVector(dims, a, b, result) }
func I16XAnySubVector(a, b, result []int16) { XAnySubVector(a, b, result) }
func I16XConstSubVector(dims int, a, b, result []int16) { XConstSubVector(dims, a, b, result) }
func I16XAnyMulVector(a, b, result []int16) { XAnyMulVector(a, b, result) }
func I16XConstMulVector(dims int, a, b, result []int16) { XConstMulVector(dims, a, b, result) }
func I16XAnyDivVector(a, b, result []int16) { XAnyDivVector(a, b, result) }
func I16XConstDivVector(dims int, a, b, result []int16) { XConstDivVector(dims, a, b, result) }

func I16XAnySum(v []int16) int16 { return XAnySum(v) }
func I16XConstSum(dims int, v []int16) int16 { return XConstSum(dims, v) }
func I16XAnyMaxHorizontal(v []int16) int16 { return XAnyMaxHorizontal(v) }
func I16XConstMaxHorizontal(dims int, v []int16) int16 { return XConstMaxHorizontal(dims, v) }
func I16XAnyMinHorizontal(v []int16) int16 { return XAnyMinHorizontal(v) }
func I16XConstMinHorizontal(dims int, v []int16) int16 { return XConstMinHorizontal(dims, v) }

func I16XAnyMaxVertical(a, b, result []int16) { XAnyMaxVertical(a, b, result) }
func I16XConstMaxVertical(dims int, a, b, result []int16) { XConstMaxVertical(dims, a, b, result) }
func I16XAnyMinVertical(a, b, result []int16) { XAnyMinVertical(a, b, result) }
func I16XConstMinVertical(dims int, a, b, result []int16) { XConstMinVertical(dims, a, b, result) }

func I16XAnyDot(a, b []int16) int16 { return XAnyDot(a, b) }
func I16XConstDot(dims int, a, b []int16) int16 { return XConstDot(dims, a, b) }
func I16XAnyEuclidean(a, b []int16) int16 { return XAnyEuclidean(a, b) }
func I16XConstEuclidean(dims int, a, b []int16) int16 { return XConstEuclidean(dims, a, b) }

func I16XAnyNorm(v []int16) int16 { return XAnyNorm(v) }
func I16XConstNorm(dims int, v []int16) int16 { return XConstNorm(dims, v) }
func I16XAnyCosine(a, b []int16) int16 { return XAnyCosine(a, b) }
func I16XConstCosine(dims int, a, b []int16) int16 { return XConstCosine(dims, a, b) }

// --- I32 (int32) ---

func I32XAnyAddValue(value int32, a, result []int32) { XAnyAddValue(value, a, result) }
func I32XConstAddValue(dims int, value int32, a, result []int32) { XConstAddValue(dims, value, a, result) }
func I32XAnySubValue(value int32, a, result []int32) { XAnySubValue(value, a, result) }
func I32XConstSubValue(dims int, value int32, a, result []int32) { XConstSubValue(dims, value, a, result) }
func I32XAnyMulValue(value int32, a, result []int32) { XAnyMulValue(value, a, result) }
func I32XConstMulValue(dims int, value int32, a, result []int32) { XConstMulValue(dims, value, a, result) }
func I32XAnyDivValue(value int32, a, result []int32) { XAnyDivValue(value, a, result) }
func I32XConstDivValue(dims int, value int32, a, result []int32) { XConstDivValue(dims, value, a, result) }

func I32XAnyAddVector(a, b, result []int32) { XAnyAddVector(a, b, result) }
func I32XConstAddVector(dims int, a, b, result []int32) { XConstAddVector(dims, a, b, result) }
func I32XAnySubVector(a, b, result []int32) { XAnySubVector(a, b, result) }
func I32XConstSubVector(dims int, a, b, result []int32) { XConstSubVector(dims, a, b, result) }
func I32XAnyMulVector(a, b, result []int32) { XAnyMulVector(a, b, result) }
func I32XConstMulVector(dims int, a, b, result []int32) { XConstMulVector(dims, a, b, result) }
func I32XAnyDivVector(a, b, result []int32) { XAnyDivVector(a, b, result) }
func I32XConstDivVector(dims int, a, b, result []int32) { XConstDivVector(dims, a, b, result) }

func I32XAnySum(v []int32) int32 { return XAnySum(v) }
func I32XConstSum(dims int, v []int32) int32 { return XConstSum(dims, v) }
func I32XAnyMaxHorizontal(v []int32) int32 { return XAnyMaxHorizontal(v) }
func I32XConstMaxHorizontal(dims int, v []int32) int32 { return XConstMaxHorizontal(dims, v) }
func I32XAnyMinHorizontal(v []int32) int32 { return XAnyMinHorizontal(v) }
func I32XConstMinHorizontal(dims int, v []int32) int32 { return XConstMinHorizontal(dims, v) }

func I32XAnyMaxVertical(a, b, result []int32) { XAnyMaxVertical(a, b, result) }
func I32XConstMaxVertical(dims int, a, b, result []int32) { XConstMaxVertical(dims, a, b, result) }
func I32XAnyMinVertical(a, b, result []int32) { XAnyMinVertical(a, b, result) }
func I32XConstMinVertical(dims int, a, b, result []int32) { XConstMinVertical(dims, a, b, result) }

func I32XAnyDot(a, b []int32) int32 { return XAnyDot(a, b) }
func I32XConstDot(dims int, a, b []int32) int32 { return XConstDot(dims, a, b) }
func I32XAnyEuclidean(a, b []int32) int32 { return XAnyEuclidean(a, b) }
func I32XConstEuclidean(dims int, a, b []int32) int32 { return XConstEuclidean(dims, a, b) }

func I32XAnyNorm(v []int32) int32 { return XAnyNorm(v) }
func I32XConstNorm(dims int, v []int32) int32 { return XConstNorm(dims, v) }
func I32XAnyCosine(a, b []int32) int32 { return XAnyCosine(a, b) }
func I32XConstCosine(dims int, a, b []int32) int32 { return XConstCosine(dims, a, b) }

// --- I64 (int64) ---

func I64XAnyAddValue(value int64, a, result []int64) { XAnyAddValue(value, a, result) }
func I64XConstAddValue(dims int, value int64, a, result []int64) { XConstAddValue(dims, value, a, result) }
func I64XAnySubValue(value int64, a, result []int64) { XAnySubValue(value, a, result) }
func I64XConstSubValue(dims int, value int64, a, result []int64) { XConstSubValue(dims, value, a, result) }
func I64XAnyMulValue(value int64, a, result []int64) { XAnyMulValue(value, a, result) }
func I64XConstMulValue(dims int, value int64, a, result []int64) { XConstMulValue(dims, value, a, result) }
func I64XAnyDivValue(value int64, a, result []int64) { XAnyDivValue(value, a, result) }
func I64XConstDivValue(dims int, value int64, a, result []int64) { XConstDivValue(dims, value, a, result) }

func I64XAnyAddVector(a, b, result []int64) { XAnyAddVector(a, b, result) }
func I64XConstAddVector(dims int, a, b, result []int64) { XConstAddVector(dims, a, b, result) }
func I64XAnySubVector(a, b, result []int64) { XAnySubVector(a, b, result) }
func I64XConstSubVector(dims int, a, b, result []int64) { XConstSubVector(dims, a, b, result) }
func I64XAnyMulVector(a, b, result []int64) { XAnyMulVector(a, b, result) }
func I64XConstMulVector(dims int, a, b, result []int64) { XConstMulVector(dims, a, b, result) }
func I64XAnyDivVector(a, b, result []int64) { XAnyDivVector(a, b, result) }
func I64XConstDivVector(dims int, a, b, result []int64) { XConstDivVector(dims, a, b, result) }

func I64XAnySum(v []int64) int64 { return XAnySum(v) }
func I64XConstSum(dims int, v []int64) int64 { return XConstSum(dims, v) }
func I64XAnyMaxHorizontal(v []int64) int64 { return XAnyMaxHorizontal(v) }
func I64XConstMaxHorizontal(dims int, v []int64) int64 { return XConstMaxHorizontal(dims, v) }
func I64XAnyMinHorizontal(v []int64) int64 { return XAnyMinHorizontal(v) }
func I64XConstMinHorizontal(dims int, v []int64) int64 { return XConstMinHorizontal(dims, v) }

func I64XAnyMaxVertical(a, b, result []int64) { XAnyMaxVertical(a, b, result) }
func I64XConstMaxVertical(dims int, a, b, result []int64) { XConstMaxVertical(dims, a, b, result) }
func I64XAnyMinVertical(a, b, result []int64) { XAnyMinVertical(a, b, result) }
func I64XConstMinVertical(dims int, a, b, result []int64) { XConstMinVertical(dims, a, b, result) }

func I64XAnyDot(a, b []int64) int64 { return XAnyDot(a, b) }
func I64XConstDot(dims int, a, b []int64) int64 { return XConstDot(dims, a, b) }
func I64XAnyEuclidean(a, b []int64) int64 { return XAnyEuclidean(a, b) }
func I64XConstEuclidean(dims int, a, b []int64) int64 { return XConstEuclidean(dims, a, b) }

func I64XAnyNorm(v []int64) int64 { return XAnyNorm(v) }
func I64XConstNorm(dims int, v []int64) int64 { return XConstNorm(dims, v) }
func I64XAnyCosine(a, b []int64) int64 { return XAnyCosine(a, b) }
func I64XConstCosine(dims int, a, b []int64) int64 { return XConstCosine(dims, a, b) }
