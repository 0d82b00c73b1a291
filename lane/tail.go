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

// ProcessDense walks size elements in BlockSize[T]() chunks, calling denseFn
// once per full dense block (offset is the block's starting index), then
// registerFn zero or more times for the remaining single-register chunks,
// then scalarFn once for whatever is left over when that is 1 to
// MaxLanes[T]()-1 elements (scalarFn is not called when nothing is left).
// This is the three-phase loop (dense block / register tail /
// scalar tail) every xany kernel body in lane/kernel is built around.
func ProcessDense[T Number](size int, denseFn func(offset int), registerFn func(offset, count int), scalarFn func(offset, count int)) {
	block := BlockSize[T]()
	lanes := MaxLanes[T]()

	denseBlocks := 0
	if block > 0 {
		denseBlocks = size / block
	}
	for i := range denseBlocks {
		denseFn(i * block)
	}

	offset := denseBlocks * block
	remaining := size - offset

	if lanes > 0 {
		for remaining >= lanes {
			registerFn(offset, lanes)
			offset += lanes
			remaining -= lanes
		}
	}

	if remaining > 0 {
		scalarFn(offset, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the dense block size,
// the granularity xconst kernels require their declared dimension to match.
func AlignedSize[T Number](size int) int {
	block := BlockSize[T]()
	if block == 0 {
		return size
	}
	return ((size + block - 1) / block) * block
}

// IsBlockAligned reports whether size is an exact multiple of BlockSize[T](),
// the precondition xconst kernel variants require of their declared N.
func IsBlockAligned[T Number](size int) bool {
	block := BlockSize[T]()
	if block == 0 {
		return true
	}
	return size%block == 0
}
