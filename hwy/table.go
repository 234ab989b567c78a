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

package hwy

import (
	"cmp"
	"slices"
	"sync"
)

// kernels is the dispatch table: one function value per operation. Compare
// kernels return masks as Int4 (lanes 0 or -1). Shift counts are already
// reduced to 0..31.
type kernels struct {
	capability Capability

	add, sub, mul, div, rem func(a, b Int4) Int4
	and, or, xor            func(a, b Int4) Int4
	not, neg, abs           func(v Int4) Int4
	shl, shr, shru          func(v Int4, n uint32) Int4
	min, max                func(a, b Int4) Int4

	eq, ne, gt, ge func(a, b Int4) Int4
	nonZero        func(v Int4) Int4
	lowBit         func(v Int4) Int4
	sel            func(mask, t, f Int4) Int4

	horizontalAdd func(v Int4) int32
	anyMask       func(mask Int4) bool
	allMask       func(mask Int4) bool
	anyNonZero    func(v Int4) bool
}

type provider struct {
	capability Capability
	install    func(k *kernels)
}

var providers []provider

// registerKernels adds the bodies for capability c. Called from init
// functions in the ISA files; install overwrites only the operations that
// ISA accelerates.
func registerKernels(c Capability, install func(k *kernels)) {
	providers = append(providers, provider{c, install})
}

// newKernels builds the table for the feature set f. It starts from the
// scalar bodies and applies providers in ascending priority order, so each
// operation ends up bound to the highest-priority body in f.
func newKernels(f Features) *kernels {
	k := scalarKernels()
	ordered := slices.SortedStableFunc(slices.Values(providers), func(a, b provider) int {
		return cmp.Compare(a.capability, b.capability)
	})
	for _, p := range ordered {
		if f.Has(p.capability) {
			p.install(k)
		}
	}
	k.capability = f.Best()
	if k.anyNonZero == nil {
		k.anyNonZero = func(v Int4) bool { return k.anyMask(k.nonZero(v)) }
	}
	return k
}

// active is the table used by every exported operation.
var active = sync.OnceValue(func() *kernels {
	return newKernels(DetectFeatures())
})

// registeredCapabilities returns the capabilities with compiled bodies.
func registeredCapabilities() Features {
	f := FeaturesOf()
	for _, p := range providers {
		f |= FeaturesOf(p.capability)
	}
	return f
}
