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

// Bool4 operations run on the mask words, so they share the Int4 bodies.

// Not returns the lane-wise negation of b.
func (b Bool4) Not() Bool4 { return maskOf(active().not(b.Mask())) }

// And returns true in every lane where both b and o are true.
func (b Bool4) And(o Bool4) Bool4 { return maskOf(active().and(b.Mask(), o.Mask())) }

// Or returns true in every lane where b or o is true.
func (b Bool4) Or(o Bool4) Bool4 { return maskOf(active().or(b.Mask(), o.Mask())) }

// Xor returns true in every lane where exactly one of b and o is true.
func (b Bool4) Xor(o Bool4) Bool4 { return maskOf(active().xor(b.Mask(), o.Mask())) }

// Eq returns true in every lane where b and o agree.
func (b Bool4) Eq(o Bool4) Bool4 { return maskOf(active().eq(b.Mask(), o.Mask())) }

// Ne returns true in every lane where b and o differ.
func (b Bool4) Ne(o Bool4) Bool4 { return maskOf(active().ne(b.Mask(), o.Mask())) }

// Int4 returns 1 for true lanes and 0 for false lanes. Use Mask for the
// raw -1/0 view.
func (b Bool4) Int4() Int4 { return active().lowBit(b.Mask()) }
