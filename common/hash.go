/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import "github.com/twmb/murmur3"

// HashKey is the result of hashing a Value through a CompositeHash. It is
// comparable, so it can be used directly as a Go map key by an element
// table.
type HashKey struct {
	Hi uint64
	Lo uint64
}

// CompositeHash derives a stable HashKey from a Value. It is constructed
// once a sketch has been typified and is seeded from the element type, the
// same way a CompositeHash in the host language is built from a one-column
// type list derived from the sketch's element type.
type CompositeHash struct {
	seed uint64
}

// NewCompositeHash constructs a collaborator seeded for the given element
// type. The type itself does not change the hash function, only the seed
// mixed into it, so that two sketches typified with different element
// kinds never collide even if their encoded bytes happen to match.
func NewCompositeHash(t TypeDescriptor, seed uint64) *CompositeHash {
	mixed := seed
	for _, b := range []byte(t.String()) {
		mixed = mixed*1099511628211 ^ uint64(b)
	}
	return &CompositeHash{seed: mixed}
}

// MakeKey computes the hash key for v. Equal values produce equal keys
// across calls within the same binary.
func (c *CompositeHash) MakeKey(v Value) HashKey {
	hi, lo := murmur3.SeedSum128(c.seed, c.seed, v.Bytes())
	return HashKey{Hi: hi, Lo: lo}
}
