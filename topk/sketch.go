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

package topk

import (
	"github.com/go-topk/spacesaving/common"
	"github.com/go-topk/spacesaving/internal"
)

// Sketch is a bounded-memory Top-K frequent-elements estimator. New is the
// usual entry point; NewFromWire rebuilds a sketch with the serialized
// capacity through an internal constructor.
type Sketch struct {
	capacity    uint64
	numElements uint64
	typ         common.TypeDescriptor
	pruned      bool

	table *elementTable
	chain *chain
	hash  *common.CompositeHash
}

// New constructs an empty sketch that will retain at most capacity
// distinct values. A capacity of 0 is representable but Encounter against
// it always fails with ErrZeroCapacity, since it can never have room for
// even a single element.
func New(capacity uint64) *Sketch {
	return &Sketch{
		capacity: capacity,
		table:    newElementTable(),
		chain:    newChain(),
	}
}

// newUntypedWithCapacity is the constructor used internally by
// deserialization, which assigns capacity before typifying (or leaves the
// sketch untyped if it was serialized empty).
func newUntypedWithCapacity(capacity uint64) *Sketch {
	return New(capacity)
}

// Capacity returns the maximum number of distinct values this sketch will
// retain.
func (s *Sketch) Capacity() uint64 { return s.capacity }

// NumElements returns the number of values currently retained.
func (s *Sketch) NumElements() uint64 { return s.numElements }

// IsPruned reports whether this sketch has ever evicted or merge-pruned
// an element. Once true, it never becomes false again.
func (s *Sketch) IsPruned() bool { return s.pruned }

// Type returns the element type this sketch has been typified with, or
// nil if it has not observed anything yet.
func (s *Sketch) Type() common.TypeDescriptor { return s.typ }

// typify adopts t as this sketch's element type and initializes the
// composite-hash collaborator. It is only valid to call this once, when
// numElements == 0 and typ == nil (see Encounter and Merge).
func (s *Sketch) typify(t common.TypeDescriptor) {
	s.typ = t
	s.hash = common.NewCompositeHash(t, internal.DefaultHashSeed)
}

// checkType reports ErrTypeMismatch if the sketch is already typified
// with something other than t.
func (s *Sketch) checkType(t common.TypeDescriptor) error {
	if s.typ != nil && !s.typ.Equal(t) {
		return ErrTypeMismatch
	}
	return nil
}

// Clone returns an independent copy of the sketch: mutating one does not
// affect the other. It is implemented as a fresh sketch merged from the
// receiver rather than a field-by-field deep copy, reusing Merge's chain
// traversal; since Merge starts new elements at epsilon 0 and leaves
// pruned alone, Clone then copies the pruned flag and every element's
// epsilon from the receiver.
func (s *Sketch) Clone() *Sketch {
	clone := New(s.capacity)
	clone.Merge(s, false)
	clone.pruned = s.pruned
	for b := s.chain.head; b != nil; b = b.next {
		b.forEach(func(e *element) {
			clone.table.lookup(clone.hash.MakeKey(e.value)).epsilon = e.epsilon
		})
	}
	return clone
}
