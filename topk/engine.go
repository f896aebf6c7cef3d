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

import "github.com/go-topk/spacesaving/common"

// Encounter records one observation of v. Depending on the sketch's
// current state this either increments an existing element's count,
// inserts a fresh element at count 1, or replaces the current minimum
// (evicting its oldest element) and increments the replacement.
//
// If the sketch's capacity is zero, Encounter is a no-op that returns
// ErrZeroCapacity without typifying or mutating anything. If the sketch
// has already observed a different element type, it returns
// ErrTypeMismatch and likewise leaves the sketch completely unchanged.
func (s *Sketch) Encounter(v common.Value) error {
	if s.capacity == 0 {
		return ErrZeroCapacity
	}

	if s.typ == nil {
		s.typify(v.Type())
	} else if err := s.checkType(v.Type()); err != nil {
		return err
	}

	key := s.hash.MakeKey(v)
	if e := s.table.lookup(key); e != nil {
		s.incrementCounter(e, 1)
		return nil
	}

	if s.numElements < s.capacity {
		s.insertAtCountOne(v, key)
		return nil
	}

	e := s.replaceMinimum(v, key)
	s.incrementCounter(e, 1)
	return nil
}

// insertAtCountOne handles the capacity-available branch of Encounter: a
// never-before-seen value gets a fresh element at count 1, error bound 0.
func (s *Sketch) insertAtCountOne(v common.Value, key common.HashKey) {
	e := &element{value: v, epsilon: 0}

	head := s.chain.head
	var b *bucket
	if head == nil || head.count > 1 {
		b = newBucket(1)
		s.chain.insertBefore(head, b)
	} else {
		b = head
	}

	b.pushBack(e)
	s.table.insert(key, e)
	s.numElements++
}

// replaceMinimum evicts the oldest element of the minimum-count bucket
// and installs v in its place, inheriting the displaced slot's count as
// its error bound. This is the Space-Saving algorithm's correctness
// pivot: the new element's epsilon is set to the bucket's count *before*
// the caller increments it, never recomputed after the fact.
//
// It returns the new element; the caller must still call
// incrementCounter(e, 1) to record this encounter as an observation over
// the inherited baseline.
func (s *Sketch) replaceMinimum(v common.Value, key common.HashKey) *element {
	b := s.chain.head

	victim := b.popFront()
	s.table.remove(s.hash.MakeKey(victim.value))
	s.pruned = true

	e := &element{value: v, epsilon: b.count}
	b.pushBack(e)
	s.table.insert(key, e)

	return e
}

// incrementCounter moves e forward to the bucket whose count equals
// e.parent.count + delta, creating that bucket if no element currently
// sits at that count. The search starts just past e's current bucket, so
// the common delta == 1 case touches at most one extra bucket.
func (s *Sketch) incrementCounter(e *element, delta uint64) {
	cur := e.parent
	target := cur.count + delta

	dest := s.chain.ensureBucketFrom(cur.next, target)

	cur.remove(e)
	dest.pushBack(e)

	if cur.empty() {
		s.chain.erase(cur)
	}
}
