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

// GetTopK returns the k highest-count retained values, walking the chain
// from its tail (highest count) down. It stops once k values have been
// emitted or the head bucket has been fully processed, whichever comes
// first — if the boundary bucket holds more than one element, every
// element of that bucket is emitted, so the result may hold more than k
// entries. Callers wanting exactly k must truncate themselves.
//
// Returns ErrEmptySketch if the sketch currently retains nothing.
func (s *Sketch) GetTopK(k int) ([]Entry, error) {
	if s.numElements == 0 {
		return nil, ErrEmptySketch
	}
	if k <= 0 {
		return nil, nil
	}

	entries := make([]Entry, 0, k)
	for b := s.chain.tail; b != nil; b = b.prev {
		b.forEach(func(e *element) {
			entries = append(entries, Entry{value: e.value, count: b.count, epsilon: e.epsilon})
		})
		if len(entries) >= k || b == s.chain.head {
			break
		}
	}

	return entries, nil
}

// GetCount returns the estimated occurrence count of v, or
// ErrElementNotFound if v is not currently retained.
func (s *Sketch) GetCount(v common.Value) (uint64, error) {
	e, err := s.lookupRetained(v)
	if err != nil {
		return 0, err
	}
	return e.parent.count, nil
}

// GetEpsilon returns the error bound of v's estimate, or
// ErrElementNotFound if v is not currently retained.
func (s *Sketch) GetEpsilon(v common.Value) (uint64, error) {
	e, err := s.lookupRetained(v)
	if err != nil {
		return 0, err
	}
	return e.epsilon, nil
}

func (s *Sketch) lookupRetained(v common.Value) (*element, error) {
	if s.typ == nil {
		return nil, ErrElementNotFound
	}
	if err := s.checkType(v.Type()); err != nil {
		return nil, err
	}
	e := s.table.lookup(s.hash.MakeKey(v))
	if e == nil {
		return nil, ErrElementNotFound
	}
	return e, nil
}

// GetSum returns the sum, over every retained bucket, of the bucket's
// count times its number of elements. If the sketch has ever evicted or
// merge-pruned an element, warn (if non-nil) is called once reporting
// that the sum underestimates the true stream cardinality.
func (s *Sketch) GetSum(warn func(Warning)) uint64 {
	var sum uint64
	for b := s.chain.head; b != nil; b = b.next {
		sum += b.count * uint64(b.len())
	}
	if s.pruned && warn != nil {
		warn(Warning{Message: "sum underestimates true stream cardinality: sketch has pruned elements"})
	}
	return sum
}
