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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bucketSnapshot captures the multiset of (count, value, epsilon) a
// serialize/deserialize round trip must preserve.
type bucketSnapshot struct {
	count   uint64
	value   string
	epsilon uint64
}

func snapshot(t *testing.T, s *Sketch) []bucketSnapshot {
	t.Helper()
	var out []bucketSnapshot
	for b := s.chain.head; b != nil; b = b.next {
		b.forEach(func(e *element) {
			out = append(out, bucketSnapshot{
				count:   b.count,
				value:   string(e.value.Bytes()),
				epsilon: e.epsilon,
			})
		})
	}
	return out
}

func TestWireRoundTripEmptySketch(t *testing.T) {
	s := New(3)

	decoded, err := NewFromWire(s.Serialize())
	require.NoError(t, err)

	assert.Equal(t, s.Capacity(), decoded.Capacity())
	assert.Equal(t, s.NumElements(), decoded.NumElements())
	assert.Equal(t, s.IsPruned(), decoded.IsPruned())
	assert.Nil(t, decoded.Type())
}

// Serializing then deserializing a sketch that has already evicted
// elements yields an identical chain, counts, and epsilons, with pruned
// preserved as true.
func TestWireRoundTripScenarioThree(t *testing.T) {
	s := New(3)
	encounterAll(t, s, "A", "A", "A", "B", "C", "D")
	require.True(t, s.IsPruned())

	decoded, err := NewFromWire(s.Serialize())
	require.NoError(t, err)

	assert.Equal(t, s.Capacity(), decoded.Capacity())
	assert.Equal(t, s.NumElements(), decoded.NumElements())
	assert.True(t, decoded.IsPruned())
	assert.ElementsMatch(t, snapshot(t, s), snapshot(t, decoded))
}

func TestWireRoundTripPreservesBucketOrderAndElementOrder(t *testing.T) {
	s := New(5)
	encounterAll(t, s, "A", "B", "C", "A", "B", "A")

	decoded, err := NewFromWire(s.Serialize())
	require.NoError(t, err)

	assert.Equal(t, snapshot(t, s), snapshot(t, decoded))
}

func TestWireRejectsTruncatedBuffer(t *testing.T) {
	s := New(3)
	encounterAll(t, s, "A", "B")
	buf := s.Serialize()

	_, err := NewFromWire(buf[:len(buf)-1])
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestWireRejectsBadChecksum(t *testing.T) {
	s := New(3)
	encounterAll(t, s, "A", "B")
	buf := s.Serialize()
	buf[len(buf)-1] ^= 0xFF

	_, err := NewFromWire(buf)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestWireRejectsUnknownFamily(t *testing.T) {
	s := New(3)
	encounterAll(t, s, "A")
	buf := s.Serialize()
	buf[0] = 0xFF

	_, err := NewFromWire(buf)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestWireRejectsTrailingBytes(t *testing.T) {
	s := New(3)
	encounterAll(t, s, "A", "B")
	buf := append(s.Serialize(), 0x00)

	_, err := NewFromWire(buf)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}
