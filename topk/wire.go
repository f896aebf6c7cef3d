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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/go-topk/spacesaving/common"
	"github.com/go-topk/spacesaving/internal"
)

const preambleSize = 24

const (
	flagPruned   = 1 << 0
	flagTypified = 1 << 1
)

// Serialize encodes the sketch into the wire form: a fixed 24-byte
// preamble (family ID, ser ver, flags, type tag, capacity, num_elements,
// and an xxhash64 checksum of everything that follows), then the bucket
// chain in ascending-count order, each bucket as elements_in_bucket and
// bucket_count followed by every element's epsilon and encoded value.
func (s *Sketch) Serialize() []byte {
	body := s.serializeBody()

	buf := make([]byte, preambleSize+len(body))
	buf[0] = byte(internal.TopKFamilyID)
	buf[1] = byte(internal.SerVer)

	var flags byte
	if s.pruned {
		flags |= flagPruned
	}
	if s.typ != nil {
		flags |= flagTypified
	}
	buf[2] = flags

	var tag common.TypeTag
	if s.typ != nil {
		tag, _ = common.TagOf(s.typ) // s.typ is always one of the registered kinds once typified
	}
	buf[3] = byte(tag)

	binary.LittleEndian.PutUint64(buf[4:12], s.capacity)
	binary.LittleEndian.PutUint64(buf[12:20], s.numElements)

	copy(buf[preambleSize:], body)

	checksum := xxhash.Sum64(body)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(checksum))

	return buf
}

func (s *Sketch) serializeBody() []byte {
	var body []byte
	for b := s.chain.head; b != nil; b = b.next {
		body = binary.AppendUvarint(body, uint64(b.len()))
		body = binary.AppendUvarint(body, b.count)
		b.forEach(func(e *element) {
			body = binary.AppendUvarint(body, e.epsilon)
			vb := e.value.Bytes()
			body = binary.AppendUvarint(body, uint64(len(vb)))
			body = append(body, vb...)
		})
	}
	return body
}

// NewFromWire decodes a sketch previously produced by Serialize. It
// returns ErrMalformedPayload if the buffer is truncated, fails its
// checksum, names an unknown family/version/type tag, its element count
// disagrees with the preamble, or it carries trailing bytes after the
// last bucket record. In every failure case the partially-built sketch is
// discarded.
func NewFromWire(buf []byte) (*Sketch, error) {
	if len(buf) < preambleSize {
		return nil, ErrMalformedPayload
	}
	if buf[0] != byte(internal.TopKFamilyID) || buf[1] != byte(internal.SerVer) {
		return nil, ErrMalformedPayload
	}

	flags := buf[2]
	tag := common.TypeTag(buf[3])
	capacity := binary.LittleEndian.Uint64(buf[4:12])
	numElements := binary.LittleEndian.Uint64(buf[12:20])
	wantChecksum := binary.LittleEndian.Uint32(buf[20:24])

	body := buf[preambleSize:]
	if uint32(xxhash.Sum64(body)) != wantChecksum {
		return nil, ErrMalformedPayload
	}

	s := newUntypedWithCapacity(capacity)
	s.pruned = flags&flagPruned != 0

	typified := flags&flagTypified != 0
	if typified != (tag != common.TagNone) {
		return nil, ErrMalformedPayload
	}

	if typified {
		t, _, err := common.DecoderFor(tag)
		if err != nil {
			return nil, ErrMalformedPayload
		}
		s.typify(t)
	}

	if err := s.decodeBody(body, tag, numElements); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sketch) decodeBody(body []byte, tag common.TypeTag, wantElements uint64) error {
	var decoder common.Decoder
	if tag != common.TagNone {
		_, d, err := common.DecoderFor(tag)
		if err != nil {
			return ErrMalformedPayload
		}
		decoder = d
	}
	if decoder == nil && len(body) > 0 {
		return ErrMalformedPayload
	}

	rest := body
	for len(rest) > 0 {
		elemsInBucket, n := binary.Uvarint(rest)
		if n <= 0 {
			return ErrMalformedPayload
		}
		rest = rest[n:]

		if elemsInBucket == 0 {
			return ErrMalformedPayload
		}

		bucketCount, n := binary.Uvarint(rest)
		if n <= 0 {
			return ErrMalformedPayload
		}
		rest = rest[n:]

		b := newBucket(bucketCount)
		s.chain.pushBack(b)

		for i := uint64(0); i < elemsInBucket; i++ {
			epsilon, n := binary.Uvarint(rest)
			if n <= 0 {
				return ErrMalformedPayload
			}
			rest = rest[n:]

			vlen, n := binary.Uvarint(rest)
			if n <= 0 || uint64(len(rest)-n) < vlen {
				return ErrMalformedPayload
			}
			rest = rest[n:]
			vb := rest[:vlen]
			rest = rest[vlen:]

			v, err := decoder.Decode(vb)
			if err != nil {
				return ErrMalformedPayload
			}

			e := &element{value: v, epsilon: epsilon}
			b.pushBack(e)
			s.table.insert(s.hash.MakeKey(v), e)
			s.numElements++
		}
	}

	if s.numElements != wantElements {
		return ErrMalformedPayload
	}
	return nil
}
