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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		dec  Decoder
	}{
		{"string", StringValue("hello"), StringDecoder},
		{"empty string", StringValue(""), StringDecoder},
		{"int64", Int64Value(-42), Int64Decoder},
		{"float64", Float64Value(3.5), Float64Decoder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.dec.Decode(tc.v.Bytes())
			assert.NoError(t, err)
			assert.Equal(t, tc.v, got)
			assert.True(t, tc.v.Type().Equal(got.Type()))
		})
	}
}

func TestTypeDescriptorEquality(t *testing.T) {
	assert.True(t, TypeString.Equal(TypeString))
	assert.False(t, TypeString.Equal(TypeInt64))
	assert.False(t, TypeInt64.Equal(TypeFloat64))
}

func TestCompositeHashStable(t *testing.T) {
	h := NewCompositeHash(TypeString, 9001)
	a := h.MakeKey(StringValue("a"))
	a2 := h.MakeKey(StringValue("a"))
	b := h.MakeKey(StringValue("b"))
	assert.Equal(t, a, a2)
	assert.NotEqual(t, a, b)
}

func TestCompositeHashSeedsDivergeByType(t *testing.T) {
	hs := NewCompositeHash(TypeString, 9001)
	hi := NewCompositeHash(TypeInt64, 9001)
	assert.NotEqual(t, hs.seed, hi.seed)
}

func TestTagRoundTrip(t *testing.T) {
	for _, typ := range []TypeDescriptor{TypeString, TypeInt64, TypeFloat64} {
		tag, err := TagOf(typ)
		assert.NoError(t, err)
		got, _, err := DecoderFor(tag)
		assert.NoError(t, err)
		assert.True(t, typ.Equal(got))
	}
}
