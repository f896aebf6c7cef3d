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
	"encoding/binary"
	"fmt"
	"math"
)

type float64Type struct{}

func (float64Type) Equal(o TypeDescriptor) bool { _, ok := o.(float64Type); return ok }
func (float64Type) String() string              { return "float64" }

// TypeFloat64 is the type descriptor shared by every Float64Value.
var TypeFloat64 TypeDescriptor = float64Type{}

// Float64Value wraps a float64 as a sketch-observable Value.
type Float64Value float64

func (Float64Value) Type() TypeDescriptor { return TypeFloat64 }

func (v Float64Value) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v)))
	return b
}

type float64Decoder struct{}

func (float64Decoder) Decode(b []byte) (Value, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("common: float64 value must be 8 bytes, got %d", len(b))
	}
	return Float64Value(math.Float64frombits(binary.LittleEndian.Uint64(b))), nil
}

// Float64Decoder is the Decoder registered for TypeFloat64.
var Float64Decoder Decoder = float64Decoder{}
