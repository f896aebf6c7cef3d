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

import "fmt"

type int64Type struct{}

func (int64Type) Equal(o TypeDescriptor) bool { _, ok := o.(int64Type); return ok }
func (int64Type) String() string              { return "int64" }

// TypeInt64 is the type descriptor shared by every Int64Value.
var TypeInt64 TypeDescriptor = int64Type{}

// Int64Value wraps an int64 as a sketch-observable Value.
type Int64Value int64

func (Int64Value) Type() TypeDescriptor { return TypeInt64 }

func (v Int64Value) Bytes() []byte { return putFixed8(int64(v)) }

type int64Decoder struct{}

func (int64Decoder) Decode(b []byte) (Value, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("common: int64 value must be 8 bytes, got %d", len(b))
	}
	return Int64Value(getFixed8[int64](b)), nil
}

// Int64Decoder is the Decoder registered for TypeInt64.
var Int64Decoder Decoder = int64Decoder{}
