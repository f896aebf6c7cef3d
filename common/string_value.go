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

// stringType is the TypeDescriptor singleton for StringValue.
type stringType struct{}

func (stringType) Equal(o TypeDescriptor) bool { _, ok := o.(stringType); return ok }
func (stringType) String() string              { return "string" }

// TypeString is the type descriptor shared by every StringValue.
var TypeString TypeDescriptor = stringType{}

// StringValue wraps a string as a sketch-observable Value.
type StringValue string

func (StringValue) Type() TypeDescriptor { return TypeString }

func (s StringValue) Bytes() []byte { return []byte(s) }

// stringDecoder reconstructs a StringValue from its canonical bytes. The
// bytes of a string are already its canonical encoding, so decoding is a
// plain cast.
type stringDecoder struct{}

func (stringDecoder) Decode(b []byte) (Value, error) {
	return StringValue(b), nil
}

// StringDecoder is the Decoder registered for TypeString.
var StringDecoder Decoder = stringDecoder{}
