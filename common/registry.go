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

// TypeTag is the single byte a sketch's wire preamble uses to name the
// kind of value it was typified with. 0 is reserved for "never typified".
type TypeTag byte

const (
	TagNone    TypeTag = 0
	TagString  TypeTag = 1
	TagInt64   TypeTag = 2
	TagFloat64 TypeTag = 3
)

// TagOf returns the wire tag for a type descriptor produced by this
// package's built-in value kinds.
func TagOf(t TypeDescriptor) (TypeTag, error) {
	switch t.(type) {
	case stringType:
		return TagString, nil
	case int64Type:
		return TagInt64, nil
	case float64Type:
		return TagFloat64, nil
	default:
		return TagNone, fmt.Errorf("common: no wire tag registered for type %q", t.String())
	}
}

// DecoderFor returns the descriptor and byte decoder for a wire tag.
func DecoderFor(tag TypeTag) (TypeDescriptor, Decoder, error) {
	switch tag {
	case TagString:
		return TypeString, StringDecoder, nil
	case TagInt64:
		return TypeInt64, Int64Decoder, nil
	case TagFloat64:
		return TypeFloat64, Float64Decoder, nil
	default:
		return nil, nil, fmt.Errorf("common: unknown wire type tag %d", tag)
	}
}
