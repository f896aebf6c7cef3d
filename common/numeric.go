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

	"golang.org/x/exp/constraints"
)

// putFixed8 encodes v as 8 little-endian bytes. It is generic over any
// integer kind so a future fixed-width integer Value can reuse it instead
// of hand-rolling another encode/decode pair.
func putFixed8[T constraints.Integer](v T) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

// getFixed8 is the inverse of putFixed8.
func getFixed8[T constraints.Integer](b []byte) T {
	return T(binary.LittleEndian.Uint64(b))
}
