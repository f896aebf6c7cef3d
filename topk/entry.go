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

// Entry is one value emitted by GetTopK, paired with its estimated count
// and error bound at the moment of emission.
type Entry struct {
	value   common.Value
	count   uint64
	epsilon uint64
}

// Value returns the retained value this entry describes.
func (e Entry) Value() common.Value { return e.value }

// Count returns the value's estimated occurrence count.
func (e Entry) Count() uint64 { return e.count }

// Epsilon returns the value's error bound: the true count is in
// [Count()-Epsilon(), Count()].
func (e Entry) Epsilon() uint64 { return e.epsilon }
