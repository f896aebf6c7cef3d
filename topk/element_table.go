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

// elementTable maps a value's composite hash key to its retained element,
// giving O(1) membership and lookup. It does not own the values inside
// its elements (those are shared, reference-counted by the host value
// system); it owns only the map storage itself.
type elementTable struct {
	byKey map[common.HashKey]*element
}

func newElementTable() *elementTable {
	return &elementTable{byKey: make(map[common.HashKey]*element)}
}

func (t *elementTable) lookup(key common.HashKey) *element {
	return t.byKey[key]
}

// insert adds e under key. The caller must ensure key is not already
// present; Encounter and Merge only call insert for a key they have just
// looked up and found absent.
func (t *elementTable) insert(key common.HashKey, e *element) {
	t.byKey[key] = e
}

func (t *elementTable) remove(key common.HashKey) *element {
	e := t.byKey[key]
	delete(t.byKey, key)
	return e
}

func (t *elementTable) size() int {
	return len(t.byKey)
}
