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

// element is a single retained observation. parent is a borrowed handle
// back to the bucket that currently owns it, not a second owning
// reference: ownership flows from bucket to element only, through the
// bucket's elements list.
type element struct {
	value   common.Value
	epsilon uint64
	parent  *bucket

	// prev/next link this element into its parent bucket's elements list,
	// in insertion order. The head of the head bucket's list is always the
	// oldest element at the minimum count, i.e. the next eviction victim.
	prev, next *element
}
