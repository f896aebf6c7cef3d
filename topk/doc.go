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

// Package topk implements a bounded-memory Top-K frequent-elements sketch
// using the Metwally-Agrawal-Abbadi ("Space-Saving") algorithm. A sketch
// observes a stream of typed values, retains at most a fixed number of
// distinct values, and for each retained value maintains a conservative
// estimate of its true occurrence count together with an error bound on
// that estimate.
//
// The sketch is not safe for concurrent use; callers that mutate and query
// a sketch from more than one goroutine must serialize access themselves.
package topk
