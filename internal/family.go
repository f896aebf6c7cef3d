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

package internal

// TopKFamilyID identifies the Space-Saving Top-K wire format in the
// preamble's family byte. A deserializer that sees any other value knows
// the bytes were never produced by this sketch and rejects them outright.
const TopKFamilyID = 20

// SerVer is the current wire format version, carried in the preamble so a
// future incompatible format change can be rejected instead of
// misinterpreted.
const SerVer = 1
