// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmlscan is a streaming XML tokenizer and path-selection engine.
//
// It never buffers more than the current token: a caller drives an
// XMLScanner through a byte source and a pluggable character-set codec,
// receiving a lazy sequence of typed events (element open, attribute name,
// attribute value, content, element close, ...). On top of that stream a
// PathSelect runtime advances a pre-compiled automaton of XPath-subset
// expressions and emits caller-assigned integer tags whenever a configured
// path matches, without materializing the document.
//
// This package uses buffers and reusable object instances during scanning to
// reduce allocations and the copy-by-value behavior of Go structs. Event
// content is a borrow into a rolling buffer valid only until the next
// advance; callers that need to retain it must copy.
//
// This is not a validating parser: it targets low-memory, high-throughput
// extraction where the set of queries is known ahead of time.
package xmlscan
