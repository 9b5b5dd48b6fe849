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

package xmlscan

import (
	"bufio"
	"io"
)

// ByteSource is a stateful cursor over an opaque byte sequence. PeekByte
// returns 0 on exhaustion; AdvanceByte consumes the current byte.
//
// Byte-source adapters (file, memory, stream, chunked) are external
// collaborators; this package ships only the two below for usability.
type ByteSource interface {
	PeekByte() byte
	AdvanceByte()
}

// ReaderSource adapts an io.Reader to ByteSource by buffering through
// bufio.Reader. It signals exhaustion (PeekByte returning 0) once the reader
// returns an error, io.EOF or any other.
type ReaderSource struct {
	r    *bufio.Reader
	cur  byte
	done bool
}

// NewReaderSource wraps r as a ByteSource.
func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{r: bufio.NewReader(r)}
	s.fill()
	return s
}

func (s *ReaderSource) fill() {
	b, err := s.r.ReadByte()
	if err != nil {
		s.done = true
		s.cur = 0
		return
	}
	s.cur = b
}

// PeekByte returns the current byte, or 0 if the reader is exhausted.
func (s *ReaderSource) PeekByte() byte {
	if s.done {
		return 0
	}
	return s.cur
}

// AdvanceByte consumes the current byte and buffers the next one.
func (s *ReaderSource) AdvanceByte() {
	if s.done {
		return
	}
	s.fill()
}

// ChunkSource is a ByteSource for chunked input: a caller Feeds successive
// []byte chunks, and when the buffered chunk is exhausted mid-document,
// ChunkSource consults a caller-supplied resumption hook before declaring
// true end-of-data, rather than terminating early.
type ChunkSource struct {
	buf         []byte
	pos         int
	waitForMore func() bool
}

// NewChunkSource creates an empty ChunkSource. waitForMore, if non-nil, is
// invoked when the current chunk is exhausted; it should block until more
// data is available (returning true) or report that no more is coming
// (returning false).
func NewChunkSource(waitForMore func() bool) *ChunkSource {
	return &ChunkSource{waitForMore: waitForMore}
}

// Feed appends a new chunk of bytes to the source. If the previous chunk
// has been fully consumed, the source adopts chunk without copying it;
// otherwise chunk is appended after the bytes still pending.
func (s *ChunkSource) Feed(chunk []byte) {
	if s.pos == len(s.buf) {
		s.buf = chunk
		s.pos = 0
		return
	}
	s.buf = append(s.buf[s.pos:], chunk...)
	s.pos = 0
}

// PeekByte returns the current byte. If the buffered chunk is exhausted it
// consults waitForMore (if set) before returning 0 for true end-of-data.
func (s *ChunkSource) PeekByte() byte {
	for s.pos >= len(s.buf) {
		if s.waitForMore == nil || !s.waitForMore() {
			return 0
		}
	}
	return s.buf[s.pos]
}

// AdvanceByte consumes the current byte.
func (s *ChunkSource) AdvanceByte() {
	if s.pos < len(s.buf) {
		s.pos++
	}
}
