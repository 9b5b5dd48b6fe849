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

// TextScanner lifts a ByteSource through a Codec into a stream of Unicode
// scalars classified into XML lexical categories.
type TextScanner struct {
	src   ByteSource
	codec Codec

	cur   rune
	class LexClass
	err   error
}

// NewTextScanner constructs a TextScanner over src using codec, and decodes
// the first scalar immediately so Chr/Control are valid before any Advance.
func NewTextScanner(src ByteSource, codec Codec) *TextScanner {
	ts := &TextScanner{src: src, codec: codec}
	ts.fill()
	return ts
}

// Chr returns the Unicode scalar at the current position without consuming
// it. It returns 0 only once the byte source is exhausted.
func (ts *TextScanner) Chr() rune { return ts.cur }

// Control returns the lexical classification of the current character.
func (ts *TextScanner) Control() LexClass { return ts.class }

// Advance consumes the current character and decodes the next one.
func (ts *TextScanner) Advance() { ts.fill() }

// Err returns the decode error, if any, encountered while filling the
// current character (MalformedCharacter). It is cleared on the next
// successful fill.
func (ts *TextScanner) Err() error { return ts.err }

// Encoding returns the codec currently in effect.
func (ts *TextScanner) Encoding() Codec { return ts.codec }

func (ts *TextScanner) fill() {
	ts.err = nil
	switch ts.codec.kind {
	case codecUTF8:
		ts.fillUTF8()
	case codecUTF16LE:
		ts.fillUTF16(true)
	case codecUTF16BE:
		ts.fillUTF16(false)
	case codecUCS2LE:
		ts.fillUCS2(true)
	case codecUCS2BE:
		ts.fillUCS2(false)
	case codecUCS4LE:
		ts.fillUCS4(true)
	case codecUCS4BE:
		ts.fillUCS4(false)
	case codecISOLatin:
		ts.fillISOLatin()
	default:
		ts.fillUTF8()
	}
	ts.class = classify(ts.cur)
}

// fillUTF8 decodes one UTF-8 scalar. Partial sequences truncated by
// end-of-source yield end-of-text (0), never a malformed scalar.
func (ts *TextScanner) fillUTF8() {
	b0 := ts.src.PeekByte()
	if b0 == 0 {
		ts.cur = 0
		return
	}
	ts.src.AdvanceByte()
	if b0 < 0x80 {
		ts.cur = rune(b0)
		return
	}

	var n int
	var r rune
	switch {
	case b0&0xE0 == 0xC0:
		n, r = 1, rune(b0&0x1F)
	case b0&0xF0 == 0xE0:
		n, r = 2, rune(b0&0x0F)
	case b0&0xF8 == 0xF0:
		n, r = 3, rune(b0&0x07)
	default:
		ts.err = MalformedCharacter
		ts.cur = 0xFFFD
		return
	}
	for i := 0; i < n; i++ {
		b := ts.src.PeekByte()
		if b == 0 || b&0xC0 != 0x80 {
			// Truncated at end of source: yield end-of-text, not malformed.
			if b == 0 {
				ts.cur = 0
				return
			}
			ts.err = MalformedCharacter
			ts.cur = 0xFFFD
			return
		}
		ts.src.AdvanceByte()
		r = r<<6 | rune(b&0x3F)
	}
	ts.cur = r
}

func (ts *TextScanner) readWord16(littleEndian bool) (uint16, bool) {
	b0 := ts.src.PeekByte()
	if b0 == 0 {
		return 0, false
	}
	ts.src.AdvanceByte()
	b1 := ts.src.PeekByte()
	if b1 == 0 {
		// Truncated trailing byte: treat as end-of-text, not malformed.
		return 0, false
	}
	ts.src.AdvanceByte()
	if littleEndian {
		return uint16(b0) | uint16(b1)<<8, true
	}
	return uint16(b0)<<8 | uint16(b1), true
}

// fillUTF16 decodes one UTF-16 code point, combining surrogate pairs.
func (ts *TextScanner) fillUTF16(littleEndian bool) {
	w0, ok := ts.readWord16(littleEndian)
	if !ok {
		ts.cur = 0
		return
	}
	if w0 < 0xD800 || w0 > 0xDFFF {
		ts.cur = rune(w0)
		return
	}
	if w0 > 0xDBFF {
		ts.err = MalformedCharacter
		ts.cur = 0xFFFD
		return
	}
	w1, ok := ts.readWord16(littleEndian)
	if !ok || w1 < 0xDC00 || w1 > 0xDFFF {
		ts.err = MalformedCharacter
		ts.cur = 0xFFFD
		return
	}
	ts.cur = 0x10000 + (rune(w0-0xD800)<<10 | rune(w1-0xDC00))
}

// fillUCS2 decodes a plain 2-byte code unit with no surrogate handling.
func (ts *TextScanner) fillUCS2(littleEndian bool) {
	w, ok := ts.readWord16(littleEndian)
	if !ok {
		ts.cur = 0
		return
	}
	ts.cur = rune(w)
}

// fillUCS4 decodes a plain 4-byte code unit.
func (ts *TextScanner) fillUCS4(littleEndian bool) {
	var bs [4]byte
	for i := 0; i < 4; i++ {
		b := ts.src.PeekByte()
		if b == 0 {
			ts.cur = 0
			return
		}
		ts.src.AdvanceByte()
		bs[i] = b
	}
	var v uint32
	if littleEndian {
		v = uint32(bs[0]) | uint32(bs[1])<<8 | uint32(bs[2])<<16 | uint32(bs[3])<<24
	} else {
		v = uint32(bs[0])<<24 | uint32(bs[1])<<16 | uint32(bs[2])<<8 | uint32(bs[3])
	}
	if v > 0x10FFFF {
		ts.err = MalformedCharacter
		ts.cur = 0xFFFD
		return
	}
	ts.cur = rune(v)
}

// fillISOLatin decodes one byte through the codepage's forward table.
func (ts *TextScanner) fillISOLatin() {
	b := ts.src.PeekByte()
	if b == 0 {
		ts.cur = 0
		return
	}
	ts.src.AdvanceByte()
	ts.cur = ts.codec.table[b]
}
