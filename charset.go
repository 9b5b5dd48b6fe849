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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// codecKind tags the small fixed set of character sets this package
// supports. Using a tagged union of concrete kinds, dispatched with a
// switch in textscanner.go, avoids a virtual call per decoded character.
type codecKind uint8

const (
	codecUTF8 codecKind = iota
	codecUTF16LE
	codecUTF16BE
	codecUCS2LE
	codecUCS2BE
	codecUCS4LE
	codecUCS4BE
	codecISOLatin
)

// Codec decodes and encodes one Unicode scalar at a time. Decoding
// (textscanner.go) pulls a character's bytes straight from the byte source;
// no codec here uses more than 4 bytes per character.
type Codec struct {
	kind codecKind
	// table, for codecISOLatin, maps byte value to Unicode scalar for the
	// selected ISO-8859 codepage.
	table *[256]rune
	// reverse, for codecISOLatin, is the inverse of table, used by Print.
	reverse map[rune]byte
	// name is the canonical encoding identifier, used by the printer's XML
	// prolog.
	name string
}

// Name returns the canonical encoding identifier for the printer's prolog.
func (c Codec) Name() string { return c.name }

// ParseEncoding dispatches a caller-supplied encoding identifier to a Codec.
// Matching is case- and separator-insensitive after stripping spaces and
// hyphens: "UTF-8", "utf8", and "UTF 8" are equivalent. An unrecognized
// encoding fails construction.
func ParseEncoding(encoding string) (Codec, error) {
	if encoding == "" {
		return Codec{kind: codecUTF8, name: "UTF-8"}, nil
	}
	norm := normalizeEncodingName(encoding)
	switch norm {
	case "utf8":
		return Codec{kind: codecUTF8, name: "UTF-8"}, nil
	case "utf16", "utf16be":
		return Codec{kind: codecUTF16BE, name: "UTF-16"}, nil
	case "utf16le":
		return Codec{kind: codecUTF16LE, name: "UTF-16LE"}, nil
	case "ucs2", "ucs2be":
		return Codec{kind: codecUCS2BE, name: "UCS-2"}, nil
	case "ucs2le":
		return Codec{kind: codecUCS2LE, name: "UCS-2LE"}, nil
	case "ucs4", "ucs4be":
		return Codec{kind: codecUCS4BE, name: "UCS-4"}, nil
	case "ucs4le":
		return Codec{kind: codecUCS4LE, name: "UCS-4LE"}, nil
	}
	if page, ok := parseLatinPage(norm); ok {
		table, reverse, err := latinTable(page)
		if err != nil {
			return Codec{}, err
		}
		return Codec{kind: codecISOLatin, table: table, reverse: reverse, name: latinName(page)}, nil
	}
	return Codec{}, UnsupportedEncoding.withDetail(encoding)
}

// normalizeEncodingName strips spaces, hyphens, and underscores, and
// lowercases.
func normalizeEncodingName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// parseLatinPage recognizes "isolatin", "isolatinN", "iso8859", "iso8859N".
// Page defaults to 1 when no digits follow.
func parseLatinPage(norm string) (int, bool) {
	var rest string
	switch {
	case strings.HasPrefix(norm, "isolatin"):
		rest = norm[len("isolatin"):]
	case strings.HasPrefix(norm, "iso8859"):
		rest = norm[len("iso8859"):]
	default:
		return 0, false
	}
	if rest == "" {
		return 1, true
	}
	n := 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}

func latinName(page int) string {
	if page == 1 {
		return "ISO-8859-1"
	}
	return "ISO-8859-" + itoa(page)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// latinCharmaps wires golang.org/x/text/encoding/charmap's built-in ISO-8859
// tables instead of hand-transcribing the codepage mappings.
var latinCharmaps = map[int]*charmap.Charmap{
	1:  charmap.ISO8859_1,
	2:  charmap.ISO8859_2,
	3:  charmap.ISO8859_3,
	4:  charmap.ISO8859_4,
	5:  charmap.ISO8859_5,
	6:  charmap.ISO8859_6,
	7:  charmap.ISO8859_7,
	8:  charmap.ISO8859_8,
	9:  charmap.ISO8859_9,
	10: charmap.ISO8859_10,
	13: charmap.ISO8859_13,
	14: charmap.ISO8859_14,
	15: charmap.ISO8859_15,
	16: charmap.ISO8859_16,
}

type latinTables struct {
	forward *[256]rune
	reverse map[rune]byte
}

var latinTableCache = map[int]latinTables{}

// latinTable precomputes the byte<->scalar mapping for a codepage once, at
// ParseEncoding time, using charmap's decoder. The scanner's hot path is
// then a plain array index, never a per-byte transform.Transformer call.
func latinTable(page int) (*[256]rune, map[rune]byte, error) {
	if t, ok := latinTableCache[page]; ok {
		return t.forward, t.reverse, nil
	}
	cm, ok := latinCharmaps[page]
	if !ok {
		return nil, nil, UnsupportedEncoding.withDetail(latinName(page))
	}
	var table [256]rune
	reverse := make(map[rune]byte, 256)
	dec := cm.NewDecoder()
	for b := 0; b < 256; b++ {
		out, _, err := transform.Bytes(dec, []byte{byte(b)})
		if err != nil || len(out) == 0 {
			table[b] = rune(b)
		} else {
			r, _ := utf8.DecodeRune(out)
			table[b] = r
		}
		if _, exists := reverse[table[b]]; !exists {
			reverse[table[b]] = byte(b)
		}
	}
	latinTableCache[page] = latinTables{forward: &table, reverse: reverse}
	return &table, reverse, nil
}

// Print appends the canonical encoding of r to w. Scalars illegal for a
// fixed-width codec (e.g. U+10000 in UCS-2) fall back to printing '?'.
func (c Codec) Print(w *[]byte, r rune) {
	switch c.kind {
	case codecUTF16LE:
		printUTF16(w, r, true)
	case codecUTF16BE:
		printUTF16(w, r, false)
	case codecUCS2LE:
		printUCS2(w, r, true)
	case codecUCS2BE:
		printUCS2(w, r, false)
	case codecUCS4LE:
		printUCS4(w, r, true)
	case codecUCS4BE:
		printUCS4(w, r, false)
	case codecISOLatin:
		printISOLatin(w, r, c.reverse)
	default:
		*w = appendRuneBytes(*w, r)
	}
}

func printUTF16(w *[]byte, r rune, littleEndian bool) {
	if r > 0x10FFFF {
		r = '?'
	}
	if r >= 0x10000 {
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		appendWord16(w, uint16(hi), littleEndian)
		appendWord16(w, uint16(lo), littleEndian)
		return
	}
	appendWord16(w, uint16(r), littleEndian)
}

func printUCS2(w *[]byte, r rune, littleEndian bool) {
	if r > 0xFFFF {
		r = '?'
	}
	appendWord16(w, uint16(r), littleEndian)
}

func appendWord16(w *[]byte, v uint16, littleEndian bool) {
	if littleEndian {
		*w = append(*w, byte(v), byte(v>>8))
	} else {
		*w = append(*w, byte(v>>8), byte(v))
	}
}

func printUCS4(w *[]byte, r rune, littleEndian bool) {
	if r < 0 || r > 0x10FFFF {
		r = '?'
	}
	v := uint32(r)
	if littleEndian {
		*w = append(*w, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	} else {
		*w = append(*w, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
}

func printISOLatin(w *[]byte, r rune, reverse map[rune]byte) {
	if b, ok := reverse[r]; ok {
		*w = append(*w, b)
		return
	}
	*w = append(*w, '?')
}
