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
	"io"
	"unicode/utf8"
)

// printerState names the serializer's grammatical context.
type printerState uint8

const (
	pInit printerState = iota
	pContent
	pTagAttribute
	pTagElement
)

// Printer is the serialization counterpart of XMLScanner. It shares the
// codec dispatch and escaping discipline with the scanner, so parsing and
// printing with matching encodings round-trip.
//
// Self-closing vs explicit-close behavior is selected by the sequence of
// calls, not by flags: PrintCloseTag immediately after PrintOpenTag (or its
// attributes) self-closes; calling it after PrintValue content, or after a
// nested element, emits an explicit end tag.
type Printer struct {
	w     io.Writer
	codec Codec
	state printerState
	tags  tagStack
	buf   []byte
	wrote bool
}

// NewPrinter creates a Printer writing through codec into w.
func NewPrinter(w io.Writer, codec Codec) *Printer {
	return &Printer{w: w, codec: codec}
}

// writeRaw encodes each rune of s through the codec and writes the result,
// so markup and text share one encoding path even for multi-byte codecs.
func (p *Printer) writeRaw(s string) error {
	p.buf = p.buf[:0]
	for _, r := range s {
		p.codec.Print(&p.buf, r)
	}
	_, err := p.w.Write(p.buf)
	return err
}

func (p *Printer) ensureProlog() error {
	if p.wrote {
		return nil
	}
	p.wrote = true
	return p.writeRaw(`<?xml version="1.0" encoding="` + p.codec.Name() + `" standalone="yes"?>` + "\n")
}

// exitTagOpen closes a pending "<name" with '>' if one is open, entering
// Content.
func (p *Printer) exitTagOpen() error {
	if p.state != pTagElement {
		return nil
	}
	if err := p.writeRaw(">"); err != nil {
		return err
	}
	p.state = pContent
	return nil
}

// PrintOpenTag emits "<name", pushes name on the tag stack, and enters
// TagElement.
func (p *Printer) PrintOpenTag(name string) error {
	if err := p.ensureProlog(); err != nil {
		return err
	}
	if err := p.exitTagOpen(); err != nil {
		return err
	}
	if err := p.writeRaw("<" + name); err != nil {
		return err
	}
	p.tags.push([]byte(name))
	p.state = pTagElement
	return nil
}

// PrintAttribute is valid only in TagElement; it emits " name=" and enters
// TagAttribute. Called from any other state it fails with
// PrinterStateViolation.
func (p *Printer) PrintAttribute(name string) error {
	if p.state != pTagElement {
		return PrinterStateViolation
	}
	if err := p.writeRaw(" " + name + "="); err != nil {
		return err
	}
	p.state = pTagAttribute
	return nil
}

// PrintValue, in TagAttribute, emits `"escaped-value"` and returns to
// TagElement; in any other state it exits a pending tag-open context and
// emits escaped content.
func (p *Printer) PrintValue(value []byte) error {
	if p.state == pTagAttribute {
		if err := p.writeRaw(`"`); err != nil {
			return err
		}
		if err := p.writeEscaped(value, true); err != nil {
			return err
		}
		if err := p.writeRaw(`"`); err != nil {
			return err
		}
		p.state = pTagElement
		return nil
	}
	if err := p.ensureProlog(); err != nil {
		return err
	}
	if err := p.exitTagOpen(); err != nil {
		return err
	}
	p.state = pContent
	return p.writeEscaped(value, false)
}

// PrintCloseTag ends the innermost open element: "/>" if no content or
// child has been emitted since PrintOpenTag (TagElement), or "</name>"
// otherwise (Content). An empty tag stack fails with PrinterStateViolation.
func (p *Printer) PrintCloseTag() error {
	top := p.tags.top()
	if top == nil {
		return PrinterStateViolation
	}
	switch p.state {
	case pTagElement:
		p.tags.pop()
		p.state = pContent
		return p.writeRaw("/>")
	case pContent:
		name := append([]byte(nil), top...)
		p.tags.pop()
		return p.writeRaw("</" + string(name) + ">")
	default:
		return PrinterStateViolation
	}
}

// contentEscapes is the escape set for text content. NUL and BS become
// numeric character references to keep the output byte-safe.
var contentEscapes = map[rune]string{
	'<': "&lt;",
	'>': "&gt;",
	'&': "&amp;",
	0:   "&#0;",
	8:   "&#8;",
}

// attrEscapes is the escape set for attribute values.
var attrEscapes = map[rune]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'\'': "&apos;",
	'"':  "&quot;",
	'&':  "&amp;",
	0:    "&#0;",
	8:    "&#8;",
	'\t': "&#9;",
	'\n': "&#10;",
	'\r': "&#13;",
}

// writeEscaped decodes value as UTF-8 (the character set of XMLScanner
// event content) and re-encodes each scalar through the printer's own
// codec, substituting the applicable escape table entry.
func (p *Printer) writeEscaped(value []byte, attr bool) error {
	table := contentEscapes
	if attr {
		table = attrEscapes
	}
	p.buf = p.buf[:0]
	for len(value) > 0 {
		r, size := utf8.DecodeRune(value)
		value = value[size:]
		if esc, ok := table[r]; ok {
			for _, er := range esc {
				p.codec.Print(&p.buf, er)
			}
			continue
		}
		p.codec.Print(&p.buf, r)
	}
	if len(p.buf) > 0 {
		_, err := p.w.Write(p.buf)
		return err
	}
	return nil
}
