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
	"bytes"
	"strings"
	"testing"
)

func TestPrinterSelfClosingTag(t *testing.T) {
	var buf bytes.Buffer
	codec, _ := ParseEncoding("")
	p := NewPrinter(&buf, codec)

	if err := p.PrintOpenTag("a"); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintAttribute("k"); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintValue([]byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintCloseTag(); err != nil {
		t.Fatal(err)
	}

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n<a k=\"v\"/>"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterExplicitCloseWithContent(t *testing.T) {
	var buf bytes.Buffer
	codec, _ := ParseEncoding("")
	p := NewPrinter(&buf, codec)

	if err := p.PrintOpenTag("a"); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintValue([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintCloseTag(); err != nil {
		t.Fatal(err)
	}

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n<a>hello</a>"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterNestedElements(t *testing.T) {
	var buf bytes.Buffer
	codec, _ := ParseEncoding("")
	p := NewPrinter(&buf, codec)

	p.PrintOpenTag("r")
	p.PrintOpenTag("c")
	p.PrintCloseTag()
	p.PrintCloseTag()

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n<r><c/></r>"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterEscapesContentAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	codec, _ := ParseEncoding("")
	p := NewPrinter(&buf, codec)

	p.PrintOpenTag("a")
	if err := p.PrintAttribute("q"); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintValue([]byte(`she said "hi" & <bye>`)); err != nil {
		t.Fatal(err)
	}
	if err := p.PrintValue([]byte("x < y & z")); err != nil {
		t.Fatal(err)
	}
	p.PrintCloseTag()

	got := buf.String()
	if !strings.Contains(got, `q="she said &quot;hi&quot; &amp; &lt;bye&gt;"`) {
		t.Errorf("attribute not escaped as expected: %s", got)
	}
	if !strings.Contains(got, "x &lt; y &amp; z") {
		t.Errorf("content not escaped as expected: %s", got)
	}
}

func TestPrinterAttributeOutsideTagElementFails(t *testing.T) {
	var buf bytes.Buffer
	codec, _ := ParseEncoding("")
	p := NewPrinter(&buf, codec)
	if err := p.PrintAttribute("x"); err != PrinterStateViolation {
		t.Errorf("want PrinterStateViolation, got %v", err)
	}
}

func TestPrinterCloseWithEmptyStackFails(t *testing.T) {
	var buf bytes.Buffer
	codec, _ := ParseEncoding("")
	p := NewPrinter(&buf, codec)
	if err := p.PrintCloseTag(); err != PrinterStateViolation {
		t.Errorf("want PrinterStateViolation, got %v", err)
	}
}

// TestScanPrintRoundTrip checks that parse then print with matching
// encodings is the identity up to whitespace collapse and quoting
// normalization.
func TestScanPrintRoundTrip(t *testing.T) {
	const input = `<a k="v"><b>hello</b></a>`

	codec, _ := ParseEncoding("")
	ts := NewTextScanner(NewReaderSource(strings.NewReader(input)), codec)
	x := NewXMLScanner(ts, nil)

	var buf bytes.Buffer
	p := NewPrinter(&buf, codec)

	for {
		ev := x.Next()
		switch ev.Kind {
		case OpenTag:
			if err := p.PrintOpenTag(string(ev.Content())); err != nil {
				t.Fatal(err)
			}
		case TagAttribName:
			if err := p.PrintAttribute(string(ev.Content())); err != nil {
				t.Fatal(err)
			}
		case TagAttribValue:
			if err := p.PrintValue(ev.Content()); err != nil {
				t.Fatal(err)
			}
		case Content:
			if err := p.PrintValue(ev.Content()); err != nil {
				t.Fatal(err)
			}
		case CloseTag, CloseTagIm:
			if err := p.PrintCloseTag(); err != nil {
				t.Fatal(err)
			}
		case Exit:
			goto done
		case ErrorOccurred:
			t.Fatalf("unexpected scan error: %s", ev.Content())
		}
	}
done:
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n" + input
	if got := buf.String(); got != want {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", got, want)
	}
}
