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
	"errors"
	"io"
	"strings"
	"testing"

	stdxml "encoding/xml"
)

func benchDoc() []byte {
	var b strings.Builder
	b.WriteString("<catalog>")
	for i := 0; i < 500; i++ {
		b.WriteString(`<item kind="gold" id="x"><name>widget</name><price>9.99</price></item>`)
	}
	b.WriteString("</catalog>")
	return []byte(b.String())
}

func BenchmarkScanAll(b *testing.B) {
	doc := benchDoc()

	testCases := []struct {
		desc     string
		scanOnce func()
	}{
		{"xmlscan",
			func() {
				codec, _ := ParseEncoding("")
				ts := NewTextScanner(&sliceSource{buf: doc}, codec)
				x := NewXMLScanner(ts, nil)
				for {
					ev := x.Next()
					if ev.Kind == Exit {
						return
					}
					if ev.Kind == ErrorOccurred {
						b.Fatal("xmlscan parsing error")
					}
				}
			},
		},
		{"encoding_xml",
			func() {
				decoder := stdxml.NewDecoder(bytes.NewReader(doc))
				for {
					_, err := decoder.RawToken()
					if err != nil {
						if errors.Is(err, io.EOF) {
							return
						}
						b.Fatal("encoding/xml parsing error")
					}
				}
			},
		},
	}

	for _, tc := range testCases {
		b.Run(tc.desc, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tc.scanOnce()
			}
		})
	}
}

// BenchmarkPathSelect measures the added cost of path selection over plain
// scanning, driving a small automaton against the same document.
func BenchmarkPathSelect(b *testing.B) {
	doc := benchDoc()
	auto := NewAutomaton()
	auto.Root().Tag("catalog").Tag("item").IfAttribute("kind", "gold").Tag("price").Content().Assign(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		codec, _ := ParseEncoding("")
		ts := NewTextScanner(&sliceSource{buf: doc}, codec)
		x := NewXMLScanner(ts, nil)
		sel := NewPathSelect(auto)
		for {
			ev := x.Next()
			sel.Push(ev)
			if ev.Kind == Exit {
				break
			}
			if ev.Kind == ErrorOccurred {
				b.Fatal("xmlscan parsing error")
			}
		}
	}
}
