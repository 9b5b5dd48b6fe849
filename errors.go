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

// scanError is a string-based error sentinel: comparable with errors.Is and
// wrappable without losing that comparability.
type scanError string

// Error implements the error interface by returning the sentinel text
// itself.
func (e scanError) Error() string { return string(e) }

// Error kinds surfaced by the scanner as the content of an ErrorOccurred
// event, and by the printer as the error its methods return.
const (
	// MalformedCharacter is reported when a codec cannot decode the bytes at
	// the current position into a Unicode scalar.
	MalformedCharacter scanError = "malformed character"

	// UnexpectedCharacter is reported when the lexer sees a character that is
	// illegal in its current state.
	UnexpectedCharacter scanError = "unexpected character"

	// UnknownEntity is reported when an entity reference is not present in
	// the scanner's entity map.
	UnknownEntity scanError = "unknown entity"

	// TagMismatch is reported when a close-tag name does not equal the tag
	// stack's top.
	TagMismatch scanError = "tag mismatch"

	// UnclosedDocument is reported when the byte source is exhausted while
	// the tag stack is non-empty.
	UnclosedDocument scanError = "unclosed document"

	// UnsupportedEncoding is reported when ParseEncoding is given an
	// unrecognized encoding identifier.
	UnsupportedEncoding scanError = "unsupported encoding"

	// PrinterStateViolation is reported when the printer is asked to emit an
	// attribute or value outside a tag-open context, or to close with an
	// empty tag stack.
	PrinterStateViolation scanError = "printer state violation"
)

// withDetail attaches a human-readable detail to a scanError without losing
// errors.Is comparability against the sentinel.
func (e scanError) withDetail(detail string) error {
	return &detailedError{sentinel: e, detail: detail}
}

type detailedError struct {
	sentinel scanError
	detail   string
}

func (e *detailedError) Error() string { return string(e.sentinel) + ": " + e.detail }
func (e *detailedError) Unwrap() error { return e.sentinel }
