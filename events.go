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

// EventKind tags the variant of an Event produced by XMLScanner.
type EventKind uint8

// The fixed set of event kinds.
const (
	None EventKind = iota
	ErrorOccurred
	HeaderStart
	HeaderAttribName
	HeaderAttribValue
	HeaderEnd
	DocAttribValue
	DocAttribEnd
	TagAttribName
	TagAttribValue
	OpenTag
	CloseTag
	CloseTagIm
	Content
	Exit
)

var eventKindNames = [...]string{
	None:               "None",
	ErrorOccurred:      "ErrorOccurred",
	HeaderStart:        "HeaderStart",
	HeaderAttribName:   "HeaderAttribName",
	HeaderAttribValue:  "HeaderAttribValue",
	HeaderEnd:          "HeaderEnd",
	DocAttribValue:     "DocAttribValue",
	DocAttribEnd:       "DocAttribEnd",
	TagAttribName:      "TagAttribName",
	TagAttribValue:     "TagAttribValue",
	OpenTag:            "OpenTag",
	CloseTag:           "CloseTag",
	CloseTagIm:         "CloseTagIm",
	Content:            "Content",
	Exit:               "Exit",
}

// String returns the human-readable label for a kind, used as Event.Name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Event is a single tagged value produced by XMLScanner.Next.
//
// Content is a borrow into the scanner's rolling buffer: it is valid only
// until the next call to Next. Callers that need to retain it must copy.
type Event struct {
	Kind    EventKind
	content []byte
}

// Content returns the event's payload bytes, valid only until the next
// Next() call.
func (e *Event) Content() []byte { return e.content }

// Name is a convenience accessor equal to the kind's human-readable label.
func (e *Event) Name() string { return e.Kind.String() }
