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

	"github.com/google/triemap"
)

// Name stores an interned identifier, like the "foo" in <foo bar="baz">.
//
// Names are interned through a shared trie (see nameTable) so repeated tag
// and attribute names across a document share a single allocation.
type Name struct {
	local string
	space string
	raw   []byte
}

// Local returns the identifier without its XML namespace prefix.
//
// For example <a:b> generates the local name "b" with namespace "a". This
// method returns "b".
func (n *Name) Local() string {
	if n == nil {
		return ""
	}
	return n.local
}

// Space returns the namespace prefix of the identifier, or "" if it has none.
//
// For example <a:b> generates the local name "b" with namespace "a". This
// method returns "a".
func (n *Name) Space() string {
	if n == nil {
		return ""
	}
	return n.space
}

// String renders the name the way it appeared in the source, prefix and all.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	if n.space == "" {
		return n.local
	}
	return n.space + ":" + n.local
}

// bytes returns the name's UTF-8 encoding. The slice is shared and must not
// be mutated.
func (n *Name) bytes() []byte {
	if n == nil {
		return nil
	}
	return n.raw
}

// nameTable interns identifiers into *Name values keyed by their rune
// spelling, so a document full of repeated tag and attribute names performs
// one allocation per distinct name rather than one per occurrence.
type nameTable struct {
	names triemap.RuneSliceMap
}

func newNameTable() *nameTable {
	return &nameTable{}
}

// intern returns the canonical *Name for the identifier spelled by runes,
// splitting off a namespace prefix on the first colon.
func (t *nameTable) intern(runes []rune) *Name {
	if v, ok := t.names.Get(runes); ok {
		return v.(*Name)
	}
	s := string(runes)
	n := &Name{local: s, raw: []byte(s)}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		n.space = s[:i]
		n.local = s[i+1:]
	}
	t.names.Put(append([]rune(nil), runes...), n)
	return n
}
