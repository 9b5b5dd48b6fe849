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

// EntityMap is an immutable-after-registration lookup from entity name to a
// single Unicode scalar substitution. The five XML predefined entities are
// always present.
type EntityMap struct {
	subs map[string]rune
}

// NewEntityMap builds an EntityMap preloaded with the five XML builtins:
// lt, gt, amp, apos, quot.
func NewEntityMap() *EntityMap {
	return &EntityMap{
		subs: map[string]rune{
			"lt":   '<',
			"gt":   '>',
			"amp":  '&',
			"apos": '\'',
			"quot": '"',
		},
	}
}

// Register adds or overrides a single-character substitution for name.
func (m *EntityMap) Register(name string, r rune) {
	m.subs[name] = r
}

// Lookup returns the substitution scalar for name, and whether it is known.
func (m *EntityMap) Lookup(name string) (rune, bool) {
	r, ok := m.subs[name]
	return r, ok
}
