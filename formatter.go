/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import "github.com/flowlens/ipfix/internal/iana"

// formatterKey is (enterprise number, information element id), the lookup
// key a Formatter maps onto a name and abstract type.
type formatterKey struct {
	enterpriseNumber uint32
	elementId        uint16
}

// FormatterEntry is one resolvable information element: its human-readable
// name and the abstract type its values decode as.
type FormatterEntry struct {
	EnterpriseNumber uint32
	ElementId        uint16
	Name             string
	Type             AbstractDataType
}

// Formatter maps (enterprise number, information element id) pairs to their
// name and AbstractDataType. The zero value is an empty table; use
// DefaultFormatter to start from the IANA standard registry.
type Formatter struct {
	entries map[formatterKey]FormatterEntry
}

// NewFormatter returns an empty Formatter, useful for a registry scoped to a
// single private enterprise number rather than extending the IANA defaults.
func NewFormatter() *Formatter {
	return &Formatter{entries: make(map[formatterKey]FormatterEntry)}
}

// DefaultFormatter returns a Formatter seeded with the IANA standard
// information element registry (enterprise number 0). Rows whose abstract
// type is one of the RFC 6313 structured-data types, or otherwise
// unrecognized, are skipped rather than mapped, since this codec has no
// DataRecordValue variant for them.
func DefaultFormatter() *Formatter {
	f := NewFormatter()
	for _, el := range iana.Default() {
		ty, ok := abstractDataTypeFromIANA(el.Type)
		if !ok {
			continue
		}
		f.entries[formatterKey{0, el.Id}] = FormatterEntry{
			EnterpriseNumber: 0,
			ElementId:        el.Id,
			Name:             el.Name,
			Type:             ty,
		}
	}
	return f
}

// Extend adds or overwrites entries in f, for vendor-specific (enterprise)
// information elements such as nProbe's or PskReporter's PEN registries.
func (f *Formatter) Extend(entries []FormatterEntry) {
	if f.entries == nil {
		f.entries = make(map[formatterKey]FormatterEntry, len(entries))
	}
	for _, e := range entries {
		f.entries[formatterKey{e.EnterpriseNumber, e.ElementId}] = e
	}
}

func (f *Formatter) lookup(enterpriseNumber uint32, elementId uint16) (FormatterEntry, bool) {
	e, ok := f.entries[formatterKey{enterpriseNumber, elementId}]
	return e, ok
}

// Entries returns every entry currently in the table, for serialization.
func (f *Formatter) Entries() []FormatterEntry {
	out := make([]FormatterEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out
}
