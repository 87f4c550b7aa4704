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

import "testing"

// TestFormatterYAMLRoundTrip checks that a formatter extended with vendor and
// standard entries (string, unsignedInt and ipv4Address types) survives a
// MarshalYAML/UnmarshalFormatterYAML
// round trip with names and types intact, the way a deployment would persist
// a default-plus-vendor-extensions table alongside its config.
func TestFormatterYAMLRoundTrip(t *testing.T) {
	src := NewFormatter()
	src.Extend([]FormatterEntry{
		{EnterpriseNumber: nProbePEN, ElementId: 205, Name: "DNS_QUERY", Type: String},
		{EnterpriseNumber: nProbePEN, ElementId: 206, Name: "DNS_QUERY_ID", Type: UnsignedInt},
		{EnterpriseNumber: pskReporterPEN, ElementId: 5, Name: "frequency", Type: UnsignedInt},
		{EnterpriseNumber: 0, ElementId: 8, Name: "sourceIPv4Address", Type: Ipv4Addr},
	})

	data, err := src.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}

	dst := NewFormatter()
	if err := dst.UnmarshalFormatterYAML(data); err != nil {
		t.Fatalf("UnmarshalFormatterYAML: %v", err)
	}

	for _, want := range src.Entries() {
		got, ok := dst.lookup(want.EnterpriseNumber, want.ElementId)
		if !ok {
			t.Fatalf("entry (%d, %d) missing after round trip", want.EnterpriseNumber, want.ElementId)
		}
		if got.Name != want.Name || got.Type != want.Type {
			t.Fatalf("entry (%d, %d) = %+v, want name=%s type=%v", want.EnterpriseNumber, want.ElementId, got, want.Name, want.Type)
		}
	}
}

// TestFormatterYAMLUnmarshalUnknownType rejects a formatter YAML entry whose
// abstract type string isn't one this codec's value codec supports, rather
// than silently coercing it.
func TestFormatterYAMLUnmarshalUnknownType(t *testing.T) {
	f := NewFormatter()
	err := f.UnmarshalFormatterYAML([]byte("- enterpriseNumber: 0\n  elementId: 1\n  name: bogus\n  type: basicList\n"))
	if err == nil {
		t.Fatal("expected an error for an unsupported abstract type")
	}
}
