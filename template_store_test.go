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

import (
	"sync"
	"testing"
)

func threeFieldTemplate(id uint16) TemplateRecord {
	return TemplateRecord{
		TemplateId: id,
		FieldSpecifiers: []FieldSpecifier{
			NewFieldSpecifier(nil, 8, 4),   // sourceIPv4Address
			NewFieldSpecifier(nil, 12, 4),  // destinationIPv4Address
			NewFieldSpecifier(nil, 2, 8),   // packetDeltaCount
		},
	}
}

func TestLocalTemplateStoreMonotonicity(t *testing.T) {
	store := NewLocalTemplateStore()
	formatter := DefaultFormatter()

	if _, ok := store.Get(500); ok {
		t.Fatal("unexpected hit before any install")
	}

	store.InstallTemplates([]TemplateRecord{threeFieldTemplate(500), threeFieldTemplate(999)}, formatter)
	if _, ok := store.Get(500); !ok {
		t.Fatal("500 not installed")
	}
	if _, ok := store.Get(999); !ok {
		t.Fatal("999 not installed")
	}
	if _, ok := store.Get(501); ok {
		t.Fatal("501 should not exist yet")
	}

	store.InstallTemplates([]TemplateRecord{threeFieldTemplate(501)}, formatter)
	if _, ok := store.Get(501); !ok {
		t.Fatal("501 not installed by second call")
	}
	// Earlier installs are unaffected by a later, unrelated install.
	if _, ok := store.Get(500); !ok {
		t.Fatal("500 should still be present after installing 501")
	}
}

// TestConcurrentInstall installs templates from two goroutines against a
// SyncTemplateStore and checks every installed id ends up resolvable, the
// concurrent counterpart to TestLocalTemplateStoreMonotonicity.
func TestConcurrentInstall(t *testing.T) {
	store := NewSyncTemplateStore()
	formatter := DefaultFormatter()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.InstallTemplates([]TemplateRecord{threeFieldTemplate(500), threeFieldTemplate(999)}, formatter)
	}()
	go func() {
		defer wg.Done()
		store.InstallTemplates([]TemplateRecord{threeFieldTemplate(501)}, formatter)
	}()
	wg.Wait()

	for _, id := range []uint16{500, 999, 501} {
		if _, ok := store.Get(id); !ok {
			t.Fatalf("template %d missing after concurrent install", id)
		}
	}
}

func TestFormatterUnknownElementFallback(t *testing.T) {
	formatter := NewFormatter()
	fs := FieldSpecifier{InformationElementIdentifier: 65000, FieldLength: 4}

	expanded := expandFieldSpecifier(fs, formatter)
	if expanded.Key.Kind != KeyUnrecognized {
		t.Fatalf("expected KeyUnrecognized, got %v", expanded.Key.Kind)
	}
	if expanded.Type != Bytes {
		t.Fatalf("unrecognized element should fall back to Bytes, got %v", expanded.Type)
	}
}

func TestFormatterExtendOverridesEntry(t *testing.T) {
	f := NewFormatter()
	f.Extend([]FormatterEntry{{ElementId: 1, Name: "original", Type: String}})
	f.Extend([]FormatterEntry{{ElementId: 1, Name: "replaced", Type: UnsignedInt}})

	entry, ok := f.lookup(0, 1)
	if !ok || entry.Name != "replaced" || entry.Type != UnsignedInt {
		t.Fatalf("got %+v, want name=replaced type=UnsignedInt", entry)
	}
}
