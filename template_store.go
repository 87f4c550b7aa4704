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

import "sync"

// ExpandedFieldSpecifier is a FieldSpecifier resolved against a Formatter:
// its DataRecordKey and AbstractDataType are known up front, so decoding a
// data record never has to consult the formatter per value.
type ExpandedFieldSpecifier struct {
	Key                          DataRecordKey
	Type                         AbstractDataType
	EnterpriseNumber             uint32
	Enterprise                   bool
	InformationElementIdentifier uint16
	FieldLength                  uint16
}

func expandFieldSpecifier(fs FieldSpecifier, formatter *Formatter) ExpandedFieldSpecifier {
	efs := ExpandedFieldSpecifier{
		EnterpriseNumber:             fs.EnterpriseNumber,
		Enterprise:                   fs.Enterprise,
		InformationElementIdentifier: fs.InformationElementIdentifier,
		FieldLength:                  fs.FieldLength,
	}

	entry, ok := formatter.lookup(fs.EnterpriseNumber, fs.InformationElementIdentifier)
	if !ok {
		efs.Key = UnrecognizedKey(fs)
		efs.Type = Bytes
		return efs
	}

	efs.Key = NamedKey(entry.Name)
	efs.Type = entry.Type
	return efs
}

// TemplateKind distinguishes a plain template from an options template; both
// carry the same field-specifier shape once expanded, so DataRecord decoding
// doesn't need to special-case it, but callers inspecting the store do.
type TemplateKind uint8

const (
	TemplateKindTemplate TemplateKind = iota
	TemplateKindOptionsTemplate
)

// ExpandedTemplate is what the store actually holds: a template's field
// specifiers, each already resolved against the formatter in effect when the
// template record was installed.
type ExpandedTemplate struct {
	Kind            TemplateKind
	FieldSpecifiers []ExpandedFieldSpecifier
}

// TemplateStore is the behavior contract both the single-threaded and the
// concurrent store shapes implement, so call sites can hold an abstract
// handle and never know which one they were given.
type TemplateStore interface {
	Get(templateId uint16) (ExpandedTemplate, bool)
	InstallTemplates(records []TemplateRecord, formatter *Formatter)
	InstallOptionsTemplates(records []OptionsTemplateRecord, formatter *Formatter)
}

// LocalTemplateStore is a plain-map store with no synchronization, for
// single-threaded use: every operation is zero-wait and there is no
// suspension point anywhere in Get or Install.
type LocalTemplateStore struct {
	templates map[uint16]ExpandedTemplate
}

func NewLocalTemplateStore() *LocalTemplateStore {
	return &LocalTemplateStore{templates: make(map[uint16]ExpandedTemplate)}
}

func (s *LocalTemplateStore) Get(templateId uint16) (ExpandedTemplate, bool) {
	t, ok := s.templates[templateId]
	return t, ok
}

func (s *LocalTemplateStore) InstallTemplates(records []TemplateRecord, formatter *Formatter) {
	for _, r := range records {
		s.templates[r.TemplateId] = expandTemplate(TemplateKindTemplate, r.FieldSpecifiers, formatter)
	}
}

func (s *LocalTemplateStore) InstallOptionsTemplates(records []OptionsTemplateRecord, formatter *Formatter) {
	for _, r := range records {
		s.templates[r.TemplateId] = expandTemplate(TemplateKindOptionsTemplate, r.FieldSpecifiers, formatter)
	}
}

// SyncTemplateStore is the concurrent shape: a reader/writer lock guards the
// same map, mirroring the Arc<RwLock<HashMap>> store used when multiple
// goroutines parse messages against a shared template context.
type SyncTemplateStore struct {
	mu        sync.RWMutex
	templates map[uint16]ExpandedTemplate
}

func NewSyncTemplateStore() *SyncTemplateStore {
	return &SyncTemplateStore{templates: make(map[uint16]ExpandedTemplate)}
}

func (s *SyncTemplateStore) Get(templateId uint16) (ExpandedTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[templateId]
	return t, ok
}

func (s *SyncTemplateStore) InstallTemplates(records []TemplateRecord, formatter *Formatter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.templates[r.TemplateId] = expandTemplate(TemplateKindTemplate, r.FieldSpecifiers, formatter)
	}
}

func (s *SyncTemplateStore) InstallOptionsTemplates(records []OptionsTemplateRecord, formatter *Formatter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.templates[r.TemplateId] = expandTemplate(TemplateKindOptionsTemplate, r.FieldSpecifiers, formatter)
	}
}

func expandTemplate(kind TemplateKind, fieldSpecifiers []FieldSpecifier, formatter *Formatter) ExpandedTemplate {
	expanded := make([]ExpandedFieldSpecifier, len(fieldSpecifiers))
	for i, fs := range fieldSpecifiers {
		expanded[i] = expandFieldSpecifier(fs, formatter)
	}
	return ExpandedTemplate{Kind: kind, FieldSpecifiers: expanded}
}
