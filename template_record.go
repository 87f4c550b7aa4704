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
	"bytes"
	"io"
)

// TemplateRecord describes the shape of data records that will follow in a
// set naming this template's id (RFC 7011 section 3.4.1).
type TemplateRecord struct {
	TemplateId      uint16
	FieldSpecifiers []FieldSpecifier
}

// OptionsTemplateRecord is a TemplateRecord variant that additionally scopes
// some of its fields to describe the options themselves rather than flow
// data (RFC 7011 section 3.4.2).
type OptionsTemplateRecord struct {
	TemplateId      uint16
	ScopeFieldCount uint16
	FieldSpecifiers []FieldSpecifier
}

func decodeTemplateRecord(buf *bytes.Buffer, offset int) (TemplateRecord, int, error) {
	templateId, err := readUint16(buf)
	if err != nil {
		return TemplateRecord{}, 0, err
	}
	if templateId == 0 {
		// Template ids 0 and below 256 are reserved, and set padding is all
		// zeroes, so a record starting with id 0 is the set's trailing padding
		// even when four or more bytes of it remain.
		return TemplateRecord{}, 0, io.EOF
	}

	fieldCount, err := readUint16(buf)
	if err != nil {
		return TemplateRecord{}, 0, err
	}

	consumed := 4
	fieldSpecifiers := make([]FieldSpecifier, 0, fieldCount)
	for i := uint16(0); i < fieldCount; i++ {
		fs, n, err := decodeFieldSpecifier(buf, offset+consumed)
		if err != nil {
			return TemplateRecord{}, 0, err
		}
		fieldSpecifiers = append(fieldSpecifiers, fs)
		consumed += n
	}

	// The id range is only checked once the whole record has been read
	// successfully: a short read a few bytes in (trailing set padding) must
	// surface as an EOF, not as this assertion, so the caller can tell a
	// truncated trailing record from a genuinely malformed one.
	if templateId <= 255 {
		return TemplateRecord{}, 0, reservedTemplateId(offset, templateId)
	}

	return TemplateRecord{TemplateId: templateId, FieldSpecifiers: fieldSpecifiers}, consumed, nil
}

func (tr TemplateRecord) encode(w *patchWriter) int {
	start := w.len()
	w.writeUint16(tr.TemplateId)
	w.writeUint16(uint16(len(tr.FieldSpecifiers)))
	for _, fs := range tr.FieldSpecifiers {
		fs.encode(w)
	}
	return w.len() - start
}

func decodeOptionsTemplateRecord(buf *bytes.Buffer, offset int) (OptionsTemplateRecord, int, error) {
	templateId, err := readUint16(buf)
	if err != nil {
		return OptionsTemplateRecord{}, 0, err
	}
	if templateId == 0 {
		// Trailing padding, as in decodeTemplateRecord.
		return OptionsTemplateRecord{}, 0, io.EOF
	}

	fieldCount, err := readUint16(buf)
	if err != nil {
		return OptionsTemplateRecord{}, 0, err
	}

	scopeFieldCount, err := readUint16(buf)
	if err != nil {
		return OptionsTemplateRecord{}, 0, err
	}

	consumed := 6
	fieldSpecifiers := make([]FieldSpecifier, 0, fieldCount)
	for i := uint16(0); i < fieldCount; i++ {
		fs, n, err := decodeFieldSpecifier(buf, offset+consumed)
		if err != nil {
			return OptionsTemplateRecord{}, 0, err
		}
		fieldSpecifiers = append(fieldSpecifiers, fs)
		consumed += n
	}

	if templateId <= 255 {
		return OptionsTemplateRecord{}, 0, reservedTemplateId(offset, templateId)
	}

	return OptionsTemplateRecord{
		TemplateId:      templateId,
		ScopeFieldCount: scopeFieldCount,
		FieldSpecifiers: fieldSpecifiers,
	}, consumed, nil
}

func (otr OptionsTemplateRecord) encode(w *patchWriter) int {
	start := w.len()
	w.writeUint16(otr.TemplateId)
	w.writeUint16(uint16(len(otr.FieldSpecifiers)))
	w.writeUint16(otr.ScopeFieldCount)
	for _, fs := range otr.FieldSpecifiers {
		fs.encode(w)
	}
	return w.len() - start
}
