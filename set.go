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

// SetKind distinguishes the three set shapes RFC 7011 section 3.3 defines,
// keyed by set id: 2 for template sets, 3 for options-template sets, and
// anything above 255 for a data set referring to that id's template.
type SetKind uint8

const (
	SetKindTemplate SetKind = iota
	SetKindOptionsTemplate
	SetKindData
)

// Set is one typed collection of records within a Message.
type Set struct {
	Kind SetKind

	// DataSetId is the set id of a data set, i.e. the template id its
	// records were decoded against. Unused for template/options-template
	// sets, whose set id is implied by Kind (2 and 3 respectively).
	DataSetId uint16

	TemplateRecords        []TemplateRecord
	OptionsTemplateRecords []OptionsTemplateRecord
	DataRecords            []DataRecord
}

func decodeSet(buf *bytes.Buffer, offset int, store TemplateStore, formatter *Formatter) (Set, int, error) {
	setId, err := readUint16(buf)
	if err != nil {
		return Set{}, 0, err
	}
	length, err := readUint16(buf)
	if err != nil {
		return Set{}, 0, err
	}
	if length <= 4 {
		return Set{}, 0, shortSet(offset, length)
	}

	payload := take(buf, int(length)-4)
	if payload.Len() < int(length)-4 {
		// The set claims more payload than the stream holds: a truncated
		// message, or a crafted length trying to escape its container.
		return Set{}, 0, io.ErrUnexpectedEOF
	}
	payloadOffset := offset + 4

	switch {
	case setId == 2:
		var records []TemplateRecord
		for payload.Len() > 0 {
			tr, n, err := decodeTemplateRecord(payload, payloadOffset)
			if err != nil {
				if isShortRead(err) {
					break
				}
				return Set{}, 0, err
			}
			records = append(records, tr)
			payloadOffset += n
		}
		store.InstallTemplates(records, formatter)
		return Set{Kind: SetKindTemplate, TemplateRecords: records}, int(length), nil

	case setId == 3:
		var records []OptionsTemplateRecord
		for payload.Len() > 0 {
			otr, n, err := decodeOptionsTemplateRecord(payload, payloadOffset)
			if err != nil {
				if isShortRead(err) {
					break
				}
				return Set{}, 0, err
			}
			records = append(records, otr)
			payloadOffset += n
		}
		store.InstallOptionsTemplates(records, formatter)
		return Set{Kind: SetKindOptionsTemplate, OptionsTemplateRecords: records}, int(length), nil

	case setId <= 255:
		// 0-1 and 4-255 are reserved; only 2 and 3 of that range are valid
		// set ids, both handled above.
		return Set{}, 0, reservedSetId(offset, setId)

	default:
		template, ok := store.Get(setId)
		if !ok {
			return Set{}, 0, templateNotFound(offset, setId)
		}

		var records []DataRecord
		for payload.Len() > 0 {
			dr, n, err := decodeDataRecord(payload, payloadOffset, template)
			if err != nil {
				if isShortRead(err) {
					break
				}
				return Set{}, 0, err
			}
			records = append(records, dr)
			payloadOffset += n
		}
		return Set{Kind: SetKindData, DataSetId: setId, DataRecords: records}, int(length), nil
	}
}

// encode appends s's wire encoding to w, padding the record area with zero
// bytes so the set's total length is a multiple of alignment before the
// length field is patched in. w holds the whole message from its first byte,
// so w.len() doubles as the absolute offset reported with write errors.
func (s Set) encode(w *patchWriter, store TemplateStore, alignment uint8) error {
	setStart := w.len()

	setId := s.DataSetId
	switch s.Kind {
	case SetKindTemplate:
		setId = 2
	case SetKindOptionsTemplate:
		setId = 3
	}
	w.writeUint16(setId)
	lengthOffset := w.reserveUint16()

	switch s.Kind {
	case SetKindTemplate:
		for _, tr := range s.TemplateRecords {
			tr.encode(w)
		}
	case SetKindOptionsTemplate:
		for _, otr := range s.OptionsTemplateRecords {
			otr.encode(w)
		}
	case SetKindData:
		template, ok := store.Get(s.DataSetId)
		if !ok {
			return templateNotFound(setStart, s.DataSetId)
		}
		for _, dr := range s.DataRecords {
			if err := dr.encode(w, template); err != nil {
				return err
			}
		}
	}

	if alignment > 0 {
		for (w.len()-setStart)%int(alignment) != 0 {
			w.write([]byte{0})
		}
	}

	w.patchUint16(lengthOffset, uint16(w.len()-setStart))
	return nil
}
