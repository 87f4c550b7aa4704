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

// ipfixVersion is the magic value RFC 7011 section 3.1 requires at the start
// of every message.
const ipfixVersion uint16 = 10

// Message is one IPFIX message: a header plus an ordered sequence of sets.
// Decoding a message mutates the TemplateStore it was given as template and
// options-template sets are encountered; a later set in the same message may
// reference a template an earlier one just installed.
type Message struct {
	ExportTime          uint32
	SequenceNumber      uint32
	ObservationDomainId uint32
	Sets                []Set
}

// ParseMessage decodes a single IPFIX message from b. Template and
// options-template records are installed into store as they are parsed;
// data sets are resolved against whatever store holds at the point they are
// reached, so a template installed earlier in the same call is visible to a
// data set later in it.
func ParseMessage(b []byte, store TemplateStore, formatter *Formatter) (*Message, error) {
	buf := bytes.NewBuffer(b)

	version, err := readUint16(buf)
	if err != nil {
		return nil, err
	}
	if version != ipfixVersion {
		return nil, badMagic(0, version)
	}

	length, err := readUint16(buf)
	if err != nil {
		return nil, err
	}

	exportTime, err := readUint32(buf)
	if err != nil {
		return nil, err
	}
	sequenceNumber, err := readUint32(buf)
	if err != nil {
		return nil, err
	}
	observationDomainId, err := readUint32(buf)
	if err != nil {
		return nil, err
	}

	offset := 16
	var sets []Set
	for buf.Len() > 0 {
		set, n, err := decodeSet(buf, offset, store, formatter)
		if err != nil {
			if isShortRead(err) {
				// Running out of bytes is only tolerable once the header's
				// declared length has been fully consumed; before that point
				// it is a truncated message, not trailing slack.
				if offset >= int(length) {
					break
				}
				return nil, newCodecError(offset, io.ErrUnexpectedEOF)
			}
			return nil, err
		}
		sets = append(sets, set)
		offset += n
	}

	return &Message{
		ExportTime:          exportTime,
		SequenceNumber:      sequenceNumber,
		ObservationDomainId: observationDomainId,
		Sets:                sets,
	}, nil
}

// WriteTo encodes m to w, back-patching the message length once every set
// has been written. alignment pads each set with zero bytes until the set's
// total length, header included, is a multiple of alignment bytes; it must
// match the sender's alignment if a byte-identical round trip is required.
func (m *Message) WriteTo(w io.Writer, store TemplateStore, alignment uint8) (int64, error) {
	pw := &patchWriter{}

	pw.writeUint16(ipfixVersion)
	lengthOffset := pw.reserveUint16()
	pw.writeUint32(m.ExportTime)
	pw.writeUint32(m.SequenceNumber)
	pw.writeUint32(m.ObservationDomainId)

	for _, set := range m.Sets {
		if err := set.encode(pw, store, alignment); err != nil {
			return 0, err
		}
	}

	pw.patchUint16(lengthOffset, uint16(pw.len()))

	n, err := w.Write(pw.bytes())
	return int64(n), err
}

// TemplateRecords returns every template record across all sets in m.
func (m *Message) TemplateRecords() []TemplateRecord {
	var out []TemplateRecord
	for _, s := range m.Sets {
		out = append(out, s.TemplateRecords...)
	}
	return out
}

// OptionsTemplateRecords returns every options-template record across all sets in m.
func (m *Message) OptionsTemplateRecords() []OptionsTemplateRecord {
	var out []OptionsTemplateRecord
	for _, s := range m.Sets {
		out = append(out, s.OptionsTemplateRecords...)
	}
	return out
}

// DataRecords returns every data record across all sets in m.
func (m *Message) DataRecords() []DataRecord {
	var out []DataRecord
	for _, s := range m.Sets {
		out = append(out, s.DataRecords...)
	}
	return out
}
