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

import "bytes"

// FieldSpecifier is one entry of a template or options-template record
// (RFC 7011 section 3.2): which information element, at what fixed or
// variable length, optionally scoped to an enterprise (vendor) PEN.
//
// It is comparable by value so it can be embedded in a DataRecordKey and
// used as a map key without pointer-identity surprises; Enterprise
// distinguishes "no enterprise number" from "enterprise number 0", which
// On records the wire's high bit sets unambiguously.
type FieldSpecifier struct {
	InformationElementIdentifier uint16
	FieldLength                  uint16
	EnterpriseNumber             uint32
	Enterprise                   bool
}

// NewFieldSpecifier builds a FieldSpecifier scoped to enterpriseNumber when
// it is non-nil, matching the Rust constructor's Option<u32> parameter.
func NewFieldSpecifier(enterpriseNumber *uint32, informationElementIdentifier uint16, fieldLength uint16) FieldSpecifier {
	fs := FieldSpecifier{
		InformationElementIdentifier: informationElementIdentifier,
		FieldLength:                  fieldLength,
	}
	if enterpriseNumber != nil {
		fs.Enterprise = true
		fs.EnterpriseNumber = *enterpriseNumber
	}
	return fs
}

func decodeFieldSpecifier(buf *bytes.Buffer, offset int) (FieldSpecifier, int, error) {
	raw, err := readUint16(buf)
	if err != nil {
		return FieldSpecifier{}, 0, err
	}
	fs := FieldSpecifier{
		InformationElementIdentifier: raw &^ enterpriseBit,
	}

	fieldLength, err := readUint16(buf)
	if err != nil {
		return FieldSpecifier{}, 0, err
	}
	fs.FieldLength = fieldLength
	consumed := 4

	if raw&enterpriseBit != 0 {
		en, err := readUint32(buf)
		if err != nil {
			return FieldSpecifier{}, 0, err
		}
		fs.Enterprise = true
		fs.EnterpriseNumber = en
		consumed += 4
	}

	return fs, consumed, nil
}

func (fs FieldSpecifier) encode(w *patchWriter) int {
	raw := fs.InformationElementIdentifier
	if fs.Enterprise {
		raw |= enterpriseBit
	}
	w.writeUint16(raw)
	w.writeUint16(fs.FieldLength)
	if fs.Enterprise {
		w.writeUint32(fs.EnterpriseNumber)
		return 8
	}
	return 4
}
