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

// maxVariableLength is the largest payload a variable-length field can carry:
// a 3-byte long-form prefix (0xFF followed by a u16) can in principle address
// up to 0xFFFF bytes, but that would make the encoded length field itself
// overflow a u16 once the 3-byte prefix is added back in, so the payload is
// capped at 0xFFFF - 3.
const maxVariableLength = 0xFFFF - 3

// BytesValue is the octetArray abstract type: an opaque byte string, either
// fixed-length (the template's field_length) or variable-length (field_length
// == 0xFFFF, 1-or-3-byte prefix).
type BytesValue []byte

func (BytesValue) Kind() AbstractDataType { return Bytes }

func decodeBytes(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	v, consumed, err := readVariableLength(buf, offset, length)
	if err != nil {
		return nil, 0, err
	}
	return BytesValue(v), consumed, nil
}

func encodeBytes(w *patchWriter, offset int, v BytesValue, length uint16) (int, error) {
	return writeVariableLength(w, offset, Bytes, v, length)
}

// readVariableLength reads a field's raw payload bytes. If length is the
// variableLength sentinel, it first reads the 1-byte (or 3-byte long-form:
// 0xFF followed by a u16) length prefix per RFC 7011 section 7; otherwise length is the
// fixed payload size and no prefix is present. It returns the total number
// of bytes consumed, prefix included.
func readVariableLength(buf *bytes.Buffer, offset int, length uint16) ([]byte, int, error) {
	if length != variableLength {
		v := make([]byte, length)
		if _, err := readFull(buf, v); err != nil {
			return nil, 0, err
		}
		return v, int(length), nil
	}

	shortLen, err := buf.ReadByte()
	if err != nil {
		return nil, 0, err
	}

	var actualLength int
	prefixLen := 1
	if shortLen == 255 {
		longLen, err := readUint16(buf)
		if err != nil {
			return nil, 0, err
		}
		actualLength = int(longLen)
		prefixLen = 3
	} else {
		actualLength = int(shortLen)
	}

	v := make([]byte, actualLength)
	if _, err := readFull(buf, v); err != nil {
		return nil, 0, err
	}
	return v, prefixLen + actualLength, nil
}

// writeVariableLength appends v's payload to w, prefixed per the
// variable-length encoding law if length is the variableLength sentinel,
// or as a bare fixed-size payload otherwise. It returns the total number of
// bytes written, prefix included. ty is used only to build a TypeLength
// error if a fixed-length field's value doesn't match its declared length.
func writeVariableLength(w *patchWriter, offset int, ty AbstractDataType, v []byte, length uint16) (int, error) {
	if length != variableLength {
		if len(v) != int(length) {
			return 0, typeLength(offset, ty, uint16(len(v)))
		}
		w.write(v)
		return len(v), nil
	}

	if len(v) > maxVariableLength {
		return 0, variableLengthOverflow(offset, len(v))
	}

	if len(v) < 255 {
		w.write([]byte{byte(len(v))})
		w.write(v)
		return 1 + len(v), nil
	}

	w.write([]byte{255})
	w.writeUint16(uint16(len(v)))
	w.write(v)
	return 3 + len(v), nil
}
