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
	"unicode/utf8"
)

// StringValue is the string abstract type: UTF-8 text, fixed- or
// variable-length on the wire under the same rules as BytesValue.
type StringValue string

func (StringValue) Kind() AbstractDataType { return String }

func decodeString(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	v, consumed, err := readVariableLength(buf, offset, length)
	if err != nil {
		return nil, 0, err
	}
	if !utf8.Valid(v) {
		return nil, 0, invalidUtf8(offset)
	}
	return StringValue(v), consumed, nil
}

func encodeString(w *patchWriter, offset int, v StringValue, length uint16) (int, error) {
	return writeVariableLength(w, offset, String, []byte(v), length)
}
