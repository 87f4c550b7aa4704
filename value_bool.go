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

// BoolValue is the boolean abstract type. RFC 7011 section 6.1.5 defines
// 1 as true and 2 as false, leaving other octet values undefined; decoding
// treats exactly 1 as true and anything else as false, and encoding always
// emits the canonical 1/2 pair.
type BoolValue bool

func (BoolValue) Kind() AbstractDataType { return Bool }

func decodeBool(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	if length != 1 {
		return nil, 0, typeLength(offset, Bool, length)
	}
	b, err := buf.ReadByte()
	if err != nil {
		return nil, 0, err
	}
	return BoolValue(b == 1), 1, nil
}

func encodeBool(w *patchWriter, v BoolValue) (int, error) {
	if v {
		w.write([]byte{1})
	} else {
		w.write([]byte{2})
	}
	return 1, nil
}
