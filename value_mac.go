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

// MacAddressValue is a fixed 6-octet hardware address; no other length is valid.
type MacAddressValue [6]byte

func (MacAddressValue) Kind() AbstractDataType { return MacAddress }

func decodeMacAddress(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	if length != 6 {
		return nil, 0, typeLength(offset, MacAddress, length)
	}
	var v MacAddressValue
	if _, err := readFull(buf, v[:]); err != nil {
		return nil, 0, err
	}
	return v, 6, nil
}

func encodeMacAddress(w *patchWriter, v MacAddressValue) (int, error) {
	w.write(v[:])
	return 6, nil
}
