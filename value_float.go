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
	"math"
)

type F32 float32
type F64 float64

func (F32) Kind() AbstractDataType { return Float }
func (F64) Kind() AbstractDataType { return Float }

func decodeFloat(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	switch length {
	case 4:
		v, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		return F32(math.Float32frombits(v)), 4, nil
	case 8:
		hi, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		lo, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		return F64(math.Float64frombits(uint64(hi)<<32 | uint64(lo))), 8, nil
	default:
		return nil, 0, typeLength(offset, Float, length)
	}
}

func encodeFloat32(w *patchWriter, v F32) (int, error) {
	w.writeUint32(math.Float32bits(float32(v)))
	return 4, nil
}

func encodeFloat64(w *patchWriter, v F64) (int, error) {
	bits := math.Float64bits(float64(v))
	w.writeUint32(uint32(bits >> 32))
	w.writeUint32(uint32(bits))
	return 8, nil
}
