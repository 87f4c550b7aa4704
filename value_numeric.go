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

// U8, U16, U32, and U64 are the four lengths RFC 7011 allows for the
// unsignedInt abstract type. There is no reduced-size decoding for arbitrary
// lengths below 8: only these four exact pairs are valid, anything else is a
// TypeLength error.
type U8 uint8
type U16 uint16
type U32 uint32
type U64 uint64

func (U8) Kind() AbstractDataType  { return UnsignedInt }
func (U16) Kind() AbstractDataType { return UnsignedInt }
func (U32) Kind() AbstractDataType { return UnsignedInt }
func (U64) Kind() AbstractDataType { return UnsignedInt }

// I8, I16, I32, and I64 are the four lengths RFC 7011 allows for the
// signedInt abstract type, under the same exact-length rule as UnsignedInt.
type I8 int8
type I16 int16
type I32 int32
type I64 int64

func (I8) Kind() AbstractDataType  { return SignedInt }
func (I16) Kind() AbstractDataType { return SignedInt }
func (I32) Kind() AbstractDataType { return SignedInt }
func (I64) Kind() AbstractDataType { return SignedInt }

func decodeUnsignedInt(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	switch length {
	case 1:
		b, err := buf.ReadByte()
		if err != nil {
			return nil, 0, err
		}
		return U8(b), 1, nil
	case 2:
		v, err := readUint16(buf)
		if err != nil {
			return nil, 0, err
		}
		return U16(v), 2, nil
	case 4:
		v, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		return U32(v), 4, nil
	case 8:
		hi, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		lo, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		return U64(uint64(hi)<<32 | uint64(lo)), 8, nil
	default:
		return nil, 0, typeLength(offset, UnsignedInt, length)
	}
}

func decodeSignedInt(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	switch length {
	case 1:
		b, err := buf.ReadByte()
		if err != nil {
			return nil, 0, err
		}
		return I8(int8(b)), 1, nil
	case 2:
		v, err := readUint16(buf)
		if err != nil {
			return nil, 0, err
		}
		return I16(int16(v)), 2, nil
	case 4:
		v, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		return I32(int32(v)), 4, nil
	case 8:
		hi, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		lo, err := readUint32(buf)
		if err != nil {
			return nil, 0, err
		}
		return I64(int64(uint64(hi)<<32 | uint64(lo))), 8, nil
	default:
		return nil, 0, typeLength(offset, SignedInt, length)
	}
}

func encodeUnsignedInt(w *patchWriter, offset int, v uint64, length uint16) (int, error) {
	switch length {
	case 1:
		w.write([]byte{byte(v)})
		return 1, nil
	case 2:
		w.writeUint16(uint16(v))
		return 2, nil
	case 4:
		w.writeUint32(uint32(v))
		return 4, nil
	case 8:
		w.writeUint32(uint32(v >> 32))
		w.writeUint32(uint32(v))
		return 8, nil
	default:
		return 0, typeLength(offset, UnsignedInt, length)
	}
}

func encodeSignedInt(w *patchWriter, offset int, v int64, length uint16) (int, error) {
	return encodeUnsignedInt(w, offset, uint64(v), length)
}
