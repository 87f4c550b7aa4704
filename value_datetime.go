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

// DateTimeSecondsValue holds seconds since the Unix epoch in a 4-byte field.
type DateTimeSecondsValue uint32

// DateTimeMillisecondsValue, DateTimeMicrosecondsValue, and
// DateTimeNanosecondsValue hold their respective units since the Unix epoch
// in 8-byte fields. RFC 7011 specifies NTP-derived encodings for the micro-
// and nanosecond variants; this codec stores the raw 64-bit wire value and
// leaves interpretation to the caller.
type DateTimeMillisecondsValue uint64
type DateTimeMicrosecondsValue uint64
type DateTimeNanosecondsValue uint64

func (DateTimeSecondsValue) Kind() AbstractDataType      { return DateTimeSeconds }
func (DateTimeMillisecondsValue) Kind() AbstractDataType { return DateTimeMilliseconds }
func (DateTimeMicrosecondsValue) Kind() AbstractDataType { return DateTimeMicroseconds }
func (DateTimeNanosecondsValue) Kind() AbstractDataType  { return DateTimeNanoseconds }

func decodeDateTimeSeconds(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	if length != 4 {
		return nil, 0, typeLength(offset, DateTimeSeconds, length)
	}
	v, err := readUint32(buf)
	if err != nil {
		return nil, 0, err
	}
	return DateTimeSecondsValue(v), 4, nil
}

func decodeDateTimeMilliseconds(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	v, err := decodeUint64Field(buf, offset, DateTimeMilliseconds, length)
	if err != nil {
		return nil, 0, err
	}
	return DateTimeMillisecondsValue(v), 8, nil
}

func decodeDateTimeMicroseconds(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	v, err := decodeUint64Field(buf, offset, DateTimeMicroseconds, length)
	if err != nil {
		return nil, 0, err
	}
	return DateTimeMicrosecondsValue(v), 8, nil
}

func decodeDateTimeNanoseconds(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	v, err := decodeUint64Field(buf, offset, DateTimeNanoseconds, length)
	if err != nil {
		return nil, 0, err
	}
	return DateTimeNanosecondsValue(v), 8, nil
}

func decodeUint64Field(buf *bytes.Buffer, offset int, ty AbstractDataType, length uint16) (uint64, error) {
	if length != 8 {
		return 0, typeLength(offset, ty, length)
	}
	hi, err := readUint32(buf)
	if err != nil {
		return 0, err
	}
	lo, err := readUint32(buf)
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

func encodeDateTimeSeconds(w *patchWriter, v DateTimeSecondsValue) (int, error) {
	w.writeUint32(uint32(v))
	return 4, nil
}

func encodeDateTimeMilliseconds(w *patchWriter, v DateTimeMillisecondsValue) (int, error) {
	return encodeUint64Field(w, uint64(v))
}

func encodeDateTimeMicroseconds(w *patchWriter, v DateTimeMicrosecondsValue) (int, error) {
	return encodeUint64Field(w, uint64(v))
}

func encodeDateTimeNanoseconds(w *patchWriter, v DateTimeNanosecondsValue) (int, error) {
	return encodeUint64Field(w, uint64(v))
}

func encodeUint64Field(w *patchWriter, v uint64) (int, error) {
	w.writeUint32(uint32(v >> 32))
	w.writeUint32(uint32(v))
	return 8, nil
}
