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
	"fmt"
)

// DataRecordKeyKind distinguishes the three shapes a DataRecord's field key
// can take.
type DataRecordKeyKind uint8

const (
	// KeyNamed is a field resolved against a Formatter to a known name.
	KeyNamed DataRecordKeyKind = iota
	// KeyUnrecognized is a field whose (enterprise, id) pair has no Formatter entry.
	KeyUnrecognized
	// KeyError records that a field's specifier could not be resolved at all.
	KeyError
)

// DataRecordKey identifies one field within a DataRecord's value map. It is
// comparable so it can be used directly as a map key, matching the
// Eq+Hash derive on the type it is grounded on.
type DataRecordKey struct {
	Kind           DataRecordKeyKind
	Name           string         // set when Kind == KeyNamed
	FieldSpecifier FieldSpecifier // set when Kind == KeyUnrecognized
	Err            string         // set when Kind == KeyError
}

func NamedKey(name string) DataRecordKey {
	return DataRecordKey{Kind: KeyNamed, Name: name}
}

func UnrecognizedKey(fs FieldSpecifier) DataRecordKey {
	return DataRecordKey{Kind: KeyUnrecognized, FieldSpecifier: fs}
}

func ErrorKey(msg string) DataRecordKey {
	return DataRecordKey{Kind: KeyError, Err: msg}
}

func (k DataRecordKey) String() string {
	switch k.Kind {
	case KeyNamed:
		return k.Name
	case KeyUnrecognized:
		return fmt.Sprintf("unrecognized(%d/%d)", k.FieldSpecifier.EnterpriseNumber, k.FieldSpecifier.InformationElementIdentifier)
	case KeyError:
		return fmt.Sprintf("error(%s)", k.Err)
	default:
		return "invalid"
	}
}

// DataRecordValue is the tagged union of values a data record field can hold,
// one implementation per AbstractDataType member.
type DataRecordValue interface {
	Kind() AbstractDataType
}

// decodeValue reads one field value of abstract type ty and on-wire length
// from buf, returning the number of bytes actually consumed (equal to length
// for fixed-size types, and to the full variable-length encoding, prefix
// included, for Bytes/String).
func decodeValue(buf *bytes.Buffer, offset int, ty AbstractDataType, length uint16) (DataRecordValue, int, error) {
	switch ty {
	case UnsignedInt:
		return decodeUnsignedInt(buf, offset, length)
	case SignedInt:
		return decodeSignedInt(buf, offset, length)
	case Float:
		return decodeFloat(buf, offset, length)
	case Bool:
		return decodeBool(buf, offset, length)
	case MacAddress:
		return decodeMacAddress(buf, offset, length)
	case Bytes:
		return decodeBytes(buf, offset, length)
	case String:
		return decodeString(buf, offset, length)
	case DateTimeSeconds:
		return decodeDateTimeSeconds(buf, offset, length)
	case DateTimeMilliseconds:
		return decodeDateTimeMilliseconds(buf, offset, length)
	case DateTimeMicroseconds:
		return decodeDateTimeMicroseconds(buf, offset, length)
	case DateTimeNanoseconds:
		return decodeDateTimeNanoseconds(buf, offset, length)
	case Ipv4Addr:
		return decodeIpv4Addr(buf, offset, length)
	case Ipv6Addr:
		return decodeIpv6Addr(buf, offset, length)
	default:
		return nil, 0, typeLength(offset, ty, length)
	}
}

// encodeValue appends v's wire encoding to w, using length to decide whether
// a variable-length prefix is needed (length == variableLength) for
// Bytes/String values. It returns the number of bytes written.
//
// Only octetArray and string values have a variable-length wire form; every
// other abstract type has a fixed size, so a template slot of length 0xFFFF
// holding one of them is unencodable.
func encodeValue(w *patchWriter, offset int, v DataRecordValue, length uint16) (int, error) {
	if length == variableLength {
		switch v.(type) {
		case BytesValue, StringValue:
		default:
			return 0, nonVariableValue(offset, v.Kind())
		}
	}

	switch vv := v.(type) {
	case U8:
		return encodeUnsignedInt(w, offset, uint64(vv), 1)
	case U16:
		return encodeUnsignedInt(w, offset, uint64(vv), 2)
	case U32:
		return encodeUnsignedInt(w, offset, uint64(vv), 4)
	case U64:
		return encodeUnsignedInt(w, offset, uint64(vv), 8)
	case I8:
		return encodeSignedInt(w, offset, int64(vv), 1)
	case I16:
		return encodeSignedInt(w, offset, int64(vv), 2)
	case I32:
		return encodeSignedInt(w, offset, int64(vv), 4)
	case I64:
		return encodeSignedInt(w, offset, int64(vv), 8)
	case F32:
		return encodeFloat32(w, vv)
	case F64:
		return encodeFloat64(w, vv)
	case BoolValue:
		return encodeBool(w, vv)
	case MacAddressValue:
		return encodeMacAddress(w, vv)
	case BytesValue:
		return encodeBytes(w, offset, vv, length)
	case StringValue:
		return encodeString(w, offset, vv, length)
	case DateTimeSecondsValue:
		return encodeDateTimeSeconds(w, vv)
	case DateTimeMillisecondsValue:
		return encodeDateTimeMilliseconds(w, vv)
	case DateTimeMicrosecondsValue:
		return encodeDateTimeMicroseconds(w, vv)
	case DateTimeNanosecondsValue:
		return encodeDateTimeNanoseconds(w, vv)
	case Ipv4AddrValue:
		return encodeIpv4Addr(w, vv)
	case Ipv6AddrValue:
		return encodeIpv6Addr(w, vv)
	default:
		return 0, fmt.Errorf("ipfix: unknown DataRecordValue implementation %T", v)
	}
}
