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

// AbstractDataType is the RFC 7011 section 3.1 abstract data type of an
// information element, as resolved by a Formatter. It governs which
// DataRecordValue variant a field's bytes decode into and at which lengths.
//
// This excludes the RFC 6313 structured-data types (basicList,
// subTemplateList, subTemplateMultiList); a Formatter entry naming one of
// those is rejected rather than mapped to a tag here.
type AbstractDataType uint8

const (
	UnsignedInt AbstractDataType = iota
	SignedInt
	Float
	Bool
	MacAddress
	Bytes
	String
	DateTimeSeconds
	DateTimeMilliseconds
	DateTimeMicroseconds
	DateTimeNanoseconds
	Ipv4Addr
	Ipv6Addr
)

func (t AbstractDataType) String() string {
	switch t {
	case UnsignedInt:
		return "unsignedInt"
	case SignedInt:
		return "signedInt"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case MacAddress:
		return "macAddress"
	case Bytes:
		return "bytes"
	case String:
		return "string"
	case DateTimeSeconds:
		return "dateTimeSeconds"
	case DateTimeMilliseconds:
		return "dateTimeMilliseconds"
	case DateTimeMicroseconds:
		return "dateTimeMicroseconds"
	case DateTimeNanoseconds:
		return "dateTimeNanoseconds"
	case Ipv4Addr:
		return "ipv4Address"
	case Ipv6Addr:
		return "ipv6Address"
	default:
		return "unknown"
	}
}

// abstractDataTypeFromIANA maps the raw "Abstract Data Type" column of the
// IANA registry (and vendor formatter entries, which use the same strings)
// onto the tag set above. Unrecognized strings, including the RFC 6313 list
// types, return ok == false; DefaultFormatter skips such rows and
// UnmarshalFormatterYAML rejects such entries with an error.
func abstractDataTypeFromIANA(s string) (AbstractDataType, bool) {
	switch s {
	case "unsigned8", "unsigned16", "unsigned32", "unsigned64":
		return UnsignedInt, true
	case "signed8", "signed16", "signed32", "signed64":
		return SignedInt, true
	case "float32", "float64":
		return Float, true
	case "boolean":
		return Bool, true
	case "macAddress":
		return MacAddress, true
	case "octetArray":
		return Bytes, true
	case "string":
		return String, true
	case "dateTimeSeconds":
		return DateTimeSeconds, true
	case "dateTimeMilliseconds":
		return DateTimeMilliseconds, true
	case "dateTimeMicroseconds":
		return DateTimeMicroseconds, true
	case "dateTimeNanoseconds":
		return DateTimeNanoseconds, true
	case "ipv4Address":
		return Ipv4Addr, true
	case "ipv6Address":
		return Ipv6Addr, true
	default:
		// basicList, subTemplateList, subTemplateMultiList, and anything else
		// unrecognized.
		return 0, false
	}
}
