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
	"errors"
	"fmt"
)

// Sentinel errors for the structural failure kinds the framer can produce.
// Use errors.Is against these; CodecError additionally carries the byte
// offset at which the condition was detected.
var (
	ErrBadMagic               error = errors.New("bad magic: not an IPFIX message")
	ErrShortSet               error = errors.New("set length too short")
	ErrReservedSetId          error = errors.New("reserved set id")
	ErrReservedTemplateId     error = errors.New("reserved template id")
	ErrTemplateNotFound       error = errors.New("template not found")
	ErrMissingField           error = errors.New("field missing from data record")
	ErrTypeLength             error = errors.New("unsupported type/length pair")
	ErrInvalidUtf8            error = errors.New("field is not valid utf-8")
	ErrVariableLengthOverflow error = errors.New("variable-length value exceeds maximum representable length")
	ErrNonVariableValue       error = errors.New("value type cannot occupy a variable-length field")
)

// CodecError wraps one of the sentinel errors above with the byte offset, relative
// to the start of the message being read or written, at which it was detected.
type CodecError struct {
	Offset int
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Err, e.Offset)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newCodecError(offset int, err error) error {
	return &CodecError{Offset: offset, Err: err}
}

func badMagic(offset int, version uint16) error {
	return newCodecError(offset, fmt.Errorf("%w: got version %d, want 10", ErrBadMagic, version))
}

func shortSet(offset int, length uint16) error {
	return newCodecError(offset, fmt.Errorf("%w: length %d", ErrShortSet, length))
}

func reservedSetId(offset int, id uint16) error {
	return newCodecError(offset, fmt.Errorf("%w: %d", ErrReservedSetId, id))
}

func reservedTemplateId(offset int, id uint16) error {
	return newCodecError(offset, fmt.Errorf("%w: %d", ErrReservedTemplateId, id))
}

func templateNotFound(offset int, templateId uint16) error {
	return newCodecError(offset, fmt.Errorf("%w: %d", ErrTemplateNotFound, templateId))
}

func missingField(offset int, key DataRecordKey) error {
	return newCodecError(offset, fmt.Errorf("%w: %s", ErrMissingField, key))
}

func typeLength(offset int, ty AbstractDataType, length uint16) error {
	return newCodecError(offset, fmt.Errorf("%w: %s at length %d", ErrTypeLength, ty, length))
}

func invalidUtf8(offset int) error {
	return newCodecError(offset, ErrInvalidUtf8)
}

func variableLengthOverflow(offset int, length int) error {
	return newCodecError(offset, fmt.Errorf("%w: %d", ErrVariableLengthOverflow, length))
}

func nonVariableValue(offset int, ty AbstractDataType) error {
	return newCodecError(offset, fmt.Errorf("%w: %s", ErrNonVariableValue, ty))
}
