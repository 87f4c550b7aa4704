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
	"encoding/binary"
	"errors"
	"io"
)

// enterpriseBit marks an information element identifier as enterprise-specific
// on the wire (RFC 7011 section 3.2).
const enterpriseBit uint16 = 1 << 15

// variableLength is the field_length sentinel (0xFFFF) meaning a field's
// on-wire value carries its own length prefix instead of a fixed size.
const variableLength uint16 = 0xFFFF

// take returns a bounded view over the next n bytes of buf, consuming them
// from buf. Decoding a set or a record never reads past the boundary its
// enclosing length declared, which is what keeps a malformed inner length
// from causing unbounded re-entry into the parser.
func take(buf *bytes.Buffer, n int) *bytes.Buffer {
	return bytes.NewBuffer(buf.Next(n))
}

func readUint16(buf *bytes.Buffer) (uint16, error) {
	var b [2]byte
	if _, err := readFull(buf, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func readUint32(buf *bytes.Buffer) (uint32, error) {
	var b [4]byte
	if _, err := readFull(buf, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func readFull(buf *bytes.Buffer, b []byte) (int, error) {
	n, err := buf.Read(b)
	if err == nil && n < len(b) {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}

// isShortRead reports whether err came from running out of bytes mid-decode,
// as opposed to a structural decode failure. A record loop that hits a short
// read stops cleanly instead of erroring: RFC 7011 sets are padded to their
// declared alignment, and the trailing zero bytes of that padding are not
// enough to hold another record.
func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// patchWriter accumulates written bytes and allows a previously written
// 16-bit field to be overwritten once its final value is known, implementing
// the seek-and-patch pattern the message/set length fields require: a
// placeholder is written up front, children are appended after it, and once
// their total size is known the placeholder is patched in place. Accumulating
// into a byte slice sidesteps needing an io.Seeker from the caller.
type patchWriter struct {
	buf bytes.Buffer
}

// reserveUint16 writes a zero placeholder and returns its offset for a later patch.
func (w *patchWriter) reserveUint16() int {
	offset := w.buf.Len()
	w.buf.Write([]byte{0, 0})
	return offset
}

func (w *patchWriter) patchUint16(offset int, v uint16) {
	b := w.buf.Bytes()
	binary.BigEndian.PutUint16(b[offset:offset+2], v)
}

func (w *patchWriter) writeUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *patchWriter) writeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *patchWriter) write(b []byte) {
	w.buf.Write(b)
}

func (w *patchWriter) len() int {
	return w.buf.Len()
}

func (w *patchWriter) bytes() []byte {
	return w.buf.Bytes()
}
