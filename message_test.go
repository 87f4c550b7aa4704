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
	"encoding/hex"
	"errors"
	"testing"
)

// pskReporterFullPacketHex is a complete PSK Reporter message: an
// options-template set (0x9992), a template set (0x9993), a data set against
// 0x9992 (one receiver-information record), and a data set against 0x9993
// (two sender-spot records).
const pskReporterFullPacketHex = "000A00AC47953272000000010000000000030024999200030000" +
	"8002FFFF0000768F8004FFFF0000768F8008FFFF0000768F0000" +
	"0002002C999300058001FFFF0000768F800500040000768F800AFFFF0000768F800B00010000768F0096000499920020" +
	"044E31445106464E3432686E0D486F6D65627265772076352E36" +
	"00009993002C044E31445100D6B3270350534B0147953254064B42314D425800D6B4CB0350534B014795326800" +
	"00"

// pskReporterDataOnlyPacketHex carries the same two data sets against
// templates already installed by pskReporterFullPacketHex, with a different
// sequence_number and no template sets of its own.
const pskReporterDataOnlyPacketHex = "000A005C47953272000000040000000099920020" +
	"044E31445106464E3432686E0D486F6D65627265772076352E36" +
	"00009993002C044E31445100D6B3270350534B0147953254064B42314D425800D6B4CB0350534B014795326800" +
	"00"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex fixture: %v", err)
	}
	return b
}

func pskReporterFormatter() *Formatter {
	f := DefaultFormatter()
	f.Extend(PskReporterFormatterEntries)
	return f
}

func TestParseMessagePskReporterFullPacket(t *testing.T) {
	formatter := pskReporterFormatter()
	store := NewLocalTemplateStore()
	b := mustHex(t, pskReporterFullPacketHex)

	msg, err := ParseMessage(b, store, formatter)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}

	if msg.ExportTime != 1200960114 || msg.SequenceNumber != 1 || msg.ObservationDomainId != 0 {
		t.Fatalf("unexpected header: %+v", msg)
	}
	if len(msg.Sets) != 4 {
		t.Fatalf("expected 4 sets, got %d", len(msg.Sets))
	}
	if msg.Sets[0].Kind != SetKindOptionsTemplate || msg.Sets[1].Kind != SetKindTemplate {
		t.Fatalf("expected options-template then template set, got %+v, %+v", msg.Sets[0].Kind, msg.Sets[1].Kind)
	}

	if _, ok := store.Get(0x9992); !ok {
		t.Fatalf("options template 0x9992 not installed")
	}
	if _, ok := store.Get(0x9993); !ok {
		t.Fatalf("template 0x9993 not installed")
	}

	dataRecords := msg.DataRecords()
	if len(dataRecords) != 3 {
		t.Fatalf("expected 3 data records across both data sets, got %d", len(dataRecords))
	}

	receiverInfo := dataRecords[0]
	assertStringValue(t, receiverInfo, "receiverCallsign", "N1DQ")
	assertStringValue(t, receiverInfo, "receiverLocator", "FN42hn")
	assertStringValue(t, receiverInfo, "decoderSoftware", "Homebrew v5.6")

	record1 := dataRecords[1]
	assertStringValue(t, record1, "senderCallsign", "N1DQ")
	assertUnsignedValue(t, record1, "frequency", 14070567)
	assertStringValue(t, record1, "mode", "PSK")
	assertUnsignedValue(t, record1, "informationSource", 1)
	if v, ok := record1.Values[NamedKey("flowStartSeconds")].(DateTimeSecondsValue); !ok || uint32(v) != 1200960084 {
		t.Fatalf("record1 flowStartSeconds = %#v, want 1200960084", record1.Values[NamedKey("flowStartSeconds")])
	}

	record2 := dataRecords[2]
	assertStringValue(t, record2, "senderCallsign", "KB1MBX")
	assertUnsignedValue(t, record2, "frequency", 14070987)
}

// assertStringValue requires key to resolve to a StringValue equal to want.
func assertStringValue(t *testing.T, dr DataRecord, name, want string) {
	t.Helper()
	v, ok := dr.Values[NamedKey(name)].(StringValue)
	if !ok || string(v) != want {
		t.Fatalf("%s = %#v, want %q", name, dr.Values[NamedKey(name)], want)
	}
}

// assertUnsignedValue requires key to resolve to one of the U8/U16/U32/U64
// variants and its value, widened to uint64, to equal want.
func assertUnsignedValue(t *testing.T, dr DataRecord, name string, want uint64) {
	t.Helper()
	var got uint64
	switch v := dr.Values[NamedKey(name)].(type) {
	case U8:
		got = uint64(v)
	case U16:
		got = uint64(v)
	case U32:
		got = uint64(v)
	case U64:
		got = uint64(v)
	default:
		t.Fatalf("%s is %T, want an unsigned int variant", name, dr.Values[NamedKey(name)])
	}
	if got != want {
		t.Fatalf("%s = %d, want %d", name, got, want)
	}
}

// TestRoundTrip re-encodes a parsed message and checks the result is
// byte-identical to the input, at the alignment the fixture was built with.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		hex  string
	}{
		{"full packet", pskReporterFullPacketHex},
		{"data only packet", pskReporterDataOnlyPacketHex},
	}

	formatter := pskReporterFormatter()
	store := NewLocalTemplateStore()

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := mustHex(t, c.hex)
			msg, err := ParseMessage(in, store, formatter)
			if err != nil {
				t.Fatalf("ParseMessage: %v", err)
			}

			var out bytes.Buffer
			if _, err := msg.WriteTo(&out, store, 4); err != nil {
				t.Fatalf("WriteTo: %v", err)
			}

			if !bytes.Equal(in, out.Bytes()) {
				t.Fatalf("round trip mismatch:\n in = %x\nout = %x", in, out.Bytes())
			}
		})
	}
}

// TestParseMessageTruncatedSet cuts the PSK Reporter fixture short in the
// middle of its last data set; the declared message length is then no longer
// satisfiable and parsing must fail instead of treating the stump as padding.
func TestParseMessageTruncatedSet(t *testing.T) {
	formatter := pskReporterFormatter()
	store := NewLocalTemplateStore()
	b := mustHex(t, pskReporterFullPacketHex)

	_, err := ParseMessage(b[:len(b)-20], store, formatter)
	if err == nil {
		t.Fatal("expected an error for a truncated message")
	}
}

func TestParseMessageReservedSetId(t *testing.T) {
	store := NewLocalTemplateStore()
	// A header followed by a set with id 4, which RFC 7011 reserves.
	b := mustHex(t, "000A001800000000000000000000000000040008DEADBEEF")

	_, err := ParseMessage(b, store, DefaultFormatter())
	if !errors.Is(err, ErrReservedSetId) {
		t.Fatalf("expected ErrReservedSetId, got %v", err)
	}
}

func TestParseMessageShortSet(t *testing.T) {
	store := NewLocalTemplateStore()
	// A data set id with a declared length of 4, leaving no room for records.
	b := mustHex(t, "000A00140000000000000000000000000400000400000000")

	_, err := ParseMessage(b, store, DefaultFormatter())
	if !errors.Is(err, ErrShortSet) {
		t.Fatalf("expected ErrShortSet, got %v", err)
	}
}

func TestParseMessageBadMagic(t *testing.T) {
	formatter := DefaultFormatter()
	store := NewLocalTemplateStore()
	b := mustHex(t, "000100000000000000000000")

	_, err := ParseMessage(b, store, formatter)
	if err == nil {
		t.Fatal("expected an error for a non-IPFIX version field")
	}
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}
