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
	"net/netip"
)

// Ipv4AddrValue and Ipv6AddrValue hold addresses in their fixed 4- and
// 16-octet wire forms. The Addr accessors expose them as netip.Addr, which
// is comparable and allocation-free, unlike net.IP.
type Ipv4AddrValue [4]byte
type Ipv6AddrValue [16]byte

func (Ipv4AddrValue) Kind() AbstractDataType { return Ipv4Addr }
func (Ipv6AddrValue) Kind() AbstractDataType { return Ipv6Addr }

func (v Ipv4AddrValue) Addr() netip.Addr { return netip.AddrFrom4(v) }
func (v Ipv6AddrValue) Addr() netip.Addr { return netip.AddrFrom16(v) }

func decodeIpv4Addr(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	if length != 4 {
		return nil, 0, typeLength(offset, Ipv4Addr, length)
	}
	var v Ipv4AddrValue
	if _, err := readFull(buf, v[:]); err != nil {
		return nil, 0, err
	}
	return v, 4, nil
}

func decodeIpv6Addr(buf *bytes.Buffer, offset int, length uint16) (DataRecordValue, int, error) {
	if length != 16 {
		return nil, 0, typeLength(offset, Ipv6Addr, length)
	}
	var v Ipv6AddrValue
	if _, err := readFull(buf, v[:]); err != nil {
		return nil, 0, err
	}
	return v, 16, nil
}

func encodeIpv4Addr(w *patchWriter, v Ipv4AddrValue) (int, error) {
	w.write(v[:])
	return 4, nil
}

func encodeIpv6Addr(w *patchWriter, v Ipv6AddrValue) (int, error) {
	w.write(v[:])
	return 16, nil
}
