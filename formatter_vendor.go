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

// nProbePEN is nProbe's IANA-assigned private enterprise number.
const nProbePEN = 35632

// NProbeFormatterEntries is the subset of nProbe's (ntop's "@NTOPNG@"
// template) enterprise-specific information elements exercised by DPI-derived
// DNS and HTTP flow records: application identification, HTTP metadata, DNS
// query/response fields, TCP/RTT statistics, and retransmission counters.
var NProbeFormatterEntries = []FormatterEntry{
	{EnterpriseNumber: nProbePEN, ElementId: 78, Name: "CLIENT_TCP_FLAGS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 79, Name: "SERVER_TCP_FLAGS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 80, Name: "SRC_FRAGMENTS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 81, Name: "DST_FRAGMENTS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 109, Name: "RETRANSMITTED_IN_PKTS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 110, Name: "RETRANSMITTED_OUT_PKTS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 111, Name: "OOORDER_IN_PKTS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 112, Name: "OOORDER_OUT_PKTS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 118, Name: "L7_PROTO", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 123, Name: "CLIENT_NW_LATENCY_MS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 124, Name: "SERVER_NW_LATENCY_MS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 125, Name: "APPL_LATENCY_MS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 180, Name: "HTTP_URL", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 181, Name: "HTTP_RET_CODE", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 182, Name: "HTTP_REFERER", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 183, Name: "HTTP_UA", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 184, Name: "HTTP_MIME", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 187, Name: "HTTP_HOST", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 188, Name: "TLS_SERVER_NAME", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 189, Name: "BITTORRENT_HASH", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 205, Name: "DNS_QUERY", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 206, Name: "DNS_QUERY_ID", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 207, Name: "DNS_QUERY_TYPE", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 208, Name: "DNS_RET_CODE", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 209, Name: "DNS_NUM_ANSWERS", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 278, Name: "GTPV2_APN_NAME", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 280, Name: "GTPV2_ULI_MNC", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 352, Name: "DNS_TTL_ANSWER", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 360, Name: "HTTP_METHOD", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 361, Name: "HTTP_SITE", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 380, Name: "RTP_RTT", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 398, Name: "DNS_RESPONSE", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 416, Name: "TCP_WIN_MAX_IN", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 420, Name: "TCP_WIN_MAX_OUT", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 460, Name: "HTTP_X_FORWARDED_FOR", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 461, Name: "HTTP_VIA", Type: String},
	{EnterpriseNumber: nProbePEN, ElementId: 509, Name: "L7_PROTO_RISK", Type: UnsignedInt},
	{EnterpriseNumber: nProbePEN, ElementId: 527, Name: "L7_RISK_SCORE", Type: UnsignedInt},
}

// pskReporterPEN is PSK Reporter's IANA-assigned private enterprise number.
const pskReporterPEN = 30351

// PskReporterFormatterEntries is PSK Reporter's information element registry
// (<https://pskreporter.info/pskdev.html>), covering both its receiver
// (options-template) and sender record shapes.
var PskReporterFormatterEntries = []FormatterEntry{
	{EnterpriseNumber: pskReporterPEN, ElementId: 1, Name: "senderCallsign", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 2, Name: "receiverCallsign", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 3, Name: "senderLocator", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 4, Name: "receiverLocator", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 5, Name: "frequency", Type: UnsignedInt},
	{EnterpriseNumber: pskReporterPEN, ElementId: 6, Name: "sNR", Type: UnsignedInt},
	{EnterpriseNumber: pskReporterPEN, ElementId: 7, Name: "iMD", Type: UnsignedInt},
	{EnterpriseNumber: pskReporterPEN, ElementId: 8, Name: "decoderSoftware", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 9, Name: "antennaInformation", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 10, Name: "mode", Type: String},
	{EnterpriseNumber: pskReporterPEN, ElementId: 11, Name: "informationSource", Type: UnsignedInt},
	{EnterpriseNumber: pskReporterPEN, ElementId: 12, Name: "persistentIdentifier", Type: String},
}
