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

/*
Package ipfix implements a template-driven read/write codec for the IPFIX
protocol (IP Flow Information Export, RFC 7011).

# Overview

IPFIX is a self-describing binary wire format: exporters emit template
records that describe the shape of subsequent data records, and a collector
can only decode a data record if it has previously seen the template that
governs it. This package's job is to turn an IPFIX message's bytes into a
structured Message (and back), while maintaining that template context
across messages via a TemplateStore.

Decoding a message accumulates template definitions into the store supplied
by the caller as it parses; a later set in the same message may reference a
template installed by an earlier one. Encoding is the mirror: lengths that
are not known up front, because they depend on the encoded size of nested
children, are back-patched once the children have been written.

# Data structures

A Message contains an ordered sequence of Sets. Each Set is one of a
template set (set id 2), an options-template set (set id 3), or a data set
(set id > 255, referring to the template with that id). Each set contains
one or more records; data records are decoded into a map from DataRecordKey
to DataRecordValue, using the field specifiers of the template that governs
the enclosing set.

Field semantics are resolved through a Formatter, which maps
(enterprise number, information element id) pairs to a name and an
AbstractDataType. DefaultFormatter returns the table for IANA's standard
registry (enterprise number 0); vendor-specific elements can be added with
(*Formatter).Extend.

# Scope

This package implements the RFC 7011 core: the wire framer, the template
store, the information-element formatter, and the value codec for every
IPFIX abstract type, including the variable-length encoding described in
RFC 7011 section 7. It does not implement RFC 6313 structured-data types
(basicList, subTemplateList, subTemplateMultiList), RFC 5103 bidirectional
flow semantics, or RFC 5610 dynamic information-element type records, and it
performs no network I/O of its own: callers supply bytes to ParseMessage and
an io.Writer to (*Message).WriteTo however they obtained or will deliver
them.
*/
package ipfix
