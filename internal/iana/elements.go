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

// Package iana embeds the default IPFIX information-element registry (enterprise
// number 0) as a CSV resource and exposes it as a flat slice of elements, each
// carrying its raw "Abstract Data Type" column value. The root ipfix package maps
// that raw string onto its own AbstractDataType tag set; basicList/subTemplateList/
// subTemplateMultiList rows and unrecognized type strings are left for the caller
// to reject.
package iana

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

//go:embed ipfix-information-elements.csv
var registry embed.FS

// Element is one row of the IANA IPFIX information-element registry.
type Element struct {
	Id   uint16
	Name string
	// Type is the raw "Abstract Data Type" column, e.g. "unsigned32", "ipv4Address",
	// "basicList". Mapping it onto a concrete type tag is the caller's job.
	Type string
}

// Default parses and returns the embedded registry. It panics if the embedded
// CSV is malformed, which would indicate a packaging bug rather than a runtime
// condition callers should need to handle.
func Default() []Element {
	f, err := registry.Open("ipfix-information-elements.csv")
	if err != nil {
		panic(fmt.Errorf("iana: failed to open embedded registry, %w", err))
	}
	defer f.Close()

	elements, err := read(f)
	if err != nil {
		panic(fmt.Errorf("iana: failed to parse embedded registry, %w", err))
	}
	return elements
}

func read(r io.Reader) ([]Element, error) {
	cr := csv.NewReader(r)

	if _, err := cr.Read(); err != nil { // header row
		return nil, err
	}

	var elements []Element
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id, err := strconv.ParseUint(record[0], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid ElementID %q, %w", record[0], err)
		}

		elements = append(elements, Element{
			Id:   uint16(id),
			Name: record[1],
			Type: record[2],
		})
	}
	return elements, nil
}
