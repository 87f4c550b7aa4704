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
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlFormatterEntry is the on-disk shape of a FormatterEntry: the abstract
// type is stored as its string name so the file stays human-editable.
type yamlFormatterEntry struct {
	EnterpriseNumber uint32 `yaml:"enterpriseNumber"`
	ElementId        uint16 `yaml:"elementId"`
	Name             string `yaml:"name"`
	Type             string `yaml:"type"`
}

// MarshalYAML serializes f's entries to YAML, for persisting a formatter
// table (default plus any vendor extensions) alongside a deployment.
func (f *Formatter) MarshalYAML() ([]byte, error) {
	entries := f.Entries()
	out := make([]yamlFormatterEntry, len(entries))
	for i, e := range entries {
		out[i] = yamlFormatterEntry{
			EnterpriseNumber: e.EnterpriseNumber,
			ElementId:        e.ElementId,
			Name:             e.Name,
			Type:             e.Type.String(),
		}
	}
	return yaml.Marshal(out)
}

// UnmarshalFormatterYAML parses a formatter table previously written by
// MarshalYAML and extends f with its entries.
func (f *Formatter) UnmarshalFormatterYAML(data []byte) error {
	var entries []yamlFormatterEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("ipfix: parsing formatter yaml: %w", err)
	}

	resolved := make([]FormatterEntry, 0, len(entries))
	for _, e := range entries {
		ty, ok := abstractDataTypeFromIANA(yamlAbstractTypeAlias(e.Type))
		if !ok {
			return fmt.Errorf("ipfix: formatter yaml entry %q: unknown abstract type %q", e.Name, e.Type)
		}
		resolved = append(resolved, FormatterEntry{
			EnterpriseNumber: e.EnterpriseNumber,
			ElementId:        e.ElementId,
			Name:             e.Name,
			Type:             ty,
		})
	}
	f.Extend(resolved)
	return nil
}

// yamlAbstractTypeAlias maps AbstractDataType.String()'s output back onto the
// IANA column spelling abstractDataTypeFromIANA expects, since the two use
// slightly different casing conventions (e.g. "bool" vs the IANA registry's
// own "boolean").
func yamlAbstractTypeAlias(s string) string {
	switch s {
	case "bool":
		return "boolean"
	case "unsignedInt":
		return "unsigned64"
	case "signedInt":
		return "signed64"
	case "float":
		return "float64"
	case "bytes":
		return "octetArray"
	default:
		return s
	}
}
