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

import "bytes"

// DataRecord is one record of a data set, decoded against the
// ExpandedTemplate that governs its enclosing set: one value per field
// specifier, keyed by the field's resolved DataRecordKey.
type DataRecord struct {
	Values map[DataRecordKey]DataRecordValue
}

func decodeDataRecord(buf *bytes.Buffer, offset int, template ExpandedTemplate) (DataRecord, int, error) {
	values := make(map[DataRecordKey]DataRecordValue, len(template.FieldSpecifiers))
	consumed := 0

	for _, fs := range template.FieldSpecifiers {
		value, n, err := decodeValue(buf, offset+consumed, fs.Type, fs.FieldLength)
		if err != nil {
			return DataRecord{}, 0, err
		}
		values[fs.Key] = value
		consumed += n
	}

	return DataRecord{Values: values}, consumed, nil
}

func (dr DataRecord) encode(w *patchWriter, template ExpandedTemplate) error {
	for _, fs := range template.FieldSpecifiers {
		value, ok := dr.Values[fs.Key]
		if !ok {
			return missingField(w.len(), fs.Key)
		}
		if _, err := encodeValue(w, w.len(), value, fs.FieldLength); err != nil {
			return err
		}
	}
	return nil
}
