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
	"time"

	"github.com/go-logr/logr"
)

// CompletionHook is called once per Decode call, after parsing has finished
// (successfully or not), with the resulting Message (nil on error) and the
// error (nil on success).
type CompletionHook func(*Message, error)

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithDecoderLogger overrides the logger a Decoder uses, which otherwise
// defaults to the package-level delegating Log.
func WithDecoderLogger(l logr.Logger) DecoderOption {
	return func(d *Decoder) { d.log = l }
}

// WithCompletionHook registers a hook invoked after every Decode call.
func WithCompletionHook(hook CompletionHook) DecoderOption {
	return func(d *Decoder) { d.completionHook = hook }
}

// Decoder wraps ParseMessage with logging and Prometheus metrics. It carries
// no transport underneath it: callers supply the bytes of exactly one
// message, however they were delivered.
type Decoder struct {
	store          TemplateStore
	formatter      *Formatter
	log            logr.Logger
	completionHook CompletionHook
}

// NewDecoder builds a Decoder against store and formatter. store may be a
// LocalTemplateStore or a SyncTemplateStore depending on whether the caller
// needs concurrent access.
func NewDecoder(store TemplateStore, formatter *Formatter, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		store:     store,
		formatter: formatter,
		log:       Log.WithName("decoder"),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.initMetrics()
	return d
}

// initMetrics pre-registers every counter label series at zero, so a decoder
// that has not yet seen a given set kind still reports a data point instead
// of leaving a gap in Prometheus.
func (d *Decoder) initMetrics() {
	PacketsTotal.Add(0)
	ErrorsTotal.Add(0)
	DurationMicroseconds.Observe(0)
	for _, kind := range []string{"template", "options_template", "data"} {
		DecodedSets.WithLabelValues(kind).Add(0)
		DecodedRecords.WithLabelValues(kind).Add(0)
		DroppedRecords.WithLabelValues(kind).Add(0)
	}
}

// Decode parses one message from b, recording decode duration, packet and
// set/record counts, and errors to the package's Prometheus metrics.
func (d *Decoder) Decode(b []byte) (*Message, error) {
	start := time.Now()
	msg, err := ParseMessage(b, d.store, d.formatter)
	DurationMicroseconds.Observe(float64(time.Since(start).Microseconds()))
	PacketsTotal.Inc()

	if err != nil {
		ErrorsTotal.Inc()
		d.log.Error(err, "failed to decode ipfix message")
	} else {
		for _, set := range msg.Sets {
			switch set.Kind {
			case SetKindTemplate:
				DecodedSets.WithLabelValues("template").Inc()
				DecodedRecords.WithLabelValues("template").Add(float64(len(set.TemplateRecords)))
				for _, tr := range set.TemplateRecords {
					d.log.V(1).Info("installed template", "templateId", tr.TemplateId, "fields", len(tr.FieldSpecifiers))
				}
			case SetKindOptionsTemplate:
				DecodedSets.WithLabelValues("options_template").Inc()
				DecodedRecords.WithLabelValues("options_template").Add(float64(len(set.OptionsTemplateRecords)))
				for _, otr := range set.OptionsTemplateRecords {
					d.log.V(1).Info("installed options template", "templateId", otr.TemplateId, "fields", len(otr.FieldSpecifiers))
				}
			case SetKindData:
				DecodedSets.WithLabelValues("data").Inc()
				DecodedRecords.WithLabelValues("data").Add(float64(len(set.DataRecords)))
			}
		}
	}

	if d.completionHook != nil {
		d.completionHook(msg, err)
	}

	return msg, err
}
