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
	"io"
	"time"

	"github.com/go-logr/logr"
)

// EncoderOption configures an Encoder at construction time.
type EncoderOption func(*Encoder)

// WithEncoderLogger overrides the logger an Encoder uses, which otherwise
// defaults to the package-level delegating Log.
func WithEncoderLogger(l logr.Logger) EncoderOption {
	return func(e *Encoder) { e.log = l }
}

// WithAlignment sets the alignment each set's total length is padded to.
// The default is 4, matching RFC 7011's usual word alignment.
func WithAlignment(alignment uint8) EncoderOption {
	return func(e *Encoder) { e.alignment = alignment }
}

// Encoder wraps (*Message).WriteTo with logging and Prometheus metrics,
// against a fixed TemplateStore every encoded message's data sets are
// resolved against.
type Encoder struct {
	store     TemplateStore
	alignment uint8
	log       logr.Logger
}

// NewEncoder builds an Encoder against store, defaulting to 4-byte alignment.
func NewEncoder(store TemplateStore, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		store:     store,
		alignment: 4,
		log:       Log.WithName("encoder"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes msg to w, recording encode duration and errors to the
// package's Prometheus metrics.
func (e *Encoder) Encode(w io.Writer, msg *Message) (int64, error) {
	start := time.Now()
	n, err := msg.WriteTo(w, e.store, e.alignment)
	DurationMicroseconds.Observe(float64(time.Since(start).Microseconds()))

	if err != nil {
		ErrorsTotal.Inc()
		e.log.Error(err, "failed to encode ipfix message")
	}

	return n, err
}
