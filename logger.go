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
	"context"
	"sync"

	"github.com/go-logr/logr"
)

// SetLogger installs the logging backend every logger handed out by this
// package delegates to. Decoder and Encoder derive their named loggers from
// Log at construction time, before any backend may exist; delegation is
// resolved per call, so those loggers pick up a backend installed later.
// Until one is installed, log lines are discarded.
func SetLogger(l logr.Logger) {
	root.set(l.GetSink())
}

// FromContext returns a logger from ctx if one was stored with IntoContext,
// falling back to the package-level Log.
func FromContext(ctx context.Context, keysAndValues ...interface{}) logr.Logger {
	log := Log
	if ctx != nil {
		if logger, err := logr.FromContext(ctx); err == nil {
			log = logger
		}
	}
	return log.WithValues(keysAndValues...)
}

// IntoContext stores l in ctx for retrieval with FromContext.
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// Log is the package-level logger, in the delegating style of
// controller-runtime's log package: the codec never names a concrete logging
// implementation, callers install one with SetLogger whenever it suits them.
var Log = logr.New(&delegatingLogSink{root: root})

var root = &rootSink{}

// rootSink holds the backend installed by SetLogger. Reads vastly outnumber
// the single write.
type rootSink struct {
	mu   sync.RWMutex
	sink logr.LogSink
}

func (r *rootSink) set(sink logr.LogSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = sink
}

func (r *rootSink) get() (logr.LogSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sink, r.sink != nil
}

// delegatingLogSink looks the installed backend up on every call and replays
// the WithName/WithValues segments accumulated so far onto it. The replay
// chain stays a segment or two deep here (Decoder and Encoder each derive
// one named logger), so the per-call cost is a non-concern next to actually
// emitting a log line.
type delegatingLogSink struct {
	root   *rootSink
	info   logr.RuntimeInfo
	names  []string
	values []interface{}
}

var _ logr.LogSink = (*delegatingLogSink)(nil)

func (l *delegatingLogSink) resolve() (logr.LogSink, bool) {
	sink, ok := l.root.get()
	if !ok {
		return nil, false
	}
	for _, name := range l.names {
		sink = sink.WithName(name)
	}
	if len(l.values) > 0 {
		sink = sink.WithValues(l.values...)
	}
	if withCallDepth, ok := sink.(logr.CallDepthLogSink); ok {
		sink = withCallDepth.WithCallDepth(1)
	}
	return sink, true
}

func (l *delegatingLogSink) Init(info logr.RuntimeInfo) {
	l.info = info
}

func (l *delegatingLogSink) Enabled(level int) bool {
	sink, ok := l.resolve()
	return ok && sink.Enabled(level)
}

func (l *delegatingLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if sink, ok := l.resolve(); ok {
		sink.Info(level, msg, keysAndValues...)
	}
}

func (l *delegatingLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if sink, ok := l.resolve(); ok {
		sink.Error(err, msg, keysAndValues...)
	}
}

func (l *delegatingLogSink) WithName(name string) logr.LogSink {
	names := make([]string, 0, len(l.names)+1)
	names = append(append(names, l.names...), name)
	return &delegatingLogSink{root: l.root, info: l.info, names: names, values: l.values}
}

func (l *delegatingLogSink) WithValues(tags ...interface{}) logr.LogSink {
	values := make([]interface{}, 0, len(l.values)+len(tags))
	values = append(append(values, l.values...), tags...)
	return &delegatingLogSink{root: l.root, info: l.info, names: l.names, values: values}
}
