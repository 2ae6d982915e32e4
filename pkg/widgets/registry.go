package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-listing/pkg/coerce"
	"github.com/goliatone/go-listing/pkg/diagnostics"
	"github.com/goliatone/go-listing/pkg/model"
)

// DecodeFunc builds a widget variant from its payload. header already holds
// the resolved kind and the hide-flag adjusted title and description.
type DecodeFunc func(dec *model.Decoder, raw model.Record, header Header) (Widget, error)

// Option customises a Registry.
type Option func(*Registry)

// WithDecoder sets the model decoder used for widget items.
func WithDecoder(dec *model.Decoder) Option {
	return func(r *Registry) {
		r.decoder = dec
	}
}

// WithSink routes widget level decode failures to sink.
func WithSink(sink diagnostics.Sink) Option {
	return func(r *Registry) {
		r.sink = sink
	}
}

// WithFallback changes the kind used for unknown or missing "type" values.
func WithFallback(kind Kind) Option {
	return func(r *Registry) {
		r.fallback = kind
	}
}

// Registry maps widget kinds to decoders. Unknown kinds decode as the
// fallback kind (category by default) rather than failing. A Registry is safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[Kind]DecodeFunc
	fallback Kind
	decoder  *model.Decoder
	sink     diagnostics.Sink
}

// NewRegistry constructs a registry with the built-in widget kinds
// registered.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{
		decoders: make(map[Kind]DecodeFunc),
		fallback: KindCategory,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.decoder == nil {
		r.decoder = model.Default()
	}
	if r.sink == nil {
		r.sink = diagnostics.Slog(nil)
	}
	r.registerBuiltins()
	return r
}

// Register adds or replaces the decoder for kind. The latest registration
// wins.
func (r *Registry) Register(kind Kind, fn DecodeFunc) error {
	trimmed := Kind(strings.TrimSpace(string(kind)))
	if trimmed == "" {
		return errors.New("widgets: kind is required")
	}
	if fn == nil {
		return fmt.Errorf("widgets: decoder for %q is required", trimmed)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[trimmed] = fn
	return nil
}

// Has reports whether kind has a registered decoder.
func (r *Registry) Has(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.decoders[kind]
	return ok
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, 0, len(r.decoders))
	for kind := range r.decoders {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve maps a raw "type" value onto a registered kind, applying the
// fallback.
func (r *Registry) Resolve(raw any) Kind {
	kind, _ := r.lookup(raw)
	return kind
}

func (r *Registry) lookup(raw any) (Kind, DecodeFunc) {
	kind := Kind(strings.TrimSpace(coerce.String(raw)))
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.decoders[kind]; ok {
		return kind, fn
	}
	return r.fallback, r.decoders[r.fallback]
}

// Decode selects a decoder by raw["type"] and builds the widget. The boolean
// is false only when the payload cannot be used at all; the reason goes to
// the registry's sink.
func (r *Registry) Decode(raw model.Record) (widget Widget, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			widget, ok = nil, false
			r.sink.DecodeFailed("widget", fmt.Errorf("widgets: recovered: %v", rec))
		}
	}()

	if raw == nil {
		r.sink.DecodeFailed("widget", fmt.Errorf("widgets: %w", model.ErrNotObject))
		return nil, false
	}
	kind, fn := r.lookup(raw["type"])
	if fn == nil {
		r.sink.DecodeFailed("widget", fmt.Errorf("widgets: no decoder for %q", kind))
		return nil, false
	}

	widget, err := fn(r.decoder, raw, decodeHeader(kind, raw))
	if err != nil {
		r.sink.DecodeFailed("widget."+string(kind), fmt.Errorf("widgets: %s: %w", kind, err))
		return nil, false
	}
	if widget == nil {
		return nil, false
	}
	return widget, true
}

// DecodeAll decodes a list of widget payloads in order, skipping entries that
// are absent.
func (r *Registry) DecodeAll(raw any) []Widget {
	items := coerce.List(raw)
	out := make([]Widget, 0, len(items))
	for _, item := range items {
		rec, isRecord := coerce.Record(item)
		if !isRecord {
			r.sink.DecodeFailed("widget", fmt.Errorf("widgets: %w", model.ErrNotObject))
			continue
		}
		if widget, ok := r.Decode(rec); ok {
			out = append(out, widget)
		}
	}
	return out
}

func decodeHeader(kind Kind, raw model.Record) Header {
	header := Header{Kind: kind}
	if !coerce.Bool(raw["hide_title"]) {
		header.Title = field(raw, "title")
	}
	if !coerce.Bool(raw["hide_desc"]) {
		header.Description = field(raw, "description")
	}
	return header
}

func field(raw model.Record, key string) string {
	return strings.TrimSpace(coerce.String(raw[key]))
}
