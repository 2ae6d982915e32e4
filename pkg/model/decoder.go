package model

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-listing/pkg/coerce"
	"github.com/goliatone/go-listing/pkg/diagnostics"
)

// Record is an untyped JSON object as produced by encoding/json.
type Record = map[string]any

var (
	// ErrMissingID reports a payload element without a usable identity.
	ErrMissingID = errors.New("missing id")
	// ErrNotObject reports a payload element that is not a JSON object.
	ErrNotObject = errors.New("payload is not an object")
	// ErrMissingField reports a required non-identity field.
	ErrMissingField = errors.New("missing required field")
)

// Option customises a Decoder.
type Option func(*Decoder)

// WithSink routes absorbed decode failures to sink.
func WithSink(sink diagnostics.Sink) Option {
	return func(d *Decoder) {
		d.sink = sink
	}
}

// WithSanitizer replaces the policy used to strip markup from excerpts.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(d *Decoder) {
		d.policy = policy
	}
}

// Decoder turns payload records into models. The zero value is not usable;
// build one with NewDecoder or use Default.
type Decoder struct {
	sink   diagnostics.Sink
	policy *bluemonday.Policy
}

// NewDecoder constructs a Decoder. Without options failures are logged through
// slog.Default and excerpts are stripped with bluemonday's strict policy.
func NewDecoder(options ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.sink == nil {
		d.sink = diagnostics.Slog(nil)
	}
	if d.policy == nil {
		d.policy = bluemonday.StrictPolicy()
	}
	return d
}

var defaultDecoder = sync.OnceValue(func() *Decoder { return NewDecoder() })

// Default returns the shared Decoder used by the package level Decode*
// helpers.
func Default() *Decoder {
	return defaultDecoder()
}

func (d *Decoder) orDefault() *Decoder {
	if d == nil {
		return Default()
	}
	return d
}

func (d *Decoder) report(entity string, err error) {
	if d.sink == nil {
		return
	}
	d.sink.DecodeFailed(entity, err)
}

// sanitize strips markup and decodes entities left behind by the policy.
func (d *Decoder) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(d.policy.Sanitize(trimmed)))
}

// decode runs fn over raw, converting errors and panics into an absent result
// reported to the sink.
func decode[T any](d *Decoder, entity string, raw any, fn func(Record) (T, error)) (out T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, ok = zero, false
			d.report(entity, fmt.Errorf("model: %s: recovered: %v", entity, r))
		}
	}()

	rec, isRecord := coerce.Record(raw)
	if !isRecord {
		d.report(entity, fmt.Errorf("model: %s: %w", entity, ErrNotObject))
		return out, false
	}
	value, err := fn(rec)
	if err != nil {
		d.report(entity, fmt.Errorf("model: %s: %w", entity, err))
		return out, false
	}
	return value, true
}

// decodeList decodes raw element-wise, dropping elements that fail.
func decodeList[T any](d *Decoder, entity string, raw any, fn func(Record) (T, error)) []T {
	items := coerce.List(raw)
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if value, ok := decode(d, entity, item, fn); ok {
			out = append(out, value)
		}
	}
	return out
}

// decodeOptional decodes a nested single entity. A missing value is not a
// failure; a malformed one is reported and yields nil.
func decodeOptional[T any](d *Decoder, entity string, raw any, fn func(Record) (T, error)) *T {
	if raw == nil {
		return nil
	}
	if s, isString := raw.(string); isString && strings.TrimSpace(s) == "" {
		return nil
	}
	value, ok := decode(d, entity, raw, fn)
	if !ok {
		return nil
	}
	return &value
}

func requireID(raw Record, keys ...string) (int, error) {
	id, ok := coerce.ID(coerce.First(raw, keys...))
	if !ok {
		return 0, ErrMissingID
	}
	return id, nil
}

func text(raw Record, keys ...string) string {
	return strings.TrimSpace(coerce.String(coerce.First(raw, keys...)))
}
