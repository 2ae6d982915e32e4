// Package listing decodes the payloads of a listing directory backend: the
// home screen widget list, paginated listing results and booking forms.
//
// The functions here accept raw response bodies. Malformed entries inside a
// payload are dropped and reported to the diagnostics sink; only a body that
// is not JSON, or has the wrong top-level shape, is an error.
package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-listing/pkg/booking"
	"github.com/goliatone/go-listing/pkg/coerce"
	"github.com/goliatone/go-listing/pkg/diagnostics"
	"github.com/goliatone/go-listing/pkg/model"
	"github.com/goliatone/go-listing/pkg/widgets"
)

// ErrUnexpectedShape is returned when a body parses but is not the expected
// object or list.
var ErrUnexpectedShape = errors.New("listing: unexpected payload shape")

// Page is one page of listing results.
type Page struct {
	Items      []model.Product
	Pagination model.Pagination
}

// Client bundles the decoder, widget registry and booking factory sharing one
// diagnostics sink. It is safe for concurrent use.
type Client struct {
	decoder  *model.Decoder
	registry *widgets.Registry
	factory  *booking.Factory
}

// Option customises a Client.
type Option func(*clientConfig)

type clientConfig struct {
	sink     diagnostics.Sink
	registry []widgets.Option
}

// WithSink routes decode failures to sink.
func WithSink(sink diagnostics.Sink) Option {
	return func(cfg *clientConfig) {
		if sink != nil {
			cfg.sink = sink
		}
	}
}

// WithRegistryOptions passes extra options to the widget registry.
func WithRegistryOptions(options ...widgets.Option) Option {
	return func(cfg *clientConfig) {
		cfg.registry = append(cfg.registry, options...)
	}
}

// New builds a Client.
func New(options ...Option) *Client {
	cfg := clientConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	var decoderOptions []model.Option
	if cfg.sink != nil {
		decoderOptions = append(decoderOptions, model.WithSink(cfg.sink))
	}
	dec := model.NewDecoder(decoderOptions...)

	registryOptions := append([]widgets.Option{widgets.WithDecoder(dec)}, cfg.registry...)
	if cfg.sink != nil {
		registryOptions = append(registryOptions, widgets.WithSink(cfg.sink))
	}

	return &Client{
		decoder:  dec,
		registry: widgets.NewRegistry(registryOptions...),
		factory:  booking.NewFactory(booking.WithDecoder(dec)),
	}
}

var defaultClient = sync.OnceValue(func() *Client { return New() })

// Registry exposes the widget registry so callers can add kinds.
func (c *Client) Registry() *widgets.Registry { return c.registry }

// Factory exposes the booking factory so callers can add styles.
func (c *Client) Factory() *booking.Factory { return c.factory }

// Decoder exposes the model decoder.
func (c *Client) Decoder() *model.Decoder { return c.decoder }

// DecodeHome decodes a home screen body: either a list of widget objects or
// an object carrying them under "data" or "widgets".
func (c *Client) DecodeHome(data []byte) ([]widgets.Widget, error) {
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}
	if record, ok := coerce.Record(doc); ok {
		doc = coerce.First(record, "data", "widgets")
	}
	if _, ok := doc.([]any); !ok {
		return nil, fmt.Errorf("%w: home expects a widget list", ErrUnexpectedShape)
	}
	return c.registry.DecodeAll(doc), nil
}

// DecodeList decodes a listing results body {data|list, pagination}. A
// missing pagination block is read from the top-level object.
func (c *Client) DecodeList(data []byte) (Page, error) {
	doc, err := parse(data)
	if err != nil {
		return Page{}, err
	}
	if items, ok := doc.([]any); ok {
		return Page{Items: c.decoder.Products(items), Pagination: model.DecodePagination(nil)}, nil
	}
	record, ok := coerce.Record(doc)
	if !ok {
		return Page{}, fmt.Errorf("%w: list expects an object", ErrUnexpectedShape)
	}
	paging, ok := coerce.Record(record["pagination"])
	if !ok {
		paging = record
	}
	return Page{
		Items:      c.decoder.Products(coerce.First(record, "data", "list")),
		Pagination: model.DecodePagination(paging),
	}, nil
}

// NewBookingDraft builds the booking style named by the body's booking_style
// field. Unknown styles give the standard style.
func (c *Client) NewBookingDraft(data []byte) (booking.Style, error) {
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}
	record, ok := coerce.Record(doc)
	if !ok {
		return nil, fmt.Errorf("%w: booking form expects an object", ErrUnexpectedShape)
	}
	return c.factory.Create(booking.ParseKind(record[booking.ParamBookingStyle]), record), nil
}

// DecodeHome decodes a home screen body with the default client.
func DecodeHome(data []byte) ([]widgets.Widget, error) {
	return defaultClient().DecodeHome(data)
}

// DecodeList decodes a listing results body with the default client.
func DecodeList(data []byte) (Page, error) {
	return defaultClient().DecodeList(data)
}

// NewBookingDraft builds a booking draft with the default client.
func NewBookingDraft(data []byte) (booking.Style, error) {
	return defaultClient().NewBookingDraft(data)
}

func parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("listing: parse payload: %w", err)
	}
	return doc, nil
}
