package booking

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/goliatone/go-listing/pkg/coerce"
	"github.com/goliatone/go-listing/pkg/model"
)

// Constructor builds a style from a booking form payload.
type Constructor func(dec *model.Decoder, data model.Record) Style

// Factory maps booking kinds to constructors. Unknown kinds fall back to the
// standard style.
type Factory struct {
	mu           sync.RWMutex
	constructors map[Kind]Constructor
	decoder      *model.Decoder
}

// FactoryOption customises a Factory.
type FactoryOption func(*Factory)

// WithDecoder sets the decoder used for nested records such as schedules.
func WithDecoder(dec *model.Decoder) FactoryOption {
	return func(f *Factory) {
		if dec != nil {
			f.decoder = dec
		}
	}
}

// NewFactory returns a factory with the four built-in kinds registered.
func NewFactory(options ...FactoryOption) *Factory {
	f := &Factory{
		constructors: map[Kind]Constructor{
			KindStandard: newStandard,
			KindDaily:    newDaily,
			KindHourly:   newHourly,
			KindTable:    newTable,
		},
		decoder: model.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

var defaultFactory = sync.OnceValue(func() *Factory { return NewFactory() })

// Create builds a style with the default factory.
func Create(kind Kind, data model.Record) Style {
	return defaultFactory().Create(kind, data)
}

// Register adds or replaces the constructor for kind.
func (f *Factory) Register(kind Kind, fn Constructor) error {
	if kind == "" {
		return errors.New("booking: kind is required")
	}
	if fn == nil {
		return fmt.Errorf("booking: constructor for %q is nil", kind)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[kind] = fn
	return nil
}

// Has reports whether kind has a constructor.
func (f *Factory) Has(kind Kind) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.constructors[kind]
	return ok
}

// Kinds returns the registered kinds in sorted order.
func (f *Factory) Kinds() []Kind {
	f.mu.RLock()
	defer f.mu.RUnlock()
	kinds := make([]Kind, 0, len(f.constructors))
	for kind := range f.constructors {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Create builds the style for kind from data. A nil data record yields a
// style with defaults only.
func (f *Factory) Create(kind Kind, data model.Record) Style {
	f.mu.RLock()
	fn, ok := f.constructors[kind]
	if !ok {
		fn = f.constructors[KindStandard]
	}
	f.mu.RUnlock()
	if fn == nil {
		fn = newStandard
	}
	if data == nil {
		data = model.Record{}
	}
	return fn(f.decoder, data)
}

// ParseKind reads a booking_style value; unknown values resolve to standard.
func ParseKind(v any) Kind {
	return coerce.Enum(v, []Kind{KindStandard, KindDaily, KindHourly, KindTable}, KindStandard)
}

func decodeBase(data model.Record) Base {
	price, _ := coerce.Decimal(coerce.First(data, "price", "sale_price"))
	id, _ := coerce.ID(coerce.First(data, "resource_id", "id", "ID"))
	adult := coerce.IntOr(data["adult"], 1)
	children := coerce.IntOr(data["children"], 0)
	if children < 0 {
		children = 0
	}
	return Base{
		ResourceID: id,
		Price:      price,
		Adult:      adult,
		Children:   children,
		Memo:       coerce.String(data["memo"]),
	}
}

func optionalDate(v any) *time.Time {
	ts, ok := coerce.DateOr(v)
	if !ok {
		return nil
	}
	return &ts
}

func newStandard(_ *model.Decoder, data model.Record) Style {
	return decodeStandard(data)
}

func decodeStandard(data model.Record) *StandardStyle {
	return &StandardStyle{
		Base:      decodeBase(data),
		StartDate: optionalDate(data[ParamStartDate]),
		StartTime: coerce.String(data[ParamStartTime]),
	}
}

func newTable(_ *model.Decoder, data model.Record) Style {
	style := &TableStyle{StandardStyle: *decodeStandard(data)}
	for _, item := range coerce.List(coerce.First(data, "tables", "table")) {
		option, ok := decodeTableOption(item)
		if !ok {
			continue
		}
		style.Options = append(style.Options, option)
	}
	for _, item := range coerce.List(data[ParamTableNum]) {
		id := coerce.String(item)
		idx := slices.IndexFunc(style.Options, func(option TableOption) bool { return option.ID == id })
		if idx >= 0 {
			style.Selected = append(style.Selected, style.Options[idx])
		}
	}
	return style
}

func decodeTableOption(item any) (TableOption, bool) {
	if record, ok := coerce.Record(item); ok {
		id := coerce.String(coerce.First(record, "id", "value"))
		if id == "" {
			return TableOption{}, false
		}
		name := coerce.String(coerce.First(record, "name", "label", "title"))
		if name == "" {
			name = id
		}
		return TableOption{ID: id, Name: name}, true
	}
	id := coerce.String(item)
	if id == "" {
		return TableOption{}, false
	}
	return TableOption{ID: id, Name: id}, true
}

func newDaily(_ *model.Decoder, data model.Record) Style {
	return &DailyStyle{
		Base:      decodeBase(data),
		StartDate: optionalDate(data[ParamStartDate]),
		EndDate:   optionalDate(data[ParamEndDate]),
	}
}

func newHourly(dec *model.Decoder, data model.Record) Style {
	return &HourlyStyle{
		Base:      decodeBase(data),
		StartDate: optionalDate(data[ParamStartDate]),
		Schedules: dec.Schedules(coerce.First(data, "schedules", "slots")),
	}
}
