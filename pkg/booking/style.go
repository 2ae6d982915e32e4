package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/validation"
)

// Kind is the booking_style discriminator.
type Kind string

const (
	KindStandard Kind = "standard"
	KindDaily    Kind = "daily"
	KindHourly   Kind = "hourly"
	KindTable    Kind = "table"
)

// Submission field names.
const (
	ParamBookingStyle = "booking_style"
	ParamResourceID   = "resource_id"
	ParamAdult        = "adult"
	ParamChildren     = "children"
	ParamMemo         = "memo"
	ParamStartDate    = "start_date"
	ParamStartTime    = "start_time"
	ParamEndDate      = "end_date"
	ParamEndTime      = "end_time"
	ParamTableNum     = "table_num"
)

// DateLayout is the wire format of start_date and end_date.
const DateLayout = "2006-01-02"

// Style is a booking strategy draft.
type Style interface {
	// Kind returns the discriminator sent as booking_style.
	Kind() Kind
	// Params builds the submission payload.
	Params() map[string]any
	// Validate returns nil or the first failing validation.Code.
	Validate() error
	// Clone returns an independent copy of the same concrete type.
	Clone() Style
	// Total returns the price of the current selection.
	Total() decimal.Decimal
}

// Base holds the fields every style shares.
type Base struct {
	ResourceID int
	Price      decimal.Decimal
	Adult      int
	Children   int
	Memo       string
}

func (b Base) params(kind Kind) map[string]any {
	params := map[string]any{
		ParamBookingStyle: string(kind),
		ParamAdult:        b.Adult,
		ParamChildren:     b.Children,
	}
	if b.ResourceID > 0 {
		params[ParamResourceID] = b.ResourceID
	}
	if b.Memo != "" {
		params[ParamMemo] = b.Memo
	}
	return params
}

func (b Base) validate() error {
	if b.Adult < 1 {
		return validation.CodePleaseSelectAdult
	}
	return nil
}

func (b Base) guests() int64 {
	guests := b.Adult + b.Children
	if guests < 0 {
		return 0
	}
	return int64(guests)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}
