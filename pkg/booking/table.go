package booking

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/validation"
)

// TableOption is a reservable table.
type TableOption struct {
	ID   string
	Name string
}

// TableStyle is a standard booking that also reserves tables.
type TableStyle struct {
	StandardStyle
	Options  []TableOption
	Selected []TableOption
}

// Kind implements Style.
func (t *TableStyle) Kind() Kind { return KindTable }

// Params adds table_num, the selected table ids, to the standard payload.
func (t *TableStyle) Params() map[string]any {
	params := t.StandardStyle.params(KindTable)
	ids := make([]string, len(t.Selected))
	for i, option := range t.Selected {
		ids[i] = option.ID
	}
	params[ParamTableNum] = ids
	return params
}

// Validate runs the standard checks, then requires a table selection.
func (t *TableStyle) Validate() error {
	if err := t.StandardStyle.Validate(); err != nil {
		return err
	}
	if len(t.Selected) == 0 {
		return validation.CodePleaseSelectTable
	}
	return nil
}

// Clone implements Style.
func (t *TableStyle) Clone() Style {
	out := *t
	out.StandardStyle = *t.StandardStyle.clone()
	out.Options = slices.Clone(t.Options)
	out.Selected = slices.Clone(t.Selected)
	return &out
}

// Total is the unit price per reserved table.
func (t *TableStyle) Total() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(len(t.Selected))))
}

// Toggle selects option, or deselects it when already selected. Options are
// matched by id.
func (t *TableStyle) Toggle(option TableOption) {
	idx := slices.IndexFunc(t.Selected, func(selected TableOption) bool {
		return selected.ID == option.ID
	})
	if idx >= 0 {
		t.Selected = slices.Delete(t.Selected, idx, idx+1)
		return
	}
	t.Selected = append(t.Selected, option)
}
