// Package validation owns the error-code vocabulary booking styles return from
// Validate, and the catalog UI layers use to turn those codes into localized
// messages. Codes are lowercase snake_case lookup keys, never display text.
package validation

import "errors"

// Code is a semantic validation failure. It implements error so styles can
// return it through the usual error channel while callers compare it by value.
type Code string

// Error returns the raw code.
func (c Code) Error() string { return string(c) }

const (
	CodePleaseSelectAdult     Code = "please_select_adult"
	CodePleaseSelectStartTime Code = "please_select_start_time"
	CodePleaseSelectStartDate Code = "please_select_start_date"
	CodePleaseSelectEndDate   Code = "please_select_end_date"
	CodeInvalidEndDate        Code = "invalid_end_date"
	CodePleaseSelectTime      Code = "please_select_time"
	CodePleaseSelectTable     Code = "please_select_table"
)

var vocabulary = []Code{
	CodePleaseSelectAdult,
	CodePleaseSelectStartTime,
	CodePleaseSelectStartDate,
	CodePleaseSelectEndDate,
	CodeInvalidEndDate,
	CodePleaseSelectTime,
	CodePleaseSelectTable,
}

// Codes returns every built-in code in declaration order.
func Codes() []Code {
	return append([]Code(nil), vocabulary...)
}

// Known reports whether code belongs to the built-in vocabulary.
func Known(code Code) bool {
	for _, candidate := range vocabulary {
		if candidate == code {
			return true
		}
	}
	return false
}

// AsCode extracts a Code from err, unwrapping as needed.
func AsCode(err error) (Code, bool) {
	var code Code
	if errors.As(err, &code) {
		return code, true
	}
	return "", false
}
