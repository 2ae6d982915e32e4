// Package booking models the booking strategies a listing can use. A listing
// configuration names a Kind; the Factory builds the matching Style from the
// booking form payload.
//
// Styles are mutable drafts: screens update them as the user picks dates,
// times or tables, call Validate before submitting, and send Params to the
// server. Validate returns the first failing validation.Code, checking shared
// base fields before the style's own fields. Styles are not safe for
// concurrent mutation; hand each editor its own Clone. Flow wraps a draft with
// the Editing → Validated → Submitted lifecycle.
package booking
