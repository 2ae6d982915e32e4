// Package widgets decodes home screen widget payloads into typed variants.
//
// The payload "type" field selects the variant through a Registry:
// category, listing, post, banner, slider and admob are built in, and any
// other value decodes as a category widget. Secondary layout selection reads
// "direction" and "layout" with per-kind defaults; category widgets append
// "-list" to the layout when the direction is vertical, and consumers key on
// that composite identifier.
package widgets
