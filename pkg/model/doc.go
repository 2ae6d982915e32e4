// Package model converts untyped server payloads into the typed view models the
// listing screens consume: categories, locations, listing items (Product),
// posts, banners, opening hours, pagination cursors, application settings and
// search filters.
//
// Decoding never fails loudly. Each Decoder method returns the model plus a
// boolean; false means the payload element was unusable (for example a missing
// identity field) and callers should skip it. The reason is reported to the
// Decoder's diagnostics.Sink instead of being returned. Nested collections are
// decoded element by element, so one malformed gallery image or schedule only
// drops that element.
//
// Decoders hold no mutable state and are safe for concurrent use. Decoded
// models are plain values; Filter offers Clone for independent drafts.
package model
