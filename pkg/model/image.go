package model

import (
	"strings"

	"github.com/goliatone/go-listing/pkg/coerce"
)

// Image is a media attachment with full size and thumbnail URLs.
type Image struct {
	ID    int    `json:"id"`
	Full  string `json:"full"`
	Thumb string `json:"thumb"`
}

// Image decodes {id, full: {url}, thumb: {url}}. Thumb falls back to full.
func (d *Decoder) Image(raw Record) (Image, bool) {
	d = d.orDefault()
	return decode(d, "image", raw, d.decodeImage)
}

// DecodeImage decodes raw with the Default decoder.
func DecodeImage(raw Record) (Image, bool) {
	return Default().Image(raw)
}

func (d *Decoder) decodeImage(raw Record) (Image, error) {
	id, err := requireID(raw, "id", "ID")
	if err != nil {
		return Image{}, err
	}
	full := urlOf(raw["full"])
	if full == "" {
		full = text(raw, "url", "src")
	}
	thumb := urlOf(raw["thumb"])
	if thumb == "" {
		thumb = full
	}
	return Image{ID: id, Full: full, Thumb: thumb}, nil
}

// imageOrURL accepts either an image object or a bare URL string.
func (d *Decoder) imageOrURL(entity string, raw any) *Image {
	if s, ok := raw.(string); ok {
		url := strings.TrimSpace(s)
		if url == "" {
			return nil
		}
		return &Image{Full: url, Thumb: url}
	}
	return decodeOptional(d, entity, raw, d.decodeImage)
}

func urlOf(v any) string {
	if rec, ok := coerce.Record(v); ok {
		return strings.TrimSpace(coerce.String(rec["url"]))
	}
	return strings.TrimSpace(coerce.String(v))
}
