package model

// Banner is a promotional image with an optional link.
type Banner struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
	Image *Image `json:"image,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Banner decodes {id, image, url|link, title}.
func (d *Decoder) Banner(raw Record) (Banner, bool) {
	d = d.orDefault()
	return decode(d, "banner", raw, d.decodeBanner)
}

// Banners decodes a list, dropping malformed banners.
func (d *Decoder) Banners(raw any) []Banner {
	d = d.orDefault()
	return decodeList(d, "banner", raw, d.decodeBanner)
}

// DecodeBanner decodes raw with the Default decoder.
func DecodeBanner(raw Record) (Banner, bool) {
	return Default().Banner(raw)
}

func (d *Decoder) decodeBanner(raw Record) (Banner, error) {
	id, err := requireID(raw, "id", "ID")
	if err != nil {
		return Banner{}, err
	}
	return Banner{
		ID:    id,
		Title: text(raw, "title"),
		Image: d.imageOrURL("banner.image", raw["image"]),
		URL:   text(raw, "url", "link"),
	}, nil
}
