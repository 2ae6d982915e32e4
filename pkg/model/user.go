package model

import "github.com/goliatone/go-listing/pkg/coerce"

// User is a listing author or post writer.
type User struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image,omitempty"`
	Email string  `json:"email,omitempty"`
	URL   string  `json:"url,omitempty"`
	Rate  float64 `json:"rate,omitempty"`
}

// User decodes an author payload.
func (d *Decoder) User(raw Record) (User, bool) {
	d = d.orDefault()
	return decode(d, "user", raw, d.decodeUser)
}

// DecodeUser decodes raw with the Default decoder.
func DecodeUser(raw Record) (User, bool) {
	return Default().User(raw)
}

func (d *Decoder) decodeUser(raw Record) (User, error) {
	id, err := requireID(raw, "id", "ID", "user_id")
	if err != nil {
		return User{}, err
	}
	image := urlOf(coerce.First(raw, "image", "avatar", "user_photo"))
	return User{
		ID:    id,
		Name:  text(raw, "name", "display_name", "user_login"),
		Image: image,
		Email: text(raw, "email", "user_email"),
		URL:   text(raw, "url", "user_url"),
		Rate:  coerce.NumberOr(raw["rating"], 0),
	}, nil
}
