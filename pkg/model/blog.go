package model

import (
	"time"

	"github.com/goliatone/go-listing/pkg/coerce"
)

// Blog is a post shown in post widgets and the news list.
type Blog struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Image    *Image     `json:"image,omitempty"`
	Excerpt  string     `json:"excerpt,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Author   *User      `json:"author,omitempty"`
	Category *Category  `json:"category,omitempty"`
	Comments int        `json:"comments"`
}

// Blog decodes a post. Excerpts are stripped of markup.
func (d *Decoder) Blog(raw Record) (Blog, bool) {
	d = d.orDefault()
	return decode(d, "blog", raw, d.decodeBlog)
}

// Blogs decodes a list, dropping malformed posts.
func (d *Decoder) Blogs(raw any) []Blog {
	d = d.orDefault()
	return decodeList(d, "blog", raw, d.decodeBlog)
}

// DecodeBlog decodes raw with the Default decoder.
func DecodeBlog(raw Record) (Blog, bool) {
	return Default().Blog(raw)
}

func (d *Decoder) decodeBlog(raw Record) (Blog, error) {
	id, err := requireID(raw, "ID", "id")
	if err != nil {
		return Blog{}, err
	}
	post := Blog{
		ID:       id,
		Title:    d.sanitize(coerce.String(coerce.First(raw, "post_title", "title"))),
		Image:    d.imageOrURL("blog.image", raw["image"]),
		Excerpt:  d.sanitize(coerce.String(coerce.First(raw, "post_excerpt", "description"))),
		Author:   decodeOptional(d, "blog.author", raw["author"], d.decodeUser),
		Category: decodeOptional(d, "blog.category", raw["category"], d.decodeCategory),
		Comments: coerce.IntOr(raw["comment_count"], 0),
	}
	if ts, ok := coerce.DateOr(raw["post_date"]); ok {
		post.Date = &ts
	}
	return post, nil
}
