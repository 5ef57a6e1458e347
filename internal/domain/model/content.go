package model

import "time"

// Product is a marketing catalogue entry. Copy lives in the translation
// tables; the model carries the stable identifiers and pricing.
type Product struct {
	ID       string `json:"id"`
	TitleKey string `json:"-"`
	DescKey  string `json:"-"`
	Price    string `json:"price"`
}

type BlogPost struct {
	Slug        string    `json:"slug"`
	TitleKey    string    `json:"-"`
	ExcerptKey  string    `json:"-"`
	BodyKey     string    `json:"-"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}
