// Package entity defines the domain entities for the products feature.
package entity

import "io"

// Product is one catalog entry as persisted in the products document.
// The document is externally curated; this backend never writes it.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// Path is the location of the backing asset inside the bucket.
	// It is internal and must never appear in API responses.
	Path string `json:"path"`
}

// Asset is a resolved, streamable product download.
type Asset struct {
	Reader      io.ReadCloser
	ContentType string
	Filename    string
	Size        int64
}
