// Package models defines the data types exchanged with the portfolio
// backend and held by the client-side stores.
package models

import "encoding/json"

// Image is one gallery record as served by the backend. ImageID uniquely
// identifies the record; ordering within a listing is server-assigned and
// never re-sorted client-side.
type Image struct {
	ImageID   string `json:"imageID"`
	URL       string `json:"url"`
	FileName  string `json:"fileName"`
	SizeBytes int64  `json:"sizeBytes"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Camera      string `json:"camera,omitempty"`
	Lens        string `json:"lens,omitempty"`
	Aperture    string `json:"aperture,omitempty"`
	Shutter     string `json:"shutter,omitempty"`
	ISO         string `json:"iso,omitempty"`
	FocalLength string `json:"focalLength,omitempty"`
	DateTaken   string `json:"dateTaken,omitempty"`
	Location    string `json:"location,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Merge patches the image in place with the given fields. Only keys present
// in fields change; everything else keeps its prior value.
func (i *Image) Merge(fields map[string]any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, i)
}

// MetadataPatch is a sparse update: a mapping of field name to new value for
// only the fields actually being changed. Omitted fields stay untouched on
// both the server and the local record (PATCH semantics).
type MetadataPatch map[string]any

// ImagePage is one page of a cursor-paginated listing. LastKey is nil when
// the server reports no further cursor.
type ImagePage struct {
	Images  []Image
	HasMore bool
	LastKey *string
}
