// Package exifx extracts shooting metadata from image files and maps it to
// the field shapes the portfolio backend stores. Extraction is best-effort:
// files without EXIF (or with EXIF we cannot parse) yield empty metadata and
// never fail an upload.
package exifx

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// Metadata holds the optional shooting fields attached to an image record.
// All fields are plain strings in the backend's display format.
type Metadata struct {
	Camera      string `json:"camera,omitempty"`
	Lens        string `json:"lens,omitempty"`
	Aperture    string `json:"aperture,omitempty"`
	Shutter     string `json:"shutter,omitempty"`
	ISO         string `json:"iso,omitempty"`
	FocalLength string `json:"focalLength,omitempty"`
	DateTaken   string `json:"dateTaken,omitempty"`
}

// Extract parses EXIF tags from raw image bytes. Any decode or tag error
// leaves the corresponding field (or the whole result) empty.
func Extract(data []byte) Metadata {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return Metadata{}
	}

	var md Metadata

	make_ := stringTag(x, exif.Make)
	model := stringTag(x, exif.Model)
	md.Camera = joinCamera(make_, model)
	md.Lens = stringTag(x, exif.LensModel)

	if n, d, ok := ratTag(x, exif.FNumber); ok {
		md.Aperture = formatAperture(n, d)
	}
	if n, d, ok := ratTag(x, exif.ExposureTime); ok {
		md.Shutter = formatShutter(n, d)
	}
	if tag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if v, err := tag.Int(0); err == nil {
			md.ISO = strconv.Itoa(v)
		}
	}
	if n, d, ok := ratTag(x, exif.FocalLength); ok && d != 0 {
		md.FocalLength = strconv.Itoa(int(math.Round(float64(n) / float64(d))))
	}
	if dt, err := x.DateTime(); err == nil {
		md.DateTaken = dt.Format("2006-01-02")
	}

	return md
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func ratTag(x *exif.Exif, name exif.FieldName) (num, den int64, ok bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, 0, false
	}
	n, d, err := tag.Rat2(0)
	if err != nil || d == 0 {
		return 0, 0, false
	}
	return n, d, true
}

// joinCamera renders "Make Model", dropping a repeated make prefix that some
// vendors bake into the model string.
func joinCamera(make_, model string) string {
	if make_ == "" {
		return model
	}
	if model == "" {
		return make_
	}
	if strings.HasPrefix(strings.ToLower(model), strings.ToLower(make_)) {
		return strings.TrimSpace(model)
	}
	return make_ + " " + model
}

// formatShutter renders sub-second exposures as "1/NNN" and longer ones
// as whole seconds with a trailing "s".
func formatShutter(num, den int64) string {
	v := float64(num) / float64(den)
	if v < 1 {
		return fmt.Sprintf("1/%d", int64(math.Round(1/v)))
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

func formatAperture(num, den int64) string {
	return strconv.FormatFloat(float64(num)/float64(den), 'f', -1, 64)
}
