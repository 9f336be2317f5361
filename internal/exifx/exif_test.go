package exifx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_NoExifIsEmpty(t *testing.T) {
	// Not a valid image at all: extraction must degrade to empty metadata.
	md := Extract([]byte("definitely not a jpeg"))
	require.Equal(t, Metadata{}, md)
}

func TestFormatShutter(t *testing.T) {
	tests := []struct {
		num, den int64
		want     string
	}{
		{1, 250, "1/250"},
		{1, 8000, "1/8000"},
		{1, 3, "1/3"},
		{2, 1, "2s"},
		{1, 1, "1s"},
		{30, 1, "30s"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, formatShutter(tc.num, tc.den))
	}
}

func TestFormatAperture(t *testing.T) {
	require.Equal(t, "2.8", formatAperture(28, 10))
	require.Equal(t, "4", formatAperture(4, 1))
	require.Equal(t, "1.4", formatAperture(14, 10))
}

func TestJoinCamera(t *testing.T) {
	tests := []struct {
		make_, model, want string
	}{
		{"FUJIFILM", "X-T5", "FUJIFILM X-T5"},
		{"Canon", "Canon EOS R5", "Canon EOS R5"},
		{"", "X100V", "X100V"},
		{"Nikon", "", "Nikon"},
		{"", "", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, joinCamera(tc.make_, tc.model))
	}
}
