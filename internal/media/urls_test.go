package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Share Link",
			in:   "https://drive.google.com/file/d/1AbC_d-4/view?usp=sharing",
			want: "https://drive.google.com/thumbnail?id=1AbC_d-4&sz=w4096",
		},
		{
			name: "Open Link",
			in:   "https://drive.google.com/open?id=1XyZ99",
			want: "https://drive.google.com/thumbnail?id=1XyZ99&sz=w4096",
		},
		{
			name: "Docs Host",
			in:   "https://docs.google.com/uc?id=1Doc42",
			want: "https://drive.google.com/thumbnail?id=1Doc42&sz=w4096",
		},
		{
			name: "Already A Thumbnail",
			in:   "https://drive.google.com/thumbnail?id=1AbC&sz=w4096",
			want: "https://drive.google.com/thumbnail?id=1AbC&sz=w4096",
		},
		{
			name: "Non Drive URL Untouched",
			in:   "https://example.com/image.png",
			want: "https://example.com/image.png",
		},
		{
			name: "Drive URL Without Id Untouched",
			in:   "https://drive.google.com/drive/my-drive",
			want: "https://drive.google.com/drive/my-drive",
		},
		{name: "Empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProcessImageURL(tt.in))
		})
	}
}
