package s3_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/adapters/s3"
)

func TestImageExtension(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		wantExt string
		wantOk  bool
	}{
		{name: "jpeg", content: []byte("\xff\xd8\xff\xe0\x00\x10JFIF"), wantExt: "jpg", wantOk: true},
		{name: "png", content: pngHeader, wantExt: "png", wantOk: true},
		{name: "webp", content: []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), wantExt: "webp", wantOk: true},
		{name: "svg 可以夾帶腳本", content: []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)},
		{name: "html", content: []byte("<!DOCTYPE html><html></html>")},
		{name: "pdf", content: []byte("%PDF-1.4")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := s3.ImageExtension(http.DetectContentType(tt.content))
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}
