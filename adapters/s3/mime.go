package s3

// imageExtensions 是允許上傳的圖片類型與存檔時使用的副檔名
// NOTE: 不包含 image/svg+xml，SVG 可以夾帶腳本
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
	"image/webp": "webp",
}

// ImageExtension 回傳 MIME 類型對應的副檔名，不允許上傳的類型回傳 false
func ImageExtension(mimeType string) (string, bool) {
	ext, ok := imageExtensions[mimeType]
	return ext, ok
}
