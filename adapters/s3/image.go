package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"folio/imageset"
)

// PrepareImage 讀取上傳的檔案並檢查是否可以上傳
//  1. 不可為空檔案，且大小不可超過 maxSize
//  2. MIME 類型為不包含腳本的圖片檔案
//
// 不符合條件時回傳 *imageset.UploadRejectedError，此時尚未傳送任何資料到物件儲存。
func PrepareImage(name string, r io.Reader, maxSize int64) (imageset.File, error) {
	const op = "PrepareImage"
	data, err := readLimited(r, maxSize)
	var reachLimit *ReachLimitError
	if errors.As(err, &reachLimit) {
		return imageset.File{}, &imageset.UploadRejectedError{Name: name, Reason: err.Error()}
	}
	if err != nil {
		return imageset.File{}, fmt.Errorf("[%s] Fail to read image, err=%w", op, err)
	}
	if len(data) == 0 {
		return imageset.File{}, &imageset.UploadRejectedError{Name: name, Reason: "empty file"}
	}
	mimeType := http.DetectContentType(data)
	ext, ok := ImageExtension(mimeType)
	if !ok {
		return imageset.File{}, &imageset.UploadRejectedError{Name: name, Reason: fmt.Sprintf("invalid image type: %s", mimeType)}
	}
	return imageset.File{
		Name:        name,
		ContentType: mimeType,
		Extension:   ext,
		Data:        data,
	}, nil
}

// ImageUploader 實作 imageset.Uploader，將圖片以隨機檔名存到物件儲存
type ImageUploader struct {
	storage IObjectStorage
	prefix  string
}

func NewImageUploader(storage IObjectStorage, prefix string) *ImageUploader {
	return &ImageUploader{storage: storage, prefix: prefix}
}

func (u *ImageUploader) Upload(ctx context.Context, file imageset.File) (string, error) {
	key := u.prefix + uuid.NewString() + "." + file.Extension
	url, err := u.storage.PutPublicObject(ctx, key, file.ContentType, file.Data)
	if err != nil {
		return "", &imageset.TransferFailedError{Name: file.Name, Err: err}
	}
	return url, nil
}
