package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"folio/adapters/auth"
	internalS3 "folio/adapters/s3"
	"folio/api/openapi"
	"folio/imageset"
	"folio/models"
)

const (
	maxFilesPerUpload    = 20
	uploadFormField      = "files"
	errRateLimitMessage  = "Upload rate limit reached"
	errTransferMessage   = "Fail to store image"
	standaloneUploadName = "body"
)

var errRateLimited = errors.New("upload rate limit reached")

// Upload a standalone image
// (POST /api/admin/images)
func (impl *ServerImpl) PostImage(ctx context.Context, request openapi.PostImageRequestObject) (openapi.PostImageResponseObject, error) {
	const op = "PostImage"
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("[%s] %w", op, auth.ErrMissingToken)
	}
	file, err := internalS3.PrepareImage(standaloneUploadName, request.Body, impl.config.S3.MaxUploadBytes)
	if err != nil {
		return postImageError(op, err)
	}

	var url string
	err = impl.withUploadQuota(ctx, identity.Subject, 1, func(uploader imageset.Uploader) error {
		var err error
		url, err = uploader.Upload(ctx, file)
		if err != nil {
			return &imageset.TransferFailedError{Name: file.Name, Err: err}
		}
		return nil
	})
	if err != nil {
		return postImageError(op, err)
	}
	return openapi.PostImage201JSONResponse{
		Body:    openapi.UploadedImage{Url: url},
		Headers: openapi.PostImage201ResponseHeaders{Location: url},
	}, nil
}

func postImageError(op string, err error) (openapi.PostImageResponseObject, error) {
	switch status, message := classifyUploadError(op, err); status {
	case http.StatusBadRequest:
		return openapi.PostImage400JSONResponse{Message: message}, nil
	case http.StatusTooManyRequests:
		return openapi.PostImage429JSONResponse{Message: message}, nil
	case http.StatusBadGateway:
		return openapi.PostImage502JSONResponse{Message: message}, nil
	}
	return nil, err
}

// withUploadQuota 在同一個區段內檢查上傳頻率、執行上傳並記錄所有傳送成功的圖片，
// 同一位管理者同時送出的批次不會一起通過檢查
func (impl *ServerImpl) withUploadQuota(ctx context.Context, uploaderID string, incoming int, upload func(uploader imageset.Uploader) error) error {
	const op = "withUploadQuota"
	unlock := impl.lockUploads(uploaderID)
	defer unlock()

	if limit := impl.config.S3.RateLimitPerHour; limit > 0 {
		var count int64
		result := impl.db.WithContext(ctx).
			Model(&models.Image{}).
			Where("uploader_id = ? AND created_at > ?", uploaderID, time.Now().Add(-time.Hour)).
			Count(&count)
		if result.Error != nil {
			return fmt.Errorf("[%s] Fail to count recent uploads, err=%w", op, result.Error)
		}
		if count+int64(incoming) > limit {
			slog.Warn("Upload rate limit reached", slog.String("op", op), slog.String("user", uploaderID), slog.Int64("count", count))
			return errRateLimited
		}
	}

	recorder := &recordingUploader{Uploader: impl.uploader, uploaderID: uploaderID}
	err := upload(recorder)
	// 批次失敗時已經傳送的圖片仍然佔用儲存空間，一樣要計入上傳頻率
	impl.recordUploads(ctx, recorder.recorded())
	return err
}

func (impl *ServerImpl) lockUploads(uploaderID string) (unlock func()) {
	v, _ := impl.uploadLocks.LoadOrStore(uploaderID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// recordUploads 記錄上傳的圖片，用於計算上傳頻率；
// 圖片已經傳送到物件儲存，記錄失敗只寫入錯誤日誌
func (impl *ServerImpl) recordUploads(ctx context.Context, images []models.Image) {
	const op = "recordUploads"
	if len(images) == 0 {
		return
	}
	// 請求被取消時仍然要寫入記錄
	if result := impl.db.WithContext(context.WithoutCancel(ctx)).Create(&images); result.Error != nil {
		slog.Error("Fail to record uploaded images", slog.String("op", op), slog.Int("count", len(images)), slog.Any("error", result.Error))
	}
}

// recordingUploader 記錄每一個傳送成功的圖片
type recordingUploader struct {
	imageset.Uploader
	uploaderID string

	mu     sync.Mutex
	images []models.Image
}

func (u *recordingUploader) Upload(ctx context.Context, file imageset.File) (string, error) {
	ref, err := u.Uploader.Upload(ctx, file)
	if err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.images = append(u.images, models.Image{
		UploaderID:  u.uploaderID,
		Url:         ref,
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	})
	return ref, nil
}

func (u *recordingUploader) recorded() []models.Image {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.images
}

// classifyUploadError 依上傳錯誤的類型決定回應的狀態碼，無法分類的錯誤回傳 0
func classifyUploadError(op string, err error) (int, string) {
	if errors.Is(err, errRateLimited) {
		return http.StatusTooManyRequests, errRateLimitMessage
	}
	var rejected *imageset.UploadRejectedError
	if errors.As(err, &rejected) {
		return http.StatusBadRequest, rejected.Error()
	}
	var failed *imageset.TransferFailedError
	if errors.As(err, &failed) {
		slog.Error("Fail to transfer image", slog.String("op", op), slog.String("file", failed.Name), slog.Any("error", failed.Err))
		return http.StatusBadGateway, errTransferMessage
	}
	return 0, ""
}

// readImageParts 讀取 multipart 中所有的圖片並逐一檢查，
// 任何一個不符合條件就回傳錯誤，此時還沒有傳送任何檔案
func (impl *ServerImpl) readImageParts(reader *multipart.Reader) ([]imageset.File, error) {
	const op = "readImageParts"
	files := make([]imageset.File, 0)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &imageset.UploadRejectedError{Name: uploadFormField, Reason: fmt.Sprintf("invalid multipart form: %v", err)}
		}
		if part.FormName() != uploadFormField {
			_ = part.Close()
			continue
		}
		if len(files) >= maxFilesPerUpload {
			_ = part.Close()
			return nil, &imageset.UploadRejectedError{Name: part.FileName(), Reason: fmt.Sprintf("at most %d files per upload", maxFilesPerUpload)}
		}
		file, err := internalS3.PrepareImage(part.FileName(), part, impl.config.S3.MaxUploadBytes)
		_ = part.Close()
		if err != nil {
			return nil, fmt.Errorf("[%s] err=%w", op, err)
		}
		files = append(files, file)
	}
	return files, nil
}
