//go:generate mockgen -package=imageset -destination=mock.go -source=upload.go

package imageset

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// UploadRejectedError 表示檔案在傳送前就不符合上傳條件(類型或大小)
type UploadRejectedError struct {
	Name   string
	Reason string
}

func (e *UploadRejectedError) Error() string {
	return fmt.Sprintf("upload rejected, file=%s, reason=%s", e.Name, e.Reason)
}

// TransferFailedError 表示檔案在傳送到物件儲存時失敗
type TransferFailedError struct {
	Name string
	Err  error
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("transfer failed, file=%s, err=%v", e.Name, e.Err)
}

func (e *TransferFailedError) Unwrap() error {
	return e.Err
}

// File 是已經通過檢查、準備上傳的圖片
type File struct {
	Name        string
	ContentType string
	Extension   string
	Data        []byte
}

// Uploader 負責將圖片傳送到物件儲存，並回傳可公開存取的位址
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

// AppendUploads 平行上傳所有檔案，全部成功後才依原本的順序加到列表尾端。
// 任何一個檔案失敗(包含 ctx 被取消)都會回傳錯誤，且列表維持呼叫前的狀態。
func (s *Set) AppendUploads(ctx context.Context, uploader Uploader, files []File) ([]string, error) {
	const op = "AppendUploads"
	if len(files) == 0 {
		return nil, nil
	}
	refs := make([]string, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return &TransferFailedError{Name: file.Name, Err: err}
			}
			ref, err := uploader.Upload(groupCtx, file)
			if err != nil {
				var rejected *UploadRejectedError
				var failed *TransferFailedError
				if errors.As(err, &rejected) || errors.As(err, &failed) {
					return err
				}
				return &TransferFailedError{Name: file.Name, Err: err}
			}
			refs[i] = ref
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("[%s] Fail to upload images, err=%w", op, err)
	}
	s.Append(refs...)
	return refs, nil
}
