package s3

import (
	"fmt"
	"io"
)

// ReachLimitError 表示上傳的內容超過限制的長度
type ReachLimitError struct {
	MaxBytes int64
}

func (e *ReachLimitError) Error() string {
	return fmt.Sprintf("reach limit of %s", formatBytes(e.MaxBytes))
}

// readLimited 讀取全部內容，超過 maxSize 時回傳 *ReachLimitError。
// 只會多讀一個位元組來判斷是否超過，不會把過大的內容整個讀進記憶體。
func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, &ReachLimitError{MaxBytes: maxSize}
	}
	return data, nil
}

// formatBytes 例如 2048 -> "2.00 KB"
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d bytes", n)
	}
	value := float64(n)
	for _, suffix := range []string{"KB", "MB", "GB"} {
		value /= unit
		if value < unit {
			return fmt.Sprintf("%.2f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%.2f TB", value/unit)
}
