package s3

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLimited(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		maxSize int64
		wantErr string
	}{
		{name: "小於限制", input: "hello", maxSize: 10},
		{name: "剛好等於限制", input: "hello", maxSize: 5},
		{name: "超過限制", input: "hello world", maxSize: 5, wantErr: "reach limit of 5 bytes"},
		{name: "超過以 KB 表示的限制", input: strings.Repeat("a", 3000), maxSize: 2048, wantErr: "reach limit of 2.00 KB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := readLimited(strings.NewReader(tt.input), tt.maxSize)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.input, string(data))
				return
			}
			var reachLimit *ReachLimitError
			require.True(t, errors.As(err, &reachLimit))
			assert.Equal(t, tt.maxSize, reachLimit.MaxBytes)
			assert.EqualError(t, err, tt.wantErr)
			assert.Nil(t, data)
		})
	}
}

func TestReadLimited_ReaderError(t *testing.T) {
	_, err := readLimited(&failingReader{}, 10)
	assert.EqualError(t, err, "disk gone")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{1023, "1023 bytes"},
		{1536, "1.50 KB"},
		{5 << 20, "5.00 MB"},
		{3 << 30, "3.00 GB"},
		{2 << 40, "2.00 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.n), "n=%d", tt.n)
	}
}
