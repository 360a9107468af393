package imageset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"folio/imageset"
)

func fileNamed(name string) imageset.File {
	return imageset.File{Name: name, ContentType: "image/png", Extension: "png", Data: []byte(name)}
}

func TestSet_AppendUploads(t *testing.T) {
	ctrl := gomock.NewController(t)

	uploader := imageset.NewMockUploader(ctrl)
	uploader.EXPECT().Upload(gomock.Any(), fileNamed("x")).Return("https://cdn/x.png", nil)
	uploader.EXPECT().Upload(gomock.Any(), fileNamed("y")).Return("https://cdn/y.png", nil)

	set := imageset.Load(imageset.Persisted{})
	refs, err := set.AppendUploads(context.Background(), uploader, []imageset.File{fileNamed("x"), fileNamed("y")})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/x.png", "https://cdn/y.png"}, refs)
	assert.Equal(t, refs, set.Images())

	main, ok := set.Main()
	assert.True(t, ok)
	assert.Equal(t, "https://cdn/x.png", main)
}

func TestSet_AppendUploads_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	uploader := imageset.NewMockUploader(ctrl)

	set := imageset.Load(imageset.Persisted{Images: []string{"a"}})
	refs, err := set.AppendUploads(context.Background(), uploader, nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.Equal(t, []string{"a"}, set.Images())
}

func TestSet_AppendUploads_AllOrNothing(t *testing.T) {
	tests := []struct {
		name      string
		failWith  error
		checkType func(t *testing.T, err error)
	}{
		{
			name:     "rejected upload",
			failWith: &imageset.UploadRejectedError{Name: "b", Reason: "too large"},
			checkType: func(t *testing.T, err error) {
				var rejected *imageset.UploadRejectedError
				assert.ErrorAs(t, err, &rejected)
				assert.Equal(t, "b", rejected.Name)
			},
		},
		{
			name:     "transfer failure",
			failWith: &imageset.TransferFailedError{Name: "b", Err: errors.New("connection reset")},
			checkType: func(t *testing.T, err error) {
				var failed *imageset.TransferFailedError
				assert.ErrorAs(t, err, &failed)
			},
		},
		{
			name:     "untyped collaborator error becomes transfer failure",
			failWith: errors.New("boom"),
			checkType: func(t *testing.T, err error) {
				var failed *imageset.TransferFailedError
				require.ErrorAs(t, err, &failed)
				assert.Equal(t, "b", failed.Name)
				assert.EqualError(t, failed.Err, "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uploader := imageset.NewMockUploader(ctrl)
			uploader.EXPECT().Upload(gomock.Any(), fileNamed("a")).Return("https://cdn/a.png", nil).AnyTimes()
			uploader.EXPECT().Upload(gomock.Any(), fileNamed("b")).Return("", tt.failWith)
			uploader.EXPECT().Upload(gomock.Any(), fileNamed("c")).Return("https://cdn/c.png", nil).AnyTimes()

			set := imageset.Load(imageset.Persisted{Images: []string{"existing"}})
			refs, err := set.AppendUploads(context.Background(), uploader, []imageset.File{fileNamed("a"), fileNamed("b"), fileNamed("c")})
			require.Error(t, err)
			assert.Nil(t, refs)
			tt.checkType(t, err)
			assert.Equal(t, []string{"existing"}, set.Images())
		})
	}
}

func TestSet_AppendUploads_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	uploader := imageset.NewMockUploader(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set := imageset.Load(imageset.Persisted{})
	_, err := set.AppendUploads(ctx, uploader, []imageset.File{fileNamed("a")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, set.Len())
}
