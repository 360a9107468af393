package imageset_test

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"folio/imageset"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		persisted imageset.Persisted
		want      []string
	}{
		{
			name:      "prefer images list",
			persisted: imageset.Persisted{LegacyImage: lo.ToPtr("legacy"), Images: []string{"a", "b"}},
			want:      []string{"a", "b"},
		},
		{
			name:      "filter blank entries",
			persisted: imageset.Persisted{Images: []string{"a", "", "  ", "b", "\t"}},
			want:      []string{"a", "b"},
		},
		{
			name:      "keep duplicated entries",
			persisted: imageset.Persisted{Images: []string{"a", "a"}},
			want:      []string{"a", "a"},
		},
		{
			name:      "fallback to legacy image when images is empty",
			persisted: imageset.Persisted{LegacyImage: lo.ToPtr("legacy"), Images: []string{}},
			want:      []string{"legacy"},
		},
		{
			name:      "fallback to legacy image when images only has blank entries",
			persisted: imageset.Persisted{LegacyImage: lo.ToPtr("legacy"), Images: []string{" "}},
			want:      []string{"legacy"},
		},
		{
			name:      "fallback to legacy image when images is absent",
			persisted: imageset.Persisted{LegacyImage: lo.ToPtr("legacy")},
			want:      []string{"legacy"},
		},
		{
			name:      "blank legacy image",
			persisted: imageset.Persisted{LegacyImage: lo.ToPtr("   ")},
			want:      []string{},
		},
		{
			name:      "nothing persisted",
			persisted: imageset.Persisted{},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := imageset.Load(tt.persisted)
			assert.Equal(t, tt.want, set.Images())
		})
	}
}

func TestParseImages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "string list", raw: `["a","b"]`, want: []string{"a", "b"}},
		{name: "empty list", raw: `[]`, want: []string{}},
		{name: "empty input", raw: ``, want: nil},
		{name: "null", raw: `null`, want: nil},
		{name: "object", raw: `{"a":"b"}`, want: nil},
		{name: "string", raw: `"a"`, want: nil},
		{name: "mixed list", raw: `["a",1]`, want: nil},
		{name: "broken json", raw: `["a"`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageset.ParseImages([]byte(tt.raw)))
		})
	}
}

func TestLoad_UnparseableImagesFallback(t *testing.T) {
	set := imageset.Load(imageset.Persisted{
		LegacyImage: lo.ToPtr("legacy"),
		Images:      imageset.ParseImages([]byte(`{"not":"a list"}`)),
	})
	assert.Equal(t, []string{"legacy"}, set.Images())
}

func TestSet_Append(t *testing.T) {
	set := imageset.Load(imageset.Persisted{})
	set.Append("x", "y")
	assert.Equal(t, []string{"x", "y"}, set.Images())

	persisted := set.ToPersisted()
	require.NotNil(t, persisted.LegacyImage)
	assert.Equal(t, "x", *persisted.LegacyImage)

	set.Append()
	set.Append("z", "x")
	assert.Equal(t, []string{"x", "y", "z", "x"}, set.Images())
}

func TestSet_Remove(t *testing.T) {
	tests := []struct {
		name       string
		images     []string
		index      int
		want       []string
		wantLegacy *string
		wantErr    error
	}{
		{
			name:       "remove middle",
			images:     []string{"a", "b", "c"},
			index:      1,
			want:       []string{"a", "c"},
			wantLegacy: lo.ToPtr("a"),
		},
		{
			name:       "remove main promotes next",
			images:     []string{"a", "b", "c"},
			index:      0,
			want:       []string{"b", "c"},
			wantLegacy: lo.ToPtr("b"),
		},
		{
			name:       "remove last remaining",
			images:     []string{"a"},
			index:      0,
			want:       []string{},
			wantLegacy: nil,
		},
		{
			name:       "index too large",
			images:     []string{"a", "b", "c"},
			index:      5,
			want:       []string{"a", "b", "c"},
			wantLegacy: lo.ToPtr("a"),
			wantErr:    imageset.ErrOutOfRange,
		},
		{
			name:       "index equals length",
			images:     []string{"a", "b", "c"},
			index:      3,
			want:       []string{"a", "b", "c"},
			wantLegacy: lo.ToPtr("a"),
			wantErr:    imageset.ErrOutOfRange,
		},
		{
			name:       "negative index",
			images:     []string{"a"},
			index:      -1,
			want:       []string{"a"},
			wantLegacy: lo.ToPtr("a"),
			wantErr:    imageset.ErrOutOfRange,
		},
		{
			name:    "empty list",
			images:  nil,
			index:   0,
			want:    []string{},
			wantErr: imageset.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := imageset.Load(imageset.Persisted{Images: tt.images})
			err := set.Remove(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, set.Images())
			assert.Equal(t, tt.wantLegacy, set.ToPersisted().LegacyImage)
		})
	}
}

func TestSet_PromoteToMain(t *testing.T) {
	tests := []struct {
		name    string
		images  []string
		index   int
		want    []string
		wantErr error
	}{
		{
			name:   "promote main is no-op",
			images: []string{"a", "b", "c"},
			index:  0,
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "promote last rotates",
			images: []string{"a", "b", "c"},
			index:  2,
			want:   []string{"c", "a", "b"},
		},
		{
			name:   "promote middle keeps tail",
			images: []string{"a", "b", "c", "d"},
			index:  2,
			want:   []string{"c", "a", "b", "d"},
		},
		{
			name:    "index too large",
			images:  []string{"a", "b", "c"},
			index:   3,
			want:    []string{"a", "b", "c"},
			wantErr: imageset.ErrOutOfRange,
		},
		{
			name:    "negative index",
			images:  []string{"a", "b"},
			index:   -2,
			want:    []string{"a", "b"},
			wantErr: imageset.ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := imageset.Load(imageset.Persisted{Images: tt.images})
			err := set.PromoteToMain(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, set.Images())
			main, ok := set.Main()
			assert.True(t, ok)
			assert.Equal(t, tt.want[0], main)
		})
	}
}

func TestSet_ToPersisted(t *testing.T) {
	set := imageset.Load(imageset.Persisted{Images: []string{"a", "b"}})
	persisted := set.ToPersisted()
	require.NotNil(t, persisted.LegacyImage)
	assert.Equal(t, "a", *persisted.LegacyImage)
	assert.Equal(t, []string{"a", "b"}, persisted.Images)

	// 回傳的是複本，修改後不影響原本的列表
	persisted.Images[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, set.Images())

	empty := imageset.Load(imageset.Persisted{LegacyImage: lo.ToPtr("")}).ToPersisted()
	assert.Nil(t, empty.LegacyImage)
	assert.Empty(t, empty.Images)
	_, ok := imageset.Load(imageset.Persisted{}).Main()
	assert.False(t, ok)
}

func TestSet_LegacyProjectionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for round := 0; round < 200; round++ {
		set := imageset.Load(imageset.Persisted{})
		for step := 0; step < 50; step++ {
			switch rng.Intn(3) {
			case 0:
				n := rng.Intn(3)
				refs := make([]string, n)
				for i := range refs {
					refs[i] = string(rune('a' + rng.Intn(26)))
				}
				set.Append(refs...)
			case 1:
				before := set.Images()
				if err := set.Remove(rng.Intn(set.Len()+2) - 1); err != nil {
					require.ErrorIs(t, err, imageset.ErrOutOfRange)
					require.Equal(t, before, set.Images())
				} else {
					require.Len(t, set.Images(), len(before)-1)
				}
			case 2:
				before := set.Images()
				if err := set.PromoteToMain(rng.Intn(set.Len()+2) - 1); err != nil {
					require.ErrorIs(t, err, imageset.ErrOutOfRange)
					require.Equal(t, before, set.Images())
				} else {
					require.ElementsMatch(t, before, set.Images())
				}
			}

			persisted := set.ToPersisted()
			if len(persisted.Images) == 0 {
				require.Nil(t, persisted.LegacyImage)
			} else {
				require.NotNil(t, persisted.LegacyImage)
				require.Equal(t, persisted.Images[0], *persisted.LegacyImage)
			}
		}
	}
}
