package app

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/markgutter/internal/renderer/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDrawsBookmarks(t *testing.T) {
	ta := newTestApp(t, "a\nb\nc\n", "")
	ta.click(0, 1)
	require.Equal(t, []int{1}, ta.bookmarkLines())

	var out bytes.Buffer
	require.NoError(t, ta.Snapshot(&out))

	img, err := png.Decode(&out)
	require.NoError(t, err)
	lh := snapshotLineHeight
	assert.Equal(t, lh, img.Bounds().Dx())
	assert.Equal(t, ta.View().LineCount()*lh, img.Bounds().Dy())

	// The dot is 12px, centred vertically in its 16px row.
	_, _, _, alpha := img.At(6, lh+8).RGBA()
	assert.NotZero(t, alpha, "bookmark on line 1")
	_, _, _, alpha = img.At(6, 8).RGBA()
	assert.Zero(t, alpha, "line 0 has no bookmark")
	_, _, _, alpha = img.At(6, 2*lh+8).RGBA()
	assert.Zero(t, alpha, "line 2 has no bookmark")
}

func TestSnapshotLeavesEditorGutterAlone(t *testing.T) {
	ta := newTestApp(t, "a\nb\n", "")
	ta.click(0, 0)

	var out bytes.Buffer
	require.NoError(t, ta.Snapshot(&out))

	assert.Len(t, ta.Gutter().Bookmarks(), 1)
	assert.Equal(t, []int{0}, ta.bookmarkLines())
}

func TestSnapshotKey(t *testing.T) {
	ta := newTestApp(t, "a\nb\n", "")
	ta.click(0, 1)

	ta.key(backend.KeyCtrlE)

	path := ta.opts.File + ".gutter.png"
	assert.Equal(t, "gutter written to "+path, ta.Message())
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestSnapshotKeyBadPath(t *testing.T) {
	ta := newTestApp(t, "a\n", "")
	ta.opts.Snapshot = filepath.Join(ta.dir, "missing", "out.png")

	ta.key(backend.KeyCtrlE)

	assert.Contains(t, ta.Message(), "snapshot")
	assert.NoFileExists(t, ta.opts.Snapshot)
}
