package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genaizone/internal/port"
	"genaizone/internal/storage/local"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	root := t.TempDir()
	s, err := local.NewLocalStorage(root)
	require.NoError(t, err)
	ctx := context.Background()

	key := "sessions/abc/doc1/report.txt"
	out, err := s.Upload(ctx, port.UploadInput{Key: key, Body: strings.NewReader("contents"), ContentType: "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sessions", "abc", "doc1", "report.txt"), out.Location)

	data, err := s.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))

	p, release, err := s.LocalPath(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "report.txt", filepath.Base(p))
	release()
	_, err = os.Stat(p)
	assert.NoError(t, err, "release must not remove local files")

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Dir(p))
	assert.True(t, os.IsNotExist(err), "empty document dir is removed")
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := local.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), port.UploadInput{Key: "../outside.txt", Body: strings.NewReader("x")})
	assert.Error(t, err)

	_, _, err = s.LocalPath(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStorage_MissingObject(t *testing.T) {
	s, err := local.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.LocalPath(context.Background(), "nope.txt")
	assert.Error(t, err)
	assert.Error(t, s.Delete(context.Background(), "nope.txt"))
}
