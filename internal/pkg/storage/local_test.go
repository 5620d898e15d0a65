package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadAndGetURL(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base, "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	stored, err := s.Upload(ctx, bytes.NewReader([]byte("<html>slip</html>")), "payslips/u1/2026-01.html", "text/html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("payslips", "u1", "2026-01.html"), stored)

	content, err := os.ReadFile(filepath.Join(base, "payslips", "u1", "2026-01.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>slip</html>", string(content))

	url, err := s.GetURL(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/payslips/u1/2026-01.html", url)
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Upload(ctx, bytes.NewReader([]byte("x")), "../outside.txt", "text/plain")
	assert.Error(t, err)

	_, err = s.GetURL(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
