package uploads

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSize(t *testing.T) {
	t.Run("TestDefaultCeiling", func(t *testing.T) {
		assert.NoError(t, ValidateSize(300*1024))
		assert.ErrorIs(t, ValidateSize(300*1024+1), ErrFileTooLarge)
	})

	t.Run("TestEnvOverride", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_KB", "1024")
		assert.NoError(t, ValidateSize(1024*1024))
		assert.ErrorIs(t, ValidateSize(1024*1024+1), ErrFileTooLarge)
	})

	t.Run("TestBadEnvFallsBackToDefault", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_KB", "not-a-number")
		assert.Equal(t, int64(300*1024), MaxUploadBytes())
	})
}

func TestUserDocumentPath(t *testing.T) {
	t.Run("TestShape", func(t *testing.T) {
		path := UserDocumentPath("user123", "aadhaar card.pdf")

		parts := strings.SplitN(path, "/", 2)
		require.Len(t, parts, 2)
		assert.Equal(t, "user123", parts[0])
		assert.True(t, strings.HasSuffix(parts[1], "_aadhaar_card.pdf"))
	})

	t.Run("TestSanitizesUnsafeCharacters", func(t *testing.T) {
		path := UserDocumentPath("u1", "../..\\evil name?.pdf")
		assert.NotContains(t, path[len("u1/"):], "/")
		assert.NotContains(t, path, "\\")
		assert.NotContains(t, path, "?")
	})

	t.Run("TestScopedByUser", func(t *testing.T) {
		a := UserDocumentPath("u1", "doc.pdf")
		b := UserDocumentPath("u2", "doc.pdf")
		assert.Equal(t, "u1", filepath.Dir(a))
		assert.Equal(t, "u2", filepath.Dir(b))
	})
}

func TestFinalDocumentPath(t *testing.T) {
	t.Run("TestKeepsExtension", func(t *testing.T) {
		path := FinalDocumentPath("abc123", "certificate.docx")
		assert.True(t, strings.HasPrefix(path, "app_abc123_"))
		assert.True(t, strings.HasSuffix(path, ".docx"))
	})

	t.Run("TestMissingExtensionDefaultsToPDF", func(t *testing.T) {
		path := FinalDocumentPath("abc123", "certificate")
		assert.True(t, strings.HasSuffix(path, ".pdf"))
	})
}

func TestDiskPath(t *testing.T) {
	t.Run("TestStaysInsideBucket", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("UPLOADS_DIR", dir)

		path, err := DiskPath(BucketUserDocuments, "../../etc/passwd")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, filepath.Join(dir, BucketUserDocuments)))
	})

	t.Run("TestCreatesParentDirectory", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("UPLOADS_DIR", dir)

		path, err := DiskPath(BucketUserDocuments, "u1/123_doc.pdf")
		require.NoError(t, err)
		assert.DirExists(t, filepath.Dir(path))
	})
}

func TestSignedURLRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	dir := t.TempDir()
	t.Setenv("UPLOADS_DIR", dir)

	t.Run("TestTokenResolvesToSamePath", func(t *testing.T) {
		url, err := SignedURL(BucketFinalDocuments, "app_x_1.pdf", 60)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(url, "/files/download?token="))

		token := strings.TrimPrefix(url, "/files/download?token=")
		diskPath, err := ResolveToken(token)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, BucketFinalDocuments, "app_x_1.pdf"), diskPath)
	})

	t.Run("TestGarbageTokenRejected", func(t *testing.T) {
		_, err := ResolveToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("TestTokenCannotEscapeBucket", func(t *testing.T) {
		url, err := SignedURL(BucketUserDocuments, "../../secrets.txt", 60)
		require.NoError(t, err)

		token := strings.TrimPrefix(url, "/files/download?token=")
		diskPath, err := ResolveToken(token)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(diskPath, filepath.Join(dir, BucketUserDocuments)),
			fmt.Sprintf("escaped bucket: %s", diskPath))
	})
}
