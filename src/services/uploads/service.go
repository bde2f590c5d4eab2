package uploads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"Backend-GovSeva/src/utils"
)

// Storage buckets. user-documents holds applicant uploads, final-documents
// the documents admins attach to approved applications, service-logos the
// public catalog images.
const (
	BucketUserDocuments  = "user-documents"
	BucketFinalDocuments = "final-documents"
	BucketServiceLogos   = "service-logos"
)

// defaultMaxUploadKB is the deployment ceiling for applicant uploads. It is
// configuration (MAX_UPLOAD_KB), not a constant of the design.
const defaultMaxUploadKB = 300

var ErrFileTooLarge = errors.New("file too large")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// MaxUploadBytes returns the upload size ceiling in bytes.
func MaxUploadBytes() int64 {
	kb := defaultMaxUploadKB
	if v := os.Getenv("MAX_UPLOAD_KB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			kb = n
		}
	}
	return int64(kb) * 1024
}

// ValidateSize rejects files over the ceiling. Callers must not touch the
// field's previously stored value when this fails.
func ValidateSize(size int64) error {
	max := MaxUploadBytes()
	if size > max {
		return fmt.Errorf("%w: maximum size is %dKB", ErrFileTooLarge, max/1024)
	}
	return nil
}

// UserDocumentPath builds the object path for an applicant upload, scoped by
// user and timestamp so concurrent uploads never collide:
// {userId}/{unixMillis}_{sanitizedName}
func UserDocumentPath(userID, filename string) string {
	sanitized := unsafeChars.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%s/%d_%s", userID, time.Now().UnixMilli(), sanitized)
}

// FinalDocumentPath builds the object path for an admin-attached document.
func FinalDocumentPath(applicationID, filename string) string {
	ext := "pdf"
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	return fmt.Sprintf("app_%s_%d.%s", applicationID, time.Now().Unix(), ext)
}

// LogoPath builds the object path for a service logo.
func LogoPath(filename string) string {
	sanitized := unsafeChars.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%d_%s", time.Now().Unix(), sanitized)
}

func baseDir() string {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// DiskPath maps a bucket object path to its location on disk, creating the
// parent directory. Rejects paths escaping the bucket.
func DiskPath(bucket, objectPath string) (string, error) {
	clean := filepath.Clean("/" + objectPath)
	full := filepath.Join(baseDir(), bucket, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	return full, nil
}

// SignedURL issues a time-limited download URL for a private object, the
// local equivalent of the storage provider's createSignedUrl.
func SignedURL(bucket, objectPath string, ttlSeconds int) (string, error) {
	token, err := utils.SignFileToken(bucket, objectPath, ttlSeconds)
	if err != nil {
		return "", err
	}
	return "/files/download?token=" + token, nil
}

// ResolveToken validates a download token and returns the file's disk path.
func ResolveToken(token string) (string, error) {
	claims, err := utils.ParseFileToken(token)
	if err != nil {
		return "", err
	}
	clean := filepath.Clean("/" + claims.Path)
	return filepath.Join(baseDir(), claims.Bucket, clean), nil
}
