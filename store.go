package releasetools

import (
	"errors"
	"io"
)

//go:generate counterfeiter -o fakes/fake_release_store.go . ReleaseStore

type ReleaseStore interface {
	Objects(prefix string) ([]string, error)
	DownloadFile(objectPath string, localPath string) error
	UploadFile(objectPath string, objectContentType string, localPath string) error
	URL(objectPath string) (string, error)
	DeleteObject(objectPath string) error
}

var ErrObjectNotFound = errors.New("object not found")

// NewReleaseStore builds the store the source points at: a GCS bucket or a
// release tree on a shared filesystem.
func NewReleaseStore(progressOutput io.Writer, source Source) (ReleaseStore, error) {
	if source.ReleaseRoot != "" {
		return NewFileStore(progressOutput, source.ReleaseRoot)
	}

	if source.Bucket == "" {
		return nil, errors.New("please specify the bucket or release_root")
	}

	return NewGCSClient(progressOutput, source.Bucket, source.JSONKey)
}
