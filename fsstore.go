package releasetools

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// fileStore keeps release archives in a directory tree on a shared filesystem.
// Object paths are slash separated and relative to the root.
type fileStore struct {
	root           string
	progressOutput io.Writer
}

func NewFileStore(progressOutput io.Writer, root string) (ReleaseStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return &fileStore{}, err
	}

	if !info.IsDir() {
		return &fileStore{}, fmt.Errorf("release root %s is not a directory", root)
	}

	return &fileStore{
		root:           root,
		progressOutput: progressOutput,
	}, nil
}

func (store *fileStore) Objects(prefix string) ([]string, error) {
	objects := []string{}

	walkRoot := store.localPath(path.Dir(prefix + "x"))
	err := filepath.Walk(walkRoot, func(localPath string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			return nil
		}

		relative, err := filepath.Rel(store.root, localPath)
		if err != nil {
			return err
		}

		objectPath := filepath.ToSlash(relative)
		if strings.HasPrefix(objectPath, prefix) {
			objects = append(objects, objectPath)
		}

		return nil
	})
	if err != nil {
		return []string{}, err
	}

	sort.Strings(objects)

	return objects, nil
}

func (store *fileStore) DownloadFile(objectPath string, localPath string) error {
	source, err := store.open(objectPath)
	if err != nil {
		return err
	}
	defer source.Close()

	stat, err := source.Stat()
	if err != nil {
		return err
	}

	localFile, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer localFile.Close()

	progress := newProgressBar(store.progressOutput, stat.Size())
	progress.Start()
	defer progress.Finish()

	_, err = io.Copy(localFile, progress.NewProxyReader(source))
	return err
}

func (store *fileStore) UploadFile(objectPath string, objectContentType string, localPath string) error {
	stat, err := os.Stat(localPath)
	if err != nil {
		return err
	}

	localFile, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer localFile.Close()

	destination := store.localPath(objectPath)
	if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return err
	}

	staging, err := ioutil.TempFile(filepath.Dir(destination), ".upload-")
	if err != nil {
		return err
	}
	defer os.Remove(staging.Name())

	progress := newProgressBar(store.progressOutput, stat.Size())
	progress.Start()
	defer progress.Finish()

	_, err = io.Copy(staging, progress.NewProxyReader(localFile))
	if closeErr := staging.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if err := os.Chmod(staging.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(staging.Name(), destination)
}

func (store *fileStore) URL(objectPath string) (string, error) {
	localPath := store.localPath(objectPath)
	if _, err := os.Stat(localPath); err != nil {
		return "", notExist(err)
	}

	absolute, err := filepath.Abs(localPath)
	if err != nil {
		return "", err
	}

	return "file://" + filepath.ToSlash(absolute), nil
}

func (store *fileStore) DeleteObject(objectPath string) error {
	return notExist(os.Remove(store.localPath(objectPath)))
}

func (store *fileStore) open(objectPath string) (*os.File, error) {
	file, err := os.Open(store.localPath(objectPath))
	if err != nil {
		return nil, notExist(err)
	}

	return file, nil
}

func (store *fileStore) localPath(objectPath string) string {
	return filepath.Join(store.root, filepath.FromSlash(path.Clean("/"+objectPath)))
}

func notExist(err error) error {
	if os.IsNotExist(err) {
		return ErrObjectNotFound
	}

	return err
}
