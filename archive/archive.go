package archive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/mholt/archiver"
)

const (
	MimeTypeZip  = "application/zip"
	MimeTypeTar  = "application/x-tar"
	MimeTypeGzip = "application/gzip"
)

func IsSupportedMimeType(mimeType string) bool {
	return mimeType == MimeTypeZip ||
		mimeType == MimeTypeTar ||
		mimeType == MimeTypeGzip
}

func MimeType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bs, err := bufio.NewReader(f).Peek(512)
	if err != nil && err != io.EOF {
		return "", err
	}

	kind, err := filetype.Match(bs)
	if err != nil {
		return "", err
	}

	return kind.MIME.Value, nil
}

// Pack writes the release directory dir, top folder included, to a gzipped
// tarball at destination. destination must end in .tar.gz or .tgz.
func Pack(dir string, destination string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	tgz := archiver.NewTarGz()
	tgz.OverwriteExisting = true

	return tgz.Archive([]string{dir}, destination)
}

// Unpack extracts the archive at sourcePath into the directory holding it.
func Unpack(sourcePath string) error {
	return UnpackTo(sourcePath, filepath.Dir(sourcePath))
}

func UnpackTo(sourcePath string, destinationDir string) error {
	var (
		errorMessage = "failed to extract '%s': %s"
		fileName     = filepath.Base(sourcePath)
	)

	mimeType, err := MimeType(sourcePath)
	if err != nil {
		return fmt.Errorf(errorMessage, fileName, err)
	}

	if !IsSupportedMimeType(mimeType) {
		return fmt.Errorf(errorMessage, fileName, "unsupported MIME type "+mimeType)
	}

	var unarchiver archiver.Unarchiver
	switch mimeType {
	case MimeTypeZip:
		zip := archiver.NewZip()
		zip.OverwriteExisting = true
		zip.MkdirAll = true
		unarchiver = zip
	case MimeTypeTar:
		tar := archiver.NewTar()
		tar.OverwriteExisting = true
		tar.MkdirAll = true
		unarchiver = tar
	default:
		tgz := archiver.NewTarGz()
		tgz.OverwriteExisting = true
		tgz.MkdirAll = true
		unarchiver = tgz
	}

	if err := unarchiver.Unarchive(sourcePath, destinationDir); err != nil {
		return fmt.Errorf(errorMessage, fileName, err)
	}

	return nil
}
