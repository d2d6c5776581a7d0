package out

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"

	"github.com/nu7hatch/gouuid"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/archive"
)

const archiveContentType = "application/gzip"

type OutCommand struct {
	store releasetools.ReleaseStore
}

func NewOutCommand(store releasetools.ReleaseStore) *OutCommand {
	return &OutCommand{
		store: store,
	}
}

func (command *OutCommand) Run(sourceDir string, request OutRequest) (OutResponse, error) {
	if ok, message := request.Source.IsValid(); !ok {
		return OutResponse{}, errors.New(message)
	}

	if ok, message := request.Params.IsValid(); !ok {
		return OutResponse{}, errors.New(message)
	}

	localPath, err := command.localPath(request, sourceDir)
	if err != nil {
		return OutResponse{}, err
	}

	release, err := command.release(request, localPath)
	if err != nil {
		return OutResponse{}, err
	}

	objectPath := releasetools.ArchivePath(releasetools.Area(request.Source.Area), request.Source.Module, release)

	if !request.Params.Force {
		exists, err := command.exists(objectPath)
		if err != nil {
			return OutResponse{}, err
		}

		if exists {
			return OutResponse{}, fmt.Errorf("release %s of %s already exists at %s", release, request.Source.Module, objectPath)
		}
	}

	stagingPath, err := command.pack(localPath)
	if err != nil {
		return OutResponse{}, err
	}
	defer os.RemoveAll(filepath.Dir(stagingPath))

	if err := command.store.UploadFile(objectPath, archiveContentType, stagingPath); err != nil {
		return OutResponse{}, err
	}

	url, err := command.store.URL(objectPath)
	if err != nil {
		return OutResponse{}, fmt.Errorf("locating uploaded release %s: %s", objectPath, err)
	}

	return OutResponse{
		Version: releasetools.Version{
			Path:    objectPath,
			Release: release,
		},
		Metadata: command.metadata(objectPath, url),
	}, nil
}

func (command *OutCommand) localPath(request OutRequest, sourceDir string) (string, error) {
	pattern := request.Params.Directory
	matches, err := filepath.Glob(filepath.Join(sourceDir, pattern))
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("no matches found for pattern: %s", pattern)
	}

	if len(matches) > 1 {
		return "", fmt.Errorf("more than one match found for pattern: %s\n%v", pattern, matches)
	}

	return matches[0], nil
}

// release is the requested release number, or the one the directory's path
// names by the release area conventions.
func (command *OutCommand) release(request OutRequest, localPath string) (string, error) {
	if request.Params.Release != "" {
		return request.Params.Release, nil
	}

	location, ok := releasetools.Classify(localPath)
	if !ok || location.Release == "" {
		return "", fmt.Errorf("cannot tell the release of %s, please specify the release", localPath)
	}

	if string(location.Area) != request.Source.Area || location.Module != request.Source.Module {
		return "", fmt.Errorf("%s belongs to %s/%s, not %s/%s",
			localPath, location.Area, location.Module, request.Source.Area, request.Source.Module)
	}

	return location.Release, nil
}

func (command *OutCommand) exists(objectPath string) (bool, error) {
	objects, err := command.store.Objects(objectPath)
	if err != nil {
		return false, err
	}

	for _, object := range objects {
		if object == objectPath {
			return true, nil
		}
	}

	return false, nil
}

func (command *OutCommand) pack(localPath string) (string, error) {
	guid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	stagingDir, err := ioutil.TempDir("", "dls-release-out")
	if err != nil {
		return "", err
	}

	stagingPath := filepath.Join(stagingDir, guid.String()+".tar.gz")
	if err := archive.Pack(localPath, stagingPath); err != nil {
		os.RemoveAll(stagingDir)
		return "", fmt.Errorf("packing %s: %s", localPath, err)
	}

	return stagingPath, nil
}

func (command *OutCommand) metadata(objectPath string, url string) []releasetools.MetadataPair {
	metadata := []releasetools.MetadataPair{
		{
			Name:  "filename",
			Value: path.Base(objectPath),
		},
	}

	if url != "" {
		metadata = append(metadata, releasetools.MetadataPair{Name: "url", Value: url})
	}

	return metadata
}
