package in

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/archive"
	"github.com/dls-controls/dls-release-tools/versions"
)

type InCommand struct {
	store releasetools.ReleaseStore
}

func NewInCommand(store releasetools.ReleaseStore) *InCommand {
	return &InCommand{
		store: store,
	}
}

func (command *InCommand) Run(destinationDir string, request InRequest) (InResponse, error) {
	if ok, message := request.Source.IsValid(); !ok {
		return InResponse{}, errors.New(message)
	}

	err := command.createDirectory(destinationDir)
	if err != nil {
		return InResponse{}, err
	}

	skipDownload := false
	if request.Params.SkipDownload != "" {
		skipDownload, err = strconv.ParseBool(request.Params.SkipDownload)
		if err != nil {
			return InResponse{}, fmt.Errorf("invalid skip_download value specified: %s", request.Params.SkipDownload)
		}
	}

	objectPath, err := command.pathToDownload(request)
	if err != nil {
		return InResponse{}, err
	}

	if !skipDownload {
		localPath := filepath.Join(destinationDir, path.Base(objectPath))

		if err = command.store.DownloadFile(objectPath, localPath); err != nil {
			return InResponse{}, fmt.Errorf("downloading %s: %s", objectPath, err)
		}

		if request.Params.Unpack {
			if err := archive.Unpack(localPath); err != nil {
				return InResponse{}, err
			}
		}
	}

	url, err := command.store.URL(objectPath)
	if err != nil {
		return InResponse{}, err
	}

	if err = command.writeURLFile(url, destinationDir); err != nil {
		return InResponse{}, err
	}

	version := releasetools.Version{Path: objectPath}

	extraction, ok := versions.Extract(objectPath, request.Source.ReleaseRegexp())
	if ok {
		version.Release = extraction.Release

		if err := command.writeReleaseFile(extraction.Release, destinationDir); err != nil {
			return InResponse{}, err
		}
	}

	return InResponse{
		Version:  version,
		Metadata: command.metadata(objectPath, url),
	}, nil
}

func (command *InCommand) createDirectory(destinationDir string) error {
	return os.MkdirAll(destinationDir, 0755)
}

func (command *InCommand) pathToDownload(request InRequest) (string, error) {
	if request.Version.Path != "" {
		return request.Version.Path, nil
	}

	if request.Version.Release != "" {
		return releasetools.ArchivePath(
			releasetools.Area(request.Source.Area),
			request.Source.Module,
			request.Version.Release,
		), nil
	}

	extractions, err := versions.GetReleaseVersions(command.store, request.Source)
	if err != nil {
		return "", err
	}

	lastExtraction, ok := extractions.Latest()
	if !ok {
		return "", fmt.Errorf("no releases of %s could be found - is your regexp correct?", request.Source.Module)
	}

	return lastExtraction.Path, nil
}

func (command *InCommand) writeReleaseFile(release string, destinationDir string) error {
	return ioutil.WriteFile(filepath.Join(destinationDir, "release"), []byte(release), 0644)
}

func (command *InCommand) writeURLFile(url string, destinationDir string) error {
	return ioutil.WriteFile(filepath.Join(destinationDir, "url"), []byte(url), 0644)
}

func (command *InCommand) metadata(objectPath string, url string) []releasetools.MetadataPair {
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
