package check

import (
	"errors"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/versions"
)

type CheckCommand struct {
	store releasetools.ReleaseStore
}

func NewCheckCommand(store releasetools.ReleaseStore) *CheckCommand {
	return &CheckCommand{
		store: store,
	}
}

// Run reports the newest release when the request carries no version, and
// otherwise every release ordered after it.
func (command *CheckCommand) Run(request CheckRequest) (CheckResponse, error) {
	if ok, message := request.Source.IsValid(); !ok {
		return CheckResponse{}, errors.New(message)
	}

	extractions, err := versions.GetReleaseVersions(command.store, request.Source)
	if err != nil {
		return CheckResponse{}, err
	}

	if len(extractions) == 0 {
		return CheckResponse{}, nil
	}

	lastVersion, matched := command.lastVersion(request)
	if !matched {
		return latestVersion(extractions), nil
	}

	return newerVersions(lastVersion, extractions), nil
}

// All lists every release of the module, oldest first.
func (command *CheckCommand) All(source releasetools.Source) (CheckResponse, error) {
	if ok, message := source.IsValid(); !ok {
		return CheckResponse{}, errors.New(message)
	}

	extractions, err := versions.GetReleaseVersions(command.store, source)
	if err != nil {
		return CheckResponse{}, err
	}

	response := CheckResponse{}
	for _, extraction := range extractions {
		response = append(response, toVersion(extraction))
	}

	return response, nil
}

func (command *CheckCommand) lastVersion(request CheckRequest) (versions.Extraction, bool) {
	if request.Version.Path != "" {
		return versions.Extract(request.Version.Path, request.Source.ReleaseRegexp())
	}

	if request.Version.Release != "" {
		path := releasetools.ArchivePath(releasetools.Area(request.Source.Area), request.Source.Module, request.Version.Release)
		if extraction, ok := versions.Extract(path, request.Source.ReleaseRegexp()); ok {
			return extraction, true
		}

		return versions.Extraction{
			Path:    path,
			Release: request.Version.Release,
			Key:     versions.Normalize(request.Version.Release),
		}, true
	}

	return versions.Extraction{}, false
}

func latestVersion(extractions versions.Extractions) CheckResponse {
	lastExtraction, _ := extractions.Latest()
	return CheckResponse{toVersion(lastExtraction)}
}

func newerVersions(lastVersion versions.Extraction, extractions versions.Extractions) CheckResponse {
	response := CheckResponse{}

	for _, extraction := range extractions.After(lastVersion) {
		response = append(response, toVersion(extraction))
	}

	return response
}

func toVersion(extraction versions.Extraction) releasetools.Version {
	return releasetools.Version{
		Path:    extraction.Path,
		Release: extraction.Release,
	}
}
