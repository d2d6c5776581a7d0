package changes

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/ianbruene/go-difflib/difflib"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/archive"
	"github.com/dls-controls/dls-release-tools/versions"
)

const defaultContext = 3

// ChangesCommand compares a working copy of a module against one of its
// releases, by default the newest.
type ChangesCommand struct {
	store releasetools.ReleaseStore
}

func NewChangesCommand(store releasetools.ReleaseStore) *ChangesCommand {
	return &ChangesCommand{
		store: store,
	}
}

func (command *ChangesCommand) Run(workDir string, request ChangesRequest) (ChangesResponse, error) {
	if ok, message := request.Source.IsValid(); !ok {
		return ChangesResponse{}, errors.New(message)
	}

	if info, err := os.Stat(workDir); err != nil {
		return ChangesResponse{}, err
	} else if !info.IsDir() {
		return ChangesResponse{}, fmt.Errorf("%s is not a directory", workDir)
	}

	if request.Params.Context != nil && *request.Params.Context < 0 {
		return ChangesResponse{}, fmt.Errorf("invalid context value specified: %d", *request.Params.Context)
	}

	release, err := command.release(request)
	if err != nil {
		return ChangesResponse{}, err
	}

	scratchDir, err := ioutil.TempDir("", "dls-release-changes")
	if err != nil {
		return ChangesResponse{}, err
	}
	defer os.RemoveAll(scratchDir)

	releaseDir, err := command.fetch(release.Path, scratchDir)
	if err != nil {
		return ChangesResponse{}, err
	}

	context := defaultContext
	if request.Params.Context != nil {
		context = *request.Params.Context
	}

	files, err := compareTrees(releaseDir, workDir, release.Release, context)
	if err != nil {
		return ChangesResponse{}, err
	}

	return ChangesResponse{
		Version: releasetools.Version{Path: release.Path, Release: release.Release},
		Files:   files,
	}, nil
}

func (command *ChangesCommand) release(request ChangesRequest) (versions.Extraction, error) {
	pattern := request.Source.ReleaseRegexp()

	if request.Version.Path != "" {
		if extraction, ok := versions.Extract(request.Version.Path, pattern); ok {
			return extraction, nil
		}
		return versions.Extraction{Path: request.Version.Path, Release: path.Base(request.Version.Path)}, nil
	}

	if request.Version.Release != "" {
		objectPath := releasetools.ArchivePath(releasetools.Area(request.Source.Area), request.Source.Module, request.Version.Release)
		return versions.Extraction{Path: objectPath, Release: request.Version.Release}, nil
	}

	extractions, err := versions.GetReleaseVersions(command.store, request.Source)
	if err != nil {
		return versions.Extraction{}, err
	}

	latest, ok := extractions.Latest()
	if !ok {
		return versions.Extraction{}, fmt.Errorf("%s has no releases to compare against", request.Source.Module)
	}

	return latest, nil
}

// fetch downloads and unpacks the release archive, returning the directory
// that holds the release's files.
func (command *ChangesCommand) fetch(objectPath string, scratchDir string) (string, error) {
	localPath := filepath.Join(scratchDir, path.Base(objectPath))
	if err := command.store.DownloadFile(objectPath, localPath); err != nil {
		return "", fmt.Errorf("downloading %s: %s", objectPath, err)
	}

	unpackDir := filepath.Join(scratchDir, "release")
	if err := archive.UnpackTo(localPath, unpackDir); err != nil {
		return "", err
	}

	entries, err := ioutil.ReadDir(unpackDir)
	if err != nil {
		return "", err
	}

	// archives hold the release directory itself
	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(unpackDir, entries[0].Name()), nil
	}

	return unpackDir, nil
}

func compareTrees(releaseDir string, workDir string, release string, context int) ([]FileChange, error) {
	released, err := listFiles(releaseDir)
	if err != nil {
		return nil, err
	}

	working, err := listFiles(workDir)
	if err != nil {
		return nil, err
	}

	names := map[string]bool{}
	for name := range released {
		names[name] = true
	}
	for name := range working {
		names[name] = true
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	files := []FileChange{}
	for _, name := range sorted {
		_, inRelease := released[name]
		_, inWork := working[name]

		switch {
		case inRelease && !inWork:
			files = append(files, FileChange{Path: name, Status: StatusRemoved})
		case !inRelease && inWork:
			files = append(files, FileChange{Path: name, Status: StatusAdded})
		default:
			change, changed, err := diffFile(name, releaseDir, workDir, release, context)
			if err != nil {
				return nil, err
			}
			if changed {
				files = append(files, change)
			}
		}
	}

	return files, nil
}

func diffFile(name string, releaseDir string, workDir string, release string, context int) (FileChange, bool, error) {
	releasedText, err := ioutil.ReadFile(filepath.Join(releaseDir, filepath.FromSlash(name)))
	if err != nil {
		return FileChange{}, false, err
	}

	workingText, err := ioutil.ReadFile(filepath.Join(workDir, filepath.FromSlash(name)))
	if err != nil {
		return FileChange{}, false, err
	}

	if bytes.Equal(releasedText, workingText) {
		return FileChange{}, false, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.LineDiffParams{
		A:        difflib.SplitLines(string(releasedText)),
		B:        difflib.SplitLines(string(workingText)),
		FromFile: name + " (" + release + ")",
		ToFile:   name + " (work)",
		Context:  context,
	})
	if err != nil {
		return FileChange{}, false, err
	}

	return FileChange{Path: name, Status: StatusModified, Diff: diff}, true, nil
}

// listFiles maps slash separated paths relative to root to nothing. Version
// control metadata is left out.
func listFiles(root string) (map[string]struct{}, error) {
	files := map[string]struct{}{}

	err := filepath.Walk(root, func(localPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			switch info.Name() {
			case ".git", ".svn":
				return filepath.SkipDir
			}
			return nil
		}

		relative, err := filepath.Rel(root, localPath)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(relative)] = struct{}{}
		return nil
	})

	return files, err
}
