package changes

import (
	"github.com/dls-controls/dls-release-tools"
)

type ChangesRequest struct {
	Source  releasetools.Source  `json:"source"`
	Version releasetools.Version `json:"version"`
	Params  Params               `json:"params"`
}

type Params struct {
	// lines of context around each difference; 3 when unset
	Context *int `json:"context,omitempty"`
}

const (
	StatusAdded    = "added"
	StatusRemoved  = "removed"
	StatusModified = "modified"
)

type FileChange struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

type ChangesResponse struct {
	Version releasetools.Version `json:"version"`
	Files   []FileChange         `json:"files"`
}
