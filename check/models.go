package check

import "github.com/dls-controls/dls-release-tools"

type CheckRequest struct {
	Source  releasetools.Source  `json:"source"`
	Version releasetools.Version `json:"version"`
}

type CheckResponse []releasetools.Version
