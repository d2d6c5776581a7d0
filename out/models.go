package out

import (
	"github.com/dls-controls/dls-release-tools"
)

type OutRequest struct {
	Source releasetools.Source `json:"source"`
	Params Params              `json:"params"`
}

type Params struct {
	// glob, relative to the sources directory, naming the release directory
	Directory string `json:"directory"`

	// release number; taken from the directory path when empty
	Release string `json:"release"`

	// replace an existing release archive
	Force bool `json:"force"`
}

func (params Params) IsValid() (bool, string) {
	if params.Directory == "" {
		return false, "please specify the directory"
	}

	return true, ""
}

type OutResponse struct {
	Version  releasetools.Version        `json:"version"`
	Metadata []releasetools.MetadataPair `json:"metadata"`
}
