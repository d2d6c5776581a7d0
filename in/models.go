package in

import (
	"github.com/dls-controls/dls-release-tools"
)

type InRequest struct {
	Source  releasetools.Source  `json:"source"`
	Version releasetools.Version `json:"version"`
	Params  Params               `json:"params"`
}

type Params struct {
	Unpack       bool   `json:"unpack"`
	SkipDownload string `json:"skip_download"`
}

type InResponse struct {
	Version  releasetools.Version        `json:"version"`
	Metadata []releasetools.MetadataPair `json:"metadata"`
}
