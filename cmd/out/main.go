package main

import (
	"encoding/json"
	"os"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/out"
)

func main() {
	if len(os.Args) < 2 {
		releasetools.Sayf("usage: %s <sources directory>\n", os.Args[0])
		os.Exit(1)
	}

	sourceDir := os.Args[1]

	var request out.OutRequest
	inputRequest(&request)

	store, err := releasetools.NewReleaseStore(os.Stderr, request.Source)
	if err != nil {
		releasetools.Fatal("building release store", err)
	}

	command := out.NewOutCommand(store)
	response, err := command.Run(sourceDir, request)
	if err != nil {
		releasetools.Fatal("running command", err)
	}

	outputResponse(response)
}

func inputRequest(request *out.OutRequest) {
	if err := json.NewDecoder(os.Stdin).Decode(request); err != nil {
		releasetools.Fatal("reading request from stdin", err)
	}
}

func outputResponse(response out.OutResponse) {
	if err := json.NewEncoder(os.Stdout).Encode(response); err != nil {
		releasetools.Fatal("writing response to stdout", err)
	}
}
