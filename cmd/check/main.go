package main

import (
	"encoding/json"
	"os"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/check"
)

func main() {
	var request check.CheckRequest
	inputRequest(&request)

	store, err := releasetools.NewReleaseStore(os.Stderr, request.Source)
	if err != nil {
		releasetools.Fatal("building release store", err)
	}

	command := check.NewCheckCommand(store)
	response, err := command.Run(request)
	if err != nil {
		releasetools.Fatal("running command", err)
	}

	outputResponse(response)
}

func inputRequest(request *check.CheckRequest) {
	if err := json.NewDecoder(os.Stdin).Decode(request); err != nil {
		releasetools.Fatal("reading request from stdin", err)
	}
}

func outputResponse(response check.CheckResponse) {
	if err := json.NewEncoder(os.Stdout).Encode(response); err != nil {
		releasetools.Fatal("writing response to stdout", err)
	}
}
