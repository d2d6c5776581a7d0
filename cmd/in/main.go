package main

import (
	"encoding/json"
	"os"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/in"
)

func main() {
	if len(os.Args) < 2 {
		releasetools.Sayf("usage: %s <dest directory>\n", os.Args[0])
		os.Exit(1)
	}

	destinationDir := os.Args[1]

	var request in.InRequest
	inputRequest(&request)

	store, err := releasetools.NewReleaseStore(os.Stderr, request.Source)
	if err != nil {
		releasetools.Fatal("building release store", err)
	}

	command := in.NewInCommand(store)
	response, err := command.Run(destinationDir, request)
	if err != nil {
		releasetools.Fatal("running command", err)
	}

	outputResponse(response)
}

func inputRequest(request *in.InRequest) {
	if err := json.NewDecoder(os.Stdin).Decode(request); err != nil {
		releasetools.Fatal("reading request from stdin", err)
	}
}

func outputResponse(response in.InResponse) {
	if err := json.NewEncoder(os.Stdout).Encode(response); err != nil {
		releasetools.Fatal("writing response to stdout", err)
	}
}
