// dls-release lists, sorts, packs and fetches module releases kept in a
// release store.
package main

import (
	"os"

	"github.com/dls-controls/dls-release-tools"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		releasetools.Fatal("running dls-release", err)
	}
}
