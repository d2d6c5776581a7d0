package versions

import (
	"github.com/cppforlife/go-semi-semantic/version"
)

type Extractions []Extraction

func (e Extractions) Len() int {
	return len(e)
}

func (e Extractions) Less(i int, j int) bool {
	return e[i].Compare(e[j]) < 0
}

func (e Extractions) Swap(i int, j int) {
	e[i], e[j] = e[j], e[i]
}

// Latest is the last extraction, which after sorting is the newest release.
func (e Extractions) Latest() (Extraction, bool) {
	if len(e) == 0 {
		return Extraction{}, false
	}

	return e[len(e)-1], true
}

// After returns the extractions ordered after last, keeping their order.
func (e Extractions) After(last Extraction) Extractions {
	newer := Extractions{}

	for _, extraction := range e {
		if extraction.Compare(last) > 0 {
			newer = append(newer, extraction)
		}
	}

	return newer
}

// Paths lists the object paths in order.
func (e Extractions) Paths() []string {
	paths := make([]string, 0, len(e))
	for _, extraction := range e {
		paths = append(paths, extraction.Path)
	}

	return paths
}

// useSemantic keeps semantic versions only if every extraction has one, so
// that the list is ordered by a single scheme.
func (e Extractions) useSemantic() {
	for _, extraction := range e {
		if extraction.Semantic == nil {
			e.dropSemantic()
			return
		}
	}
}

func (e Extractions) dropSemantic() {
	for i := range e {
		e[i].Semantic = nil
	}
}

type Extraction struct {
	// path to the release archive in the store
	Path string

	// the raw version match
	Release string

	// release ordering key
	Key Key

	// set for the semantic version scheme when Release parses as one
	Semantic *version.Version
}

func (extraction Extraction) Compare(other Extraction) int {
	if extraction.Semantic != nil && other.Semantic != nil {
		if c := extraction.Semantic.Compare(*other.Semantic); c != 0 {
			return c
		}
	}

	return extraction.Key.Compare(other.Key)
}
