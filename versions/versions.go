package versions

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cppforlife/go-semi-semantic/version"
	"github.com/dls-controls/dls-release-tools"
)

const regexpSpecialChars = `\\\*\.\[\]\(\)\{\}\?\|\^\$\+`

// GetReleaseVersions lists the module's release archives in the store, oldest
// first.
func GetReleaseVersions(store releasetools.ReleaseStore, source releasetools.Source) (Extractions, error) {
	pattern := source.ReleaseRegexp()
	prefix := Prefix(pattern)

	objects, err := store.Objects(prefix)
	if err != nil {
		return nil, fmt.Errorf("listing objects: %s", err)
	}

	matchingPaths, err := Match(objects, pattern)
	if err != nil {
		return nil, fmt.Errorf("finding matches: %s", err)
	}

	var extractions = make(Extractions, 0, len(matchingPaths))
	for _, path := range matchingPaths {
		extraction, ok := Extract(path, pattern)

		if ok {
			extractions = append(extractions, extraction)
		}
	}

	if source.Semantic() {
		extractions.useSemantic()
	} else {
		extractions.dropSemantic()
	}

	sort.Stable(extractions)

	return extractions, nil
}

func Prefix(regex string) string {
	nonRE := regexp.MustCompile(`\\(?P<chr>[` + regexpSpecialChars + `])|(?P<chr>[^` + regexpSpecialChars + `])`)
	re := regexp.MustCompile(`^(` + nonRE.String() + `)*$`)

	validSections := []string{}
	sections := strings.Split(regex, "/")
	for _, section := range sections {
		if re.MatchString(section) {
			validSections = append(validSections, nonRE.ReplaceAllString(section, "${chr}"))
		} else {
			break
		}
	}

	if len(validSections) == 0 {
		return ""
	}

	return strings.Join(validSections, "/") + "/"
}

func Match(paths []string, pattern string) ([]string, error) {
	return MatchUnanchored(paths, "^"+pattern+"$")
}

func MatchUnanchored(paths []string, pattern string) ([]string, error) {
	matched := []string{}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return matched, err
	}

	for _, path := range paths {
		if regex.MatchString(path) {
			matched = append(matched, path)
		}
	}

	return matched, nil
}

// Extract pulls the release number out of path. It is taken from the group
// named "version", or the first group when there is no such name.
func Extract(path string, pattern string) (Extraction, bool) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return Extraction{}, false
	}

	matches := compiled.FindStringSubmatch(path)

	var match string
	if len(matches) < 2 { // whole string and match
		return Extraction{}, false
	} else if len(matches) == 2 {
		match = matches[1]
	} else { // many matches
		index := sliceIndex(compiled.SubexpNames(), "version")

		if index > 0 {
			match = matches[index]
		} else {
			match = matches[1]
		}
	}

	extraction := Extraction{
		Path:    path,
		Release: match,
		Key:     Normalize(match),
	}

	if ver, err := version.NewVersionFromString(match); err == nil {
		extraction.Semantic = &ver
	}

	return extraction, true
}

func sliceIndex(haystack []string, needle string) int {
	for i, element := range haystack {
		if element == needle {
			return i
		}
	}

	return -1
}
