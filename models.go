package releasetools

import (
	"fmt"
	"regexp"
)

const (
	SchemeDLS      = "dls"
	SchemeSemantic = "semantic"
)

type Source struct {
	JSONKey       string `json:"json_key" yaml:"json_key"`
	Bucket        string `json:"bucket" yaml:"bucket"`
	ReleaseRoot   string `json:"release_root" yaml:"release_root"`
	Area          string `json:"area" yaml:"area"`
	Module        string `json:"module" yaml:"module"`
	Regexp        string `json:"regexp" yaml:"regexp"`
	VersionScheme string `json:"version_scheme" yaml:"version_scheme"`
}

func (source Source) IsValid() (bool, string) {
	if source.Bucket == "" && source.ReleaseRoot == "" {
		return false, "please specify the bucket or release_root"
	}

	if source.Bucket != "" && source.ReleaseRoot != "" {
		return false, "please specify either bucket or release_root"
	}

	if source.Module == "" {
		return false, "please specify the module"
	}

	if !Area(source.Area).IsKnown() {
		return false, fmt.Sprintf("unknown area %q", source.Area)
	}

	switch source.VersionScheme {
	case "", SchemeDLS, SchemeSemantic:
	default:
		return false, fmt.Sprintf("unknown version_scheme %q", source.VersionScheme)
	}

	if source.Regexp != "" {
		if _, err := regexp.Compile(source.Regexp); err != nil {
			return false, "regexp is not valid: " + err.Error()
		}
	}

	return true, ""
}

// ReleaseRegexp is the pattern matching this module's release archives. The
// release number is captured by the group named "version".
func (source Source) ReleaseRegexp() string {
	if source.Regexp != "" {
		return source.Regexp
	}

	return regexp.QuoteMeta(ModulePrefix(Area(source.Area), source.Module)) + `(?P<version>[^/]+)\.tar\.gz`
}

func (source Source) Semantic() bool {
	return source.VersionScheme == SchemeSemantic
}

type Version struct {
	Path    string `json:"path,omitempty"`
	Release string `json:"release,omitempty"`
}

type MetadataPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
