package releasetools

import (
	"path"
	"regexp"
	"strings"
)

// Area is the category of a module. It decides where the module lives in the
// release store and on the shared filesystem.
type Area string

const (
	AreaSupport Area = "support"
	AreaIOC     Area = "ioc"
	AreaPython  Area = "python"
	AreaTools   Area = "tools"
	AreaMatlab  Area = "matlab"
	AreaEtc     Area = "etc"
)

var Areas = []Area{AreaSupport, AreaIOC, AreaPython, AreaTools, AreaMatlab, AreaEtc}

const archiveExtension = ".tar.gz"

var platformSegment = regexp.MustCompile(`^RHEL\d+-x86_64$`)

func (area Area) IsKnown() bool {
	for _, known := range Areas {
		if area == known {
			return true
		}
	}

	return false
}

// moduleDepth is the number of path segments a module name spans.
func (area Area) moduleDepth() int {
	if area == AreaIOC {
		return 2
	}

	return 1
}

func (area Area) hasPlatform() bool {
	return area == AreaPython || area == AreaTools
}

func ModulePrefix(area Area, module string) string {
	return path.Join(string(area), module) + "/"
}

func ArchivePath(area Area, module string, release string) string {
	return ModulePrefix(area, module) + release + archiveExtension
}

func ArchiveName(release string) string {
	return release + archiveExtension
}

// Location is what a filesystem path says about the module it belongs to.
// Release is empty for a development copy.
type Location struct {
	Area    Area
	Module  string
	Release string
}

func (location Location) ArchivePath() string {
	return ArchivePath(location.Area, location.Module, location.Release)
}

// Classify infers area, module and release from a path laid out by the
// release area conventions, e.g.
//
//	/dls_sw/prod/R3.14.12.7/support/asyn/4-21
//	/dls_sw/prod/common/python/RHEL7-x86_64/dls_pmac/1-2
//	/dls_sw/prod/R3.14.12.7/ioc/BL07I/BL07I-MO-IOC-01/2-3
func Classify(filePath string) (Location, bool) {
	segments := []string{}
	for _, segment := range strings.Split(path.Clean(filepathToSlash(filePath)), "/") {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}

	for i, segment := range segments {
		area := Area(segment)
		if !area.IsKnown() {
			continue
		}

		rest := segments[i+1:]
		if area.hasPlatform() && len(rest) > 0 && platformSegment.MatchString(rest[0]) {
			rest = rest[1:]
		}

		depth := area.moduleDepth()
		if len(rest) < depth {
			continue
		}

		location := Location{
			Area:   area,
			Module: strings.Join(rest[:depth], "/"),
		}
		if len(rest) > depth {
			location.Release = strings.TrimSuffix(rest[depth], archiveExtension)
		}

		return location, true
	}

	return Location{}, false
}

func filepathToSlash(p string) string {
	return strings.Replace(p, "\\", "/", -1)
}
