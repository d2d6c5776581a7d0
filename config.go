package releasetools

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const ConfigEnvironmentVariable = "DLS_RELEASE_CONFIG"

// DefaultConfigPath is $DLS_RELEASE_CONFIG, else ~/.dls-release.yml.
func DefaultConfigPath() string {
	if configPath := os.Getenv(ConfigEnvironmentVariable); configPath != "" {
		return configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".dls-release.yml")
}

// LoadConfig reads a Source from a YAML file. When optional is set a missing
// file yields an empty Source.
func LoadConfig(configPath string, optional bool) (Source, error) {
	var source Source

	if configPath == "" {
		return source, nil
	}

	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return source, nil
		}
		return source, err
	}

	if err := yaml.UnmarshalStrict(data, &source); err != nil {
		return source, fmt.Errorf("parsing config %s: %s", configPath, err)
	}

	return source, nil
}
