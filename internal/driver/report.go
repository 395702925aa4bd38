package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type reportFile struct {
	Jobs []Report `yaml:"jobs"`
}

// WriteReport stores reports as YAML at path.
func WriteReport(path string, reports []Report) error {
	data, err := yaml.Marshal(reportFile{Jobs: reports})
	if err != nil {
		return fmt.Errorf("driver: marshal report: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("driver: write report %s: %w", path, err)
	}

	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) ([]Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read report %s: %w", path, err)
	}
	var f reportFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("driver: parse report %s: %w", path, err)
	}

	return f.Jobs, nil
}
