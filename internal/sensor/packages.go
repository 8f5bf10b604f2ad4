// Package sensor models the raw workout packages produced by tracking
// devices and decodes batch files of them.
package sensor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MendeIT/oop-fitness-tracker/internal/workout"
)

// Package is one raw reading: a workout type code plus the positional sensor
// values expected by that type.
type Package struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

type batchFile struct {
	Packages []Package `yaml:"packages"`
}

// Load reads a YAML batch file of sensor packages, preserving input order.
func Load(path string) ([]Package, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read packages file: %w", err)
	}

	var doc batchFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal packages file: %w", err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("packages file %s contains no packages", path)
	}
	return doc.Packages, nil
}

// SamplePackages returns the built-in demo batch used when no input file is
// supplied.
func SamplePackages() []Package {
	return []Package{
		{Type: workout.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: workout.CodeRunning, Data: []float64{15000, 1, 75}},
		{Type: workout.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
