package models

import (
	_ "embed"
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

//go:embed seed/courses.yaml
var seedCatalog []byte

// catalogFile is the YAML layout of seed and import files
type catalogFile struct {
	Courses []Course `yaml:"courses"`
}

// ParseCatalog decodes a YAML catalog and validates every entry
func ParseCatalog(data []byte) ([]Course, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, serr.Wrap(err, "failed to parse catalog YAML")
	}

	seen := make(map[string]bool, len(f.Courses))
	for i, c := range f.Courses {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if seen[c.Slug] {
			return nil, serr.New("duplicate course slug in catalog: " + c.Slug)
		}
		seen[c.Slug] = true
		f.Courses[i] = c.normalized()
	}
	return f.Courses, nil
}

// LoadCatalogFile reads and parses a YAML catalog from disk
func LoadCatalogFile(path string) ([]Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read catalog file")
	}
	return ParseCatalog(data)
}

// SeedCatalog returns the catalog shipped with the binary
func SeedCatalog() ([]Course, error) {
	return ParseCatalog(seedCatalog)
}

// ImportCourses upserts every course and returns how many were stored.
// It stops at the first failure.
func ImportCourses(courses []Course) (int, error) {
	stored := 0
	for _, c := range courses {
		if _, err := UpsertCourse(c); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// SeedIfEmpty loads the embedded catalog into an empty store.
// It returns the number of courses inserted, zero when the store already had data.
func SeedIfEmpty() (int, error) {
	n, err := CountCourses()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Debug("Catalog already populated, skipping seed", "courses", n)
		return 0, nil
	}

	courses, err := SeedCatalog()
	if err != nil {
		return 0, err
	}

	stored, err := ImportCourses(courses)
	if err != nil {
		return stored, serr.Wrap(err, "failed to seed catalog")
	}
	logger.Info("Seeded catalog", "courses", stored)
	return stored, nil
}
