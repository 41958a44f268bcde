package interpreter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Synonym maps a spoken term to a canonical category name. The table is kept
// as an ordered slice, not a map: the first matching entry wins, so iteration
// order is part of the contract.
type Synonym struct {
	Term     string `yaml:"term"`
	Category string `yaml:"category"`
}

// DefaultSynonyms returns the built-in synonym table for common spoken terms.
func DefaultSynonyms() []Synonym {
	return []Synonym{
		{"food", "Food"},
		{"grocery", "Food"},
		{"groceries", "Food"},
		{"restaurant", "Food"},
		{"lunch", "Food"},
		{"dinner", "Food"},
		{"breakfast", "Food"},
		{"transport", "Transportation"},
		{"taxi", "Transportation"},
		{"uber", "Transportation"},
		{"bus", "Transportation"},
		{"train", "Transportation"},
		{"petrol", "Transportation"},
		{"fuel", "Transportation"},
		{"movie", "Entertainment"},
		{"entertainment", "Entertainment"},
		{"shopping", "Shopping"},
		{"clothes", "Shopping"},
		{"bill", "Bills"},
		{"electricity", "Bills"},
		{"phone", "Bills"},
		{"internet", "Bills"},
		{"salary", "Salary"},
		{"freelance", "Freelancing"},
		{"business", "Business"},
	}
}

// LoadSynonymsFile loads a synonym table override from a YAML file. A
// missing file is not an error; callers fall back to the defaults.
func LoadSynonymsFile(filename string) ([]Synonym, error) {
	if filename == "" {
		filename = "synonyms.yaml"
	}

	filePath, err := findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("Synonyms file not found, using built-in table")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving synonyms file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading synonyms file: %w", err)
	}

	var synonyms []Synonym
	if err := yaml.Unmarshal(data, &synonyms); err != nil {
		return nil, fmt.Errorf("error parsing synonyms file: %w", err)
	}

	for i := range synonyms {
		synonyms[i].Term = strings.ToLower(synonyms[i].Term)
	}

	log.WithFields(logrus.Fields{"count": len(synonyms), "file": filePath}).Debug("Loaded synonym table")
	return synonyms, nil
}

// findConfigFile looks for a configuration file in standard locations.
func findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finance-tracker", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}
