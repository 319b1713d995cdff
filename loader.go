package klingon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRecords reads dictionary records from path. Files ending in .yaml or
// .yml hold a YAML list of records; anything else is the line format
// "name|pos|definition[|notes]" with "!" comments and blank lines skipped.
// Records without an id keep ID 0; the store assigns one on import.
func LoadRecords(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return loadLines(path)
	}
}

func loadYAML(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var records []Record
	if err := yaml.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

func loadLines(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			return nil, fmt.Errorf("%s:%d: want name|pos|definition, got %q", filepath.Base(path), lineNo, line)
		}
		r := Record{
			Name:         parts[0],
			PartOfSpeech: parts[1],
			Definition:   parts[2],
		}
		if len(parts) > 3 {
			r.Notes = parts[3]
		}
		records = append(records, r)
	}
	return records, sc.Err()
}
