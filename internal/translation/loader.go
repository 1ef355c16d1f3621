package translation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadTableFile loads a phrase table from a file.
// Supported formats:
//   - YAML (.yaml, .yml): a sequence of {source: ..., target: ...} mappings
//   - anything else: one "french phrase = english phrase" per line,
//     blank lines and lines starting with '#' are ignored
//
// Pairs keep the order they are written in; see NewTable for duplicates.
func ReadTableFile(filename string) (*Table, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}

	var pairs []Pair
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		pairs, err = parseYAML(content)
	default:
		pairs = parseLines(string(content))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse table file %s: %w", filename, err)
	}

	table := NewTable(pairs...)
	if table.Len() == 0 {
		return nil, fmt.Errorf("table file %s contains no phrase pairs", filename)
	}

	return table, nil
}

func parseYAML(content []byte) ([]Pair, error) {
	var pairs []Pair
	if err := yaml.Unmarshal(content, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// parseLines reads "source = target" lines. The first '=' splits the line,
// so targets may contain '='. Lines with an empty side are ignored.
func parseLines(content string) []Pair {
	var pairs []Pair

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		source, target, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		source = strings.TrimSpace(source)
		target = strings.TrimSpace(target)
		if source == "" || target == "" {
			continue
		}

		pairs = append(pairs, Pair{Source: source, Target: target})
	}

	return pairs
}
