package processor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/doctrans/internal/translation"
)

// ErrInvalidEncoding is returned when a source file is not valid UTF-8
var ErrInvalidEncoding = errors.New("source file is not valid UTF-8")

// Config describes which files to translate and where to write them
type Config struct {
	// SourceRoot is the base directory of the French documentation
	SourceRoot string
	// DestinationRoot is the base directory of the English documentation
	DestinationRoot string
	// Subdirectories are processed in order, relative to both roots
	Subdirectories []string
	// FileExtension is the file name suffix of eligible files, e.g. ".rst"
	FileExtension string
	// CreateDirs creates missing destination directories before writing
	CreateDirs bool
}

// Result counts what happened during a walk
type Result struct {
	Translated  int
	Failed      int
	SkippedDirs int
}

// Processor translates documentation files with a phrase table
type Processor struct {
	config *Config
	table  *translation.Table
	out    io.Writer
	logger *slog.Logger
}

// NewProcessor creates a new processor. Status lines are written to out
// (stdout when nil); diagnostics go to logger (slog.Default when nil).
func NewProcessor(config *Config, table *translation.Table, out io.Writer, logger *slog.Logger) *Processor {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		config: config,
		table:  table,
		out:    out,
		logger: logger,
	}
}

// ProcessTree translates the eligible files of every configured subdirectory.
// Source subdirectories that are missing or not directories are skipped
// without a status line; any other error listing one is reported. Files in nested directories are
// not visited unless the nested directory is itself configured.
func (p *Processor) ProcessTree() Result {
	var result Result

	p.logger.Debug("Starting translation",
		slog.String("source", p.config.SourceRoot),
		slog.String("destination", p.config.DestinationRoot),
		slog.Int("phrases", p.table.Len()))

	for _, dir := range p.config.Subdirectories {
		sourceDir := filepath.Join(p.config.SourceRoot, dir)
		destDir := filepath.Join(p.config.DestinationRoot, dir)

		info, err := os.Stat(sourceDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			p.logger.Debug("Source directory does not exist, skipping", slog.String("path", sourceDir))
			result.SkippedDirs++
			continue
		case err == nil && !info.IsDir():
			p.logger.Debug("Source path is not a directory, skipping", slog.String("path", sourceDir))
			result.SkippedDirs++
			continue
		}

		entries, err := os.ReadDir(sourceDir)
		if err != nil {
			fmt.Fprintf(p.out, "Error reading directory %s: %v\n", sourceDir, err)
			result.SkippedDirs++
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), p.config.FileExtension) {
				continue
			}

			inputPath := filepath.Join(sourceDir, entry.Name())
			outputPath := filepath.Join(destDir, entry.Name())

			if err := p.TranslateFile(inputPath, outputPath); err != nil {
				result.Failed++
			} else {
				result.Translated++
			}
		}
	}

	fmt.Fprintf(p.out, "Translation complete: %d translated, %d failed\n", result.Translated, result.Failed)
	return result
}

// TranslateFile translates one file and prints a status line for it.
// The returned error has already been reported; callers only need it to
// keep count.
func (p *Processor) TranslateFile(inputPath, outputPath string) error {
	if err := p.translateFile(inputPath, outputPath); err != nil {
		fmt.Fprintf(p.out, "Error translating %s: %v\n", inputPath, err)
		return err
	}

	fmt.Fprintf(p.out, "Translated: %s -> %s\n", inputPath, outputPath)
	return nil
}

func (p *Processor) translateFile(inputPath, outputPath string) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	if !utf8.Valid(content) {
		return ErrInvalidEncoding
	}

	translated := p.table.Apply(string(content))

	if p.config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			return fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(translated), 0644); err != nil {
		return fmt.Errorf("failed to write destination file: %w", err)
	}

	return nil
}
