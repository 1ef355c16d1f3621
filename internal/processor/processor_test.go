package processor

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/doctrans/internal/testutil"
	"codeberg.org/snonux/doctrans/internal/translation"
)

func newTestProcessor(config *Config) (*Processor, *bytes.Buffer) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(config, translation.NewDefaultTable(), &out, logger), &out
}

func TestNewProcessor_Defaults(t *testing.T) {
	p := NewProcessor(&Config{}, translation.NewDefaultTable(), nil, nil)

	require.NotNil(t, p)
	assert.Equal(t, os.Stdout, p.out)
	assert.NotNil(t, p.logger)
}

func TestProcessTree_TranslatesFile(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t, "004-hydraulic")
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "004-hydraulic", "vanne.rst"),
		[]byte("Vanne d'équilibrage TA avec 3 tours"))

	p, out := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		Subdirectories:  []string{"004-hydraulic"},
		FileExtension:   ".rst",
	})

	result := p.ProcessTree()

	assert.Equal(t, Result{Translated: 1}, result)
	testutil.AssertFileExists(t, filepath.Join(destRoot, "004-hydraulic", "vanne.rst"))
	testutil.AssertFileContent(t, filepath.Join(destRoot, "004-hydraulic", "vanne.rst"), "TA Balancing Valve with 3 turns")
	testutil.AssertFileContent(t, filepath.Join(sourceRoot, "004-hydraulic", "vanne.rst"), "Vanne d'équilibrage TA avec 3 tours")
	assert.Contains(t, out.String(), "Translated: "+filepath.Join(sourceRoot, "004-hydraulic", "vanne.rst")+" -> "+filepath.Join(destRoot, "004-hydraulic", "vanne.rst"))
	assert.Contains(t, out.String(), "Translation complete: 1 translated, 0 failed\n")
}

func TestProcessTree_SkipsMissingSourceDirectory(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t, "005-aeraulic")
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "005-aeraulic", "debit.rst"), []byte("Débit"))

	p, out := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		Subdirectories:  []string{"001-heat_transfer", "005-aeraulic"},
		FileExtension:   ".rst",
	})

	result := p.ProcessTree()

	assert.Equal(t, Result{Translated: 1, SkippedDirs: 1}, result)
	testutil.AssertFileContent(t, filepath.Join(destRoot, "005-aeraulic", "debit.rst"), "Flow rate")
	assert.NotContains(t, out.String(), "Error")
}

func TestProcessTree_SkipsSourcePathThatIsNotADirectory(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t, "005-aeraulic")
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "004-hydraulic"), []byte("not a directory"))
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "005-aeraulic", "debit.rst"), []byte("Débit"))

	p, out := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		Subdirectories:  []string{"004-hydraulic", "005-aeraulic"},
		FileExtension:   ".rst",
	})

	result := p.ProcessTree()

	assert.Equal(t, Result{Translated: 1, SkippedDirs: 1}, result)
	assert.NotContains(t, out.String(), "Error")
	testutil.AssertFileExists(t, filepath.Join(destRoot, "005-aeraulic", "debit.rst"))
}

func TestProcessTree_ReportsUnreadableSourceDirectory(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t, "005-aeraulic")
	// A self-referencing symlink fails to resolve for any user, root included
	loop := filepath.Join(sourceRoot, "004-hydraulic")
	require.NoError(t, os.Symlink(loop, loop))
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "005-aeraulic", "debit.rst"), []byte("Débit"))

	p, out := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		Subdirectories:  []string{"004-hydraulic", "005-aeraulic"},
		FileExtension:   ".rst",
	})

	result := p.ProcessTree()

	assert.Equal(t, Result{Translated: 1, SkippedDirs: 1}, result)
	assert.Contains(t, out.String(), "Error reading directory "+loop)
	testutil.AssertFileContent(t, filepath.Join(destRoot, "005-aeraulic", "debit.rst"), "Flow rate")
}

func TestProcessTree_UnwritableDestinationContinues(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t, "b")
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "a", "first.rst"), []byte("avec"))
	testutil.CreateTestFile(t, filepath.Join(sourceRoot, "b", "second.rst"), []byte("avec"))
	// A regular file where the destination directory should be makes every
	// write below it fail, regardless of the user running the test.
	testutil.CreateTestFile(t, filepath.Join(destRoot, "a"), []byte("not a directory"))

	p, out := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		Subdirectories:  []string{"a", "b"},
		FileExtension:   ".rst",
	})

	result := p.ProcessTree()

	assert.Equal(t, Result{Translated: 1, Failed: 1}, result)
	assert.Contains(t, out.String(), "Error translating "+filepath.Join(sourceRoot, "a", "first.rst"))
	assert.Contains(t, out.String(), "Translation complete: 1 translated, 1 failed\n")
	testutil.AssertFileContent(t, filepath.Join(destRoot, "b", "second.rst"), "with")
}

func TestProcessTree_MissingDestinationDirectory(t *testing.T) {
	tests := []struct {
		name       string
		createDirs bool
		want       Result
	}{
		{"not created by default", false, Result{Failed: 2}},
		{"created when enabled", true, Result{Translated: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sourceRoot, _ := testutil.CreateTestDirectory(t)
			destRoot := filepath.Join(t.TempDir(), "en")
			testutil.CreateTestFile(t, filepath.Join(sourceRoot, "010-achat-energie", "contrat.rst"), []byte("Valeur"))
			testutil.CreateTestFile(t, filepath.Join(sourceRoot, "010-achat-energie", "exemples", "exemple.rst"), []byte("Paramètre"))

			p, _ := newTestProcessor(&Config{
				SourceRoot:      sourceRoot,
				DestinationRoot: destRoot,
				Subdirectories:  []string{"010-achat-energie", "010-achat-energie/exemples"},
				FileExtension:   ".rst",
				CreateDirs:      tt.createDirs,
			})

			result := p.ProcessTree()
			assert.Equal(t, tt.want, result)

			contrat := filepath.Join(destRoot, "010-achat-energie", "contrat.rst")
			exemple := filepath.Join(destRoot, "010-achat-energie", "exemples", "exemple.rst")
			if tt.createDirs {
				testutil.AssertFileContent(t, contrat, "Value")
				testutil.AssertFileContent(t, exemple, "Parameter")
			} else {
				testutil.AssertFileNotExists(t, contrat)
				testutil.AssertFileNotExists(t, exemple)
			}
		})
	}
}

func TestProcessTree_OnlyEligibleFiles(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t, "003-ahu_modules")
	dir := filepath.Join(sourceRoot, "003-ahu_modules")
	testutil.CreateTestFile(t, filepath.Join(dir, "index.rst"), []byte("Vanne"))
	testutil.CreateTestFile(t, filepath.Join(dir, "notes.txt"), []byte("Vanne"))
	testutil.CreateTestFile(t, filepath.Join(dir, "upper.RST"), []byte("Vanne"))
	testutil.CreateTestFile(t, filepath.Join(dir, "index.rst.bak"), []byte("Vanne"))
	testutil.CreateTestFile(t, filepath.Join(dir, "nested", "deep.rst"), []byte("Vanne"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images.rst"), 0755))

	p, _ := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		Subdirectories:  []string{"003-ahu_modules"},
		FileExtension:   ".rst",
		CreateDirs:      true,
	})

	result := p.ProcessTree()

	assert.Equal(t, Result{Translated: 1}, result)
	destDir := filepath.Join(destRoot, "003-ahu_modules")
	testutil.AssertFileContent(t, filepath.Join(destDir, "index.rst"), "Valve")
	testutil.AssertFileNotExists(t, filepath.Join(destDir, "notes.txt"))
	testutil.AssertFileNotExists(t, filepath.Join(destDir, "upper.RST"))
	testutil.AssertFileNotExists(t, filepath.Join(destDir, "index.rst.bak"))
	testutil.AssertFileNotExists(t, filepath.Join(destDir, "nested", "deep.rst"))
}

func TestProcessTree_NoSubdirectories(t *testing.T) {
	sourceRoot, destRoot := testutil.CreateTestDirectory(t)

	p, out := newTestProcessor(&Config{
		SourceRoot:      sourceRoot,
		DestinationRoot: destRoot,
		FileExtension:   ".rst",
	})

	assert.Equal(t, Result{}, p.ProcessTree())
	assert.Equal(t, "Translation complete: 0 translated, 0 failed\n", out.String())
}

func TestTranslateFile_OverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.rst")
	output := filepath.Join(dir, "out.rst")
	testutil.CreateTestFile(t, input, []byte("Nombre de tours"))
	testutil.CreateTestFile(t, output, []byte("stale content that is longer than the translation"))

	p, _ := newTestProcessor(&Config{})

	require.NoError(t, p.TranslateFile(input, output))
	testutil.AssertFileContent(t, output, "Number of turns")
}

func TestTranslateFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.rst")
	output := filepath.Join(dir, "out.rst")

	p, out := newTestProcessor(&Config{})

	err := p.TranslateFile(input, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, out.String(), "Error translating "+input+": failed to read source file")
	testutil.AssertFileNotExists(t, output)
}

func TestTranslateFile_InvalidEncoding(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "latin1.rst")
	output := filepath.Join(dir, "out.rst")
	// "Débit" encoded as ISO-8859-1
	testutil.CreateTestFile(t, input, []byte{'D', 0xe9, 'b', 'i', 't'})

	p, out := newTestProcessor(&Config{})

	err := p.TranslateFile(input, output)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Contains(t, out.String(), "Error translating "+input)
	testutil.AssertFileNotExists(t, output)
}

func TestTranslateFile_CustomTable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.rst")
	output := filepath.Join(dir, "out.rst")
	testutil.CreateTestFile(t, input, []byte("Titre\n=====\n\nBonjour (le monde).\n"))

	table := translation.NewTable(
		translation.Pair{Source: "Titre", Target: "Title"},
		translation.Pair{Source: "bonjour (le monde).", Target: "Hello (world)."},
	)
	var out bytes.Buffer
	p := NewProcessor(&Config{}, table, &out, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, p.TranslateFile(input, output))
	testutil.AssertFileContains(t, output, "Hello (world).")
	testutil.AssertFileContent(t, output, "Title\n=====\n\nHello (world).\n")
	assert.Equal(t, "Translated: "+input+" -> "+output+"\n", out.String())
}
