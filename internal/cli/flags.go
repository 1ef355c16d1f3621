package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile         string
	SourceRoot      string
	DestinationRoot string
	Subdirectories  []string
	FileExtension   string
	TableFile       string
	CreateDirs      bool
	Archive         bool
	Debug           bool
}

// DefaultSubdirectories are the documentation chapters translated when no
// list is configured
var DefaultSubdirectories = []string{
	"001-heat_transfer",
	"002-thermodynamic_cycles",
	"003-ahu_modules",
	"004-hydraulic",
	"005-aeraulic",
	"010-achat-energie",
	"010-achat-energie/exemples",
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	subdirs := make([]string, len(DefaultSubdirectories))
	copy(subdirs, DefaultSubdirectories)

	return &Flags{
		SourceRoot:      "EnergySystemModels-fr/docs/source",
		DestinationRoot: "EnergySystemModels-en/docs/source",
		Subdirectories:  subdirs,
		FileExtension:   ".rst",
	}
}
