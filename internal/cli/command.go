package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/doctrans/internal"
	"codeberg.org/snonux/doctrans/internal/processor"
	"codeberg.org/snonux/doctrans/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "doctrans",
		Short: "French to English documentation translator",
		Long: `doctrans translates reStructuredText documentation from French to
English by replacing known technical phrases from a phrase table.

Each configured subdirectory of the source root is scanned for files with
the configured extension, and the translated files are written to the same
relative path under the destination root.

Examples:
  doctrans                                   # Translate with the defaults
  doctrans -s fr/docs/source -d en/docs/source --create-dirs
  doctrans --table phrases.yaml --subdirs 004-hydraulic,005-aeraulic
  doctrans --archive                         # Move the destination tree to archive/`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.doctrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.SourceRoot, "source", "s", flags.SourceRoot, "Source root with the French documentation")
	cmd.Flags().StringVarP(&flags.DestinationRoot, "dest", "d", flags.DestinationRoot, "Destination root for the English documentation")
	cmd.Flags().StringSliceVar(&flags.Subdirectories, "subdirs", flags.Subdirectories, "Subdirectories to translate, relative to both roots")
	cmd.Flags().StringVar(&flags.FileExtension, "ext", flags.FileExtension, "Extension of files to translate")
	cmd.Flags().StringVarP(&flags.TableFile, "table", "t", "", "Phrase table file (.yaml or 'french = english' lines, default: built-in table)")
	cmd.Flags().BoolVar(&flags.CreateDirs, "create-dirs", false, "Create missing destination directories")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the destination root to an archive directory and exit")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("source.root", cmd.Flags().Lookup("source"))
	viper.BindPFlag("destination.root", cmd.Flags().Lookup("dest"))
	viper.BindPFlag("subdirectories", cmd.Flags().Lookup("subdirs"))
	viper.BindPFlag("extension", cmd.Flags().Lookup("ext"))
	viper.BindPFlag("table", cmd.Flags().Lookup("table"))
	viper.BindPFlag("create_dirs", cmd.Flags().Lookup("create-dirs"))
	viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".doctrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".doctrans")
	}

	// DOCTRANS_SOURCE_ROOT, DOCTRANS_CREATE_DIRS, ...
	viper.SetEnvPrefix("DOCTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// BuildConfig assembles the processor configuration from flags, environment
// and config file, in that order of precedence
func BuildConfig() *processor.Config {
	return &processor.Config{
		SourceRoot:      viper.GetString("source.root"),
		DestinationRoot: viper.GetString("destination.root"),
		Subdirectories:  splitList(viper.GetStringSlice("subdirectories")),
		FileExtension:   viper.GetString("extension"),
		CreateDirs:      viper.GetBool("create_dirs"),
	}
}

// splitList splits comma separated entries. Lists from flags and config files
// arrive already split, while an environment value such as
// DOCTRANS_SUBDIRECTORIES=004-hydraulic,005-aeraulic arrives as one entry.
func splitList(values []string) []string {
	var result []string
	for _, value := range values {
		for _, entry := range strings.Split(value, ",") {
			if entry = strings.TrimSpace(entry); entry != "" {
				result = append(result, entry)
			}
		}
	}
	return result
}

// LoadTable returns the configured phrase table, or the built-in one when no
// table file is set
func LoadTable() (*translation.Table, error) {
	if path := viper.GetString("table"); path != "" {
		return translation.ReadTableFile(path)
	}
	return translation.NewDefaultTable(), nil
}

// NewLogger creates the diagnostics logger writing to stderr
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
