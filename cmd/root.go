package cmd

import (
	"os"
	"strings"

	"github.com/adam-wheater/source-flattener/pkg/flatten"
	"github.com/adam-wheater/source-flattener/pkg/logging"
	"github.com/adam-wheater/source-flattener/pkg/version"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	flagRoot            string
	flagExts            string
	flagExcludeDirs     string
	flagStripComments   bool
	flagStripDocstrings bool
	flagTabSpaces       int
	flagCollapseBlankTo int
	flagMaxFileSizeKB   int
	flagChunkChars      int
	flagOutDir          string
	flagPrefix          string
	flagTree            string
	flagGlobalIgnore    string
	flagWorkers         int
	flagDebug           bool
)

// RootCmd is the base command. Running it without a subcommand executes the
// flatten pipeline against --root.
var RootCmd = &cobra.Command{
	Use:   "srcflat",
	Short: "srcflat flattens a source tree into paste-friendly text chunks",
	Long: `srcflat walks a directory tree, optionally strips language comments,
normalizes whitespace, and concatenates every matching file into chunked
plain-text output sized for paste-limited consumers such as chat prompts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is the normal case, not an error.
		_ = godotenv.Load()

		if flagDebug {
			if err := logging.Setup(true, "srcflat", version.Get().Version); err != nil {
				return err
			}
			logger = logging.Logger
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		globalIgnore := flagGlobalIgnore
		if globalIgnore == "" {
			globalIgnore = os.Getenv("SRCFLAT_GLOBAL_IGNORE")
		}

		flattenArgs := &flatten.Arguments{
			Root:              flagRoot,
			Extensions:        splitList(flagExts),
			ExcludeDirs:       splitList(flagExcludeDirs),
			StripComments:     flagStripComments,
			StripPyDocstrings: flagStripDocstrings,
			TabSpaces:         flagTabSpaces,
			CollapseBlankTo:   flagCollapseBlankTo,
			MaxFileSizeKB:     flagMaxFileSizeKB,
			ChunkChars:        flagChunkChars,
			OutDir:            flagOutDir,
			Prefix:            flagPrefix,
			TreeFile:          flagTree,
			GlobalIgnoreFile:  globalIgnore,
			Workers:           flagWorkers,
		}
		return flatten.Run(flattenArgs, logger)
	},
}

// Execute runs the root command with the provided logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVar(&flagRoot, "root", ".", "Root directory to scan")
	RootCmd.Flags().StringVar(&flagExts, "exts", strings.Join(flatten.DefaultExtensions(), ","),
		"Comma-separated file extensions to include, e.g. .py,.cs")
	RootCmd.Flags().StringVar(&flagExcludeDirs, "exclude-dir", strings.Join(flatten.DefaultExcludeDirs(), ","),
		"Comma-separated directory names to exclude")
	RootCmd.Flags().BoolVar(&flagStripComments, "strip-comments", false, "Strip language comments")
	RootCmd.Flags().BoolVar(&flagStripDocstrings, "strip-py-docstrings", false, "Remove Python triple-quoted strings")
	RootCmd.Flags().IntVar(&flagTabSpaces, "tab-spaces", 2, "Spaces per tab stop")
	RootCmd.Flags().IntVar(&flagCollapseBlankTo, "collapse-blank-to", 1, "Max consecutive blank lines")
	RootCmd.Flags().IntVar(&flagMaxFileSizeKB, "max-file-size-kb", 0, "Skip files larger than this size in KB (0 = no limit)")
	RootCmd.Flags().IntVar(&flagChunkChars, "chunk-chars", 13000, "Max characters per output chunk")
	RootCmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory for output files")
	RootCmd.Flags().StringVar(&flagPrefix, "prefix", "output", "Prefix for output file names")
	RootCmd.Flags().StringVar(&flagTree, "tree", "", "Optional path for a directory tree listing")
	RootCmd.Flags().StringVar(&flagGlobalIgnore, "global-ignore", "",
		"Path to a global ignore file (defaults to $SRCFLAT_GLOBAL_IGNORE)")
	RootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent file workers (0 = NumCPU)")
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
