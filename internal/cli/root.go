package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/redline-cli/redline/internal/config"
	"github.com/redline-cli/redline/internal/gitdiff"
	"github.com/redline-cli/redline/internal/logging"
	"github.com/redline-cli/redline/internal/ollama"
	"github.com/redline-cli/redline/internal/output"
	"github.com/redline-cli/redline/internal/review"
	"github.com/redline-cli/redline/internal/scan"
)

// version is overridden by Run with build information from the main
// package.
var version = "dev"

var (
	flagStaged   bool
	flagPath     string
	flagURL      string
	flagModel    string
	flagMaxFiles int
	flagOut      string
	flagNoRedact bool
)

var rootCmd = &cobra.Command{
	Use:   "redline",
	Short: "Review local changes with a local Ollama model",
	Long: "Redline collects your working-tree diff and surrounding codebase\n" +
		"context, sends both to a locally hosted Ollama endpoint, and prints\n" +
		"the model's code review.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview()
	},
}

// Run executes the root command and returns a process exit code.
func Run(buildVersion string) int {
	if buildVersion != "" {
		version = buildVersion
	}

	logging.Setup(os.Getenv("DEBUG") == "TRUE")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return 1
	}
	return 0
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print redline version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "redline version %s\n", version)
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagURL != "" {
		m["url"] = flagURL
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagMaxFiles > 0 {
		m["maxFiles"] = fmt.Sprintf("%d", flagMaxFiles)
	}
	if flagNoRedact {
		m["redact"] = "false"
	}
	return m
}

func runReview() error {
	cfg := config.Load(".", buildOverrides())
	logger := logging.Component("cli").With().Str("run_id", uuid.NewString()).Logger()

	if meta, err := gitdiff.Meta(); err == nil {
		logger.Debug().
			Str("root", meta.Root).
			Str("branch", meta.Branch).
			Str("head", meta.Head).
			Msg("repository detected")
	}
	logger.Debug().
		Str("url", cfg.OllamaURL).
		Str("model", cfg.Model).
		Msg("settings loaded")

	pipe := review.Pipeline{
		Walker:   review.WalkerFunc(scan.Walk),
		Diffs:    review.DiffFunc(gitdiff.Diff),
		Gen:      ollama.New(cfg.OllamaURL, cfg.Model),
		MaxFiles: cfg.MaxContextFiles,
		Redact:   cfg.RedactSecrets,
	}

	path := flagPath
	if path == "" {
		path = "."
	}

	text, err := pipe.Run(context.Background(), path, flagStaged)
	if err != nil {
		return err
	}
	return output.Write(text, flagOut)
}

func init() {
	rootCmd.Flags().BoolVar(&flagStaged, "staged", false, "Review staged changes instead of the working tree")
	rootCmd.Flags().StringVar(&flagPath, "path", "", "Path scope for the diff and codebase scan (default: current directory)")
	rootCmd.Flags().StringVar(&flagURL, "url", "", "Ollama endpoint URL")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	rootCmd.Flags().IntVar(&flagMaxFiles, "max-files", 0, "Maximum number of context files in the prompt")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}
