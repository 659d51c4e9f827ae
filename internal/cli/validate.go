// regval - Power regulators configuration validator

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openbmc-tools/regval/internal/config"
	"github.com/openbmc-tools/regval/internal/document"
	"github.com/openbmc-tools/regval/internal/schema"
	"github.com/openbmc-tools/regval/internal/semantic"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate regulators configuration files",
	Long: `Validate one or more power regulators configuration files.

Each file is checked against the regulators JSON schema first, then against
the semantic rules the schema cannot express. Validation stops at the first
violation.

Returns exit code 0 when every file passes, 1 on a validation failure, and 2
for missing or unreadable input files.`,
	Example: `  # Validate a single configuration file
  regval validate -s config.schema.json -c config.json

  # Validate several files in one run
  regval validate -s config.schema.json -c a.json -c b.json

  # Semantic checks only
  regval validate -k -c config.json`,
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	validateCmd.Flags().StringP("schema-file", "s", "", "regulators JSON schema file")
	validateCmd.Flags().StringArrayP("configuration-file", "c", nil, "regulators configuration JSON file (repeatable)")
	validateCmd.Flags().BoolP("skip-schema-validation", "k", false, "skip schema validation and only run the semantic checks")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return &exitError{code: ExitInvalidArguments, err: err}
	}

	schemaFile, _ := cmd.Flags().GetString("schema-file")
	if schemaFile == "" {
		schemaFile = cfg.SchemaFile
	}
	configFiles, _ := cmd.Flags().GetStringArray("configuration-file")
	skipSchema, _ := cmd.Flags().GetBool("skip-schema-validation")
	skipSchema = skipSchema || cfg.SkipSchemaValidation

	if len(configFiles) == 0 {
		return &exitError{code: ExitInvalidArguments, err: fmt.Errorf("configuration file required")}
	}
	if !skipSchema && schemaFile == "" {
		return &exitError{code: ExitInvalidArguments, err: fmt.Errorf("schema file required")}
	}

	var checker *schema.Checker
	if !skipSchema {
		checker, err = schema.NewChecker(schemaFile)
		if err != nil {
			return &exitError{code: ExitInvalidArguments, err: err}
		}
	}

	spin := startSpinner(cfg, len(configFiles))
	err = validateFiles(checker, configFiles, cmd.OutOrStdout(), terminalSymbols())
	stopSpinner(spin)
	return err
}

// resultSymbols are the per-file pass/fail markers.
type resultSymbols struct {
	pass string
	fail string
}

// selectSymbols returns Unicode markers when the terminal supports them and
// an ASCII fallback otherwise.
func selectSymbols(unicode bool) resultSymbols {
	if unicode {
		return resultSymbols{pass: "✓", fail: "✗"}
	}
	return resultSymbols{pass: "[OK]", fail: "[FAIL]"}
}

// terminalSymbols picks markers for the current stdout. Pipes and CI logs
// get ASCII; REGVAL_ASCII=1 forces it on a terminal.
func terminalSymbols() resultSymbols {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return selectSymbols(isTTY && os.Getenv("REGVAL_ASCII") != "1")
}

// validateFiles validates each file in order and stops at the first failure.
func validateFiles(checker *schema.Checker, paths []string, out io.Writer, syms resultSymbols) error {
	for _, path := range paths {
		if err := validateFile(checker, path, out, syms); err != nil {
			return err
		}
	}
	return nil
}

// validateFile runs the full pipeline for one file: load, structural schema
// check (unless skipped), then the semantic checks.
func validateFile(checker *schema.Checker, path string, out io.Writer, syms resultSymbols) error {
	doc, err := document.LoadFile(path)
	if err != nil {
		fmt.Fprintf(out, "%s %s: %v\n", syms.fail, path, err)
		return &exitError{code: ExitInvalidArguments, err: err}
	}
	if checker != nil {
		if err := checker.Check(doc); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", syms.fail, path, err)
			return &exitError{code: ExitValidationFailed, err: err}
		}
	}
	if err := semantic.Validate(doc); err != nil {
		fmt.Fprintf(out, "%s %s: %v\n", syms.fail, path, err)
		return &exitError{code: ExitValidationFailed, err: err}
	}
	fmt.Fprintf(out, "%s %s passed validation\n", syms.pass, path)
	return nil
}

// startSpinner shows progress on stderr for batch runs on a terminal.
// Returns nil when progress is disabled, the run is a single file, or stdout
// is not a TTY.
func startSpinner(cfg *config.Configuration, files int) *spinner.Spinner {
	if !cfg.ShowProgress || files < 2 || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = fmt.Sprintf(" validating %d configuration files", files)
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
