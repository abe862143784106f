package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/rename-files/internal/version"
	"github.com/arthur-debert/rename-files/pkg/config"
	"github.com/arthur-debert/rename-files/pkg/engine"
	"github.com/arthur-debert/rename-files/pkg/errors"
	"github.com/arthur-debert/rename-files/pkg/filesystem"
	"github.com/arthur-debert/rename-files/pkg/logging"
	"github.com/arthur-debert/rename-files/pkg/ui"
	"github.com/arthur-debert/rename-files/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// app carries per-invocation state between the cobra command and Run
type app struct {
	stderr io.Writer
	format ui.Format
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return (&app{stderr: os.Stderr}).rootCmd()
}

// Run executes the command line and returns the process exit code.
//
// A rename failure prints the one-line diagnostic to stderr. Any other
// error, including bad arguments and a pattern that does not compile,
// prints the error followed by usage.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr}
	rootCmd := a.rootCmd()
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var failure *engine.Failure
	if stderrors.As(err, &failure) {
		renderer := ui.NewDiagnosticRenderer(a.format, styles.Default())
		fmt.Fprintln(stderr, renderer.Render(failure))
		return ExitFailure
	}

	fmt.Fprintf(stderr, MsgErrorPrefix, err)
	fmt.Fprintln(stderr)
	fmt.Fprint(stderr, rootCmd.UsageString())
	return ExitFailure
}

func (a *app) rootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		color     string
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    requireArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("verbose") {
				overrides["logging.verbosity"] = verbosity
			}
			if cmd.Flags().Changed("color") {
				overrides["output.color"] = color
			}

			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}

			errFile, _ := a.stderr.(*os.File)
			a.format = ui.ResolveFormat(cfg.Output.Color, errFile)

			logging.SetupLogger(logging.Options{
				Verbosity:  cfg.Logging.Verbosity,
				Out:        a.stderr,
				TimeFormat: cfg.Logging.TimeFormat,
				NoColor:    a.format != ui.FormatTerminal,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			return a.rename(args[0], args[1], args[2:])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Patterns and file names after the first positional argument are
	// never parsed as flags
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&color, "color", config.ColorAuto, MsgFlagColor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	return rootCmd
}

func (a *app) rename(matchPattern, replacement string, files []string) error {
	logger := logging.GetLogger("cli")

	e, err := engine.New(matchPattern, replacement)
	if err != nil {
		return err
	}

	logger.Info().
		Str("match", matchPattern).
		Str("replace", replacement).
		Int("files", len(files)).
		Bool("atomic", filesystem.SupportsAtomicNoReplace()).
		Msg("Renaming files")

	result, err := e.Process(files)
	if err != nil {
		logger.Info().
			Int("renamed", result.Renamed()).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Stopped after failed rename")
		return err
	}

	logger.Info().
		Int("renamed", result.Renamed()).
		Int("unchanged", len(result.Entries)-result.Renamed()).
		Msg("All files processed")
	return nil
}

// requireArgs checks the positional arguments in order, so the message
// names the first one that is missing
func requireArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.New(errors.ErrInvalidInput, MsgErrMatchRequired)
	case 1:
		return errors.New(errors.ErrInvalidInput, MsgErrReplaceRequired)
	case 2:
		return errors.New(errors.ErrInvalidInput, MsgErrFilesRequired)
	}
	return nil
}
