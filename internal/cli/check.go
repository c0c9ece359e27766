package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmlvet/internal/configloader"
	"github.com/yaklabco/htmlvet/internal/logging"
	"github.com/yaklabco/htmlvet/pkg/check"
	_ "github.com/yaklabco/htmlvet/pkg/check/rules" // Register built-in rules
	"github.com/yaklabco/htmlvet/pkg/config"
	"github.com/yaklabco/htmlvet/pkg/reporter"
	"github.com/yaklabco/htmlvet/pkg/runner"
)

type checkFlags struct {
	format      string
	maxExamples int
	enable      []string
	disable     []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check one HTML document",
		Long:  checkLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().IntVar(&flags.maxExamples, "max-examples", 0,
		"maximum failure examples shown per check (0 = config default)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to run exclusively")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to skip")

	return cmd
}

const checkLongDescription = `Check one HTML document against the built-in structural rules.

Each rule prints a PASS or FAIL line; failures carry a diagnostic and up to
a handful of concrete examples. The final line reports the overall verdict.

Exit codes:
  0  document read, all checks passed
  1  document read, at least one check failed
  2  document missing or unreadable

Examples:
  htmlvet check index.html             # Check a document
  htmlvet check --format json out.html # Machine-readable report
  htmlvet check --disable HV008 a.html # Skip the ampersand check`

func runCheck(cmd *cobra.Command, path string, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Map changed flags into a CLI-level config overlay.
	cliCfg := &config.Config{
		Format:       config.OutputFormat(flags.format),
		MaxExamples:  flags.maxExamples,
		EnableRules:  flags.enable,
		DisableRules: flags.disable,
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldMaxExamples, finalCfg.MaxExamples,
	)

	checkRunner := runner.New(check.DefaultRegistry)

	logger.Debug("starting check run",
		logging.FieldPath, path,
		logging.FieldWorkingDir, workDir,
	)

	report, err := checkRunner.Run(ctx, path, finalCfg)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     format,
		Color:      colorMode,
		ShowHeader: true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.Report(ctx, report)
	if err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("check run finished",
		logging.FieldChecksRun, len(report.Results),
		logging.FieldChecksFailed, failed,
		logging.FieldOverall, report.Passed(),
	)

	if failed > 0 {
		return ErrChecksFailed
	}

	return nil
}
