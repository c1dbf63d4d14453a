package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/fdd-atlas/pkg/export"
	"github.com/de-tools/fdd-atlas/pkg/services/config"
	"github.com/de-tools/fdd-atlas/pkg/services/ledger"
	"github.com/de-tools/fdd-atlas/pkg/services/report"
)

type AnalyzeCmd struct {
	inputPath  string
	outputPath string
	configPath string
	noSummary  bool
	output     io.Writer
}

func NewAnalyzeCmd(output io.Writer) *cobra.Command {
	ac := &AnalyzeCmd{output: output}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate a due diligence questionnaire from a trial balance",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.inputPath, "input", "", "Path to the trial balance CSV")
	cmd.Flags().StringVar(&ac.outputPath, "output", "", "Path of the questionnaire CSV to write (defaults to <input>_qa.csv)")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to a config file overriding the default thresholds")
	cmd.Flags().BoolVar(&ac.noSummary, "no-summary", false, "Skip the executive summary output")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(ac.configPath)
	if err != nil {
		return err
	}

	generator, err := report.NewGenerator(report.Config{
		Analyzer: cfg.Analyzer,
		Rules:    cfg.Rules,
	})
	if err != nil {
		return err
	}

	l, err := ledger.ReadFile(ac.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read balance file: %w", err)
	}

	qaReport, err := generator.Generate(cmd.Context(), l)
	if err != nil {
		return fmt.Errorf("failed to generate questionnaire: %w", err)
	}

	outputPath := ac.outputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(ac.inputPath, ".csv") + "_qa.csv"
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := export.WriteCSV(out, qaReport); err != nil {
		return fmt.Errorf("failed to write questionnaire: %w", err)
	}

	fmt.Fprintf(ac.output, "Questionnaire written to %s (%d items, %d questions)\n",
		outputPath, len(qaReport.Items), len(qaReport.Questions()))

	if ac.noSummary {
		return nil
	}
	return export.NewReporter(ac.output).Handle(qaReport)
}
