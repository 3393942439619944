package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ckasturi/sift/internal/classifier"
	"github.com/ckasturi/sift/internal/cli"
	"github.com/ckasturi/sift/internal/export"
	"github.com/ckasturi/sift/internal/ingest"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <templates.xlsx>",
		Short: "Classify SMS templates and check their placeholder formats",
		Long: `Classify every template message in the sheet as Transactional,
Service-Implicit, or Service-Explicit, validate its placeholder format,
and assign each entity's templates to an agent.

The results are written as a new workbook with the original columns
preserved and the classification columns appended.`,
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: <input>_classified.xlsx)")
	cmd.Flags().StringSlice("agents", nil, "agent names for round-robin assignment")
	_ = viper.BindPFlag("classify.agents", cmd.Flags().Lookup("agents"))

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	input := args[0]

	table, err := ingest.ReadFile(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}
	slog.Info("Loaded template sheet", "path", input, "rows", len(table.Records))

	agents := viper.GetStringSlice("classify.agents")
	if len(agents) == 0 {
		agents = classifier.DefaultAgents
	}

	bar := progressbar.NewOptions(len(table.Records),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Classifying templates..."),
	)

	engine := classifier.NewDefault()
	engine.OnProgress = func(_, _ int) {
		_ = bar.Add(1)
	}

	templates, summary, err := engine.ProcessBulk(table.Records, agents, time.Now())
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	store.SetTemplates(templates)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + "_classified.xlsx"
	}

	if err := export.WriteClassified(output, table.Headers, templates); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Println(cli.FormatTitle("Classification Summary"))
	fmt.Println(cli.RenderClassificationSummary(summary))
	fmt.Println(cli.FormatSuccess("Wrote " + output))

	return nil
}
