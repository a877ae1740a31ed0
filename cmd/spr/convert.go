package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/IMLS/state-program-report/internal/aggregate"
	"github.com/IMLS/state-program-report/internal/csvout"
	"github.com/IMLS/state-program-report/internal/document"
	"github.com/IMLS/state-program-report/internal/report"
	"github.com/IMLS/state-program-report/internal/sanitize"
	"github.com/IMLS/state-program-report/pkg/metadata"
)

var inputOverride string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the XML export into the CSV tree",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&inputOverride, "input", "", "path to the compressed XML export (overrides config)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	inputPath := cfg.Input.Path
	if inputOverride != "" {
		inputPath = inputOverride
	}

	runID := uuid.New().String()
	startedAt := time.Now()

	log.Info("starting conversion", "input", inputPath, "run_id", runID)

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	doc, err := document.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	log.Info("parsed document", "fiscal_year", doc.FiscalYear)

	processor := aggregate.NewProcessor(sanitize.New(sanitize.Options{
		KeepComments:       cfg.Sanitize.KeepComments,
		PreserveWhitespace: cfg.Sanitize.PreserveWhitespace,
	}))

	rs, err := processor.Process(doc)
	if err != nil {
		return fmt.Errorf("failed to process document: %w", err)
	}

	log.Info("normalized records", "states", len(rs.States()))

	written, err := csvout.WriteTree(cfg.Output.Dir, doc.FiscalYear, rs)
	if err != nil {
		return fmt.Errorf("failed to write CSV tree: %w", err)
	}

	manifestPath, err := writeManifest(cfg.Output.Dir, doc.FiscalYear, runID, startedAt, written)
	if err != nil {
		return err
	}

	log.Info("conversion complete",
		"files", len(written),
		"manifest", manifestPath,
		"duration", time.Since(startedAt),
	)

	fmt.Print(report.Summary(rs))

	return nil
}

// writeManifest records the written artifact paths, signed with the run
// metadata (fiscal year, generation timestamp, run identifier, hash).
func writeManifest(outDir, fiscalYear, runID string, generatedAt time.Time, written []string) (string, error) {
	lines := make([]string, len(written))
	for i, rel := range written {
		lines[i] = filepath.ToSlash(rel)
	}

	content := metadata.Sign(strings.Join(lines, "\n"), fiscalYear, runID, generatedAt)
	path := filepath.Join(outDir, fiscalYear, "manifest.txt")

	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return path, nil
}
