package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IMLS/state-program-report/internal/publish"
	"github.com/IMLS/state-program-report/pkg/metadata"
)

var publishFiscalYear string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a converted fiscal year to the configured repository",
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishFiscalYear, "fiscal-year", "", "fiscal year to publish (required)")
	publishCmd.MarkFlagRequired("fiscal-year")
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	if err := cfg.ValidatePublish(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	token := cfg.Token()
	if token == "" {
		return fmt.Errorf("%w: set %s", publish.ErrMissingToken, cfg.Publish.TokenEnv)
	}

	manifestRel := path.Join(publishFiscalYear, "manifest.txt")

	raw, err := os.ReadFile(filepath.Join(cfg.Output.Dir, manifestRel))
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	if _, err := metadata.Verify(string(raw)); err != nil {
		return fmt.Errorf("manifest verification failed: %w", err)
	}

	meta, body := metadata.Extract(string(raw))
	log.Info("verified manifest",
		"fiscal_year", meta.FiscalYear,
		"run_id", meta.RunID,
		"generated_at", meta.GeneratedAt,
	)

	relPaths := []string{manifestRel}
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			relPaths = append(relPaths, line)
		}
	}

	files, err := publish.LoadTree(cfg.Output.Dir, relPaths)
	if err != nil {
		return err
	}

	client := publish.NewGitHubClient(
		cfg.Publish.APIBase,
		cfg.Publish.Owner,
		cfg.Publish.Repo,
		token,
		log,
	)

	message := fmt.Sprintf("%s (FY%s)", cfg.Publish.CommitMessage, publishFiscalYear)

	result, err := publish.NewUploader(client, log).Upload(files, cfg.Publish.Branch, message)
	if err != nil {
		return err
	}

	log.Info("publish complete",
		"created", result.Created,
		"updated", result.Updated,
		"errors", len(result.Errors),
	)

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d files failed to publish", len(result.Errors), len(files))
	}

	return nil
}
