package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tempo/internal/adapters/turso"
	"github.com/emiliopalmerini/tempo/internal/infrastructure/config"
	"github.com/emiliopalmerini/tempo/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <project-id>",
	Short: "Export a project's working time report as PDF",
	Long: `Export a project's completed time entries as a PDF report.

The report is written to the current directory unless --out is given.

Examples:
  tempo export 7f9f1a2b-...               # time_entries_<name>_<date>.pdf
  tempo export 7f9f1a2b-... --out r.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var dbCfg config.Database
	if err := envconfig.Process("", &dbCfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := turso.NewRemoteDB(dbCfg.URL, dbCfg.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repos := turso.NewRepositories(db)

	project, err := repos.Projects.GetByID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return fmt.Errorf("project %s not found", args[0])
	}

	entries, err := repos.TimeEntries.ListByProject(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to load time entries: %w", err)
	}

	doc, err := report.Build(entries, report.Metadata{
		Title:   project.Name,
		Subject: "Working time report",
		Creator: "tempo",
	})
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = report.Filename(project.Name, time.Now())
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(doc))
	return nil
}
