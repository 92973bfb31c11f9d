package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tempo/internal/adapters/turso"
	"github.com/emiliopalmerini/tempo/internal/infrastructure/config"
	"github.com/emiliopalmerini/tempo/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates down to that specific version.

Examples:
  tempo migrate      # Run all pending migrations
  tempo migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
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

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, db); err != nil {
			return err
		}
		version, _, err := migrate.GetCurrentVersion(ctx, db)
		if err != nil {
			return err
		}
		fmt.Printf("Migrated to version %d\n", version)
		return nil
	}

	targetVersion, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version number: %s", args[0])
	}

	currentVersion, dirty, err := migrate.GetCurrentVersion(ctx, db)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, manual intervention required", currentVersion)
	}

	allMigrations, err := migrate.LoadMigrations()
	if err != nil {
		return err
	}

	switch {
	case targetVersion < currentVersion:
		if err := migrate.MigrateDownTo(ctx, db, allMigrations, currentVersion, targetVersion); err != nil {
			return err
		}
		fmt.Printf("Migrated down to version %d\n", targetVersion)
	case targetVersion > currentVersion:
		for _, m := range allMigrations {
			if m.Version <= currentVersion || m.Version > targetVersion {
				continue
			}
			if err := migrate.RunMigration(ctx, db, m, true); err != nil {
				return err
			}
		}
		fmt.Printf("Migrated up to version %d\n", targetVersion)
	default:
		fmt.Println("Already at target version")
	}

	return nil
}
