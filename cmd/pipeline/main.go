package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/willisshum/entity-onboarding/internal/admin"
	"github.com/willisshum/entity-onboarding/internal/config"
	"github.com/willisshum/entity-onboarding/internal/ingest"
	"github.com/willisshum/entity-onboarding/internal/logging"
	"github.com/willisshum/entity-onboarding/internal/pipeline"
	"github.com/willisshum/entity-onboarding/internal/refdata"
	"github.com/willisshum/entity-onboarding/internal/store"
)

type runOptions struct {
	input       string
	delimiter   string
	catalogPath string
	dryRun      bool
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Entity onboarding batch pipeline",
		Long: `Ingests a delimited export of business entities, cleanses and
deduplicates the records, quarantines rejects for manual review, and
upserts the accepted entities into the destination database.`,
	}
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newResetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline over one input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "delimited input file (overrides INPUT_PATH)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "field delimiter (overrides INPUT_DELIMITER)")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "YAML reference catalog file (overrides CATALOG_PATH)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "skip the destination load, still writing quarantine files")
	return cmd
}

func run(ctx context.Context, opts runOptions) error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Flags override env-sourced configuration.
	if opts.input != "" {
		os.Setenv("INPUT_PATH", opts.input)
	}
	if opts.delimiter != "" {
		os.Setenv("INPUT_DELIMITER", opts.delimiter)
	}
	if opts.catalogPath != "" {
		os.Setenv("CATALOG_PATH", opts.catalogPath)
	}
	if opts.dryRun {
		os.Setenv("LOAD_ENABLED", "false")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.Ingest.Path == "" {
		return fmt.Errorf("no input file: pass --input or set INPUT_PATH")
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	runID := uuid.New()
	log := logging.ForRun(runID)
	log.Info("configuration loaded",
		"input", cfg.Ingest.Path,
		"delimiter", cfg.Ingest.Delimiter,
		"load_enabled", cfg.Load.Enabled,
	)

	catalog, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	log.Info("ingesting delimited data", "path", cfg.Ingest.Path)
	raw, err := ingest.Read(cfg.Ingest.Path, cfg.Ingest.DelimiterRune())
	if err != nil {
		return err
	}
	rows, cols := raw.Shape()
	log.Info("ingest finished", "rows", rows, "columns", cols)

	p := pipeline.New(catalog, refdata.BuiltinLexicon(), log)
	result, err := p.Run(raw)
	if err != nil {
		// Structural failure: nothing has been loaded.
		return fmt.Errorf("pipeline aborted: %w", err)
	}

	if err := writeQuarantine(cfg, result, log); err != nil {
		return err
	}

	if !cfg.Load.Enabled {
		log.Info("load disabled, skipping destination upsert",
			"accepted", result.Accepted.Len())
		return nil
	}
	return load(ctx, cfg, result, runID, log)
}

// loadCatalog builds the reference catalog, merging a YAML override
// file over the builtin lists when one is configured.
func loadCatalog(cfg *config.Config, log *slog.Logger) (*refdata.Catalog, error) {
	var catalog *refdata.Catalog
	var err error
	if cfg.Catalog.Path != "" {
		catalog, err = refdata.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		log.Info("reference catalog loaded", "path", cfg.Catalog.Path)
	} else {
		catalog = refdata.Builtin()
	}
	catalog.MinScore = cfg.Catalog.MinScore
	return catalog, nil
}

// writeQuarantine persists each non-empty reject partition next to the
// input file (or under the configured quarantine directory) so the
// rows survive for manual review.
func writeQuarantine(cfg *config.Config, result pipeline.Result, log *slog.Logger) error {
	log = logging.WithStage(log, "quarantine")
	dir := cfg.Ingest.QuarantineDir
	if dir == "" {
		dir = filepath.Dir(cfg.Ingest.Path)
	}
	base := strings.TrimSuffix(filepath.Base(cfg.Ingest.Path), filepath.Ext(cfg.Ingest.Path))
	comma := cfg.Ingest.DelimiterRune()

	if result.CleanseRejected.Len() > 0 {
		path := filepath.Join(dir, base+" - cleanse-rejects.csv")
		if err := ingest.Write(path, result.CleanseRejected, comma); err != nil {
			return err
		}
		log.Info("quarantined cleansing rejects", "path", path, "rows", result.CleanseRejected.Len())
	}
	if result.DuplicateRejected.Len() > 0 {
		path := filepath.Join(dir, base+" - duplicate-rejects.csv")
		if err := ingest.Write(path, result.DuplicateRejected, comma); err != nil {
			return err
		}
		log.Info("quarantined duplicate conflicts", "path", path, "rows", result.DuplicateRejected.Len())
	}
	if result.BusinessRejected.Len() > 0 {
		path := filepath.Join(dir, base+" - business-rejects.csv")
		if err := ingest.Write(path, result.BusinessRejected, comma); err != nil {
			return err
		}
		log.Info("quarantined business-rule rejects", "path", path, "rows", result.BusinessRejected.Len())
	}
	return nil
}

// pgUUID converts a uuid.UUID to its pgtype representation.
func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// connect opens the destination connection pool per the database
// configuration and verifies it with a ping.
func connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if u, err := url.Parse(cfg.Database.URL); err == nil {
		log.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	}
	return pool, nil
}

// load connects to the destination database and upserts the accepted
// batch together with its audit row.
func load(ctx context.Context, cfg *config.Config, result pipeline.Result, runID uuid.UUID, log *slog.Logger) error {
	log = logging.WithStage(log, "load")
	pool, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	entities := store.Transform(result.Accepted)
	summary := store.RunSummary{
		RunID:             pgUUID(runID),
		SourceFile:        filepath.Base(cfg.Ingest.Path),
		Ingested:          result.Accepted.Len() + result.CleanseRejected.Len() + result.DuplicateRejected.Len() + result.BusinessRejected.Len(),
		Accepted:          result.Accepted.Len(),
		CleanseRejected:   result.CleanseRejected.Len(),
		DuplicateRejected: result.DuplicateRejected.Len(),
		BusinessRejected:  result.BusinessRejected.Len(),
	}

	log.Info("loading accepted entities", "count", len(entities))
	if err := store.New(pool).Load(ctx, entities, summary); err != nil {
		return err
	}
	log.Info("load finished", "count", len(entities))
	return nil
}

// setup loads .env, configuration, and logging for the database-only
// subcommands.
func setup() (*config.Config, *slog.Logger, error) {
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, slog.Default(), nil
}

func newRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			pool, err := connect(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			records, err := store.New(pool).RecentRuns(ctx, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no runs recorded")
				return nil
			}

			fmt.Printf("%-36s  %-20s  %-25s  %9s  %9s  %9s  %9s  %9s\n",
				"RUN", "AT", "SOURCE", "INGESTED", "ACCEPTED", "CLEANSE", "DUPLICATE", "BUSINESS")
			for _, r := range records {
				at := ""
				if r.RunAt.Valid {
					at = r.RunAt.Time.Format("2006-01-02 15:04:05")
				}
				fmt.Printf("%-36s  %-20s  %-25s  %9d  %9d  %9d  %9d  %9d\n",
					uuid.UUID(r.RunID.Bytes), at, r.SourceFile,
					r.Ingested, r.Accepted, r.CleanseRejected, r.DuplicateRejected, r.BusinessRejected)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}

func newResetCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Truncate the entities table and run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to truncate without --yes")
			}
			ctx := cmd.Context()
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			pool, err := connect(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			resetter := &admin.Resetter{Pool: pool}
			if err := resetter.ResetAll(ctx); err != nil {
				return fmt.Errorf("resetting database: %w", err)
			}
			log.Info("destination tables truncated")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the destructive reset")
	return cmd
}
