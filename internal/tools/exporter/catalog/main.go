// Package catalogexport writes the built ammunition catalog into a SQLite
// content database.
package catalogexport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	platformcmd "github.com/louisbranch/ordnance/internal/platform/cmd"
	i18ncatalog "github.com/louisbranch/ordnance/internal/platform/i18n/catalog"
	"github.com/louisbranch/ordnance/internal/platform/otel"
	"github.com/louisbranch/ordnance/internal/platform/timeouts"
	"github.com/louisbranch/ordnance/internal/services/armory/data"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/catalog"
	storagesqlite "github.com/louisbranch/ordnance/internal/services/armory/storage/sqlite"
)

// Config holds configuration for the catalog exporter.
type Config struct {
	DBPath      string `env:"EXPORT_DB_PATH"`
	RecordsPath string `env:"EXPORT_RECORDS"`
	Locale      string `env:"LOCALE" envDefault:"en-US"`
	DryRun      bool   `env:"EXPORT_DRY_RUN"`
}

// ParseConfig loads ORDNANCE_ environment defaults and then CLI flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{DBPath: filepath.Join("data", "armory.db")}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.StringVar(&cfg.RecordsPath, "records", cfg.RecordsPath, "optional base record YAML replacing the embedded table")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for the summary line")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "build the catalog without writing the database")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run builds the catalog and exports it using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Export)
	defer cancel()

	ctx, span := otel.Tracer(platformcmd.ServiceCatalogExport).Start(ctx, "catalog.export")
	defer span.End()

	store, err := buildStore(cfg.RecordsPath)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int("catalog.records", store.Len()))

	printer := i18ncatalog.Default().Printer(cfg.Locale)
	if cfg.DryRun {
		_, err := printer.Fprintf(out, "cli.list.summary", store.Len())
		_, _ = fmt.Fprintln(out)
		return err
	}

	db, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("open content store: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceCatalog(ctx, store.All()); err != nil {
		span.RecordError(err)
		return fmt.Errorf("export catalog: %w", err)
	}
	if _, err := printer.Fprintf(out, "cli.export.done", store.Len(), cfg.DBPath); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func buildStore(recordsPath string) (*catalog.Store, error) {
	if strings.TrimSpace(recordsPath) == "" {
		return catalog.Default(), nil
	}
	raw, err := os.ReadFile(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	records, err := data.ParseBaseRecords(raw)
	if err != nil {
		return nil, err
	}
	store, err := catalog.Build(records, data.Families())
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return store, nil
}
