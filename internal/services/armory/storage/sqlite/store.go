package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	sqlitemigrate "github.com/louisbranch/ordnance/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
	"github.com/louisbranch/ordnance/internal/services/armory/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store holds an exported catalog.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite catalog database and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceCatalog swaps the stored catalog for records in one transaction.
// Records must arrive in registration order so every base precedes the
// records derived from it.
func (s *Store) ReplaceCatalog(ctx context.Context, records []munition.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace catalog: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		"DELETE FROM ammunition_flags",
		"DELETE FROM ammunition_tags",
		"DELETE FROM ammunition",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	for _, rec := range records {
		if err := insertRecord(ctx, tx, rec); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace catalog: %w", err)
	}
	return nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, rec munition.Record) error {
	if !rec.Ref.Valid() {
		return apperrors.WithMetadata(apperrors.CodeInvalidRecord, "export record without ref",
			map[string]string{"Key": rec.Key, "Reason": "record is not registered"})
	}
	var baseRef sql.NullInt64
	if rec.IsDerived() {
		baseRef = sql.NullInt64{Int64: int64(rec.Base), Valid: true}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO ammunition (
		   ref, key, name, short_name, category, rack_size, damage_per_shot, shots,
		   cost, bv, tech_base, intro_year, extinct_year, rules_level, mass_per_shot, base_ref
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(rec.Ref), rec.Key, rec.Name, rec.ShortName, string(rec.Category),
		rec.RackSize, rec.DamagePerShot, rec.Shots, rec.Cost, rec.BV,
		string(rec.Tech.Base), rec.Tech.IntroYear, rec.Tech.ExtinctYear, rec.Tech.Level.String(),
		rec.MassPerShot, baseRef,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.WithMetadata(apperrors.CodeDuplicateKey, "export duplicate record",
				map[string]string{"Key": rec.Key})
		}
		return fmt.Errorf("insert %s: %w", rec.Key, err)
	}

	for _, tag := range rec.Tags.Sorted() {
		if _, err := tx.ExecContext(ctx, "INSERT INTO ammunition_tags (ref, tag) VALUES (?, ?)", int64(rec.Ref), string(tag)); err != nil {
			return fmt.Errorf("insert tag %s on %s: %w", tag, rec.Key, err)
		}
	}
	for _, flag := range rec.Flags.Sorted() {
		if _, err := tx.ExecContext(ctx, "INSERT INTO ammunition_flags (ref, flag) VALUES (?, ?)", int64(rec.Ref), string(flag)); err != nil {
			return fmt.Errorf("insert flag %s on %s: %w", flag, rec.Key, err)
		}
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM ammunition").Scan(&n); err != nil {
		return 0, fmt.Errorf("count ammunition: %w", err)
	}
	return n, nil
}

const selectRecord = `SELECT ref, key, name, short_name, category, rack_size, damage_per_shot, shots,
	cost, bv, tech_base, intro_year, extinct_year, rules_level, mass_per_shot, base_ref
	FROM ammunition`

// GetByKey loads one record with its tags and flags.
func (s *Store) GetByKey(ctx context.Context, key string) (munition.Record, bool, error) {
	if s == nil || s.sqlDB == nil {
		return munition.Record{}, false, fmt.Errorf("storage is not configured")
	}
	rec, err := scanRecord(s.sqlDB.QueryRowContext(ctx, selectRecord+" WHERE key = ?", key))
	if errors.Is(err, sql.ErrNoRows) {
		return munition.Record{}, false, nil
	}
	if err != nil {
		return munition.Record{}, false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := s.loadSets(ctx, &rec); err != nil {
		return munition.Record{}, false, err
	}
	return rec, true, nil
}

// ListByCategory returns the stored records of c in registration order.
func (s *Store) ListByCategory(ctx context.Context, c munition.Category) ([]munition.Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, selectRecord+" WHERE category = ? ORDER BY ref", string(c))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c, err)
	}
	defer rows.Close()

	var out []munition.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", c, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", c, err)
	}
	for i := range out {
		if err := s.loadSets(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (munition.Record, error) {
	var (
		rec                       munition.Record
		ref                       int64
		category, techBase, level string
		baseRef                   sql.NullInt64
	)
	if err := row.Scan(
		&ref, &rec.Key, &rec.Name, &rec.ShortName, &category, &rec.RackSize, &rec.DamagePerShot, &rec.Shots,
		&rec.Cost, &rec.BV, &techBase, &rec.Tech.IntroYear, &rec.Tech.ExtinctYear, &level, &rec.MassPerShot, &baseRef,
	); err != nil {
		return munition.Record{}, err
	}
	parsed, ok := munition.ParseRulesLevel(level)
	if !ok {
		return munition.Record{}, fmt.Errorf("unknown rules level %q on %s", level, rec.Key)
	}
	rec.Ref = munition.Ref(ref)
	rec.Category = munition.Category(category)
	rec.Tech.Base = munition.TechBase(techBase)
	rec.Tech.Level = parsed
	if baseRef.Valid {
		rec.Base = munition.Ref(baseRef.Int64)
	}
	return rec, nil
}

func (s *Store) loadSets(ctx context.Context, rec *munition.Record) error {
	tags, err := s.loadStrings(ctx, "SELECT tag FROM ammunition_tags WHERE ref = ? ORDER BY tag", rec.Ref)
	if err != nil {
		return fmt.Errorf("load tags for %s: %w", rec.Key, err)
	}
	flags, err := s.loadStrings(ctx, "SELECT flag FROM ammunition_flags WHERE ref = ? ORDER BY flag", rec.Ref)
	if err != nil {
		return fmt.Errorf("load flags for %s: %w", rec.Key, err)
	}
	rec.Tags = munition.TagSet{}
	for _, tag := range tags {
		rec.Tags[munition.Tag(tag)] = struct{}{}
	}
	rec.Flags = munition.FlagSet{}
	for _, flag := range flags {
		rec.Flags[munition.Flag(flag)] = struct{}{}
	}
	return nil
}

func (s *Store) loadStrings(ctx context.Context, query string, ref munition.Ref) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, int64(ref))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
