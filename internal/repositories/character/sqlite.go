package character

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
	"github.com/KirkDiggler/wotr-planner/internal/pkg/clock"
)

//go:embed schema.sql
var schema string

// SQLiteConfig contains configuration for the SQLite build repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository stores builds in the characters table. Call Close when
// done with it.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database at cfg.Path and creates the schema if needed
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := filepath.Clean(cfg.Path)
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database").WithMeta("path", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite database").WithMeta("path", path)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema").WithMeta("path", path)
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	slog.DebugContext(ctx, "opened sqlite build store", "path", path)

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	stored := *input.CharacterData
	now := r.clock.Now().Unix()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	build, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (id, name, race, class, level, build, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Name, stored.Race, stored.Class, stored.Level,
		string(build), stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("character with ID %s already exists", stored.ID)
		}
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{CharacterData: &stored}, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var build string
	err := r.db.QueryRowContext(ctx,
		`SELECT build FROM characters WHERE id = ?`, input.ID,
	).Scan(&build)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	data, err := decodeBuild(build)
	if err != nil {
		return nil, err
	}
	return &GetOutput{CharacterData: data}, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stored := *input.CharacterData
	err = tx.QueryRowContext(ctx,
		`SELECT created_at FROM characters WHERE id = ?`, stored.ID,
	).Scan(&stored.CreatedAt)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character with ID %s not found", stored.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}
	stored.UpdatedAt = r.clock.Now().Unix()

	build, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE characters
		    SET name = ?, race = ?, class = ?, level = ?, build = ?, updated_at = ?
		  WHERE id = ?`,
		stored.Name, stored.Race, stored.Class, stored.Level,
		string(build), stored.UpdatedAt, stored.ID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit character update")
	}

	return &UpdateOutput{CharacterData: &stored}, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT build FROM characters ORDER BY name, id`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := []*wotr.CharacterData{}
	for rows.Next() {
		var build string
		if err := rows.Scan(&build); err != nil {
			return nil, errors.Wrapf(err, "failed to scan character")
		}
		data, err := decodeBuild(build)
		if err != nil {
			return nil, err
		}
		characters = append(characters, data)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &ListOutput{Characters: characters}, nil
}

func decodeBuild(build string) (*wotr.CharacterData, error) {
	var data wotr.CharacterData
	if err := json.Unmarshal([]byte(build), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}
	return &data, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
