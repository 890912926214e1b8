package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type PostgresStore struct {
	DB *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

const createSubmissionTable = `
	CREATE TABLE IF NOT EXISTS submission (
		reference TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createSubmissionTable); err != nil {
		return fmt.Errorf("create submission table: %w", err)
	}
	return nil
}

type submissionRow struct {
	Reference string    `db:"reference"`
	Kind      string    `db:"kind"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *PostgresStore) Save(ctx context.Context, e Envelope) error {
	query := `
		INSERT INTO submission (reference, kind, name, email, payload, created_at)
		VALUES (:reference, :kind, :name, :email, :payload, :created_at)
	`
	row := submissionRow{
		Reference: e.Reference,
		Kind:      string(e.Kind),
		Name:      e.Name,
		Email:     e.Email,
		Payload:   string(e.Payload),
		CreatedAt: e.CreatedAt,
	}
	_, err := s.DB.NamedExecContext(ctx, query, row)
	return err
}

func (s *PostgresStore) List(ctx context.Context, kind Kind) ([]Envelope, error) {
	var rows []submissionRow
	var err error
	if kind == "" {
		err = s.DB.SelectContext(ctx, &rows, `SELECT reference, kind, name, email, payload, created_at FROM submission ORDER BY created_at DESC`)
	} else {
		err = s.DB.SelectContext(ctx, &rows, `SELECT reference, kind, name, email, payload, created_at FROM submission WHERE kind = $1 ORDER BY created_at DESC`, string(kind))
	}
	if err != nil {
		return nil, err
	}

	out := make([]Envelope, 0, len(rows))
	for _, r := range rows {
		out = append(out, Envelope{
			Reference: r.Reference,
			Kind:      Kind(r.Kind),
			Name:      r.Name,
			Email:     r.Email,
			Payload:   json.RawMessage(r.Payload),
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
