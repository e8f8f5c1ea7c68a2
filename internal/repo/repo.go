// Package repo is the Postgres persistence layer: user accounts and saved
// plant evaluations.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveEvaluation(ctx context.Context, userID int, e Evaluation) (int, error)
	ListEvaluations(ctx context.Context, userID int) ([]Evaluation, error)
	GetEvaluation(ctx context.Context, userID, id int) (Evaluation, error)
	DeleteEvaluation(ctx context.Context, userID, id int) error
}

// Evaluation is one saved pass: the raw input for replay plus the headline
// metrics so lists render without recomputing.
type Evaluation struct {
	ID        int             `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Label     string          `json:"label"`
	Units     string          `json:"units"`
	Input     json.RawMessage `json:"input"`

	COP          float64 `json:"cop"`
	KWPerTon     float64 `json:"kw_per_ton"`
	IPLVKWPerTon float64 `json:"iplv_kw_per_ton"`
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the schema so a fresh database works without migrations.
func (r *PostgresStore) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	login TEXT UNIQUE NOT NULL,
	email TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS evaluations (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	label TEXT NOT NULL DEFAULT '',
	units TEXT NOT NULL,
	input JSONB NOT NULL,
	cop DOUBLE PRECISION NOT NULL,
	kw_per_ton DOUBLE PRECISION NOT NULL,
	iplv_kw_per_ton DOUBLE PRECISION NOT NULL
);`)
	return err
}

func (r *PostgresStore) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresStore) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", ErrNotFound
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresStore) SaveEvaluation(ctx context.Context, userID int, e Evaluation) (int, error) {
	var id int
	query := `INSERT INTO evaluations (user_id, label, units, input, cop, kw_per_ton, iplv_kw_per_ton)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		userID, e.Label, e.Units, string(e.Input), e.COP, e.KWPerTon, e.IPLVKWPerTon).Scan(&id)
	return id, err
}

func (r *PostgresStore) ListEvaluations(ctx context.Context, userID int) ([]Evaluation, error) {
	query := `SELECT id, created_at, label, units, input, cop, kw_per_ton, iplv_kw_per_ton
		FROM evaluations WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Label, &e.Units, &e.Input,
			&e.COP, &e.KWPerTon, &e.IPLVKWPerTon); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresStore) GetEvaluation(ctx context.Context, userID, id int) (Evaluation, error) {
	var e Evaluation
	query := `SELECT id, created_at, label, units, input, cop, kw_per_ton, iplv_kw_per_ton
		FROM evaluations WHERE id=$1 AND user_id=$2`
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&e.ID, &e.CreatedAt, &e.Label,
		&e.Units, &e.Input, &e.COP, &e.KWPerTon, &e.IPLVKWPerTon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, err
	}
	return e, nil
}

func (r *PostgresStore) DeleteEvaluation(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM evaluations WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
