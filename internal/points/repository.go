package points

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a path has never been written.
var ErrNotFound = errors.New("node not found")

// Repository stores remote nodes.
type Repository interface {
	Set(ctx context.Context, node Node) error
	Get(ctx context.Context, path string) (Node, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed node repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the nodes table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS nodes (
        path       TEXT PRIMARY KEY,
        value      TEXT NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL
    )`)
	if err != nil {
		return fmt.Errorf("create nodes table: %w", err)
	}
	return nil
}

// Set upserts the node.
func (r *PostgresRepository) Set(ctx context.Context, node Node) error {
	_, err := r.db.Exec(ctx, `INSERT INTO nodes (path, value, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (path) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		node.Path, node.Value, node.UpdatedAt.UTC())
	return err
}

// Get fetches a node by path.
func (r *PostgresRepository) Get(ctx context.Context, path string) (Node, error) {
	row := r.db.QueryRow(ctx, `SELECT path, value, updated_at FROM nodes WHERE path = $1`, path)
	var (
		node      Node
		updatedAt time.Time
	)
	if err := row.Scan(&node.Path, &node.Value, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Node{}, ErrNotFound
		}
		return Node{}, err
	}
	node.UpdatedAt = updatedAt.UTC()
	return node, nil
}
