// Package sqlite persists the product catalog in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shopbot/backend/internal/domain"
)

// Store manages the catalog SQLite database
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path and ensures the schema exists.
// ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			price REAL NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListProducts returns every product in insertion (id) order
func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.queryProducts(ctx, `SELECT id, name, description, price FROM products ORDER BY id`)
}

// ListProductsLimit returns at most limit products in id order
func (s *Store) ListProductsLimit(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		return []domain.Product{}, nil
	}
	return s.queryProducts(ctx, `SELECT id, name, description, price FROM products ORDER BY id LIMIT ?`, limit)
}

func (s *Store) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

// CountProducts returns the number of stored products
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}

// InsertProducts stores products in one transaction and returns them with their
// assigned ids. Input ids are ignored.
func (s *Store) InsertProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products (name, description, price) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidRequest)
		}
		res, err := stmt.ExecContext(ctx, p.Name, nullableString(p.Description), p.Price)
		if err != nil {
			return nil, fmt.Errorf("inserting product %q: %w", p.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("reading product id: %w", err)
		}
		p.ID = id
		inserted = append(inserted, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing products: %w", err)
	}
	return inserted, nil
}

// SeedIfEmpty inserts products only when the table has no rows.
// It returns the number of rows inserted.
func (s *Store) SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error) {
	count, err := s.CountProducts(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted, err := s.InsertProducts(ctx, products)
	if err != nil {
		return 0, err
	}
	return len(inserted), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct converts a products row into a domain.Product
func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p           domain.Product
		description sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &p.Price); err != nil {
		return domain.Product{}, fmt.Errorf("scanning product: %w", err)
	}
	p.Description = description.String
	return p, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
