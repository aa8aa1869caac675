package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

// SQLSTATE for foreign_key_violation
const fkViolationCode = "23503"

// postgresRepository implements book.Repository with raw SQL on pgx.
// Books are always read joined with their author so responses can embed
// the full related record; the join is explicit, never a lazy traversal.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		`INSERT INTO books (id, title, author_id) VALUES ($1, $2, $3)`,
		b.ID, b.Title, b.AuthorID,
	)
	if err != nil {
		// The service pre-checks author existence; the FK is
		// defense-in-depth against a concurrent author delete.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return book.ErrAuthorNotExist
		}
		return fmt.Errorf("insert book: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT b.id, b.title, b.author_id, b.created_at, a.name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		ORDER BY b.created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		var authorName string
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.CreatedAt, &authorName); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b.Author = &author.Author{ID: b.AuthorID, Name: authorName}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var b book.Book
	var authorName string
	err = conn.QueryRow(ctx, `
		SELECT b.id, b.title, b.author_id, b.created_at, a.name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.AuthorID, &b.CreatedAt, &authorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("query book: %w", err)
	}

	b.Author = &author.Author{ID: b.AuthorID, Name: authorName}
	return &b, nil
}

// Delete performs the read-then-delete pair on one acquired connection,
// the only place a session spans more than a single statement.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check book existence: %w", err)
	}
	if !exists {
		return book.ErrBookNotFound
	}

	if _, err := conn.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	return nil
}
