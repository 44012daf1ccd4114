package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/awomotoyosi/blogs-api/internal/domains/blog/model"
)

const uniqueViolation = "23505"

// blogColumns is the canonical select list for blog rows.
const blogColumns = `b.id, b.title, b.description, b.author_id, b.state, b.read_count,
	b.reading_time, b.tags, b.body, b.created_at, b.updated_at`

// authorColumns is the read-only author projection joined into results.
const authorColumns = `u.id, u.first_name, u.last_name, u.email`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository builds the pgx-backed blog repository.
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Insert(ctx context.Context, b *model.Blog) error {
	query := `
		INSERT INTO blogs (id, title, description, author_id, state, read_count, reading_time, tags, body)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Description, b.AuthorID, b.State,
		b.ReadCount, b.ReadingTime, pq.Array(b.Tags), b.Body,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrTitleAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs b WHERE b.id = $1`, blogColumns)

	var b model.Blog
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.State, &b.ReadCount,
		&b.ReadingTime, pq.Array(&b.Tags), &b.Body, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.BlogWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = $1
	`, blogColumns, authorColumns)

	row := r.pool.QueryRow(ctx, query, id)
	b, err := scanBlogWithAuthor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog with author: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *model.BlogFilter) ([]model.BlogWithAuthor, int, error) {
	whereClause, args := buildWhereClause(filter)

	// Total matching the filter, skip/limit ignored, for pagination meta.
	countQuery := fmt.Sprintf(`SELECT count(*) FROM blogs b WHERE %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE %s
		ORDER BY %s
		OFFSET $%d LIMIT $%d
	`, blogColumns, authorColumns, whereClause, buildOrderBy(filter), len(args)+1, len(args)+2)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]model.BlogWithAuthor, 0, filter.Limit)
	for rows.Next() {
		b, err := scanBlogWithAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog row: %w", err)
		}
		blogs = append(blogs, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return blogs, total, nil
}

func (r *postgresRepository) Save(ctx context.Context, b *model.Blog) error {
	// read_count is excluded on purpose: it only moves through the atomic
	// increment path, so a stale in-memory copy cannot roll it back.
	query := `
		UPDATE blogs
		SET title = $2, description = $3, state = $4, reading_time = $5,
		    tags = $6, body = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Description, b.State, b.ReadingTime,
		pq.Array(b.Tags), b.Body,
	).Scan(&b.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrTitleAlreadyExists
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrBlogNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to save blog: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	query := `
		DELETE FROM blogs
		WHERE id = $1
		RETURNING id, title, description, author_id, state, read_count,
		          reading_time, tags, body, created_at, updated_at
	`

	var b model.Blog
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.State, &b.ReadCount,
		&b.ReadingTime, pq.Array(&b.Tags), &b.Body, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete blog: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) IncrementReadCount(ctx context.Context, id uuid.UUID) (*model.BlogWithAuthor, error) {
	// Single-statement bump: concurrent views cannot lose increments, and a
	// draft or missing id falls through to no rows.
	query := fmt.Sprintf(`
		WITH bumped AS (
			UPDATE blogs
			SET read_count = read_count + 1, updated_at = now()
			WHERE id = $1 AND state = 'published'
			RETURNING id, title, description, author_id, state, read_count,
			          reading_time, tags, body, created_at, updated_at
		)
		SELECT %s, %s
		FROM bumped b
		JOIN users u ON u.id = b.author_id
	`, blogColumns, authorColumns)

	row := r.pool.QueryRow(ctx, query, id)
	b, err := scanBlogWithAuthor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment read count: %w", err)
	}

	return b, nil
}

// ============================================
// HELPERS
// ============================================

func scanBlogWithAuthor(row pgx.Row) (*model.BlogWithAuthor, error) {
	var b model.BlogWithAuthor
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.State, &b.ReadCount,
		&b.ReadingTime, pq.Array(&b.Tags), &b.Body, &b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.FirstName, &b.Author.LastName, &b.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// buildWhereClause constructs the WHERE conditions dynamically.
func buildWhereClause(filter *model.BlogFilter) (string, []interface{}) {
	conditions := []string{"true"}
	args := []interface{}{}
	argIndex := 1

	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("b.state = $%d", argIndex))
		args = append(args, filter.State)
		argIndex++
	}

	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}

	if filter.FilterByAuthors {
		ids := make([]string, len(filter.AuthorIDs))
		for i, id := range filter.AuthorIDs {
			ids[i] = id.String()
		}
		conditions = append(conditions, fmt.Sprintf("b.author_id = ANY($%d::uuid[])", argIndex))
		args = append(args, pq.Array(ids))
		argIndex++
	}

	// Case-insensitive contains against title OR any tag.
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(b.title ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(b.tags) AS tag WHERE tag ILIKE $%d))",
			argIndex, argIndex,
		))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}

// buildOrderBy maps the sort key through a whitelist; reading_time orders by
// the string label, which is lexicographic rather than numeric.
func buildOrderBy(filter *model.BlogFilter) string {
	column := "b.created_at"
	switch filter.SortBy {
	case model.SortByReadCount:
		column = "b.read_count"
	case model.SortByReadingTime:
		column = "b.reading_time"
	case model.SortByTimestamp, "":
		column = "b.created_at"
	}

	direction := "ASC"
	if filter.Order == "desc" {
		direction = "DESC"
	}

	return column + " " + direction
}
