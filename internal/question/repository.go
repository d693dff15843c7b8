package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/question/mock_repository.go -package=mock_question

// Repository defines read-only access to the question store.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Question, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Question, error)
	FindActive(ctx context.Context) ([]Question, error)
	FindActiveByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	FindCategory(ctx context.Context, categoryID int64) (*Category, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByID returns the question with the given id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Question, error) {
	var q Question
	err := r.db.GetContext(ctx, &q, "SELECT * FROM questions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(question) > %w", err)
	}
	return &q, nil
}

// FindByIDs returns the questions matching ids. Missing ids are silently
// omitted; callers decide whether that is an error. The result order is
// unspecified.
func (r *DBRepository) FindByIDs(ctx context.Context, ids []int64) ([]Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM questions WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(questions) > %w", err)
	}

	var questions []Question
	if err := r.db.SelectContext(ctx, &questions, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(questions by ids) > %w", err)
	}
	return questions, nil
}

// FindActive returns all active questions.
func (r *DBRepository) FindActive(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := r.db.SelectContext(ctx, &questions,
		"SELECT * FROM questions WHERE active = 1 ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(active questions) > %w", err)
	}
	return questions, nil
}

// FindActiveByCategory returns all active questions in one category.
func (r *DBRepository) FindActiveByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	var questions []Question
	if err := r.db.SelectContext(ctx, &questions,
		"SELECT * FROM questions WHERE active = 1 AND category_id = ? ORDER BY id",
		categoryID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(active questions by category) > %w", err)
	}
	return questions, nil
}

// FindCategory returns the category with the given id, or nil if not found.
func (r *DBRepository) FindCategory(ctx context.Context, categoryID int64) (*Category, error) {
	var c Category
	err := r.db.GetContext(ctx, &c, "SELECT * FROM categories WHERE id = ?", categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(category) > %w", err)
	}
	return &c, nil
}
