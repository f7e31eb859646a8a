package repositories

import (
	"context"

	"CommentCase/models"

	"github.com/pkg/errors"
	"gorm.io/gorm" // *gorm.DB is injected so any dialect (mysql/postgres/sqlite/sqlserver) works.
)

// sqlCommentRepo implements CommentRepository over GORM.
type sqlCommentRepo struct{ db *gorm.DB }

// NewSQLCommentRepository returns a GORM-backed repository.
func NewSQLCommentRepository(db *gorm.DB) CommentRepository {
	return &sqlCommentRepo{db: db}
}

// FindAll loads every comment, oldest first.
func (r *sqlCommentRepo) FindAll(ctx context.Context) ([]models.Comment, error) {
	items := []models.Comment{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "sql find comments")
	}
	return items, nil
}

func (r *sqlCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(c).Error, "sql create comment") // nil stays nil
}

// DeleteByID loads the row first so the caller gets the removed comment back.
func (r *sqlCommentRepo) DeleteByID(ctx context.Context, id string) (*models.Comment, error) {
	db := r.db.WithContext(ctx)

	var c models.Comment
	if err := db.Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, errors.Wrap(err, "sql load comment")
	}

	res := db.Delete(&c)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "sql delete comment")
	}
	if res.RowsAffected == 0 { // removed concurrently
		return nil, ErrCommentNotFound
	}
	return &c, nil
}
