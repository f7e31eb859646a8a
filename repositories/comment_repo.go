// repository hides the store (Mongo or SQL) behind one interface.
// Data-access layer only: no HTTP/JSON here.
package repositories

import (
	"context"
	"errors"

	"CommentCase/models"
)

// ErrCommentNotFound is returned by DeleteByID when no comment has the given id.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the operations the comment service expects.
type CommentRepository interface {
	FindAll(ctx context.Context) ([]models.Comment, error)
	Create(ctx context.Context, c *models.Comment) error
	DeleteByID(ctx context.Context, id string) (*models.Comment, error) // returns the removed comment
}

// IsNotFound checks the repository "not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound)
}
