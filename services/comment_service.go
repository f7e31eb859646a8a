package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"context"
	"encoding/json"
	"time"

	"CommentCase/core"
	"CommentCase/models"
	"CommentCase/repositories"
	"CommentCase/utils/redislog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CommentService lists the use-cases the comment handlers call.
type CommentService interface {
	ListComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) (*models.Comment, error) // repositories.ErrCommentNotFound if absent
}

// The full list is cached under commentsCacheKey:<generation>. Writes bump the
// generation, so a list read before a write can only land under a superseded key.
const (
	commentsCacheKey = "comments:all"
	commentsGenKey   = "comments:gen"
)

// DefaultCacheTTL is used when the configured TTL is not positive.
const DefaultCacheTTL = time.Minute

type commentService struct {
	repo repositories.CommentRepository
	rdb  *redis.Client    // may be nil: cache disabled
	log  *redislog.Logger // may be nil
	ttl  time.Duration
	now  func() time.Time
	id   func() string
}

// NewCommentService wires the repository with the optional Redis cache and logger.
func NewCommentService(repo repositories.CommentRepository, rdb *redis.Client, rlog *redislog.Logger, ttl time.Duration) CommentService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &commentService{
		repo: repo,
		rdb:  rdb,
		log:  rlog.With("comments"),
		ttl:  ttl,
		now:  time.Now,
		id:   uuid.NewString,
	}
}

// ListComments serves from cache when possible and fills it on a miss.
func (s *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	key, cached := s.cacheKey(ctx)
	if cached {
		val, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var items []models.Comment
			if json.Unmarshal([]byte(val), &items) == nil {
				return items, nil
			}
			s.log.Warn("cache unmarshal failed", map[string]string{"key": key})
		case err == redis.Nil:
			// miss
		default:
			s.log.Error("cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("list comments db error", map[string]string{"err": err.Error()})
		return nil, err
	}

	if cached {
		if b, err := json.Marshal(items); err == nil {
			if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
				s.log.Error("cache SET error", map[string]string{"key": key, "err": err.Error()})
			}
		}
	}
	return items, nil
}

// cacheKey returns the list key for the current generation; false disables
// the cache for this call.
func (s *commentService) cacheKey(ctx context.Context) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	gen, err := s.rdb.Get(ctx, commentsGenKey).Result()
	switch {
	case err == redis.Nil:
		gen = "0"
	case err != nil:
		s.log.Error("cache GET error", map[string]string{"key": commentsGenKey, "err": err.Error()})
		return "", false
	}
	return commentsCacheKey + ":" + gen, true
}

// CreateComment normalizes the author and topic, stores the comment and drops the cached list.
func (s *commentService) CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	now := s.now().UTC()
	c := &models.Comment{
		ID:        s.id(),
		Author:    core.NormalizeName(req.Author),
		Body:      req.Body,
		Topic:     core.ToKebab(req.Topic),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error("create comment db error", map[string]string{"err": err.Error()})
		return nil, err
	}
	s.invalidate(ctx)

	s.log.Info("comment created", map[string]string{"comment_id": c.ID, "topic": c.Topic})
	return c, nil
}

// DeleteComment removes a comment and drops the cached list.
func (s *commentService) DeleteComment(ctx context.Context, id string) (*models.Comment, error) {
	c, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Warnf("delete comment %s: not found", map[string]string{"comment_id": id}, id)
		} else {
			s.log.Error("delete comment db error", map[string]string{"comment_id": id, "err": err.Error()})
		}
		return nil, err
	}
	s.invalidate(ctx)

	s.log.Info("comment deleted", map[string]string{"comment_id": id})
	return c, nil
}

// invalidate moves readers to a new generation; old lists expire by TTL.
func (s *commentService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, commentsGenKey).Err(); err != nil {
		s.log.Error("cache INCR error", map[string]string{"key": commentsGenKey, "err": err.Error()})
	}
}
