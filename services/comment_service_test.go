package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"CommentCase/mocks"
	"CommentCase/models"
	"CommentCase/repositories"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func newSvc(repo repositories.CommentRepository, rdb *redis.Client) *commentService {
	s := NewCommentService(repo, rdb, nil, time.Minute).(*commentService)
	s.now = func() time.Time { return fixedNow }
	s.id = func() string { return "c-1" }
	return s
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCommentService_List_CacheHit(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)

	items := []models.Comment{{ID: "c-1", Author: "Ann", Body: "hi"}}
	rmock.ExpectGet("comments:gen").SetVal("3")
	rmock.ExpectGet("comments:all:3").SetVal(string(mustJSON(items)))

	got, err := svc.ListComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", got[0].Author)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCommentService_List_MissThenDBThenSet(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)

	items := []models.Comment{{ID: "c-2", Author: "Bob", Body: "yo"}}
	rmock.ExpectGet("comments:gen").RedisNil()
	rmock.ExpectGet("comments:all:0").RedisNil()
	repo.On("FindAll", mock.Anything).Return(items, nil)
	rmock.ExpectSet("comments:all:0", mustJSON(items), time.Minute).SetVal("OK")

	got, err := svc.ListComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCommentService_List_DBError(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	svc := newSvc(repo, nil)

	repo.On("FindAll", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.ListComments(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestCommentService_Create_NormalizesAndInvalidates(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)
	rmock.ExpectIncr("comments:gen").SetVal(1)

	c, err := svc.CreateComment(context.Background(), models.CreateCommentRequest{
		Author: "  ann  ",
		Body:   "Nice post",
		Topic:  "Go Tips",
	})
	require.NoError(t, err)
	assert.Equal(t, &models.Comment{
		ID:        "c-1",
		Author:    "Ann",
		Body:      "Nice post",
		Topic:     "go-tips",
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}, c)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCommentService_Create_DBError(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	svc := newSvc(repo, nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("dup"))

	c, err := svc.CreateComment(context.Background(), models.CreateCommentRequest{Author: "a", Body: "b"})
	assert.Nil(t, c)
	assert.EqualError(t, err, "dup")
}

func TestCommentService_Delete_ClearsCache(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)

	repo.On("DeleteByID", mock.Anything, "c-9").Return(&models.Comment{ID: "c-9"}, nil)
	rmock.ExpectIncr("comments:gen").SetVal(1)

	c, err := svc.DeleteComment(context.Background(), "c-9")
	require.NoError(t, err)
	assert.Equal(t, "c-9", c.ID)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCommentService_Delete_NotFoundKeepsCache(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)

	repo.On("DeleteByID", mock.Anything, "nope").Return(nil, repositories.ErrCommentNotFound)

	_, err := svc.DeleteComment(context.Background(), "nope")
	assert.True(t, repositories.IsNotFound(err))
	assert.NoError(t, rmock.ExpectationsWereMet()) // generation unchanged
}

func TestCommentService_List_WriteDuringReadNotServedStale(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)
	ctx := context.Background()

	stale := []models.Comment{{ID: "c-0", Author: "Old", Body: "x"}}
	fresh := []models.Comment{stale[0], {ID: "c-1", Author: "Ann", Body: "new"}}

	// first reader: a create commits between its DB read and its SET
	rmock.ExpectGet("comments:gen").RedisNil()
	rmock.ExpectGet("comments:all:0").RedisNil()
	repo.On("FindAll", mock.Anything).Return(stale, nil).Once().Run(func(mock.Arguments) {
		_, err := svc.CreateComment(ctx, models.CreateCommentRequest{Author: "ann", Body: "new"})
		require.NoError(t, err)
	})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	rmock.ExpectIncr("comments:gen").SetVal(1)
	rmock.ExpectSet("comments:all:0", mustJSON(stale), time.Minute).SetVal("OK")

	// next reader is on generation 1 and misses the stale list
	rmock.ExpectGet("comments:gen").SetVal("1")
	rmock.ExpectGet("comments:all:1").RedisNil()
	repo.On("FindAll", mock.Anything).Return(fresh, nil).Once()
	rmock.ExpectSet("comments:all:1", mustJSON(fresh), time.Minute).SetVal("OK")

	_, err := svc.ListComments(ctx)
	require.NoError(t, err)
	got, err := svc.ListComments(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.NoError(t, rmock.ExpectationsWereMet())
	repo.AssertExpectations(t)
}

func TestCommentService_List_GenerationErrorBypassesCache(t *testing.T) {
	repo := new(mocks.CommentRepositoryMock)
	rdb, rmock := mocks.NewRedisMock()
	svc := newSvc(repo, rdb)

	items := []models.Comment{{ID: "c-3"}}
	rmock.ExpectGet("comments:gen").SetErr(errors.New("conn refused"))
	repo.On("FindAll", mock.Anything).Return(items, nil)

	got, err := svc.ListComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.NoError(t, rmock.ExpectationsWereMet()) // no SET without a generation
}

func TestNewCommentService_DefaultTTL(t *testing.T) {
	s := NewCommentService(new(mocks.CommentRepositoryMock), nil, nil, 0).(*commentService)
	assert.Equal(t, DefaultCacheTTL, s.ttl)
	assert.NotEmpty(t, s.id())
}
