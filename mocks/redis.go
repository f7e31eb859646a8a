package mocks

import (
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisMock returns a real *redis.Client driven by a redismock controller.
// Expectations are matched in order, so a test also pins the cache protocol
// (generation GET before list GET/SET, INCR after a write).
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	rdb, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(true)
	return rdb, mock
}
