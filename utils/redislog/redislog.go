package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level     string            `json:"level"`
	Component string            `json:"component,omitempty"`
	Msg       string            `json:"msg"`
	Time      string            `json:"time"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Logger pushes logs to a Redis LIST (e.g., "logs:app") and trims to a max length.
// A nil Logger, or one without a client, is a no-op, so callers never nil-check.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:app"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	component string        // e.g. "comments", "case"
	now       func() time.Time
}

// New creates a Redis logger using a LIST.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// With returns a copy that tags every entry with component.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	cp := *l
	cp.component = component
	return &cp
}

// log pushes a log entry as JSON -> LPUSH; then LTRIM; then EXPIRE.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	en := Entry{
		Level:     level,
		Component: l.component,
		Msg:       msg,
		Time:      l.now().UTC().Format(time.RFC3339),
		Meta:      meta,
	}
	b, _ := json.Marshal(en)
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, string(b)).Err()
	if l.max > 0 {
		_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	}
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

// Recent returns up to n newest entries (LRANGE 0 n-1).
func (l *Logger) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if l == nil || l.rdb == nil || n <= 0 {
		return nil, nil
	}
	raw, err := l.rdb.LRange(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(raw))
	for _, s := range raw {
		var en Entry
		if json.Unmarshal([]byte(s), &en) == nil {
			out = append(out, en)
		}
	}
	return out, nil
}

func (l *Logger) Info(msg string, meta map[string]string)  { l.log("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }

// Formatted variants
func (l *Logger) Infof(format string, meta map[string]string, args ...any) {
	l.Info(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Warnf(format string, meta map[string]string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Errorf(format string, meta map[string]string, args ...any) {
	l.Error(fmt.Sprintf(format, args...), meta)
}
