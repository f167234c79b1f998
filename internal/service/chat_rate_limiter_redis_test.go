package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisChatRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisChatRateLimiter
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisChatRateLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    3,
			prefix: "chat:rl:",
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisChatRateLimiter{
			client: mock,
			window: 2 * time.Minute,
			max:    3,
			prefix: "chat:rl:",
		}
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected allow when count is within max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "chat:rl:10.0.0.1" {
			t.Fatalf("unexpected redis key: %v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("unexpected expire seconds: %v", mock.lastArgs)
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisChatRateLimiter{
			client: &mockRedisEvaler{result: 4},
			window: time.Minute,
			max:    3,
			prefix: "chat:rl:",
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("expected deny when count exceeds max")
		}
	})

	t.Run("fail-open on redis error", func(t *testing.T) {
		l := &redisChatRateLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    1,
			prefix: "chat:rl:",
		}
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected fail-open on redis error")
		}
	})
}

func TestChatRateLimiterWindow(t *testing.T) {
	l := NewChatRateLimiter(time.Hour, 2)

	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatalf("expected first two hits to pass")
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("expected third hit within window to be denied")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatalf("expected independent keys to have independent budgets")
	}
}
