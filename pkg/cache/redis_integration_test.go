//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisCacheIntegration(t *testing.T) {
	url := os.Getenv("HONEYCOMB_REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/15"
	}

	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, WithKeyPrefix("honeycomb-test:"))
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer c.Close()

	key := NewDefaultKeyer().LayoutKey(LayoutKeyOpts{Width: 800, Height: 600})
	defer c.Delete(ctx, key)

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get before Set = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte(`{"cells":[]}`), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != `{"cells":[]}` {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get after Delete should miss")
	}
}
