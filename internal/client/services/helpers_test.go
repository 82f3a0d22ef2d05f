package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/postview/internal/client/token"
)

var errDisk = errors.New("disk unavailable")

// fakeRepo is a kv.Repository without batch support. Each operation can be
// made to fail per key.
type fakeRepo struct {
	mu     sync.Mutex
	values map[string]string

	getErr    map[string]error
	setErr    map[string]error
	removeErr map[string]error

	removed []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		values:    map[string]string{},
		getErr:    map[string]error{},
		setErr:    map[string]error{},
		removeErr: map[string]error{},
	}
}

func (f *fakeRepo) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.getErr[key]; err != nil {
		return "", false, err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeRepo) Set(ctx context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.setErr[key]; err != nil {
		return err
	}
	f.values[key] = value
	return nil
}

func (f *fakeRepo) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, key)
	if err := f.removeErr[key]; err != nil {
		return err
	}
	delete(f.values, key)
	return nil
}

func (f *fakeRepo) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.values[key]
	return ok
}

// testClock is a movable clock for token expiry.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Unix(1700000000, 0)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *testClock) codec() *token.Codec {
	return token.NewCodec(c.Now)
}
