package store_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katalvlaran/labyrinth/store"
)

func newRecord() *store.Record {
	return &store.Record{
		ID:        uuid.New(),
		Rows:      1,
		Columns:   1,
		Algorithm: "kruskal",
		Seed:      7,
		Text:      "_ _\n| |\n",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// exerciseRepository runs the behaviour every Repository must share.
func exerciseRepository(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	t.Run("SaveByID", func(t *testing.T) {
		r := newRecord()
		require.NoError(t, repo.Save(ctx, r))
		got, err := repo.ByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.ID, got.ID)
		assert.Equal(t, r.Text, got.Text)
		assert.Equal(t, r.Seed, got.Seed)
		assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.ByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("FindOrCreate", func(t *testing.T) {
		key := store.SeedKey(1, 1, "kruskal", time.Now().UnixNano())
		calls := 0
		create := func() (*store.Record, error) {
			calls++
			return newRecord(), nil
		}
		first, created, err := repo.FindOrCreate(ctx, key, create)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, key, first.Key)

		second, created, err := repo.FindOrCreate(ctx, key, create)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, calls)
	})

	t.Run("FindOrCreateError", func(t *testing.T) {
		boom := errors.New("boom")
		key := store.SeedKey(2, 2, "kruskal", time.Now().UnixNano())
		_, _, err := repo.FindOrCreate(ctx, key, func() (*store.Record, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestMemory(t *testing.T) {
	exerciseRepository(t, store.NewMemory())
}

// TestMemory_FindOrCreateConcurrent checks parallel callers build a key once.
func TestMemory_FindOrCreateConcurrent(t *testing.T) {
	repo := store.NewMemory()
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		calls int
		ids   = make(map[uuid.UUID]bool)
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, _, err := repo.FindOrCreate(context.Background(), "3x3:kruskal:1", func() (*store.Record, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return newRecord(), nil
			})
			assert.NoError(t, err)
			mu.Lock()
			ids[r.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
	assert.Len(t, ids, 1)
	assert.Equal(t, 1, repo.Len())
}

func TestSeedKey(t *testing.T) {
	assert.Equal(t, "4x6:kruskal:42", store.SeedKey(4, 6, "kruskal", 42))
}

// TestRedis runs against LABYRINTH_TEST_REDIS_ADDR when it is set.
func TestRedis(t *testing.T) {
	addr := os.Getenv("LABYRINTH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LABYRINTH_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	exerciseRepository(t, store.NewRedis(client, time.Minute))
}

// TestMongo runs against LABYRINTH_TEST_MONGO_URI when it is set.
func TestMongo(t *testing.T) {
	uri := os.Getenv("LABYRINTH_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("LABYRINTH_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	repo := store.NewMongo(client, "labyrinth_test", "mazes_"+uuid.NewString()[:8])
	require.NoError(t, repo.EnsureIndexes(ctx))
	exerciseRepository(t, repo)
}
