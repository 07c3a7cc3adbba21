package cache

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/rowpump/rowpump/record"
)

func TestTemplateCacheGetOrCompute(t *testing.T) {
	c := NewTemplateCache()
	key := Key{Kind: record.KindInsert, Table: "users"}

	var builds int
	build := func() (string, error) {
		builds++
		return "INSERT ...", nil
	}

	first, err := c.GetOrCompute(key, build)
	require.NoError(t, err)
	second, err := c.GetOrCompute(key, build)
	require.NoError(t, err)

	assert.Equal(t, "INSERT ...", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, first, got)
}

func TestTemplateCacheKeysAreDisjoint(t *testing.T) {
	c := NewTemplateCache()

	_, err := c.GetOrCompute(Key{Kind: record.KindInsert, Table: "users"}, func() (string, error) { return "a", nil })
	require.NoError(t, err)
	_, err = c.GetOrCompute(Key{Kind: record.KindDelete, Table: "users"}, func() (string, error) { return "b", nil })
	require.NoError(t, err)

	got, ok := c.Get(Key{Kind: record.KindInsert, Table: "users"})
	require.True(t, ok)
	assert.Equal(t, "a", got)
	assert.Equal(t, 2, c.Len())
}

func TestTemplateCacheBuildErrorNotCached(t *testing.T) {
	c := NewTemplateCache()
	key := Key{Kind: record.KindUpdate, Table: "users"}
	boom := errors.New("boom")

	_, err := c.GetOrCompute(key, func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len())

	got, err := c.GetOrCompute(key, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestTemplateCacheConcurrentSameKey(t *testing.T) {
	c := NewTemplateCache()
	key := Key{Kind: record.KindInsert, Table: "users"}

	var builds atomic.Int64
	const workers = 64
	results := make([]string, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			s, err := c.GetOrCompute(key, func() (string, error) {
				builds.Add(1)
				return "same text", nil
			})
			assert.NoError(t, err)
			results[i] = s
		}(i)
	}
	wg.Wait()

	// Racing builds are benign: possibly more than one compute, exactly one
	// logical entry, every caller sees the same text.
	assert.Equal(t, 1, c.Len())
	for _, s := range results {
		assert.Equal(t, "same text", s)
	}
	assert.GreaterOrEqual(t, builds.Load(), int64(1))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("SELECT 1")
	b := Fingerprint("SELECT 1")
	c := Fingerprint("SELECT 2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestStatementCacheGetOrPrepare(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE items ("id" INTEGER PRIMARY KEY, "name" TEXT)`)
	require.NoError(t, err)

	s := NewStatementCache(8)
	defer s.Close()
	ctx := context.Background()

	const query = `INSERT INTO items("id","name") VALUES(?,?)`
	first, err := s.GetOrPrepare(ctx, db, query)
	require.NoError(t, err)
	second, err := s.GetOrPrepare(ctx, db, query)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = first.ExecContext(ctx, 1, "ada")
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRow(`SELECT "name" FROM items WHERE "id" = ?`, 1).Scan(&name))
	assert.Equal(t, "ada", name)
}
