package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?cache=shared&mode=rwc"
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestRepos(t)
	require.NotNil(t, repos.Item)
	require.NotNil(t, repos.Digest)
	assert.NoError(t, repos.Ping(context.Background()))
}

func TestItemRepository_SaveItems(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	pub := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("save and read back", func(t *testing.T) {
		items := []Item{
			{RunID: "run-1", Kind: KindPeople, Entity: "Jane Doe", Title: "first post", Link: "https://jane.example/1", Published: &pub, Source: "blog_rss"},
			{RunID: "run-1", Kind: KindPeople, Entity: "Jane Doe", Title: "undated post", Link: "https://jane.example/2"},
		}
		require.NoError(t, repos.Item.SaveItems(ctx, items))

		got, err := repos.Item.GetItems(ctx, KindPeople, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)

		count, err := repos.Item.CountItems(ctx, KindPeople)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("same link refreshed not duplicated", func(t *testing.T) {
		items := []Item{
			{RunID: "run-2", Kind: KindPeople, Entity: "Jane Doe", Title: "first post updated", Link: "https://jane.example/1", Published: &pub},
		}
		require.NoError(t, repos.Item.SaveItems(ctx, items))

		count, err := repos.Item.CountItems(ctx, KindPeople)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		got, err := repos.Item.GetItems(ctx, KindPeople, 10)
		require.NoError(t, err)
		var found bool
		for _, it := range got {
			if it.Link == "https://jane.example/1" {
				found = true
				assert.Equal(t, "first post updated", it.Title)
				assert.Equal(t, "run-2", it.RunID)
			}
		}
		assert.True(t, found)
	})

	t.Run("same link different kind kept separate", func(t *testing.T) {
		items := []Item{
			{RunID: "run-2", Kind: KindNews, Entity: "Acme", Title: "press mention", Link: "https://jane.example/1"},
		}
		require.NoError(t, repos.Item.SaveItems(ctx, items))

		count, err := repos.Item.CountItems(ctx, KindNews)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repos.Item.SaveItems(ctx, nil))
	})
}

func TestItemRepository_GetItems_Limit(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	items := make([]Item, 5)
	for i := range items {
		items[i] = Item{RunID: "run-1", Kind: KindCompanies, Entity: "Acme", Title: "update", Link: "https://acme.example/" + string(rune('a'+i))}
	}
	require.NoError(t, repos.Item.SaveItems(ctx, items))

	got, err := repos.Item.GetItems(ctx, KindCompanies, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// zero limit takes the default
	got, err = repos.Item.GetItems(ctx, KindCompanies, 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestItemRepository_RecentLinks(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	items := []Item{
		{RunID: "run-1", Kind: KindPeople, Entity: "Jane", Title: "a post", Link: "https://jane.example/a"},
		{RunID: "run-1", Kind: KindCompanies, Entity: "Acme", Title: "an update", Link: "https://acme.example/b"},
	}
	require.NoError(t, repos.Item.SaveItems(ctx, items))

	t.Run("everything within window", func(t *testing.T) {
		links, err := repos.Item.RecentLinks(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"https://jane.example/a", "https://acme.example/b"}, links)
	})

	t.Run("nothing within window", func(t *testing.T) {
		links, err := repos.Item.RecentLinks(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestDigestRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("latest on empty store", func(t *testing.T) {
		_, err := repos.Digest.LatestDigest(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save and fetch", func(t *testing.T) {
		require.NoError(t, repos.Digest.SaveDigest(ctx, Digest{Date: "2025-06-14", Content: "yesterday's digest", Model: "gpt-4o-mini"}))
		require.NoError(t, repos.Digest.SaveDigest(ctx, Digest{Date: "2025-06-15", Content: "today's digest", Model: "gpt-4o-mini"}))

		latest, err := repos.Digest.LatestDigest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15", latest.Date)
		assert.Equal(t, "today's digest", latest.Content)

		byDate, err := repos.Digest.DigestByDate(ctx, "2025-06-14")
		require.NoError(t, err)
		assert.Equal(t, "yesterday's digest", byDate.Content)
	})

	t.Run("same day replaced", func(t *testing.T) {
		require.NoError(t, repos.Digest.SaveDigest(ctx, Digest{Date: "2025-06-15", Content: "regenerated digest", Model: "llama3"}))

		latest, err := repos.Digest.LatestDigest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "regenerated digest", latest.Content)
		assert.Equal(t, "llama3", latest.Model)

		var count int
		require.NoError(t, repos.DB.Get(&count, "SELECT COUNT(*) FROM digests"))
		assert.Equal(t, 2, count)
	})

	t.Run("by date missing", func(t *testing.T) {
		_, err := repos.Digest.DigestByDate(ctx, "1999-01-01")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
