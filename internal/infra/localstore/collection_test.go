package localstore

import (
	"io"
	"log/slog"
	"testing"

	"pureflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.TempDir(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestCollection_UpsertAndGet(t *testing.T) {
	col := NewCollection[entity.Product](openTestStore(t), "products", testLogger())

	col.Upsert(entity.Product{ID: "p1", Name: "20L RO Water Can", Price: 35, Category: entity.CategoryCan})

	got, ok := col.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "20L RO Water Can", got.Name)

	// Upserting the same id replaces in place, not append.
	col.Upsert(entity.Product{ID: "p1", Name: "20L RO Water Can", Price: 40, Category: entity.CategoryCan})
	got, _ = col.Get("p1")
	assert.Equal(t, 40, got.Price)
	assert.Len(t, col.List(), 1)
}

func TestCollection_UpsertIgnoresEmptyID(t *testing.T) {
	col := NewCollection[entity.Product](openTestStore(t), "products", testLogger())

	col.Upsert(entity.Product{Name: "no id"})

	assert.Empty(t, col.List())
}

func TestCollection_UpdateNeverCreates(t *testing.T) {
	col := NewCollection[entity.Setting](openTestStore(t), "settings", testLogger())

	ok := col.Update("deliveryFee", func(s *entity.Setting) { s.Value = 20 })
	assert.False(t, ok)
	assert.Empty(t, col.List())

	col.Upsert(entity.Setting{ID: "deliveryFee", Value: 10})
	ok = col.Update("deliveryFee", func(s *entity.Setting) { s.Value = 20 })
	assert.True(t, ok)

	got, _ := col.Get("deliveryFee")
	assert.Equal(t, 20, got.IntValue(0))
}

func TestCollection_DeleteKeepsIndexConsistent(t *testing.T) {
	col := NewCollection[entity.Product](openTestStore(t), "products", testLogger())
	for _, id := range []string{"p1", "p2", "p3"} {
		col.Upsert(entity.Product{ID: id, Name: id})
	}

	col.Delete("p2")

	assert.Len(t, col.List(), 2)
	_, ok := col.Get("p2")
	assert.False(t, ok)

	// Documents after the removed one are still addressable.
	got, ok := col.Get("p3")
	require.True(t, ok)
	assert.Equal(t, "p3", got.Name)

	// Deleting twice is a no-op.
	col.Delete("p2")
	assert.Len(t, col.List(), 2)
}

func TestCollection_SubscribeEmitsImmediatelyAndOnMutation(t *testing.T) {
	col := NewCollection[entity.Product](openTestStore(t), "products", testLogger())
	col.Upsert(entity.Product{ID: "p1", Price: 35})

	var snapshots [][]entity.Product
	unsubscribe := col.Subscribe(func(products []entity.Product) {
		snapshots = append(snapshots, products)
	}, nil)

	require.Len(t, snapshots, 1)
	assert.Len(t, snapshots[0], 1)

	col.Upsert(entity.Product{ID: "p2", Price: 150})
	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[1], 2)

	unsubscribe()
	col.Upsert(entity.Product{ID: "p3", Price: 450})
	assert.Len(t, snapshots, 2)

	// A second unsubscribe must be harmless.
	unsubscribe()
}

func TestCollection_SubscribeSortsSnapshots(t *testing.T) {
	col := NewCollection[entity.Product](openTestStore(t), "products", testLogger())
	col.Upsert(entity.Product{ID: "cheap", Price: 35})
	col.Upsert(entity.Product{ID: "dear", Price: 900})
	col.Upsert(entity.Product{ID: "mid", Price: 150})

	var latest []entity.Product
	col.Subscribe(func(products []entity.Product) {
		latest = products
	}, func(a, b entity.Product) bool { return a.Price > b.Price })

	require.Len(t, latest, 3)
	assert.Equal(t, "dear", latest[0].ID)
	assert.Equal(t, "cheap", latest[2].ID)
}

func TestCollection_DirtyLifecycle(t *testing.T) {
	col := NewCollection[entity.Order](openTestStore(t), "orders", testLogger())
	col.Upsert(entity.Order{ID: "ORD-1"})
	col.Upsert(entity.Order{ID: "ORD-2"})

	col.MarkDirty("ORD-2")
	assert.Equal(t, []string{"ORD-2"}, col.DirtyIDs())

	col.ClearDirty("ORD-2")
	assert.Empty(t, col.DirtyIDs())

	// Flagging an unknown id changes nothing.
	col.MarkDirty("ORD-404")
	assert.Empty(t, col.DirtyIDs())
}

func TestCollection_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, testLogger())
	require.NoError(t, err)

	col := NewCollection[entity.Order](store, "orders", testLogger())
	col.Upsert(entity.Order{ID: "ORD-1", Total: 80, Status: entity.StatusPending})
	col.MarkDirty("ORD-1")
	require.NoError(t, store.Close())

	reopened, err := Open(dir, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	loaded := NewCollection[entity.Order](reopened, "orders", testLogger())
	got, ok := loaded.Get("ORD-1")
	require.True(t, ok)
	assert.Equal(t, 80, got.Total)
	assert.Equal(t, entity.StatusPending, got.Status)

	// The dirty flag survives a restart so the push can be retried.
	assert.Equal(t, []string{"ORD-1"}, loaded.DirtyIDs())
}
