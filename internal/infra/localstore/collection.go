package localstore

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"pureflow/internal/domain/entity"
	"pureflow/internal/domain/repository"
)

// record is the persisted envelope around a document. LastUpdated and Dirty
// are local bookkeeping only and never leave the device.
type record[T repository.Document] struct {
	Doc         T         `json:"doc"`
	LastUpdated time.Time `json:"lastUpdated"`
	Dirty       bool      `json:"dirty,omitempty"`
}

type subscriber[T repository.Document] struct {
	fn   func([]T)
	less func(a, b T) bool
}

// Collection implements repository.Collection on top of a Store. Documents
// keep their insertion order; subscribers receive full sorted copies on every
// mutation, never diffs.
type Collection[T repository.Document] struct {
	name   string
	store  *Store
	logger *slog.Logger
	clock  func() time.Time

	mu      sync.Mutex
	records []*record[T]
	index   map[string]int
	subs    map[int]*subscriber[T]
	nextSub int
}

// NewCollection loads the named collection from the store. Undecodable
// records are dropped with a warning rather than poisoning the collection.
func NewCollection[T repository.Document](store *Store, name string, logger *slog.Logger) *Collection[T] {
	c := &Collection[T]{
		name:   name,
		store:  store,
		logger: logger,
		clock:  time.Now,
		index:  make(map[string]int),
		subs:   make(map[int]*subscriber[T]),
	}

	err := store.scanPrefix(name+"/", func(key string, value []byte) error {
		var rec record[T]
		if err := json.Unmarshal(value, &rec); err != nil {
			logger.Warn("dropping undecodable document",
				slog.String("collection", name),
				slog.String("key", key),
				slog.Any("error", err),
			)

			return nil
		}
		c.index[rec.Doc.DocumentID()] = len(c.records)
		c.records = append(c.records, &rec)

		return nil
	})
	if err != nil {
		logger.Warn("loading collection failed, starting empty",
			slog.String("collection", name),
			slog.Any("error", err),
		)
	}

	return c
}

// Upsert merges doc over an existing document with the same id or appends it,
// stamping the record's last-updated time either way.
func (c *Collection[T]) Upsert(doc T) {
	id := doc.DocumentID()
	if id == "" {
		return
	}

	c.mu.Lock()
	var rec *record[T]
	if i, ok := c.index[id]; ok {
		rec = c.records[i]
		rec.Doc = doc
	} else {
		rec = &record[T]{Doc: doc}
		c.index[id] = len(c.records)
		c.records = append(c.records, rec)
	}
	rec.LastUpdated = c.clock()
	c.persist(id, rec)
	emit := c.snapshots()
	c.mu.Unlock()

	deliver(emit)
}

// Update applies mutate to the existing document. It never creates: updating
// an absent id is a no-op reported by the false return.
func (c *Collection[T]) Update(id string, mutate func(*T)) bool {
	c.mu.Lock()
	i, ok := c.index[id]
	if !ok {
		c.mu.Unlock()

		return false
	}
	rec := c.records[i]
	mutate(&rec.Doc)
	rec.LastUpdated = c.clock()
	c.persist(id, rec)
	emit := c.snapshots()
	c.mu.Unlock()

	deliver(emit)

	return true
}

// Delete removes the document, a no-op when absent.
func (c *Collection[T]) Delete(id string) {
	c.mu.Lock()
	i, ok := c.index[id]
	if !ok {
		c.mu.Unlock()

		return
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.records); j++ {
		c.index[c.records[j].Doc.DocumentID()] = j
	}
	if err := c.store.delete(c.name + "/" + id); err != nil {
		c.logger.Warn("deleting document from storage failed",
			slog.String("collection", c.name),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
	emit := c.snapshots()
	c.mu.Unlock()

	deliver(emit)
}

// Get returns the document with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[id]; ok {
		return c.records[i].Doc, true
	}

	var zero T

	return zero, false
}

// List returns a copy of the current documents in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.docs(nil)
}

// Subscribe registers fn and immediately invokes it with the current snapshot,
// sorted by less when given. The returned unsubscribe func is idempotent.
func (c *Collection[T]) Subscribe(fn func([]T), less func(a, b T) bool) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = &subscriber[T]{fn: fn, less: less}
	first := c.docs(less)
	c.mu.Unlock()

	fn(first)

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// MarkDirty flags a document whose mirror push failed.
func (c *Collection[T]) MarkDirty(id string) {
	c.setDirty(id, true)
}

// ClearDirty unflags a document after a successful push.
func (c *Collection[T]) ClearDirty(id string) {
	c.setDirty(id, false)
}

// DirtyIDs returns the ids still awaiting a successful mirror push.
func (c *Collection[T]) DirtyIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ids []string
	for _, rec := range c.records {
		if rec.Dirty {
			ids = append(ids, rec.Doc.DocumentID())
		}
	}

	return ids
}

func (c *Collection[T]) setDirty(id string, dirty bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok || c.records[i].Dirty == dirty {
		return
	}
	c.records[i].Dirty = dirty
	c.persist(id, c.records[i])
}

// persist writes the record through to Pebble, best-effort. Callers hold the
// collection mutex.
func (c *Collection[T]) persist(id string, rec *record[T]) {
	value, err := json.Marshal(rec)
	if err == nil {
		err = c.store.set(c.name+"/"+id, value)
	}
	if err != nil {
		c.logger.Warn("persisting document failed, kept in-memory only",
			slog.String("collection", c.name),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
}

// docs builds a sorted copy of the documents. Callers hold the mutex.
func (c *Collection[T]) docs(less func(a, b T) bool) []T {
	out := make([]T, 0, len(c.records))
	for _, rec := range c.records {
		out = append(out, rec.Doc)
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	return out
}

type emission[T repository.Document] struct {
	fn       func([]T)
	snapshot []T
}

// snapshots prepares one sorted copy per subscriber. Callers hold the mutex;
// delivery happens after it is released so a subscriber can re-enter the
// collection.
func (c *Collection[T]) snapshots() []emission[T] {
	out := make([]emission[T], 0, len(c.subs))
	for _, sub := range c.subs {
		out = append(out, emission[T]{fn: sub.fn, snapshot: c.docs(sub.less)})
	}

	return out
}

func deliver[T repository.Document](emissions []emission[T]) {
	for _, e := range emissions {
		e.fn(e.snapshot)
	}
}

// Collection constructors for the app's four synced collections plus settings.

func NewOrderCollection(store *Store, logger *slog.Logger) repository.OrderCollection {
	return NewCollection[entity.Order](store, "orders", logger)
}

func NewUserCollection(store *Store, logger *slog.Logger) repository.UserCollection {
	return NewCollection[entity.User](store, "users", logger)
}

func NewProductCollection(store *Store, logger *slog.Logger) repository.ProductCollection {
	return NewCollection[entity.Product](store, "products", logger)
}

func NewNotificationCollection(store *Store, logger *slog.Logger) repository.NotificationCollection {
	return NewCollection[entity.Notification](store, "notifications", logger)
}

func NewSettingCollection(store *Store, logger *slog.Logger) repository.SettingCollection {
	return NewCollection[entity.Setting](store, "settings", logger)
}
