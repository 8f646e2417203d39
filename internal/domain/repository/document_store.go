// Package repository defines the persistence ports of the domain. Concrete
// implementations live under internal/infra.
package repository

import "pureflow/internal/domain/entity"

// Document is anything the local document store can hold. The ID is compared
// as a string everywhere so numeric-looking and string ids never silently
// mismatch.
type Document interface {
	DocumentID() string
}

// Collection is one named document collection of the local store. All writes
// are local-first and best-effort: a storage-medium failure never surfaces to
// the caller, the in-memory state simply carries on unpersisted for the rest
// of the session.
type Collection[T Document] interface {
	// Upsert merges the document over an existing one with the same id, or
	// appends it. Every upsert stamps the stored record's last-updated time.
	Upsert(doc T)

	// Update applies mutate to the existing document and reports whether it
	// existed. It never creates.
	Update(id string, mutate func(*T)) bool

	// Delete removes the document, a no-op when absent.
	Delete(id string)

	// Get returns the document with the given id.
	Get(id string) (T, bool)

	// List returns a copy of the current documents.
	List() []T

	// Subscribe invokes fn with the current snapshot immediately and again
	// after every mutation. When less is non-nil each emitted snapshot is
	// sorted by it first. Snapshots are always fully materialized copies,
	// never diffs. The returned unsubscribe func is idempotent.
	Subscribe(fn func(snapshot []T), less func(a, b T) bool) (unsubscribe func())

	// MarkDirty / ClearDirty track documents whose last mirror push failed so
	// a later sweep can retry them. DirtyIDs returns the ids still pending.
	MarkDirty(id string)
	ClearDirty(id string)
	DirtyIDs() []string
}

// Collection instantiations used across the app.
type (
	OrderCollection        = Collection[entity.Order]
	UserCollection         = Collection[entity.User]
	ProductCollection      = Collection[entity.Product]
	NotificationCollection = Collection[entity.Notification]
	SettingCollection      = Collection[entity.Setting]
)
