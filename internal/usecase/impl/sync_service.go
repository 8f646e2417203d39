package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"pureflow/internal/domain/entity"
	"pureflow/internal/domain/repository"
	"pureflow/internal/infra/metrics"
	"pureflow/internal/session"
	"pureflow/internal/usecase"
)

type syncService struct {
	orders        repository.OrderCollection
	users         repository.UserCollection
	mirror        repository.MirrorClient
	feed          repository.ChangeFeed
	notifications usecase.NotificationUsecase
	sess          *session.Session
	metrics       *metrics.Registry
	logger        *slog.Logger

	offlineNotice sync.Once
}

// NewSyncService creates a new sync service instance
func NewSyncService(
	orders repository.OrderCollection,
	users repository.UserCollection,
	mirror repository.MirrorClient,
	feed repository.ChangeFeed,
	notifications usecase.NotificationUsecase,
	sess *session.Session,
	registry *metrics.Registry,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		orders:        orders,
		users:         users,
		mirror:        mirror,
		feed:          feed,
		notifications: notifications,
		sess:          sess,
		metrics:       registry,
		logger:        logger,
	}
}

// Start pulls the remote state as the seed, retries dirty documents and
// begins consuming the change feed. Remote failures degrade to local-only
// operation instead of failing startup.
func (s *syncService) Start(ctx context.Context) error {
	s.pullAll(ctx)
	s.retryDirty(ctx)

	if err := s.feed.Subscribe(ctx, repository.TableOrders, s.ApplyOrderEvent); err != nil {
		s.logger.Warn("change feed unavailable, running without live updates", slog.Any("error", err))
	}

	return nil
}

// pullAll seeds the local store from the remote mirror. Remote rows win over
// stale local copies; dirty local documents are deliberately skipped so an
// unpushed edit is not silently reverted.
func (s *syncService) pullAll(ctx context.Context) {
	remoteOrders, ok := s.mirror.FetchAllOrders(ctx)
	if !ok {
		s.setCloudSynced(false)
		s.logger.Warn("startup pull failed, keeping local orders")

		return
	}

	dirtyOrders := dirtySet(s.orders.DirtyIDs())
	for _, order := range remoteOrders {
		if _, pending := dirtyOrders[order.ID]; pending {
			continue
		}

		s.orders.Upsert(order)
	}

	if remoteUsers, usersOK := s.mirror.FetchAllUsers(ctx); usersOK {
		dirtyUsers := dirtySet(s.users.DirtyIDs())
		for _, user := range remoteUsers {
			if _, pending := dirtyUsers[user.DocumentID()]; pending {
				continue
			}

			if current, exists := s.users.Get(user.DocumentID()); exists {
				// Device session flags are local bookkeeping, never remote truth.
				user.IsLoggedIn = current.IsLoggedIn
			}

			s.users.Upsert(user)
			s.sess.Refresh(user)
		}
	}

	s.setCloudSynced(true)
}

func dirtySet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// retryDirty re-pushes every document whose last mirror push failed.
func (s *syncService) retryDirty(ctx context.Context) {
	for _, id := range s.orders.DirtyIDs() {
		order, ok := s.orders.Get(id)
		if !ok {
			s.orders.ClearDirty(id)

			continue
		}

		s.metrics.DirtyRetries.Inc()
		s.PushOrder(ctx, order, &order)
	}

	for _, id := range s.users.DirtyIDs() {
		user, ok := s.users.Get(id)
		if !ok {
			s.users.ClearDirty(id)

			continue
		}

		s.metrics.DirtyRetries.Inc()
		s.PushUser(ctx, user)
	}
}

// PushOrder mirrors a locally written order and publishes the change event
// other devices react to. A failed push flags the document dirty for a later
// retry; the local write is already durable either way.
func (s *syncService) PushOrder(ctx context.Context, order entity.Order, prev *entity.Order) bool {
	if !s.mirror.PushOrder(ctx, order) {
		s.metrics.MirrorPushFailed.Inc()
		s.orders.MarkDirty(order.ID)
		s.markOffline(ctx)

		return false
	}

	s.metrics.MirrorPushed.Inc()
	s.orders.ClearDirty(order.ID)
	s.setCloudSynced(true)

	event := repository.ChangeEvent{Table: repository.TableOrders, Kind: repository.ChangeInsert}
	if prev != nil {
		event.Kind = repository.ChangeUpdate
		event.OldStatus = string(prev.Status)
	}

	row, err := json.Marshal(order)
	if err != nil {
		s.logger.Warn("order not publishable", slog.String("order", order.ID), slog.Any("error", err))

		return true
	}

	event.Row = row
	if err := s.feed.Publish(ctx, event); err != nil {
		s.logger.Warn("change event publish failed", slog.String("order", order.ID), slog.Any("error", err))
	}

	return true
}

// PushUser mirrors a locally written user profile.
func (s *syncService) PushUser(ctx context.Context, user entity.User) bool {
	id := user.DocumentID()

	if !s.mirror.PushUser(ctx, user) {
		s.metrics.MirrorPushFailed.Inc()
		s.users.MarkDirty(id)
		s.markOffline(ctx)

		return false
	}

	s.metrics.MirrorPushed.Inc()
	s.users.ClearDirty(id)
	s.setCloudSynced(true)

	return true
}

// ApplyOrderEvent folds a remote order change into the local store. Events
// arrive at least once, including echoes of this device's own writes, so the
// fold is a plain idempotent upsert keyed by order id.
func (s *syncService) ApplyOrderEvent(event repository.ChangeEvent) {
	if event.Table != repository.TableOrders || event.Kind == repository.ChangeDelete {
		s.metrics.FeedEventsSkipped.Inc()

		return
	}

	var order entity.Order
	if err := json.Unmarshal(event.Row, &order); err != nil || order.ID == "" {
		s.metrics.FeedEventsSkipped.Inc()
		s.logger.Warn("skipping undecodable change event", slog.Any("error", err))

		return
	}

	s.orders.Upsert(order)
	s.metrics.FeedEventsApplied.Inc()
	s.setCloudSynced(true)

	viewer, active := s.sess.Current()
	if !active {
		return
	}

	switch event.Kind {
	case repository.ChangeInsert:
		if viewer.IsAdmin {
			s.notifications.Notify(context.Background(), "New Order Received",
				"Order "+order.ID+" from "+order.UserName+".",
				entity.NotificationOrder, true, "")
		}
	case repository.ChangeUpdate:
		customer := entity.NormalizeIdentity(order.UserMobile)
		if event.OldStatus != "" && event.OldStatus != string(order.Status) && viewer.Identity() == customer {
			s.notifications.Notify(context.Background(), "Order Updated",
				"Your order "+order.ID+" is now "+string(order.Status)+".",
				entity.NotificationSystem, false, customer)
		}
	}
}

// CloudSynced reports whether the last cloud interaction succeeded.
func (s *syncService) CloudSynced() bool {
	return s.sess.CloudSynced()
}

func (s *syncService) setCloudSynced(ok bool) {
	s.sess.SetCloudSynced(ok)
	if ok {
		s.metrics.CloudSynced.Set(1)
	} else {
		s.metrics.CloudSynced.Set(0)
	}
}

// markOffline flips the connectivity indicator and tells the active user
// once per process that writes are piling up locally.
func (s *syncService) markOffline(ctx context.Context) {
	s.setCloudSynced(false)

	s.offlineNotice.Do(func() {
		viewer, active := s.sess.Current()
		if !active {
			s.logger.Warn("cloud mirror unreachable, saving locally")

			return
		}

		s.notifications.Notify(ctx, "Offline Mode",
			"Changes are saved on this device and will sync when the cloud is reachable.",
			entity.NotificationSystem, false, viewer.Identity())
	})
}
