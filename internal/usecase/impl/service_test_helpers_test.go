package impl

import (
	"io"
	"log/slog"
	"testing"

	"pureflow/config"
	"pureflow/internal/domain/repository"
	"pureflow/internal/infra/auth"
	"pureflow/internal/infra/localstore"
	"pureflow/internal/infra/metrics"
	mockRepo "pureflow/internal/mocks/repository"
	mockSvc "pureflow/internal/mocks/service"
	"pureflow/internal/session"
	"pureflow/internal/usecase"

	"github.com/stretchr/testify/require"
)

// testEnv wires the full usecase stack against a real on-disk store and
// mocked cloud collaborators.
type testEnv struct {
	orders        repository.OrderCollection
	users         repository.UserCollection
	products      repository.ProductCollection
	notifications repository.NotificationCollection
	settings      repository.SettingCollection

	mirror *mockRepo.MockMirrorClient
	feed   *mockRepo.MockChangeFeed
	push   *mockSvc.MockPushService
	sess   *session.Session
	cfg    *config.Config

	notificationUC usecase.NotificationUsecase
	syncUC         usecase.SyncUsecase
	orderUC        usecase.OrderUsecase
	adminUC        usecase.AdminUsecase
	catalogUC      usecase.CatalogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store, err := localstore.Open(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Town = config.TownConfig{
		ID:          "township-ro",
		Name:        "Township RO",
		AdminMobile: "9999999999",
		DeliveryFee: 10,
		CanDeposit:  150,
		UPIID:       "townshipro@upi",
	}

	env := &testEnv{
		orders:        localstore.NewOrderCollection(store, logger),
		users:         localstore.NewUserCollection(store, logger),
		products:      localstore.NewProductCollection(store, logger),
		notifications: localstore.NewNotificationCollection(store, logger),
		settings:      localstore.NewSettingCollection(store, logger),
		mirror:        mockRepo.NewMockMirrorClient(t),
		feed:          mockRepo.NewMockChangeFeed(t),
		push:          mockSvc.NewMockPushService(t),
		sess:          session.New(),
		cfg:           cfg,
	}

	registry := metrics.NewRegistry()

	env.notificationUC = NewNotificationService(env.notifications, env.push, env.sess, registry, logger)
	env.syncUC = NewSyncService(env.orders, env.users, env.mirror, env.feed, env.notificationUC, env.sess, registry, logger)
	env.orderUC = NewOrderService(env.orders, env.users, env.settings, env.syncUC, env.notificationUC, cfg, registry, logger)
	env.adminUC = NewAdminService(env.users, env.settings, env.syncUC, env.notificationUC, cfg, logger)
	env.catalogUC = NewCatalogService(env.products, logger)

	return env
}

func (e *testEnv) sessionService(t *testing.T) usecase.SessionUsecase {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(e.cfg)
	require.NoError(t, err)

	return NewSessionService(e.users, e.syncUC, e.sess, tokens, e.cfg, logger)
}
