package mirror

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pureflow/internal/domain/entity"
	"pureflow/internal/domain/repository"
)

// client implements repository.MirrorClient over GORM. Every method contains
// its failures: nothing thrown here may crash the app, callers only ever see
// a boolean.
type client struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewClient builds the mirror client. A nil db (no remote configured, or the
// connection could not be established) yields an offline client whose pushes
// fail and fetches report absence, which the reconciliation layer treats as
// degraded connectivity.
func NewClient(db *gorm.DB, logger *slog.Logger) repository.MirrorClient {
	if db == nil {
		logger.Info("no remote mirror configured, running local-only")

		return &offlineClient{}
	}

	return &client{db: db, logger: logger}
}

// PushOrder upserts the order by primary key, always overwriting on conflict.
func (c *client) PushOrder(ctx context.Context, order entity.Order) bool {
	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(fromOrderDomain(order)).Error
	if err != nil {
		c.logger.Warn("order mirror push failed",
			slog.String("orderId", order.ID),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// PushUser upserts the user by normalized identity.
func (c *client) PushUser(ctx context.Context, user entity.User) bool {
	id := user.Identity()
	if id == "" {
		return false
	}

	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(fromUserDomain(user)).Error
	if err != nil {
		c.logger.Warn("user mirror push failed",
			slog.String("identity", id),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// FetchAllOrders bulk-reads the remote orders, newest first. ok=false means
// the remote was unreachable, which is distinct from an empty table.
func (c *client) FetchAllOrders(ctx context.Context) ([]entity.Order, bool) {
	var models []*OrderModel
	err := c.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "createdAt"}, Desc: true}).
		Find(&models).Error
	if err != nil {
		c.logger.Warn("fetching remote orders failed", slog.Any("error", err))

		return nil, false
	}

	orders := make([]entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, true
}

// FetchAllUsers bulk-reads the remote users.
func (c *client) FetchAllUsers(ctx context.Context) ([]entity.User, bool) {
	var models []*UserModel
	if err := c.db.WithContext(ctx).Find(&models).Error; err != nil {
		c.logger.Warn("fetching remote users failed", slog.Any("error", err))

		return nil, false
	}

	users := make([]entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, toUserDomain(m))
	}

	return users, true
}

// offlineClient is the mirror when no remote is configured.
type offlineClient struct{}

func (*offlineClient) PushOrder(context.Context, entity.Order) bool { return false }
func (*offlineClient) PushUser(context.Context, entity.User) bool   { return false }

func (*offlineClient) FetchAllOrders(context.Context) ([]entity.Order, bool) {
	return nil, false
}

func (*offlineClient) FetchAllUsers(context.Context) ([]entity.User, bool) {
	return nil, false
}
