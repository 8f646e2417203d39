// Package mirror replicates local documents to the hosted relational store
// and back. It is a pass-through: the local store stays the owner of all
// state, the mirror only upserts and fetches.
package mirror

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"pureflow/internal/domain/entity"
)

// CartItems stores the order's line-item snapshots as a JSONB column.
type CartItems []entity.CartItem

// Value implements driver.Valuer.
func (c CartItems) Value() (driver.Value, error) {
	b, err := json.Marshal(c)

	return b, errors.WithStack(err)
}

// Scan implements sql.Scanner.
func (c *CartItems) Scan(src any) error {
	return scanJSON(src, c)
}

// HistoryEntries stores the order's status log as a JSONB column.
type HistoryEntries []entity.StatusHistory

// Value implements driver.Valuer.
func (h HistoryEntries) Value() (driver.Value, error) {
	b, err := json.Marshal(h)

	return b, errors.WithStack(err)
}

// Scan implements sql.Scanner.
func (h *HistoryEntries) Scan(src any) error {
	return scanJSON(src, h)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return errors.WithStack(json.Unmarshal(v, dst))
	case string:
		return errors.WithStack(json.Unmarshal([]byte(v), dst))
	default:
		return errors.Errorf("unsupported jsonb source type %T", src)
	}
}

// OrderModel mirrors the remote 'orders' table. The quoted camelCase column
// names match the hosted schema, which in turn matches the order document's
// JSON keys, so a row and a local document are field-for-field identical.
type OrderModel struct {
	ID               string         `gorm:"column:id;primaryKey;type:text"`
	UserMobile       string         `gorm:"column:userMobile;type:text"`
	UserName         string         `gorm:"column:userName;type:text"`
	UserAddress      string         `gorm:"column:userAddress;type:text"`
	UserZipcode      string         `gorm:"column:userZipcode;type:text"`
	ProductSummary   string         `gorm:"column:productSummary;type:text"`
	Date             string         `gorm:"column:date;type:text"`
	CreatedAt        time.Time      `gorm:"column:createdAt;type:timestamptz"`
	Total            int            `gorm:"column:total"`
	Status           string         `gorm:"column:status;type:text"`
	PaymentMethod    string         `gorm:"column:paymentMethod;type:text"`
	AssignedToMobile string         `gorm:"column:assignedToMobile;type:text"`
	AssignedToName   string         `gorm:"column:assignedToName;type:text"`
	DepositAmount    int            `gorm:"column:depositAmount;default:0"`
	Items            CartItems      `gorm:"column:items;type:jsonb"`
	History          HistoryEntries `gorm:"column:history;type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// UserModel mirrors the remote 'users' table, keyed by normalized identity.
// The device session flag is local bookkeeping and deliberately has no column.
type UserModel struct {
	ID            string `gorm:"column:id;primaryKey;type:text"`
	Mobile        string `gorm:"column:mobile;type:text"`
	Email         string `gorm:"column:email;type:text"`
	PIN           string `gorm:"column:pin;type:text"`
	Name          string `gorm:"column:name;type:text"`
	Address       string `gorm:"column:address;type:text"`
	Pincode       string `gorm:"column:pincode;type:text"`
	Avatar        string `gorm:"column:avatar;type:text"`
	IsAdmin       bool   `gorm:"column:isAdmin"`
	IsDeliveryBoy bool   `gorm:"column:isDeliveryBoy"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func fromOrderDomain(o entity.Order) *OrderModel {
	return &OrderModel{
		ID:               o.ID,
		UserMobile:       o.UserMobile,
		UserName:         o.UserName,
		UserAddress:      o.UserAddress,
		UserZipcode:      o.UserZipcode,
		ProductSummary:   o.ProductSummary,
		Date:             o.Date,
		CreatedAt:        o.CreatedAt,
		Total:            o.Total,
		Status:           string(o.Status),
		PaymentMethod:    string(o.PaymentMethod),
		AssignedToMobile: o.AssignedToMobile,
		AssignedToName:   o.AssignedToName,
		DepositAmount:    o.DepositAmount,
		Items:            CartItems(o.Items),
		History:          HistoryEntries(o.History),
	}
}

func toOrderDomain(m *OrderModel) entity.Order {
	return entity.Order{
		ID:               m.ID,
		UserMobile:       m.UserMobile,
		UserName:         m.UserName,
		UserAddress:      m.UserAddress,
		UserZipcode:      m.UserZipcode,
		ProductSummary:   m.ProductSummary,
		Date:             m.Date,
		CreatedAt:        m.CreatedAt,
		Total:            m.Total,
		Status:           entity.OrderStatus(m.Status),
		PaymentMethod:    entity.PaymentMethod(m.PaymentMethod),
		AssignedToMobile: m.AssignedToMobile,
		AssignedToName:   m.AssignedToName,
		DepositAmount:    m.DepositAmount,
		Items:            []entity.CartItem(m.Items),
		History:          []entity.StatusHistory(m.History),
	}
}

// fromUserDomain strips the local-only session flag by construction.
func fromUserDomain(u entity.User) *UserModel {
	return &UserModel{
		ID:            u.Identity(),
		Mobile:        u.Mobile,
		Email:         u.Email,
		PIN:           u.PIN,
		Name:          u.Name,
		Address:       u.Address,
		Pincode:       u.Pincode,
		Avatar:        u.Avatar,
		IsAdmin:       u.IsAdmin,
		IsDeliveryBoy: u.IsDeliveryBoy,
	}
}

func toUserDomain(m *UserModel) entity.User {
	return entity.User{
		Mobile:        m.Mobile,
		Email:         m.Email,
		PIN:           m.PIN,
		Name:          m.Name,
		Address:       m.Address,
		Pincode:       m.Pincode,
		Avatar:        m.Avatar,
		IsAdmin:       m.IsAdmin,
		IsDeliveryBoy: m.IsDeliveryBoy,
	}
}
