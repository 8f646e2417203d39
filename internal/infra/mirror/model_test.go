package mirror

import (
	"testing"
	"time"

	"pureflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderModelRoundTrip(t *testing.T) {
	placed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	order := entity.Order{
		ID:             "ORD-1710000000000",
		UserMobile:     "9000000002",
		UserName:       "Ravi",
		UserAddress:    "12 Lake View Road",
		UserZipcode:    "641001",
		ProductSummary: "2x 20L RO Water Can",
		Date:           "14/03/2025",
		CreatedAt:      placed,
		Total:          80,
		Status:         entity.StatusProcessing,
		PaymentMethod:  entity.PaymentCOD,
		DepositAmount:  0,
		Items: []entity.CartItem{
			{Product: entity.Product{ID: "p1", Name: "20L RO Water Can", Price: 35, Unit: "Can", Category: entity.CategoryCan}, Quantity: 2},
		},
		History: []entity.StatusHistory{
			{Status: entity.StatusPending, Timestamp: "14/03/2025 09:30", Note: "Order placed"},
			{Status: entity.StatusProcessing, Timestamp: "14/03/2025 10:00", Note: ""},
		},
	}

	got := toOrderDomain(fromOrderDomain(order))

	assert.Equal(t, order, got)
}

func TestUserModelStripsSessionFlag(t *testing.T) {
	user := entity.User{
		Mobile:        "9000000002",
		PIN:           "1234",
		Name:          "Ravi",
		Address:       "12 Lake View Road",
		Pincode:       "641001",
		IsDeliveryBoy: true,
		IsLoggedIn:    true,
	}

	model := fromUserDomain(user)
	assert.Equal(t, "9000000002", model.ID)

	got := toUserDomain(model)

	// Being signed in on one device must never replicate to another.
	assert.False(t, got.IsLoggedIn)

	user.IsLoggedIn = false
	assert.Equal(t, user, got)
}

func TestCartItemsJSONBScan(t *testing.T) {
	items := CartItems{{Product: entity.Product{ID: "p1", Name: "20L RO Water Can", Price: 35}, Quantity: 2}}

	value, err := items.Value()
	require.NoError(t, err)

	var scanned CartItems
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, items, scanned)

	// Postgres drivers hand back text for jsonb under some configurations.
	var fromString CartItems
	require.NoError(t, fromString.Scan(string(value.([]byte))))
	assert.Equal(t, items, fromString)

	assert.Error(t, scanned.Scan(42))
	require.NoError(t, scanned.Scan(nil))
}
