package application

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/user-order-services/internal/domains/orders/adapters/memory"
	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/domains/orders/ports/portsmock"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

func newTestService(t *testing.T) (*Service, *memory.Repository, *portsmock.MockUserDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	directory := portsmock.NewMockUserDirectory(ctrl)
	repo := memory.NewRepository()
	require.NoError(t, repo.Seed(context.Background(), domain.SampleOrders(time.Now())...))
	return NewService(repo, directory), repo, directory
}

func snapshot(id int64) domain.UserSnapshot {
	return domain.UserSnapshot{
		ID:       id,
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
	}
}

func TestCreateOrder_KnownUserDefaultsStatus(t *testing.T) {
	svc, _, directory := newTestService(t)
	ctx := context.Background()
	directory.EXPECT().FetchUser(gomock.Any(), int64(1)).Return(option.Some(snapshot(1)))

	created, err := svc.CreateOrder(ctx, &domain.Order{
		ID:          77,
		UserID:      1,
		ProductName: "Monitor",
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("299.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateOrder_UnknownUserStoresNothing(t *testing.T) {
	svc, repo, directory := newTestService(t)
	ctx := context.Background()
	directory.EXPECT().FetchUser(gomock.Any(), int64(999)).Return(option.None[domain.UserSnapshot]())

	_, err := svc.CreateOrder(ctx, &domain.Order{UserID: 999, ProductName: "Monitor", Quantity: 1})
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 3, repo.Count())
}

func TestCreateOrder_KeepsExplicitStatus(t *testing.T) {
	svc, _, directory := newTestService(t)
	directory.EXPECT().FetchUser(gomock.Any(), int64(2)).Return(option.Some(snapshot(2)))

	created, err := svc.CreateOrder(context.Background(), &domain.Order{UserID: 2, ProductName: "Cable", Quantity: 3, Status: "SHIPPED"})
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", created.Status)
}

func TestCreateOrder_NilOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateOrder_OverwritesMutableFieldsOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	before, err := svc.GetOrder(ctx, 3)
	require.NoError(t, err)
	original, ok := before.Get()
	require.True(t, ok)

	result, err := svc.UpdateOrder(ctx, 3, &domain.Order{
		UserID:      42,
		ProductName: "Mechanical Keyboard",
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("159.98"),
		Status:      "SHIPPED",
	})
	require.NoError(t, err)
	updated, ok := result.Get()
	require.True(t, ok)
	assert.Equal(t, int64(3), updated.ID)
	assert.Equal(t, original.UserID, updated.UserID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Mechanical Keyboard", updated.ProductName)
	assert.Equal(t, "SHIPPED", updated.Status)
}

func TestUpdateOrder_Missing(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.UpdateOrder(context.Background(), 99, &domain.Order{ProductName: "x"})
	require.NoError(t, err)
	assert.False(t, result.IsPresent())
}

func TestListOrdersByUser_DoesNotConsultDirectory(t *testing.T) {
	svc, _, _ := newTestService(t)

	orders, err := svc.ListOrdersByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGetOrderWithUser(t *testing.T) {
	svc, _, directory := newTestService(t)
	ctx := context.Background()
	user := snapshot(2)
	directory.EXPECT().FetchUser(gomock.Any(), int64(2)).Return(option.Some(user))

	result, err := svc.GetOrderWithUser(ctx, 3)
	require.NoError(t, err)
	pair, ok := result.Get()
	require.True(t, ok)
	assert.Equal(t, int64(3), pair.Order.ID)
	got, ok := pair.User.Get()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetOrderWithUser_UserGone(t *testing.T) {
	svc, _, directory := newTestService(t)
	directory.EXPECT().FetchUser(gomock.Any(), int64(2)).Return(option.None[domain.UserSnapshot]())

	result, err := svc.GetOrderWithUser(context.Background(), 3)
	require.NoError(t, err)
	pair, ok := result.Get()
	require.True(t, ok)
	assert.False(t, pair.User.IsPresent())
}

func TestGetOrderWithUser_MissingOrderSkipsLookup(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.GetOrderWithUser(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, result.IsPresent())
}

func TestListOrdersWithUsers_OneLookupPerOrder(t *testing.T) {
	svc, _, directory := newTestService(t)
	directory.EXPECT().FetchUser(gomock.Any(), int64(1)).Return(option.Some(snapshot(1))).Times(2)
	directory.EXPECT().FetchUser(gomock.Any(), int64(2)).Return(option.None[domain.UserSnapshot]()).Times(1)

	result, err := svc.ListOrdersWithUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].User.IsPresent())
	assert.True(t, result[1].User.IsPresent())
	assert.False(t, result[2].User.IsPresent())
}

func TestDeleteOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	removed, err := svc.DeleteOrder(ctx, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteOrder(ctx, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}
