package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/user-order-services/internal/domains/orders/domain"
)

// Order is the JSON payload exchanged on /api/orders.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	ProductName string      `json:"productName"`
	Quantity    int32       `json:"quantity"`
	TotalAmount json.Number `json:"totalAmount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// User is the embedded user view of an enriched order.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// OrderWithUser renders the user as null when it could not be fetched.
type OrderWithUser struct {
	Order Order `json:"order"`
	User  *User `json:"user"`
}

// ToDomainOrder converts a transport order into the domain model.
func ToDomainOrder(model Order) (*orderdomain.Order, error) {
	amount := decimal.Zero
	if model.TotalAmount != "" {
		parsed, err := decimal.NewFromString(model.TotalAmount.String())
		if err != nil {
			return nil, fmt.Errorf("totalAmount: %w", err)
		}
		amount = parsed
	}
	return &orderdomain.Order{
		ID:          model.ID,
		UserID:      model.UserID,
		ProductName: model.ProductName,
		Quantity:    model.Quantity,
		TotalAmount: amount,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
	}, nil
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:          order.ID,
		UserID:      order.UserID,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		TotalAmount: json.Number(order.TotalAmount.String()),
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
}

func FromDomainOrders(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}

func FromDomainOrderWithUser(pair orderdomain.OrderWithUser) OrderWithUser {
	payload := OrderWithUser{Order: FromDomainOrder(pair.Order)}
	if user, ok := pair.User.Get(); ok {
		payload.User = &User{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
		}
	}
	return payload
}

func FromDomainOrdersWithUsers(pairs []orderdomain.OrderWithUser) []OrderWithUser {
	result := make([]OrderWithUser, 0, len(pairs))
	for _, pair := range pairs {
		result = append(result, FromDomainOrderWithUser(pair))
	}
	return result
}
