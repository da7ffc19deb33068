package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is assigned to orders created without an explicit status.
const StatusPending = "PENDING"

// Order models a purchase placed by a registered user.
type Order struct {
	ID          int64
	UserID      int64
	ProductName string
	Quantity    int32
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

// ApplyCreationDefaults fills the status when the caller left it empty.
func (o *Order) ApplyCreationDefaults() {
	if o.Status == "" {
		o.Status = StatusPending
	}
}

// ApplyUpdate overwrites the mutable fields. UserID and CreatedAt stay as created.
func (o *Order) ApplyUpdate(patch Order) {
	o.ProductName = patch.ProductName
	o.Quantity = patch.Quantity
	o.TotalAmount = patch.TotalAmount
	o.Status = patch.Status
}

// SampleOrders returns the rows every fresh order store starts with.
func SampleOrders(now time.Time) []*Order {
	return []*Order{
		{ID: 1, UserID: 1, ProductName: "Laptop", Quantity: 1, TotalAmount: decimal.RequireFromString("999.99"), Status: "COMPLETED", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, UserID: 1, ProductName: "Mouse", Quantity: 2, TotalAmount: decimal.RequireFromString("49.98"), Status: "SHIPPED", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 3, UserID: 2, ProductName: "Keyboard", Quantity: 1, TotalAmount: decimal.RequireFromString("79.99"), Status: StatusPending, CreatedAt: now},
	}
}
