package domain

import "time"

const (
	// ScrubbedTransferCode replaces transfer_code once an order is redacted.
	ScrubbedTransferCode = "SCRUBBED"
	// ScrubbedAuthPassword replaces auth_password once an order is redacted.
	ScrubbedAuthPassword = "HIDDEN"
)

// ConfigID is the fixed key of the singleton shop config row.
const ConfigID = 1

type Order struct {
	ID           int        `db:"id"`
	CustomerID   string     `db:"customer_id"`
	Status       string     `db:"status"`
	TotalPrice   float64    `db:"total_price"`
	TransferCode string     `db:"transfer_code"`
	AuthPassword string     `db:"auth_password"`
	CreatedAt    time.Time  `db:"created_at"`
	CompletedAt  *time.Time `db:"completed_at"`
}

// Scrubbed reports whether both handoff fields already hold the redaction sentinels.
func (o *Order) Scrubbed() bool {
	return o.TransferCode == ScrubbedTransferCode && o.AuthPassword == ScrubbedAuthPassword
}

type ShopConfig struct {
	ID         int  `db:"id"`
	IsShopOpen bool `db:"is_shop_open"`
}
