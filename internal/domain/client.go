package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a customer jobs are billed to. TaxRate, when set,
// overrides the global settings rate for that client's invoices. The
// override is admin-trusted input; it is still validated into [0, 100]
// on write.
type Client struct {
	ID        string
	Name      string
	TaxRate   *decimal.Decimal
	Archived  bool
	CreatedAt time.Time
}

// Category classifies expense transactions. System categories back
// the settlement flow (tax, fund contribution) and cannot be deleted.
type Category struct {
	ID        string
	Name      string
	Slug      string
	System    bool
	CreatedAt time.Time
}

// WorkType is a reusable kind of billable work with an optional
// default price.
type WorkType struct {
	ID           string
	Name         string
	DefaultPrice *decimal.Decimal
	Archived     bool
	CreatedAt    time.Time
}
