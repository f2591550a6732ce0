package entity

import "github.com/shopspring/decimal"

// Package codes match the values the booking form submits.
const (
	PackageCodeDaily       = "daily"
	PackageCodePerformance = "performance"
)

type Package struct {
	ID          int64           `db:"sp_id"`
	Name        string          `db:"sp_name"`
	Code        string          `db:"sp_code"`
	Price       decimal.Decimal `db:"sp_price"`
	Description string          `db:"sp_description"`
}
