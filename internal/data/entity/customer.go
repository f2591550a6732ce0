package entity

import "time"

type Customer struct {
	ID          int64     `db:"sc_id"`
	Name        string    `db:"sc_name"`
	Email       string    `db:"sc_email"`
	Phone       string    `db:"sc_phone"`
	NumberPlate string    `db:"sc_number_plate"`
	BrandModel  string    `db:"sc_brand_model"`
	CreatedAt   time.Time `db:"created_at"`
}
