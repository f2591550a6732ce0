package entity

type Hostel struct {
	ID   int64  `db:"sh_id"`
	Name string `db:"sh_name"`
}
