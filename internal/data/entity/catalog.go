package entity

import "time"

type Category struct {
	ID          int64     `db:"category_id"`
	Name        string    `db:"category_name"`
	Description string    `db:"category_description"`
	Image       string    `db:"category_img"`
	CreatedAt   time.Time `db:"created_at"`
}

type Product struct {
	ID          int64     `db:"product_id"`
	CategoryID  int64     `db:"category_id"`
	Name        string    `db:"product_name"`
	Description string    `db:"product_description"`
	Image       string    `db:"product_img"`
	CreatedAt   time.Time `db:"created_at"`
}
