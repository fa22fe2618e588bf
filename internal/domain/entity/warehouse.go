package entity

import "time"

// Warehouse representa una bodega donde se recibe mercancía.
type Warehouse struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
}
