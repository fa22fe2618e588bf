package entity

import "time"

// Product representa un producto del catálogo. Su ciclo de vida lo administra
// el sistema de inventario externo; aquí solo se consulta su existencia.
type Product struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
