package entity

import "time"

// Company empresa compradora de chatarra. Datos de referencia mantenidos por
// el admin y consumidos al registrar ventas. No se elimina mientras tenga
// ventas asociadas (restrict-delete).
type Company struct {
	ID        string
	Name      string
	Contact   string
	Address   string
	Email     string // opcional
	CreatedAt time.Time
}
