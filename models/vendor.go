package models

import "strings"

// Proveedor is the read-only vendor catalog. Rows are loaded out of band;
// this service never creates, updates or deletes them.
type Proveedor struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string `gorm:"not null" json:"nombre"`
	Tipo        string `gorm:"not null" json:"tipo"`
	Presupuesto string `gorm:"not null" json:"presupuesto"`
	Estilo      string `json:"-"`
	Contacto    string `json:"contacto"`
	Descripcion string `json:"descripcion"`
	Costo       int    `json:"costo"`
}

func (Proveedor) TableName() string {
	return "proveedores"
}

// EstiloLista expands the comma-joined estilo column into a list.
// A null/empty column yields an empty list, never nil-as-null in JSON.
func (p Proveedor) EstiloLista() []string {
	if p.Estilo == "" {
		return []string{}
	}
	return strings.Split(p.Estilo, ",")
}

// ProveedorView is the API shape of a vendor: estilo exposed as a list.
type ProveedorView struct {
	ID          int      `json:"id"`
	Nombre      string   `json:"nombre"`
	Tipo        string   `json:"tipo"`
	Presupuesto string   `json:"presupuesto"`
	Estilo      []string `json:"estilo"`
	Contacto    string   `json:"contacto"`
	Descripcion string   `json:"descripcion"`
	Costo       int      `json:"costo"`
}

func (p Proveedor) View() ProveedorView {
	return ProveedorView{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Tipo:        p.Tipo,
		Presupuesto: p.Presupuesto,
		Estilo:      p.EstiloLista(),
		Contacto:    p.Contacto,
		Descripcion: p.Descripcion,
		Costo:       p.Costo,
	}
}

// ProveedorPuntuado is a vendor plus its recommendation score. Derived,
// never persisted.
type ProveedorPuntuado struct {
	ProveedorView
	Score int `json:"score"`
}
