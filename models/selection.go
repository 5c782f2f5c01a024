package models

// ProveedorSeleccionado records a vendor the bride hired. The foreign key
// makes a selection of a nonexistent vendor fail at the storage layer.
type ProveedorSeleccionado struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string `gorm:"column:user_id;index" json:"user_id"`
	ProveedorID int    `gorm:"column:proveedor_id;not null" json:"proveedor_id"`
	Estado      string `gorm:"default:'Contratado'" json:"estado"`

	Proveedor Proveedor `gorm:"foreignKey:ProveedorID" json:"-"`
}

func (ProveedorSeleccionado) TableName() string {
	return "proveedores_seleccionados"
}
