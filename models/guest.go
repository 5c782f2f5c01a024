package models

type Guest struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"column:user_id;index" json:"user_id"`
	Name   string `json:"name"`
	Status string `gorm:"default:'Pendiente'" json:"status"`
}

func (Guest) TableName() string {
	return "guests"
}
