package models

type ChecklistItem struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string `gorm:"column:user_id;index" json:"user_id"`
	TaskText    string `gorm:"column:task_text" json:"task_text"`
	IsCompleted bool   `gorm:"column:is_completed;default:false" json:"is_completed"`
	Priority    string `gorm:"default:'Normal'" json:"priority"`
}

func (ChecklistItem) TableName() string {
	return "checklist"
}
