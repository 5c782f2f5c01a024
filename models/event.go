package models

// Evento is a calendar entry. The id is caller-supplied (the frontend
// reuses calendar ids) or synthesized from a timestamp; saves upsert on it.
type Evento struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	StartDate   string `gorm:"column:start_date" json:"start"`
	Color       string `json:"color"`
	BrideID     string `gorm:"column:bride_id;index" json:"brideId"`
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func (Evento) TableName() string {
	return "events"
}
