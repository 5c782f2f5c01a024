package models

type Documento struct {
	ID                int    `gorm:"primaryKey;autoIncrement" json:"id"`
	NombreArchivo     string `gorm:"column:nombre_archivo" json:"nombre_archivo"`
	Tipo              string `json:"tipo"`
	URL               string `gorm:"column:url" json:"url"`
	CompartidoPlanner bool   `gorm:"column:compartido_planner;default:false" json:"compartido_planner"`
	DuenoID           string `gorm:"column:dueno_id;index" json:"dueno_id"`
	EventID           string `gorm:"column:event_id" json:"event_id"`
}

func (Documento) TableName() string {
	return "documentos"
}
