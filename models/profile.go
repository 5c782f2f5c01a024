package models

// WeddingProfile holds the bride's planning profile. One live row per
// user; every save replaces the previous version via an atomic upsert.
type WeddingProfile struct {
	UserID             string  `gorm:"column:user_id;primaryKey" json:"user_id"`
	WeddingDate        string  `gorm:"column:wedding_date" json:"wedding_date"`
	BudgetLimit        float64 `gorm:"column:budget_limit" json:"budget_limit"`
	EstilosPreferidos  string  `gorm:"column:estilos_preferidos" json:"estilos_preferidos"`
	InvitadosEstimados int     `gorm:"column:invitados_estimados" json:"invitados_estimados"`
	PartnerName        string  `gorm:"column:partner_name" json:"partner_name"`
	Avatar             string  `json:"avatar"` // base64, optional
}

func (WeddingProfile) TableName() string {
	return "wedding_profiles"
}
