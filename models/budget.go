package models

// Budget statuses. Estado is always recomputed from paid vs estimated on
// the last payment, never set directly by callers.
const (
	BudgetPendiente = "Pendiente"
	BudgetPagado    = "Pagado"
)

type BudgetLine struct {
	ID            int     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string  `gorm:"column:user_id;index" json:"user_id"`
	Category      string  `json:"category"`
	ItemName      string  `gorm:"column:item_name" json:"item_name"`
	EstimatedCost float64 `gorm:"column:estimated_cost" json:"estimated_cost"`
	FinalCost     float64 `gorm:"column:final_cost;default:0" json:"final_cost"`
	PaidAmount    float64 `gorm:"column:paid_amount;default:0" json:"paid_amount"`
	Status        string  `gorm:"default:'Pendiente'" json:"status"`
}

func (BudgetLine) TableName() string {
	return "budget"
}
