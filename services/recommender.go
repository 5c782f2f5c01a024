// services/recommender.go
package services

import (
	"sort"
	"strings"

	"bodaplanner-backend/models"
)

// No single vendor should consume more than 40% of the total budget.
const maxItemBudgetShare = 0.40

// ScoreProveedor computes the fit of one vendor against a bride profile.
// Scores are 0, 50 or 100: 50 points for budget fit, 50 for style fit.
func ScoreProveedor(perfil models.WeddingProfile, p models.Proveedor) int {
	score := 0

	maxItemBudget := perfil.BudgetLimit * maxItemBudgetShare
	if float64(p.Costo) <= maxItemBudget {
		score += 50
	}

	if perfil.EstilosPreferidos != "" && p.Estilo != "" {
		estilosNovia := strings.ToLower(perfil.EstilosPreferidos)
		estiloProv := strings.ToLower(p.Estilo)
		for _, e := range strings.Split(estilosNovia, ",") {
			if strings.Contains(estiloProv, strings.TrimSpace(e)) {
				score += 50
				break
			}
		}
	}

	return score
}

// Recomendar ranks the full vendor catalog for a bride, highest score
// first. The sort is stable, so ties keep their catalog order.
func Recomendar(perfil models.WeddingProfile, proveedores []models.Proveedor) []models.ProveedorPuntuado {
	recomendados := make([]models.ProveedorPuntuado, 0, len(proveedores))
	for _, p := range proveedores {
		recomendados = append(recomendados, models.ProveedorPuntuado{
			ProveedorView: p.View(),
			Score:         ScoreProveedor(perfil, p),
		})
	}

	sort.SliceStable(recomendados, func(i, j int) bool {
		return recomendados[i].Score > recomendados[j].Score
	})
	return recomendados
}
