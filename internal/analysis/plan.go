package analysis

import (
	"github.com/mvasanth/equipscan/pkg/models"
)

// BuildMaintenancePlan derives concrete service actions and a cost band from
// the score and damage list. Unlike the recommendation list in the health
// report, damage checks here are exact membership: the plan reacts to the
// canonical vocabulary labels only.
func BuildMaintenancePlan(record *models.EquipmentRecord, score int, damages []string) *models.MaintenancePlan {
	plan := &models.MaintenancePlan{
		ServiceActions: []string{},
		RiskAssessment: "Low",
	}

	if containsLabel(damages, "burn marks") || containsLabel(damages, "overheating") {
		plan.ServiceActions = append(plan.ServiceActions,
			"Immediate electrical inspection required",
			"Replace damaged components")
		plan.RiskAssessment = "High"
	}

	switch {
	case score < 30:
		plan.MaintenanceSchedule = "Immediate attention required"
		plan.ServiceActions = append(plan.ServiceActions, "Complete system overhaul")
		plan.RiskAssessment = "Critical"
	case score < 60:
		plan.MaintenanceSchedule = "Schedule within 1 week"
		plan.ServiceActions = append(plan.ServiceActions, "Repair identified damages")
		plan.RiskAssessment = "High"
	case score < 80:
		plan.MaintenanceSchedule = "Schedule within 1 month"
		plan.ServiceActions = append(plan.ServiceActions, "Routine inspection and cleaning")
		plan.RiskAssessment = "Medium"
	default:
		plan.MaintenanceSchedule = "Schedule within 6 months"
		plan.ServiceActions = append(plan.ServiceActions, "Routine preventive maintenance")
	}

	plan.CostEstimate = costEstimate(score)

	return plan
}

// costEstimate maps the score to a repair/replacement cost band.
func costEstimate(score int) string {
	switch {
	case score < 40:
		return "Replacement recommended: $1,500 - $3,000"
	case score < 60:
		return "Major repairs: $500 - $1,500"
	case score < 80:
		return "Minor maintenance: $100 - $500"
	default:
		return "Routine maintenance: $50 - $150"
	}
}

func containsLabel(labels []string, target string) bool {
	for _, l := range labels {
		if l == target {
			return true
		}
	}
	return false
}
