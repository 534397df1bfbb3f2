package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisResult is the complete output of one pipeline pass over one image.
// All fields are value objects scoped to the analysis; nothing is retained
// across requests.
type AnalysisResult struct {
	ID              uuid.UUID         `json:"id"`
	Record          *EquipmentRecord  `json:"equipment_data"`
	HealthScore     int               `json:"health_score"`
	DetectedDamages []string          `json:"detected_damages"`
	Report          *HealthReport     `json:"health_report"`
	Compliance      *ComplianceResult `json:"compliance_check"`
	Age             *AgeEstimate      `json:"age_estimate"`
	Plan            *MaintenancePlan  `json:"maintenance_plan"`
	Trend           []TrendPoint      `json:"health_trend,omitempty"`
	Image           *ImageMetadata    `json:"image,omitempty"`
	Provider        string            `json:"provider"`
	AnalyzedAt      time.Time         `json:"analysis_timestamp"`
}
