package models

// HealthReport is the assessment derived from a health score. Status, risk
// level and recommended action are a pure step function of the score.
type HealthReport struct {
	Score               int      `json:"overall_health_score"`
	Status              string   `json:"status"`
	RiskLevel           string   `json:"risk_level"`
	RecommendedAction   string   `json:"recommended_action"`
	SpecificIssues      []string `json:"specific_issues"`
	Recommendations     []string `json:"recommendations"`
	NextMaintenanceDate string   `json:"next_maintenance_date"`
	LifespanRemaining   string   `json:"estimated_lifespan_remaining"`
}

// ComplianceResult reports certification markings found in the OCR text.
// The scan is pure keyword containment with no negation handling: text
// reading "NOT CE MARKED" still registers CE. Known limitation.
type ComplianceResult struct {
	ISOCertified        bool     `json:"iso_certified"`
	CEMarked            bool     `json:"ce_marked"`
	RoHSCompliant       bool     `json:"rohs_compliant"`
	BISCertified        bool     `json:"bis_certified"`
	ULListed            bool     `json:"ul_listed"`
	CertificationsFound []string `json:"certifications_found"`
}

// AgeEstimate is a keyword-based guess at equipment age.
type AgeEstimate struct {
	EstimatedAge string   `json:"estimated_age"`
	Confidence   string   `json:"confidence"`
	Indicators   []string `json:"indicators"`
}

// MaintenancePlan bundles service actions and risk posture for one analysis.
type MaintenancePlan struct {
	ServiceActions      []string `json:"service_actions"`
	RiskAssessment      string   `json:"risk_assessment"`
	MaintenanceSchedule string   `json:"maintenance_schedule"`
	CostEstimate        string   `json:"cost_estimate"`
}

// TrendPoint is one point on the simulated health-trend chart. Trend data is
// synthetic demonstration output and intentionally nondeterministic.
type TrendPoint struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// ImageMetadata describes the uploaded image.
type ImageMetadata struct {
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int    `json:"size_bytes"`
}
