// Package models contains shared data models used across the EquipScan codebase.
package models

// Confidence tiers attached to an EquipmentRecord.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Specifications holds the nameplate electrical specs extracted from OCR text.
// Each field is optional; empty means not found.
type Specifications struct {
	Voltage          string `json:"voltage,omitempty"`
	Current          string `json:"current,omitempty"`
	Frequency        string `json:"frequency,omitempty"`
	TemperatureRange string `json:"temperature_range,omitempty"`
	PowerRating      string `json:"power_rating,omitempty"`
}

// EquipmentRecord is the structured result of parsing one piece of equipment.
// It is created once per analysis by the field parser and consumed read-only
// by the scoring engine and report generator. The pipeline always overwrites
// DetectedDamages with the canonical list from the damage detector; the parser
// is never allowed to invent damages on its own.
type EquipmentRecord struct {
	EquipmentType     EquipmentCategory `json:"equipment_type"`
	Manufacturer      string            `json:"manufacturer"`
	ModelNumber       string            `json:"model_number"`
	SerialNumber      string            `json:"serial_number"`
	Specifications    Specifications    `json:"specifications"`
	Condition         string            `json:"condition"`
	OperationalStatus string            `json:"operational_status"`
	DetectedDamages   []string          `json:"detected_damages"`
	ExtractedText     string            `json:"extracted_text"`
	Confidence        string            `json:"confidence"`
	EstimatedAge      string            `json:"estimated_age,omitempty"`
}
