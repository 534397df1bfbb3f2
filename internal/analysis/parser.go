package analysis

import (
	"regexp"
	"strings"

	"github.com/mvasanth/equipscan/internal/vocab"
	"github.com/mvasanth/equipscan/pkg/models"
)

// Fallback-parser field identifiers. Keeping the rules as an ordered
// (field, pattern) list makes the matching order — a real contract, see the
// parser tests — visible instead of buried in branching.
const (
	fieldModel   = "model_number"
	fieldSerial  = "serial_number"
	fieldVoltage = "voltage"
)

type lineRule struct {
	field   string
	pattern *regexp.Regexp
	// format renders the capture group into the stored value.
	format func(match string) string
}

var identity = func(m string) string { return m }

// lineRules is evaluated per line in this exact order. For each field the
// first match across all lines wins; later matches never overwrite.
var lineRules = []lineRule{
	{fieldModel, regexp.MustCompile(`(?i)MODEL\s*[#:]*\s*([A-Z0-9\-]+)`), identity},
	{fieldModel, regexp.MustCompile(`(?i)#([A-Z0-9\-]+)`), identity},
	{fieldModel, regexp.MustCompile(`(?i)MDL\s*([A-Z0-9\-]+)`), identity},
	{fieldSerial, regexp.MustCompile(`(?i)SERIAL\s*[#:]*\s*([A-Z0-9\-]+)`), identity},
	{fieldSerial, regexp.MustCompile(`(?i)SN[#:]*\s*([A-Z0-9\-]+)`), identity},
	{fieldSerial, regexp.MustCompile(`(?i)S/N[#:]*\s*([A-Z0-9\-]+)`), identity},
	{fieldVoltage, regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*V(?:OLTS?)?`), func(m string) string { return m + "V" }},
	{fieldVoltage, regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*VAC`), func(m string) string { return m + "V" }},
	{fieldVoltage, regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*VDC`), func(m string) string { return m + "V" }},
}

// Whole-text specification patterns, each independent, first match wins.
var (
	reCurrent   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*A(?:MPS?)?`)
	reFrequency = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*H(?:Z)?`)
	reTempRange = regexp.MustCompile(`(?i)(-?\d+)\s*(?:to|[-~])\s*(-?\d+)\s*°?C`)
	rePower     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(W|KW|MW)(?:ATTS?)?`)
)

// BasicParse is the deterministic regex fallback used when the AI extraction
// path is unavailable or returns nothing decodable. It never fails: fields it
// cannot find stay empty and the condition defaults stand.
func BasicParse(rawText string) *models.EquipmentRecord {
	record := &models.EquipmentRecord{
		Condition:         "Unknown - Unable to assess without AI",
		OperationalStatus: "Unknown - Unable to assess without AI",
		DetectedDamages:   []string{},
		ExtractedText:     rawText,
		Confidence:        models.ConfidenceLow,
	}

	fields := map[string]string{}

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.ToUpper(strings.TrimSpace(line))
		if line == "" {
			continue
		}

		if record.Manufacturer == "" {
			for _, brand := range vocab.Manufacturers {
				if strings.Contains(line, brand) {
					record.Manufacturer = titleCase(brand)
					break
				}
			}
		}

		for _, rule := range lineRules {
			if fields[rule.field] != "" {
				continue
			}
			if m := rule.pattern.FindStringSubmatch(line); m != nil {
				fields[rule.field] = rule.format(m[1])
			}
		}
	}

	record.ModelNumber = fields[fieldModel]
	record.SerialNumber = fields[fieldSerial]
	record.Specifications.Voltage = fields[fieldVoltage]

	applyConditionRules(record, rawText)

	return record
}

// applyConditionRules assigns condition/operational status/confidence from
// whole-text keyword buckets, checked in fixed priority with no accumulation.
func applyConditionRules(record *models.EquipmentRecord, rawText string) {
	lower := strings.ToLower(rawText)
	for _, rule := range vocab.ConditionRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				record.Condition = rule.Condition
				record.OperationalStatus = rule.OperationalStatus
				record.Confidence = rule.Confidence
				return
			}
		}
	}
}

// ExtractAdditionalSpecs scans the full OCR text for current, frequency,
// temperature range and power rating. Each category is independent; the first
// match per category wins. Voltage is handled by the line rules above.
func ExtractAdditionalSpecs(rawText string) models.Specifications {
	var specs models.Specifications

	if m := reCurrent.FindStringSubmatch(rawText); m != nil {
		specs.Current = m[1] + "A"
	}
	if m := reFrequency.FindStringSubmatch(rawText); m != nil {
		specs.Frequency = m[1] + "Hz"
	}
	if m := reTempRange.FindStringSubmatch(rawText); m != nil {
		specs.TemperatureRange = m[1] + "°C to " + m[2] + "°C"
	}
	if m := rePower.FindStringSubmatch(rawText); m != nil {
		specs.PowerRating = m[1] + strings.ToUpper(m[2])
	}

	return specs
}

// titleCase uppercases the first letter and lowercases the rest, matching how
// nameplate brands are displayed ("SIEMENS" -> "Siemens", "GE" -> "Ge").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
