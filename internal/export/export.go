// Package export renders analysis results for download, as indented JSON or
// as a plain-text health report.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mvasanth/equipscan/pkg/models"
)

// JSONDocument renders the full result as indented JSON.
func JSONDocument(result *models.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// TextReport renders a human-readable health report. Empty record fields are
// shown as Unknown; spec fields holding the literal placeholder "string" are
// skipped, since models sometimes echo the response template back.
func TextReport(result *models.AnalysisResult) string {
	record := result.Record

	var b strings.Builder
	b.WriteString("INDUSTRIAL EQUIPMENT HEALTH ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString("EQUIPMENT INFORMATION:\n")
	fmt.Fprintf(&b, "- Type: %s\n", orUnknown(string(record.EquipmentType)))
	fmt.Fprintf(&b, "- Manufacturer: %s\n", orUnknown(record.Manufacturer))
	fmt.Fprintf(&b, "- Model: %s\n", orUnknown(record.ModelNumber))
	fmt.Fprintf(&b, "- Serial Number: %s\n", orUnknown(record.SerialNumber))

	b.WriteString("\nHEALTH ASSESSMENT:\n")
	fmt.Fprintf(&b, "- Overall Health Score: %d%%\n", result.HealthScore)
	fmt.Fprintf(&b, "- Condition: %s\n", orUnknown(record.Condition))
	damages := "None"
	if len(result.DetectedDamages) > 0 {
		damages = strings.Join(result.DetectedDamages, ", ")
	}
	fmt.Fprintf(&b, "- Damages Detected: %s\n", damages)

	b.WriteString("\nTECHNICAL SPECIFICATIONS:\n")
	writeSpec(&b, "Voltage", record.Specifications.Voltage)
	writeSpec(&b, "Current", record.Specifications.Current)
	writeSpec(&b, "Frequency", record.Specifications.Frequency)
	writeSpec(&b, "Temperature Range", record.Specifications.TemperatureRange)
	writeSpec(&b, "Power Rating", record.Specifications.PowerRating)

	b.WriteString("\nRECOMMENDATIONS:\n")
	switch {
	case result.HealthScore < 40:
		b.WriteString("- CRITICAL: Immediate professional inspection required\n")
		b.WriteString("- Consider equipment replacement if cost of repair > 50% of new equipment\n")
	case result.HealthScore < 60:
		b.WriteString("- URGENT: Schedule repair within 1 week\n")
		b.WriteString("- Address all detected damages before further use\n")
	case result.HealthScore < 80:
		b.WriteString("- ATTENTION: Schedule maintenance within 30 days\n")
		b.WriteString("- Monitor condition during next usage cycle\n")
	default:
		b.WriteString("- GOOD: Continue routine maintenance schedule\n")
		b.WriteString("- Equipment in good operational condition\n")
	}

	generatedAt := result.AnalyzedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}
	fmt.Fprintf(&b, "\nReport Generated: %s", generatedAt.Format("2006-01-02 15:04:05"))

	return b.String()
}

func writeSpec(b *strings.Builder, label, value string) {
	if value == "" || value == "string" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
