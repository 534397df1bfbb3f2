// Package prompt builds the model prompts shared by all AI providers, so the
// classification vocabulary and response-format contracts stay identical no
// matter which backend serves the call.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mvasanth/equipscan/internal/vocab"
	"github.com/mvasanth/equipscan/pkg/models"
)

// Classification asks for exactly one category name from the closed set.
func Classification() string {
	var b strings.Builder
	b.WriteString("Classify this industrial equipment image into exactly ONE of these categories:\n")
	for _, c := range models.Categories() {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\nLook at the shape, components, and visible features. Return ONLY the category name, nothing else.")
	return b.String()
}

// DamageDetection asks for a JSON array of damage labels from the vocabulary.
func DamageDetection(category models.EquipmentCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this %s equipment image for physical damage and faults.\n\n", category)
	b.WriteString("Look for these specific damage types:\n")
	for _, d := range vocab.DamageTypes {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	b.WriteString("\nReturn a JSON array of detected damage types. If no damage found, return empty array [].\n")
	b.WriteString(`Format: ["damage_type1", "damage_type2", ...]` + "\n\n")
	b.WriteString("Be specific about what you see - look for visual evidence like discoloration, burns, corrosion, broken parts, loose connections, water damage, overheating signs, etc.")
	return b.String()
}

// FieldExtraction asks for one JSON object matching the EquipmentRecord shape.
func FieldExtraction(req models.ExtractionRequest) string {
	damages := "None detected"
	if len(req.DetectedDamages) > 0 {
		damages = strings.Join(req.DetectedDamages, ", ")
	}

	var b strings.Builder
	b.WriteString("Analyze this OCR text from an image of industrial electronic equipment and extract structured information.\n\n")
	fmt.Fprintf(&b, "Equipment Type: %s\n", req.Category)
	fmt.Fprintf(&b, "Detected Damages: %s\n\n", damages)
	fmt.Fprintf(&b, "OCR Text:\n%s\n\n", req.OCRText)
	b.WriteString("Provide a JSON response with the following structure:\n")
	fmt.Fprintf(&b, `{
    "equipment_type": "%s",
    "manufacturer": "string",
    "model_number": "string",
    "serial_number": "string",
    "specifications": {
        "voltage": "string",
        "current": "string",
        "frequency": "string",
        "temperature_range": "string",
        "power_rating": "string"
    },
    "condition": "string (good/fair/poor based on damages and text)",
    "operational_status": "string (functional/limited/non-functional based on damages)",
    "confidence": "high/medium/low"
}`, req.Category)
	b.WriteString("\n\nConsider the detected damages when assessing condition and operational status.\n")
	b.WriteString("Fill in as many fields as possible from the text. Leave fields empty if information is not available.")
	return b.String()
}
