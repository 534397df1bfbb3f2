package models

import "strings"

// EquipmentCategory is one of the fixed equipment classification labels.
type EquipmentCategory string

const (
	CategoryUPSInverter   EquipmentCategory = "UPS / Inverter"
	CategoryTransformer   EquipmentCategory = "Transformer"
	CategoryStabilizer    EquipmentCategory = "Stabilizer"
	CategoryIndustrialPCB EquipmentCategory = "Industrial PCB"
	CategoryMeterGauge    EquipmentCategory = "Meter / Gauge"
	CategoryBreakerPanel  EquipmentCategory = "Breaker Panel"
	CategoryBatteryPacks  EquipmentCategory = "Battery Packs"
	CategoryOther         EquipmentCategory = "Other Industrial Equipment"
)

// Categories returns the closed classification vocabulary, in prompt order.
func Categories() []EquipmentCategory {
	return []EquipmentCategory{
		CategoryUPSInverter,
		CategoryTransformer,
		CategoryStabilizer,
		CategoryIndustrialPCB,
		CategoryMeterGauge,
		CategoryBreakerPanel,
		CategoryBatteryPacks,
		CategoryOther,
	}
}

// ParseCategory coerces an arbitrary classifier label to a vocabulary entry.
// Anything outside the closed set maps to CategoryOther. Matching ignores
// case and surrounding whitespace; every analysis carries exactly one category.
func ParseCategory(label string) EquipmentCategory {
	trimmed := strings.TrimSpace(label)
	for _, c := range Categories() {
		if strings.EqualFold(trimmed, string(c)) {
			return c
		}
	}
	return CategoryOther
}

func (c EquipmentCategory) String() string { return string(c) }
