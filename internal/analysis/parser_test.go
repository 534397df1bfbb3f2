package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvasanth/equipscan/pkg/models"
)

func TestBasicParse_Deterministic(t *testing.T) {
	text := "MODEL: XYZ-100\nSN: 98765\n220V"

	record := BasicParse(text)
	require.NotNil(t, record)
	assert.Equal(t, "XYZ-100", record.ModelNumber)
	assert.Equal(t, "98765", record.SerialNumber)
	assert.Equal(t, "220V", record.Specifications.Voltage)
	assert.Equal(t, text, record.ExtractedText)

	// Same input, same output, every time.
	again := BasicParse(text)
	assert.Equal(t, record, again)
}

func TestBasicParse_Manufacturer(t *testing.T) {
	record := BasicParse("SIEMENS SITOP PSU\nMODEL: 6EP1334")
	assert.Equal(t, "Siemens", record.Manufacturer)
	assert.Equal(t, "6EP1334", record.ModelNumber)
}

func TestBasicParse_ManufacturerFirstMatchWins(t *testing.T) {
	record := BasicParse("ABB drive unit\nSIEMENS compatible")
	assert.Equal(t, "Abb", record.Manufacturer)
}

func TestBasicParse_ModelPatternOrder(t *testing.T) {
	// MODEL label, bare #, and MDL are tried in that order per line.
	assert.Equal(t, "A-1", BasicParse("MODEL A-1").ModelNumber)
	assert.Equal(t, "B2", BasicParse("#B2").ModelNumber)
	assert.Equal(t, "C3", BasicParse("MDL C3").ModelNumber)

	// First match across all lines wins; a later line never overwrites.
	record := BasicParse("MODEL: FIRST\nMODEL: SECOND")
	assert.Equal(t, "FIRST", record.ModelNumber)
}

func TestBasicParse_SerialVariants(t *testing.T) {
	assert.Equal(t, "ABC123", BasicParse("SERIAL: ABC123").SerialNumber)
	assert.Equal(t, "123456", BasicParse("SN:123456").SerialNumber)
	assert.Equal(t, "XYZ789", BasicParse("S/N: XYZ789").SerialNumber)
}

func TestBasicParse_VoltageVariants(t *testing.T) {
	assert.Equal(t, "24V", BasicParse("24 VDC supply").Specifications.Voltage)
	assert.Equal(t, "230V", BasicParse("rated 230 VAC").Specifications.Voltage)
	assert.Equal(t, "12.5V", BasicParse("output 12.5 VOLTS").Specifications.Voltage)
}

func TestBasicParse_ConditionBucketPriority(t *testing.T) {
	// "new" bucket outranks the damage bucket even when both match.
	record := BasicParse("factory sealed unit, slight rust on bracket")
	assert.Equal(t, "Good - Appears new/unused", record.Condition)
	assert.Equal(t, "Fully functional - New equipment", record.OperationalStatus)
	assert.Equal(t, models.ConfidenceMedium, record.Confidence)
}

func TestBasicParse_DamageBucket(t *testing.T) {
	record := BasicParse("heavy corrosion on terminals")
	assert.Equal(t, "Poor - Visible damage/wear", record.Condition)
	assert.Equal(t, "Non-functional - Requires repair", record.OperationalStatus)
}

func TestBasicParse_SpecsBucket(t *testing.T) {
	record := BasicParse("rated voltage 220")
	assert.Equal(t, "Good - Specifications readable", record.Condition)
	assert.Equal(t, "Functional - Based on available specs", record.OperationalStatus)
}

func TestBasicParse_DefaultsWhenNothingMatches(t *testing.T) {
	record := BasicParse("illegible nameplate")
	assert.Equal(t, "Unknown - Unable to assess without AI", record.Condition)
	assert.Equal(t, "Unknown - Unable to assess without AI", record.OperationalStatus)
	assert.Equal(t, models.ConfidenceLow, record.Confidence)
	assert.Empty(t, record.Manufacturer)
	assert.Empty(t, record.ModelNumber)
	assert.Empty(t, record.DetectedDamages)
}

func TestExtractAdditionalSpecs(t *testing.T) {
	specs := ExtractAdditionalSpecs("INPUT 10 A  50 Hz\n-20 to 60 °C\n1500W continuous")
	assert.Equal(t, "10A", specs.Current)
	assert.Equal(t, "50Hz", specs.Frequency)
	assert.Equal(t, "-20°C to 60°C", specs.TemperatureRange)
	assert.Equal(t, "1500W", specs.PowerRating)
}

func TestExtractAdditionalSpecs_Independent(t *testing.T) {
	specs := ExtractAdditionalSpecs("2.5 KW rating")
	assert.Equal(t, "2.5KW", specs.PowerRating)
	assert.Empty(t, specs.Current)
	assert.Empty(t, specs.TemperatureRange)
}

func TestExtractAdditionalSpecs_Empty(t *testing.T) {
	assert.Equal(t, models.Specifications{}, ExtractAdditionalSpecs(""))
}
