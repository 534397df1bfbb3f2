package analysis

import (
	"strings"

	"github.com/mvasanth/equipscan/internal/vocab"
	"github.com/mvasanth/equipscan/pkg/models"
)

// AnalyzeCompliance scans the OCR text for certification markings. Pure
// keyword containment over the uppercased text; there is no negation
// handling, so "NOT CE MARKED" still registers CE. Documented limitation.
func AnalyzeCompliance(ocrText string) *models.ComplianceResult {
	upper := strings.ToUpper(ocrText)

	result := &models.ComplianceResult{
		CertificationsFound: []string{},
	}

	for _, cert := range vocab.Certifications {
		if !strings.Contains(upper, cert.Token) {
			continue
		}
		result.CertificationsFound = append(result.CertificationsFound, cert.Label)
		switch cert.Label {
		case "ISO":
			result.ISOCertified = true
		case "CE":
			result.CEMarked = true
		case "RoHS":
			result.RoHSCompliant = true
		case "BIS":
			result.BISCertified = true
		case "UL":
			result.ULListed = true
		}
	}

	return result
}
