package extract

import (
	"regexp"

	"github.com/hazyhaar/intake/classify"
)

var (
	complianceKeywords = []string{"GDPR", "FDA", "HIPAA", "SOX", "compliance", "regulation"}
	invoiceKeywords    = []string{"invoice", "amount", "bill to", "terms", "payment"}

	// Dollar amounts like $15,750.00; first occurrence wins.
	amountPattern = regexp.MustCompile(`\$[\d,]+\.?\d*`)
)

const excerptLen = 100

// Document scans PDF-like text for compliance and invoice markers.
// Invoice detection requires strictly more than two invoice keywords; the
// excerpt is the leading content with an ellipsis marker.
func Document(content string) *DocumentResult {
	found := classify.Matches(content, complianceKeywords)
	if found == nil {
		found = []string{}
	}

	amount := "Not detected"
	if m := amountPattern.FindString(content); m != "" {
		amount = m
	}

	excerpt := content
	if runes := []rune(content); len(runes) > excerptLen {
		excerpt = string(runes[:excerptLen])
	}

	return &DocumentResult{
		Excerpt:            excerpt + "...",
		ComplianceKeywords: found,
		InvoiceDetected:    classify.CountMatches(content, invoiceKeywords) > 2,
		Amount:             amount,
	}
}
