// Package classify assigns a format and a business intent to incoming
// documents using keyword heuristics.
//
// Both classifiers are pure and total: every input produces exactly one
// result, with deterministic tie-breaks, and no error paths.
package classify

// Format identifies a canonical document format.
type Format string

const (
	FormatEmail      Format = "email"
	FormatStructured Format = "structured-data"
	FormatDocument   Format = "document-text"
	FormatPlainText  Format = "plain-text"
)

// IntentLabel is the inferred business purpose of a document.
type IntentLabel string

const (
	IntentComplaint  IntentLabel = "Complaint"
	IntentRFQ        IntentLabel = "RFQ"
	IntentInvoice    IntentLabel = "Invoice"
	IntentRegulation IntentLabel = "Regulation"
	IntentFraudRisk  IntentLabel = "Fraud Risk"
)

// FormatResult is the format half of a classification.
type FormatResult struct {
	Detected   string  `json:"detected"`
	Confidence float64 `json:"confidence"`
}

// IntentResult is the intent half of a classification.
type IntentResult struct {
	Type       IntentLabel `json:"type"`
	Confidence float64     `json:"confidence"`
}

// Classification combines format detection and intent classification.
// Immutable once produced.
type Classification struct {
	Format FormatResult `json:"format"`
	Intent IntentResult `json:"intent"`
}

// SupportedHints returns all accepted format hints, canonical names first.
func SupportedHints() []string {
	return []string{
		string(FormatEmail), string(FormatStructured),
		string(FormatDocument), string(FormatPlainText),
		"eml", "json", "pdf", "txt",
	}
}
