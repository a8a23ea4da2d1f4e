// Package extract parses classified documents into typed results.
//
// One extractor per format: email headers and tone, structured key/value
// risk scoring, document-text compliance scanning, and plain-text keyword
// analysis. Every extractor is total: malformed input degrades the result
// instead of raising an error past the package boundary.
package extract

// Kind discriminates the Result union. Exactly one variant field is
// non-nil, and it matches the Kind.
type Kind string

const (
	KindEmail      Kind = "email"
	KindStructured Kind = "structured"
	KindDocument   Kind = "document"
	KindText       Kind = "text"
)

// Urgency grades an email's handling priority.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyNormal   Urgency = "normal"
)

// Tone categorizes an email's register. Detection order is fixed:
// threatening > escalating > polite > angry, first match wins.
type Tone string

const (
	ToneNeutral     Tone = "neutral"
	ToneThreatening Tone = "threatening"
	ToneEscalating  Tone = "escalating"
	TonePolite      Tone = "polite"
	ToneAngry       Tone = "angry"
)

// RiskLevel summarizes the accumulated risk factors of a structured
// document: high for two or more factors, medium for one, low for none.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Sentiment categorizes plain text. Detection order is fixed:
// positive > negative > neutral, first match wins.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// EmailResult is the extraction of an email document.
type EmailResult struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Subject   string  `json:"subject"`
	Urgency   Urgency `json:"urgency"`
	Tone      Tone    `json:"tone"`
}

// StructuredResult is the extraction of a structured key/value document.
// On parse failure SchemaValid is false, Error carries the parser message,
// and the risk assessment degrades to low with no factors.
type StructuredResult struct {
	SchemaValid bool      `json:"schema_valid"`
	Error       string    `json:"error,omitempty"`
	Fields      []string  `json:"fields"`
	RiskLevel   RiskLevel `json:"risk_level"`
	RiskFactors []string  `json:"risk_factors"`
	Amount      *float64  `json:"amount,omitempty"`
}

// DocumentResult is the extraction of a PDF-like text document.
type DocumentResult struct {
	Excerpt            string   `json:"excerpt"`
	ComplianceKeywords []string `json:"compliance_keywords"`
	InvoiceDetected    bool     `json:"invoice_detected"`
	Amount             string   `json:"amount"`
}

// TextResult is the extraction of a plain-text document.
type TextResult struct {
	WordCount int       `json:"word_count"`
	KeyWords  []string  `json:"key_words"`
	Sentiment Sentiment `json:"sentiment"`
	Topics    []string  `json:"topics"`
}

// Result is the tagged union over the four extraction variants.
type Result struct {
	Kind       Kind              `json:"kind"`
	Email      *EmailResult      `json:"email,omitempty"`
	Structured *StructuredResult `json:"structured,omitempty"`
	Document   *DocumentResult   `json:"document,omitempty"`
	Text       *TextResult       `json:"text,omitempty"`
}

// Tone returns the email tone, or ToneNeutral and false for non-email
// variants.
func (r Result) Tone() (Tone, bool) {
	if r.Email == nil {
		return ToneNeutral, false
	}
	return r.Email.Tone, true
}

// RiskLevel returns the structured risk level, or RiskLow and false for
// non-structured variants.
func (r Result) RiskLevel() (RiskLevel, bool) {
	if r.Structured == nil {
		return RiskLow, false
	}
	return r.Structured.RiskLevel, true
}

// ComplianceKeywords returns the matched compliance keywords, nil for
// non-document variants.
func (r Result) ComplianceKeywords() []string {
	if r.Document == nil {
		return nil
	}
	return r.Document.ComplianceKeywords
}
