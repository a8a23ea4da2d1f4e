package classify

// IntentRule binds an intent label to its keyword list. Rules are always
// evaluated in slice order: the declaration order is the tie-break, so a
// rule earlier in the slice wins over a later rule with an equal score.
type IntentRule struct {
	Label    IntentLabel `yaml:"label" json:"label"`
	Keywords []string    `yaml:"keywords" json:"keywords"`
}

// DefaultIntentRules returns the built-in intent ruleset. Deployments may
// replace it wholesale via configuration; partial overrides are not merged
// so that the declared tie-break order stays explicit.
func DefaultIntentRules() []IntentRule {
	return []IntentRule{
		{IntentComplaint, []string{"complaint", "issue", "problem", "dissatisfied", "frustrated", "unacceptable", "legal"}},
		{IntentRFQ, []string{"request for quote", "quotation", "pricing", "rfq", "quote"}},
		{IntentInvoice, []string{"invoice", "billing", "payment", "amount due", "bill to"}},
		{IntentRegulation, []string{"compliance", "regulation", "gdpr", "fda", "hipaa", "sox"}},
		{IntentFraudRisk, []string{"suspicious", "fraud", "unusual", "high risk", "unknown"}},
	}
}
