package pipeline

// SampleDocument is a canned document for demos and smoke checks.
type SampleDocument struct {
	Key        string `json:"key"`
	FileName   string `json:"file_name"`
	FormatHint string `json:"format_hint"`
	Content    string `json:"content"`
}

// sampleDocuments are listed in display order: emails, then structured
// records, then document text, then plain text.
var sampleDocuments = []SampleDocument{
	{
		Key:        "email-complaint",
		FileName:   "complaint_email.eml",
		FormatHint: "eml",
		Content: "From: angry.customer@email.com\nTo: support@company.com\nSubject: URGENT - Unacceptable Service\n\n" +
			"I am extremely frustrated with the poor service I received. This is completely unacceptable and I demand immediate action. " +
			"If this is not resolved by tomorrow, I will be forced to take this matter to legal counsel.\n\n" +
			"I have been a loyal customer for 5 years and this treatment is outrageous.",
	},
	{
		Key:        "email-rfq",
		FileName:   "rfq_email.eml",
		FormatHint: "eml",
		Content: "From: procurement@bigcorp.com\nTo: sales@vendor.com\nSubject: Request for Quote - Office Supplies\n\n" +
			"Dear Sales Team,\n\nWe would like to request a quote for the following office supplies:\n" +
			"- 500 units of premium paper\n- 50 printer cartridges\n- 100 folders\n\n" +
			"Please provide your best pricing and delivery timeline.",
	},
	{
		Key:        "email-routine",
		FileName:   "newsletter_email.eml",
		FormatHint: "eml",
		Content: "From: info@newsletter.com\nTo: subscriber@email.com\nSubject: Weekly Newsletter\n\n" +
			"Thank you for subscribing to our weekly newsletter. Here are this week's highlights and updates from our team.",
	},
	{
		Key:        "json-high-value",
		FileName:   "high_value_transaction.json",
		FormatHint: "json",
		Content: `{"id": "TXN_12345", "timestamp": "2025-01-15T10:30:00Z", "type": "transaction", "amount": 25000, ` +
			`"user_id": "USR_789", "description": "Wire transfer", "risk_score": 0.8}`,
	},
	{
		Key:        "json-normal",
		FileName:   "normal_transaction.json",
		FormatHint: "json",
		Content: `{"id": "TXN_67890", "timestamp": "2025-01-15T10:30:00Z", "type": "purchase", "amount": 49.99, ` +
			`"user_id": "USR_123", "description": "Online purchase"}`,
	},
	{
		Key:        "json-suspicious",
		FileName:   "suspicious_transaction.json",
		FormatHint: "json",
		Content: `{"id": "TXN_99999", "timestamp": "2025-01-15T10:30:00Z", "type": "withdrawal", "amount": 9999, ` +
			`"user_id": "USR_UNKNOWN", "description": "ATM withdrawal"}`,
	},
	{
		Key:        "pdf-invoice",
		FileName:   "invoice_document.pdf",
		FormatHint: "pdf",
		Content: "INVOICE #INV-2025-001\nDate: January 15, 2025\nBill To: ABC Corporation\nAmount: $15,750.00\nTerms: Net 30\n\n" +
			"Description: Professional consulting services\nQuantity: 1\nRate: $15,750.00",
	},
	{
		Key:        "pdf-compliance",
		FileName:   "privacy_policy.pdf",
		FormatHint: "pdf",
		Content: "PRIVACY POLICY DOCUMENT\n\nThis document outlines our GDPR compliance procedures and HIPAA requirements for data protection. " +
			"All personal data must be processed according to FDA regulations and SOX compliance standards.",
	},
	{
		Key:        "pdf-contract",
		FileName:   "service_agreement.pdf",
		FormatHint: "pdf",
		Content: "SERVICE AGREEMENT\n\nThis agreement governs the provision of services between the parties. " +
			"All terms are subject to applicable regulations and compliance requirements.",
	},
	{
		Key:        "text-regulation",
		FileName:   "regulation_text.txt",
		FormatHint: "txt",
		Content: "This document contains important regulatory information regarding FDA approval processes and " +
			"GDPR compliance requirements for data handling.",
	},
	{
		Key:        "text-complaint",
		FileName:   "complaint_note.txt",
		FormatHint: "txt",
		Content: "I am writing to express my dissatisfaction with the recent service failure. " +
			"This issue has caused significant inconvenience and I expect immediate resolution.",
	},
	{
		Key:        "text-general",
		FileName:   "general_note.txt",
		FormatHint: "txt",
		Content: "This is a general business document containing standard information about our company policies and procedures.",
	},
}

// Samples returns the canned sample documents in display order.
func Samples() []SampleDocument {
	out := make([]SampleDocument, len(sampleDocuments))
	copy(out, sampleDocuments)
	return out
}

// Sample looks up a canned document by key.
func Sample(key string) (SampleDocument, bool) {
	for _, s := range sampleDocuments {
		if s.Key == key {
			return s, true
		}
	}
	return SampleDocument{}, false
}
