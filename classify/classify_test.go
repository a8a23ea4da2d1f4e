package classify

import (
	"strings"
	"testing"
)

func TestMatches(t *testing.T) {
	keywords := []string{"GDPR", "compliance", "regulation"}
	found := Matches("our gdpr Compliance process", keywords)
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %v", found)
	}
	// Casing comes from the keyword list, order from the list too.
	if found[0] != "GDPR" || found[1] != "compliance" {
		t.Fatalf("unexpected match order/casing: %v", found)
	}
}

func TestCountMatches_Substring(t *testing.T) {
	// Substring containment, not word boundaries: "unusual" contains "unusual",
	// and "reissued" contains "issue".
	if n := CountMatches("reissued", []string{"issue"}); n != 1 {
		t.Fatalf("expected substring match, got %d", n)
	}
	if n := CountMatches("", []string{"x", "y"}); n != 0 {
		t.Fatalf("expected 0 matches on empty text, got %d", n)
	}
}

func TestNormalizeHint(t *testing.T) {
	tests := []struct {
		hint   string
		format Format
		ok     bool
	}{
		{"email", FormatEmail, true},
		{"eml", FormatEmail, true},
		{"structured-data", FormatStructured, true},
		{"json", FormatStructured, true},
		{"document-text", FormatDocument, true},
		{"pdf", FormatDocument, true},
		{"plain-text", FormatPlainText, true},
		{"txt", FormatPlainText, true},
		{"TXT", FormatPlainText, true},
		{" pdf ", FormatDocument, true},
		{"docx", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		f, ok := NormalizeHint(tt.hint)
		if f != tt.format || ok != tt.ok {
			t.Errorf("NormalizeHint(%q) = %q, %v; want %q, %v", tt.hint, f, ok, tt.format, tt.ok)
		}
	}
}

func TestClassifyFormat_PlainTextFixed(t *testing.T) {
	tests := []struct {
		hint     string
		detected string
	}{
		{"txt", "TXT"},
		{"plain-text", "PLAIN-TEXT"},
	}
	for _, tt := range tests {
		r := ClassifyFormat("anything at all", tt.hint)
		if r.Confidence != 0.95 {
			t.Errorf("hint %q: confidence = %v, want 0.95", tt.hint, r.Confidence)
		}
		if r.Detected != tt.detected {
			t.Errorf("hint %q: detected = %q, want %q", tt.hint, r.Detected, tt.detected)
		}
	}
}

func TestClassifyFormat_DetectedIsUppercasedHint(t *testing.T) {
	// The label reports the hint as declared, never a canonical alias:
	// "eml" must stay "EML", not become "EMAIL".
	tests := []struct {
		hint     string
		detected string
	}{
		{"eml", "EML"},
		{"json", "JSON"},
		{"pdf", "PDF"},
		{"txt", "TXT"},
		{"email", "EMAIL"},
		{"structured-data", "STRUCTURED-DATA"},
		{"document-text", "DOCUMENT-TEXT"},
		{"plain-text", "PLAIN-TEXT"},
	}
	for _, tt := range tests {
		if r := ClassifyFormat("From: a\nTo: b", tt.hint); r.Detected != tt.detected {
			t.Errorf("hint %q: detected = %q, want %q", tt.hint, r.Detected, tt.detected)
		}
	}
}

func TestClassifyFormat_IndicatorCounting(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		hint       string
		detected   string
		confidence float64
	}{
		{"email all markers", "From: a\nTo: b\nSubject: c", "eml", "EML", 0.9},
		{"email no markers", "hello", "email", "EMAIL", 0.6},
		{"structured full", `{"timestamp": "now"}`, "json", "JSON", 0.95},
		{"document invoice", "INVOICE\nDate: today\nAmount: $5", "pdf", "PDF", 0.95},
		{"unknown hint", "From: a", "docx", "DOCX", 0.6},
	}
	for _, tt := range tests {
		r := ClassifyFormat(tt.content, tt.hint)
		if r.Detected != tt.detected {
			t.Errorf("%s: detected = %q, want %q", tt.name, r.Detected, tt.detected)
		}
		if diff := r.Confidence - tt.confidence; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: confidence = %v, want %v", tt.name, r.Confidence, tt.confidence)
		}
	}
}

func TestClassifyFormat_ConfidenceBounds(t *testing.T) {
	contents := []string{"", "From: To: Subject: INVOICE Date: Amount: $ { } \": timestamp", strings.Repeat("x", 1000)}
	for _, hint := range []string{"eml", "json", "pdf", "bogus"} {
		for _, content := range contents {
			r := ClassifyFormat(content, hint)
			if r.Confidence < 0.6 || r.Confidence > 0.95 {
				t.Fatalf("hint %q: confidence %v out of [0.6, 0.95]", hint, r.Confidence)
			}
		}
	}
}

func TestClassifyIntent_Winner(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		label      IntentLabel
		confidence float64
	}{
		{"complaint", "this is unacceptable, I am frustrated with this problem", IntentComplaint, 0.65},
		{"rfq", "please send a quote with your pricing", IntentRFQ, 0.5},
		{"regulation", "GDPR and HIPAA compliance regulation", IntentRegulation, 0.8},
		{"fraud", "suspicious unusual high risk activity", IntentFraudRisk, 0.65},
		{"no hits floors at 0.3", "zzzz", IntentComplaint, 0.3},
	}
	for _, tt := range tests {
		r := ClassifyIntent(tt.content, nil)
		if r.Type != tt.label {
			t.Errorf("%s: intent = %q, want %q", tt.name, r.Type, tt.label)
		}
		if diff := r.Confidence - tt.confidence; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: confidence = %v, want %v", tt.name, r.Confidence, tt.confidence)
		}
	}
}

func TestClassifyIntent_TieBreakDeclarationOrder(t *testing.T) {
	// "invoice" scores Invoice once; "regulation" scores Regulation once.
	// Equal scores: the earlier declared label must win.
	r := ClassifyIntent("invoice regulation", nil)
	if r.Type != IntentInvoice {
		t.Fatalf("tie should go to first-declared label, got %q", r.Type)
	}
}

func TestClassifyIntent_Bounds(t *testing.T) {
	contents := []string{"", "complaint issue problem dissatisfied frustrated unacceptable legal quote invoice gdpr fraud", "plain words"}
	for _, content := range contents {
		r := ClassifyIntent(content, nil)
		if r.Confidence < 0.3 || r.Confidence > 0.95 {
			t.Fatalf("confidence %v out of [0.3, 0.95] for %q", r.Confidence, content)
		}
		if r.Type == "" {
			t.Fatalf("empty intent label for %q", content)
		}
	}
}

func TestClassifyIntent_CustomRules(t *testing.T) {
	rules := []IntentRule{
		{Label: "Onboarding", Keywords: []string{"welcome"}},
		{Label: "Offboarding", Keywords: []string{"goodbye"}},
	}
	r := ClassifyIntent("goodbye and thanks", rules)
	if r.Type != "Offboarding" {
		t.Fatalf("custom rules ignored, got %q", r.Type)
	}
}
