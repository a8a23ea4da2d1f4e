package classify

import "strings"

// formatIndicators are the structural markers counted when verifying a
// declared format against the content. Plain text has no markers: the
// content is presumed to need no structural verification.
var formatIndicators = map[Format][]string{
	FormatEmail:      {"From:", "To:", "Subject:"},
	FormatStructured: {"{", "}", "\":", "timestamp"},
	FormatDocument:   {"INVOICE", "Date:", "Amount:", "$"},
}

// NormalizeHint maps a caller-declared format hint (canonical name or
// source file extension) to its canonical Format. The second return is
// false for unrecognized hints.
func NormalizeHint(hint string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "email", "eml":
		return FormatEmail, true
	case "structured-data", "json":
		return FormatStructured, true
	case "document-text", "pdf":
		return FormatDocument, true
	case "plain-text", "txt":
		return FormatPlainText, true
	default:
		return "", false
	}
}

// ClassifyFormat verifies the declared format hint against the content and
// returns the detected format with a confidence score. The reported label
// is always the uppercased hint as the caller declared it ("eml" reports
// "EML", "email" reports "EMAIL").
//
// Plain text is reported at a fixed 0.95. Other formats count their
// indicator matches: confidence = min(0.95, 0.6 + 0.1*matches), so the
// result always lies in [0.6, 0.95]. Unrecognized hints have no indicator
// list and bottom out at 0.6; extractor selection falls back to plain text
// separately.
func ClassifyFormat(content, hint string) FormatResult {
	detected := strings.ToUpper(strings.TrimSpace(hint))

	format, ok := NormalizeHint(hint)
	if ok && format == FormatPlainText {
		return FormatResult{Detected: detected, Confidence: 0.95}
	}

	confidence := 0.6 + 0.1*float64(CountMatches(content, formatIndicators[format]))
	if confidence > 0.95 {
		confidence = 0.95
	}
	return FormatResult{Detected: detected, Confidence: confidence}
}
