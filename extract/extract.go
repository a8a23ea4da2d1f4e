package extract

import "github.com/hazyhaar/intake/classify"

// Run dispatches content to the extractor for the given format.
// Unrecognized formats fall back to the plain-text extractor rather than
// failing.
func Run(format classify.Format, content string) Result {
	switch format {
	case classify.FormatEmail:
		return Result{Kind: KindEmail, Email: Email(content)}
	case classify.FormatStructured:
		return Result{Kind: KindStructured, Structured: Structured(content)}
	case classify.FormatDocument:
		return Result{Kind: KindDocument, Document: Document(content)}
	default:
		return Result{Kind: KindText, Text: Text(content)}
	}
}
