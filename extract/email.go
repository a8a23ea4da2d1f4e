package extract

import (
	"strings"

	"github.com/hazyhaar/intake/classify"
)

var urgencyKeywords = []string{"urgent", "immediate", "asap", "emergency"}

// toneRules are checked in order; the first category with any keyword hit
// wins, regardless of how many keywords the other categories would match.
var toneRules = []struct {
	tone     Tone
	keywords []string
}{
	{ToneThreatening, []string{"legal", "lawsuit", "attorney", "court"}},
	{ToneEscalating, []string{"manager", "supervisor", "escalate"}},
	{TonePolite, []string{"please", "thank you", "appreciate"}},
	{ToneAngry, []string{"frustrated", "unacceptable", "outrageous"}},
}

// Email extracts headers, urgency, and tone from an email document.
// Header scanning takes the first line carrying each prefix; missing
// headers yield "Unknown" (sender/recipient) or "No Subject".
func Email(content string) *EmailResult {
	res := &EmailResult{
		Sender:    "Unknown",
		Recipient: "Unknown",
		Subject:   "No Subject",
		Urgency:   UrgencyNormal,
		Tone:      ToneNeutral,
	}

	var haveFrom, haveTo, haveSubject bool
	for _, line := range strings.Split(content, "\n") {
		switch {
		case !haveFrom && strings.HasPrefix(line, "From:"):
			res.Sender = strings.TrimSpace(strings.TrimPrefix(line, "From:"))
			haveFrom = true
		case !haveTo && strings.HasPrefix(line, "To:"):
			res.Recipient = strings.TrimSpace(strings.TrimPrefix(line, "To:"))
			haveTo = true
		case !haveSubject && strings.HasPrefix(line, "Subject:"):
			res.Subject = strings.TrimSpace(strings.TrimPrefix(line, "Subject:"))
			haveSubject = true
		}
	}

	if classify.CountMatches(content, urgencyKeywords) > 0 {
		res.Urgency = UrgencyCritical
	}

	for _, rule := range toneRules {
		if classify.CountMatches(content, rule.keywords) > 0 {
			res.Tone = rule.tone
			break
		}
	}

	return res
}
