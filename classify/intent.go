package classify

// ClassifyIntent scores the content against every rule and returns the
// single winning intent. A nil rules slice uses DefaultIntentRules.
//
// Per-label score = min(0.95, 0.15*matches + 0.2). The winner is the label
// with the strictly greatest score; ties go to the earlier rule. The
// reported confidence is floored at 0.3, so even a document with zero
// keyword hits lands in [0.3, 0.95].
func ClassifyIntent(content string, rules []IntentRule) IntentResult {
	if rules == nil {
		rules = DefaultIntentRules()
	}

	var winner IntentLabel
	best := -1.0
	for _, rule := range rules {
		score := 0.15*float64(CountMatches(content, rule.Keywords)) + 0.2
		if score > 0.95 {
			score = 0.95
		}
		if score > best {
			best = score
			winner = rule.Label
		}
	}

	if best < 0.3 {
		best = 0.3
	}
	return IntentResult{Type: winner, Confidence: best}
}

// Classify runs both classifiers and combines their results.
func Classify(content, hint string, rules []IntentRule) Classification {
	return Classification{
		Format: ClassifyFormat(content, hint),
		Intent: ClassifyIntent(content, rules),
	}
}
