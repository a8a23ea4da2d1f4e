package extract

import (
	"regexp"
	"strings"

	"github.com/hazyhaar/intake/classify"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	tokenPattern  = regexp.MustCompile(`\b\w{4,}\b`)
)

// sentimentRules are checked in order; first category with a hit wins.
var sentimentRules = []struct {
	sentiment Sentiment
	keywords  []string
}{
	{SentimentPositive, []string{"good", "excellent", "satisfied", "happy"}},
	{SentimentNegative, []string{"bad", "poor", "dissatisfied", "problem"}},
	{SentimentNeutral, []string{"standard", "normal", "regular", "typical"}},
}

// topicRules accumulate: every matching topic is reported, unlike
// sentiment where only the first match counts.
var topicRules = []struct {
	topic    string
	keywords []string
}{
	{"Business", []string{"business", "company", "corporate", "enterprise"}},
	{"Technology", []string{"technology", "software", "system", "digital"}},
	{"Legal", []string{"legal", "law", "regulation", "compliance"}},
	{"Finance", []string{"finance", "payment", "money", "invoice"}},
}

// Text analyzes a plain-text document: whitespace-split word count,
// deduplicated keywords (length ≥4, first-occurrence order, at most 10),
// first-match sentiment, and the union of matching topics.
func Text(content string) *TextResult {
	res := &TextResult{
		WordCount: len(whitespaceRun.Split(content, -1)),
		KeyWords:  keyWords(content),
		Sentiment: SentimentNeutral,
	}

	for _, rule := range sentimentRules {
		if classify.CountMatches(content, rule.keywords) > 0 {
			res.Sentiment = rule.sentiment
			break
		}
	}

	for _, rule := range topicRules {
		if classify.CountMatches(content, rule.keywords) > 0 {
			res.Topics = append(res.Topics, rule.topic)
		}
	}
	if len(res.Topics) == 0 {
		res.Topics = []string{"General"}
	}

	return res
}

func keyWords(content string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(content), -1)
	seen := make(map[string]struct{}, len(tokens))
	unique := []string{}
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		unique = append(unique, tok)
		if len(unique) == 10 {
			break
		}
	}
	return unique
}
