package extract

import (
	"encoding/json"
	"strings"
)

// Structured parses content as a JSON key/value document and assesses its
// risk. A parse failure never propagates: the result degrades to
// schema-invalid, low risk, no factors, with the parser message attached.
//
// Risk factors accumulate independently; the level is a pure function of
// the factor count (≥2 high, 1 medium, 0 low).
func Structured(content string) *StructuredResult {
	var value any
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return &StructuredResult{
			SchemaValid: false,
			Error:       err.Error(),
			Fields:      []string{},
			RiskLevel:   RiskLow,
			RiskFactors: []string{},
		}
	}

	res := &StructuredResult{
		SchemaValid: true,
		Fields:      topLevelKeys(content),
		RiskFactors: []string{},
	}

	// Non-object documents (arrays, scalars) are valid but carry no fields
	// to assess.
	obj, _ := value.(map[string]any)

	if amount, ok := obj["amount"].(float64); ok {
		res.Amount = &amount
		if amount > 10000 {
			res.RiskFactors = append(res.RiskFactors, "High value transaction")
		}
	}
	if userID, ok := obj["user_id"].(string); ok && strings.Contains(userID, "UNKNOWN") {
		res.RiskFactors = append(res.RiskFactors, "Unknown user")
	}
	if score, ok := obj["risk_score"].(float64); ok && score > 0.7 {
		res.RiskFactors = append(res.RiskFactors, "High risk score")
	}

	switch {
	case len(res.RiskFactors) > 1:
		res.RiskLevel = RiskHigh
	case len(res.RiskFactors) == 1:
		res.RiskLevel = RiskMedium
	default:
		res.RiskLevel = RiskLow
	}

	return res
}

// topLevelKeys returns the top-level object keys in their original
// encounter order. Maps would lose that order, so the document is walked
// token by token. Non-object documents yield an empty slice.
func topLevelKeys(content string) []string {
	dec := json.NewDecoder(strings.NewReader(content))
	tok, err := dec.Token()
	if err != nil {
		return []string{}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return []string{}
	}

	keys := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return keys
		}
	}
	return keys
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
