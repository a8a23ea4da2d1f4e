// Package action derives downstream actions from a classified, extracted
// document.
package action

import (
	"github.com/hazyhaar/intake/classify"
	"github.com/hazyhaar/intake/extract"
)

// Type identifies a downstream action.
type Type string

const (
	Escalation     Type = "escalation"
	RiskAlert      Type = "risk_alert"
	ComplianceFlag Type = "compliance_flag"
	TicketCreation Type = "ticket_creation"
)

// Priority grades an action's handling urgency.
type Priority string

const (
	PriorityImmediate Priority = "immediate"
	PriorityHigh      Priority = "high"
	PriorityMedium    Priority = "medium"
	PriorityNormal    Priority = "normal"
)

// Action is a derived downstream instruction. Never mutated after
// creation.
type Action struct {
	Type     Type     `json:"type"`
	Target   string   `json:"target"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// Derive evaluates the action rules against a classification and its
// extraction. The rules are independent and non-exclusive (several may
// fire for one document) and run in a fixed order. When none fires, a
// single default ticket is emitted, so the result is never empty.
func Derive(c classify.Classification, ext extract.Result) []Action {
	var actions []Action

	if tone, ok := ext.Tone(); ok && c.Intent.Type == classify.IntentComplaint && tone == extract.ToneThreatening {
		actions = append(actions, Action{
			Type:     Escalation,
			Target:   "CRM System",
			Priority: PriorityImmediate,
			Reason:   "Threatening complaint detected",
		})
	}

	if level, ok := ext.RiskLevel(); ok && level == extract.RiskHigh {
		actions = append(actions, Action{
			Type:     RiskAlert,
			Target:   "Risk Management",
			Priority: PriorityHigh,
			Reason:   "High risk transaction detected",
		})
	}

	if len(ext.ComplianceKeywords()) > 0 {
		actions = append(actions, Action{
			Type:     ComplianceFlag,
			Target:   "Compliance Team",
			Priority: PriorityMedium,
			Reason:   "Regulatory keywords detected",
		})
	}

	if c.Intent.Type == classify.IntentRFQ {
		actions = append(actions, Action{
			Type:     TicketCreation,
			Target:   "Sales System",
			Priority: PriorityNormal,
			Reason:   "RFQ processing required",
		})
	}

	if len(actions) == 0 {
		actions = append(actions, Action{
			Type:     TicketCreation,
			Target:   "Support System",
			Priority: PriorityNormal,
			Reason:   "Routine document processing",
		})
	}

	return actions
}
