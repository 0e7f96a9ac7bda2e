package business

import "github.com/google/uuid"

// Queue event types understood by the notification processor.
const (
	EventCapitalCallIssued    = "capital_call.issued"
	EventCapitalCallReminder  = "capital_call.reminder"
	EventCapitalCallOverdue   = "capital_call.overdue"
	EventWireConfirmed        = "capital_call.wire_confirmed"
	EventDistributionDeclared = "distribution.declared"
	EventDistributionPaid     = "distribution.paid"
	EventInvestorRegistered   = "investor.registered"
	EventKYCStatusChanged     = "investor.kyc_status_changed"
)

// QueueEvent is the message body published to the notification queue. The
// processor re-reads entity state from the database, so the event carries
// identifiers only.
type QueueEvent struct {
	EventType      string    `json:"event_type"`
	FundID         uuid.UUID `json:"fund_id,omitempty"`
	InvestorID     uuid.UUID `json:"investor_id,omitempty"`
	CapitalCallID  uuid.UUID `json:"capital_call_id,omitempty"`
	DistributionID uuid.UUID `json:"distribution_id,omitempty"`
}
