package model

// ReasonCode is the stable machine-readable code attached to every
// non-success workflow outcome.
type ReasonCode string

const (
	CodeInvalidRequest          ReasonCode = "invalid-request"
	CodeHallFull                ReasonCode = "hall-full"
	CodeInsufficientSpace       ReasonCode = "insufficient-space"
	CodeFairNotFound            ReasonCode = "fair-not-found"
	CodeHallNotFound            ReasonCode = "hall-not-found"
	CodeCompanyNotFound         ReasonCode = "company-not-found"
	CodeAvailabilityUnreachable ReasonCode = "availability-unreachable"
	CodeDirectoryUnreachable    ReasonCode = "directory-unreachable"
	CodeRenderFailed            ReasonCode = "render-failed"
)

// Availability is the interpreted result of a capacity check.
// Unavailability is a regular value, not an error: transport and parse
// failures are the only error path out of the availability client.
type Availability struct {
	Available   bool
	HallName    string
	RemainingM2 int
	Reason      string
	Code        ReasonCode
}

// NotificationOutcome is the delivery result reported by the notifier.
// "sent" means accepted for delivery, not a receipt guarantee.
type NotificationOutcome struct {
	MessageID string
	Status    string
	Message   string
}
