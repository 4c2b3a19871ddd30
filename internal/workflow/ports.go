package workflow

import (
	"context"
	"errors"

	"github.com/mchexpo/fairhall-contracts/internal/model"
)

// ErrCompanyNotFound is returned by a CompanyDirectory when the company
// identifier is unknown. Any other error means the directory service could
// not be consulted at all.
var ErrCompanyNotFound = errors.New("company not found")

// AvailabilityChecker answers whether a hall can take the requested area.
// Unavailability is reported as a value; an error means the availability
// service was unreachable or its response could not be interpreted.
type AvailabilityChecker interface {
	Check(ctx context.Context, fairID, hallID, squareMeters int) (model.Availability, error)
}

// CompanyDirectory resolves a company identifier to its record.
type CompanyDirectory interface {
	Lookup(ctx context.Context, companyID string) (model.CompanyRecord, error)
}

// ContractRenderer produces the contract artifact. Once it returns without
// error the artifact exists under the returned reference.
type ContractRenderer interface {
	Render(ctx context.Context, data model.ContractData) (model.ContractArtifact, error)
}

// Notifier submits a message for delivery. Delivery failures surface as
// errors but are never workflow-fatal.
type Notifier interface {
	Notify(ctx context.Context, to []string, subject, body string) (model.NotificationOutcome, error)
}
