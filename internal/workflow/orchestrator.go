package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mchexpo/fairhall-contracts/internal/model"
	"github.com/mchexpo/fairhall-contracts/internal/register"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusError     Status = "error"
)

// Result is the single terminal outcome of one workflow run. Filename and
// FilePath are set only when Status is StatusCompleted.
type Result struct {
	Status   Status
	Code     model.ReasonCode
	Message  string
	Filename string
	FilePath string
}

// Orchestrator sequences the availability check, the company lookup, the
// contract rendering and the notification into one run per request. It holds
// no state between runs; concurrent Execute calls are independent.
type Orchestrator struct {
	availability    AvailabilityChecker
	directory       CompanyDirectory
	renderer        ContractRenderer
	notifier        Notifier
	contracts       register.Store
	fallbackContact string
	log             zerolog.Logger
}

func NewOrchestrator(
	availability AvailabilityChecker,
	directory CompanyDirectory,
	renderer ContractRenderer,
	notifier Notifier,
	contracts register.Store,
	fallbackContact string,
	log zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		availability:    availability,
		directory:       directory,
		renderer:        renderer,
		notifier:        notifier,
		contracts:       contracts,
		fallbackContact: fallbackContact,
		log:             log,
	}
}

// Execute runs the contract workflow. It never returns an error: every
// failure path is captured into the Result with an explicit status and code.
// Steps run strictly in order and short-circuit on the first failure, with
// one exception: a notification failure after a rendered contract does not
// erase the artifact and the run still completes.
func (o *Orchestrator) Execute(ctx context.Context, req model.ContractRequest) Result {
	if reason := validate(req); reason != "" {
		return Result{Status: StatusRejected, Code: model.CodeInvalidRequest, Message: reason}
	}

	avail, err := o.availability.Check(ctx, req.FairID, req.HallID, req.SquareMeters)
	if err != nil {
		o.log.Error().Err(err).Int("fair_id", req.FairID).Int("hall_id", req.HallID).
			Msg("availability check failed")
		return Result{
			Status:  StatusError,
			Code:    model.CodeAvailabilityUnreachable,
			Message: fmt.Sprintf("availability service unreachable: %v", err),
		}
	}
	if !avail.Available {
		return Result{Status: StatusRejected, Code: avail.Code, Message: avail.Reason}
	}

	company, err := o.directory.Lookup(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return Result{
				Status:  StatusRejected,
				Code:    model.CodeCompanyNotFound,
				Message: fmt.Sprintf("company %s not found", req.CompanyID),
			}
		}
		o.log.Error().Err(err).Str("company_id", req.CompanyID).Msg("company lookup failed")
		return Result{
			Status:  StatusError,
			Code:    model.CodeDirectoryUnreachable,
			Message: fmt.Sprintf("directory service unreachable: %v", err),
		}
	}

	artifact, err := o.renderer.Render(ctx, model.ContractData{
		FairID:       req.FairID,
		HallID:       req.HallID,
		HallName:     avail.HallName,
		SquareMeters: req.SquareMeters,
		Company:      company,
	})
	if err != nil {
		o.log.Error().Err(err).Str("company_id", req.CompanyID).Msg("contract rendering failed")
		return Result{
			Status:  StatusError,
			Code:    model.CodeRenderFailed,
			Message: fmt.Sprintf("contract rendering failed: %v", err),
		}
	}

	o.recordContract(ctx, req, company, artifact)

	message := "Contract generated successfully"
	if reason := o.notify(ctx, req, company, artifact); reason != "" {
		message = fmt.Sprintf("contract generated; notification failed: %s", reason)
	}

	return Result{
		Status:   StatusCompleted,
		Message:  message,
		Filename: artifact.Filename,
		FilePath: artifact.FilePath,
	}
}

// recordContract appends the issued contract to the register. The register
// is a reporting concern: a write failure is logged and the run still counts
// as completed.
func (o *Orchestrator) recordContract(ctx context.Context, req model.ContractRequest, company model.CompanyRecord, artifact model.ContractArtifact) {
	if o.contracts == nil {
		return
	}
	entry := register.Entry{
		ID:           uuid.New(),
		FairID:       req.FairID,
		HallID:       req.HallID,
		SquareMeters: req.SquareMeters,
		CompanyID:    req.CompanyID,
		CompanyName:  company.Name,
		Filename:     artifact.Filename,
		IssuedAt:     time.Now().UTC(),
	}
	if err := o.contracts.Record(ctx, entry); err != nil {
		o.log.Warn().Err(err).Str("filename", artifact.Filename).Msg("contract register write failed")
	}
}

// notify sends the confirmation to the company contact. Returns an empty
// string on success and the failure reason otherwise.
func (o *Orchestrator) notify(ctx context.Context, req model.ContractRequest, company model.CompanyRecord, artifact model.ContractArtifact) string {
	recipient := company.Email
	if recipient == "" {
		recipient = o.fallbackContact
	}

	subject := fmt.Sprintf("Your exhibition contract for fair %d", req.FairID)
	body := fmt.Sprintf(
		"Dear %s,\n\nyour contract for a %d m2 stand in hall %d at fair %d has been generated.\nDocument reference: %s\n",
		company.Name, req.SquareMeters, req.HallID, req.FairID, artifact.Filename,
	)

	outcome, err := o.notifier.Notify(ctx, []string{recipient}, subject, body)
	if err != nil {
		o.log.Warn().Err(err).Str("recipient", recipient).Msg("notification failed")
		return err.Error()
	}
	if outcome.Status != "" && outcome.Status != "sent" {
		o.log.Warn().Str("status", outcome.Status).Str("recipient", recipient).
			Msg("notification not delivered")
		if outcome.Message != "" {
			return outcome.Message
		}
		return fmt.Sprintf("delivery status %q", outcome.Status)
	}
	return ""
}

func validate(req model.ContractRequest) string {
	switch {
	case req.FairID <= 0:
		return "fairId must be a positive integer"
	case req.HallID <= 0:
		return "hallId must be a positive integer"
	case req.SquareMeters <= 0:
		return "squareMeters must be a positive number"
	case strings.TrimSpace(req.CompanyID) == "":
		return "companyId is required"
	}
	return ""
}
