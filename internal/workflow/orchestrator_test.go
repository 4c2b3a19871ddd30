package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mchexpo/fairhall-contracts/internal/model"
	"github.com/mchexpo/fairhall-contracts/internal/register"
)

type fakeAvailability struct {
	calls  int
	result model.Availability
	err    error
}

func (f *fakeAvailability) Check(_ context.Context, _, _, _ int) (model.Availability, error) {
	f.calls++
	return f.result, f.err
}

type fakeDirectory struct {
	calls  int
	record model.CompanyRecord
	err    error
}

func (f *fakeDirectory) Lookup(_ context.Context, _ string) (model.CompanyRecord, error) {
	f.calls++
	return f.record, f.err
}

type fakeRenderer struct {
	calls    int
	artifact model.ContractArtifact
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, _ model.ContractData) (model.ContractArtifact, error) {
	f.calls++
	return f.artifact, f.err
}

type fakeNotifier struct {
	calls   int
	lastTo  []string
	outcome model.NotificationOutcome
	err     error
}

func (f *fakeNotifier) Notify(_ context.Context, to []string, _, _ string) (model.NotificationOutcome, error) {
	f.calls++
	f.lastTo = to
	return f.outcome, f.err
}

type fixture struct {
	availability *fakeAvailability
	directory    *fakeDirectory
	renderer     *fakeRenderer
	notifier     *fakeNotifier
	contracts    *register.MemoryStore
	orchestrator *Orchestrator
}

func newFixture() *fixture {
	f := &fixture{
		availability: &fakeAvailability{result: model.Availability{Available: true, HallName: "Hall A", RemainingM2: 45}},
		directory:    &fakeDirectory{record: model.CompanyRecord{ID: "1234567890", Name: "Max Mustermann", Address: "Birk Centerpark 120", Email: "max@example.com"}},
		renderer:     &fakeRenderer{artifact: model.ContractArtifact{Filename: "contract.pdf", FilePath: "/contracts/contract.pdf"}},
		notifier:     &fakeNotifier{outcome: model.NotificationOutcome{MessageID: "msg-1", Status: "sent"}},
		contracts:    register.NewMemoryStore(),
	}
	f.orchestrator = NewOrchestrator(
		f.availability, f.directory, f.renderer, f.notifier,
		f.contracts, "fallback@fairhall.local", zerolog.Nop(),
	)
	return f
}

func validRequest() model.ContractRequest {
	return model.ContractRequest{FairID: 1, HallID: 1, SquareMeters: 30, CompanyID: "1234567890"}
}

func TestExecuteInvalidRequestSkipsAllClients(t *testing.T) {
	cases := []struct {
		name string
		req  model.ContractRequest
	}{
		{"zero fair", model.ContractRequest{HallID: 1, SquareMeters: 30, CompanyID: "1"}},
		{"zero hall", model.ContractRequest{FairID: 1, SquareMeters: 30, CompanyID: "1"}},
		{"zero area", model.ContractRequest{FairID: 1, HallID: 1, CompanyID: "1"}},
		{"negative area", model.ContractRequest{FairID: 1, HallID: 1, SquareMeters: -5, CompanyID: "1"}},
		{"blank company", model.ContractRequest{FairID: 1, HallID: 1, SquareMeters: 30, CompanyID: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			result := f.orchestrator.Execute(context.Background(), tc.req)

			if result.Status != StatusRejected {
				t.Fatalf("status = %s, want %s", result.Status, StatusRejected)
			}
			if result.Code != model.CodeInvalidRequest {
				t.Fatalf("code = %s, want %s", result.Code, model.CodeInvalidRequest)
			}
			if f.availability.calls != 0 {
				t.Fatalf("availability called %d times for invalid request", f.availability.calls)
			}
		})
	}
}

func TestExecuteUnavailableHallShortCircuits(t *testing.T) {
	f := newFixture()
	f.availability.result = model.Availability{
		Available: false,
		Reason:    "Hall B has no available space",
		Code:      model.CodeHallFull,
	}

	result := f.orchestrator.Execute(context.Background(), model.ContractRequest{
		FairID: 1, HallID: 2, SquareMeters: 100, CompanyID: "1234567890",
	})

	if result.Status != StatusRejected {
		t.Fatalf("status = %s, want %s", result.Status, StatusRejected)
	}
	if result.Code != model.CodeHallFull {
		t.Fatalf("code = %s, want %s", result.Code, model.CodeHallFull)
	}
	if result.Message != "Hall B has no available space" {
		t.Fatalf("message = %q, want the availability service's exact reason", result.Message)
	}
	if f.directory.calls != 0 || f.renderer.calls != 0 || f.notifier.calls != 0 {
		t.Fatalf("downstream clients invoked after rejection: directory=%d renderer=%d notifier=%d",
			f.directory.calls, f.renderer.calls, f.notifier.calls)
	}
}

func TestExecuteAvailabilityTransportFailure(t *testing.T) {
	f := newFixture()
	f.availability.err = errors.New("connection refused")

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusError {
		t.Fatalf("status = %s, want %s", result.Status, StatusError)
	}
	if result.Code != model.CodeAvailabilityUnreachable {
		t.Fatalf("code = %s, want %s", result.Code, model.CodeAvailabilityUnreachable)
	}
	if f.directory.calls != 0 {
		t.Fatalf("directory called after availability failure")
	}
}

func TestExecuteCompanyNotFound(t *testing.T) {
	f := newFixture()
	f.directory.err = ErrCompanyNotFound

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusRejected {
		t.Fatalf("status = %s, want %s", result.Status, StatusRejected)
	}
	if result.Code != model.CodeCompanyNotFound {
		t.Fatalf("code = %s, want %s", result.Code, model.CodeCompanyNotFound)
	}
	if f.renderer.calls != 0 || f.notifier.calls != 0 {
		t.Fatalf("renderer/notifier invoked after company rejection")
	}
}

func TestExecuteDirectoryTransportFailure(t *testing.T) {
	f := newFixture()
	f.directory.err = errors.New("dial tcp: i/o timeout")

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusError {
		t.Fatalf("status = %s, want %s", result.Status, StatusError)
	}
	if result.Code != model.CodeDirectoryUnreachable {
		t.Fatalf("code = %s, want %s", result.Code, model.CodeDirectoryUnreachable)
	}
}

func TestExecuteRenderFailure(t *testing.T) {
	f := newFixture()
	f.renderer.err = errors.New("disk full")

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusError {
		t.Fatalf("status = %s, want %s", result.Status, StatusError)
	}
	if result.Code != model.CodeRenderFailed {
		t.Fatalf("code = %s, want %s", result.Code, model.CodeRenderFailed)
	}
	if result.Filename != "" {
		t.Fatalf("filename = %q, want empty on render failure", result.Filename)
	}
	if f.notifier.calls != 0 {
		t.Fatalf("notifier invoked after render failure")
	}
}

func TestExecuteNotificationFailureStillCompletes(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("SMTP timeout")

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", result.Status, StatusCompleted)
	}
	if result.Filename == "" {
		t.Fatalf("artifact reference is empty on completed run")
	}
	if !strings.Contains(result.Message, "generated") {
		t.Fatalf("message %q lacks a success indication", result.Message)
	}
	if !strings.Contains(result.Message, "SMTP timeout") {
		t.Fatalf("message %q lacks the notification failure reason", result.Message)
	}
}

func TestExecuteNotifierFailedStatusTreatedAsFailure(t *testing.T) {
	f := newFixture()
	f.notifier.outcome = model.NotificationOutcome{Status: "failed", Message: "mailbox unavailable"}

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", result.Status, StatusCompleted)
	}
	if !strings.Contains(result.Message, "mailbox unavailable") {
		t.Fatalf("message %q lacks the delivery failure reason", result.Message)
	}
}

func TestExecuteFullSuccess(t *testing.T) {
	f := newFixture()

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", result.Status, StatusCompleted)
	}
	if result.Filename != "contract.pdf" || result.FilePath != "/contracts/contract.pdf" {
		t.Fatalf("artifact reference = %q / %q", result.Filename, result.FilePath)
	}
	if result.Message != "Contract generated successfully" {
		t.Fatalf("message = %q", result.Message)
	}
	if f.notifier.calls != 1 {
		t.Fatalf("notifier called %d times, want 1", f.notifier.calls)
	}
	if len(f.notifier.lastTo) != 1 || f.notifier.lastTo[0] != "max@example.com" {
		t.Fatalf("notification recipients = %v, want the company email", f.notifier.lastTo)
	}

	entries := f.contracts.List(context.Background(), 0)
	if len(entries) != 1 {
		t.Fatalf("register holds %d entries, want 1", len(entries))
	}
	if entries[0].CompanyName != "Max Mustermann" || entries[0].Filename != "contract.pdf" {
		t.Fatalf("unexpected register entry: %+v", entries[0])
	}
}

func TestExecuteFallbackContactWhenCompanyHasNoEmail(t *testing.T) {
	f := newFixture()
	f.directory.record.Email = ""

	result := f.orchestrator.Execute(context.Background(), validRequest())

	if result.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", result.Status, StatusCompleted)
	}
	if len(f.notifier.lastTo) != 1 || f.notifier.lastTo[0] != "fallback@fairhall.local" {
		t.Fatalf("notification recipients = %v, want the fallback contact", f.notifier.lastTo)
	}
}

func TestExecuteIsDeterministicForUnchangedResponses(t *testing.T) {
	f := newFixture()
	f.availability.result = model.Availability{
		Available: false,
		Reason:    "Hall B has no available space",
		Code:      model.CodeHallFull,
	}
	req := model.ContractRequest{FairID: 1, HallID: 2, SquareMeters: 100, CompanyID: "1234567890"}

	first := f.orchestrator.Execute(context.Background(), req)
	second := f.orchestrator.Execute(context.Background(), req)

	if first.Status != second.Status || first.Code != second.Code || first.Message != second.Message {
		t.Fatalf("replay diverged: first=%+v second=%+v", first, second)
	}
}
