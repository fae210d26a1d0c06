// Package submit simulates sending a volunteer form: it waits a fixed delay
// and always succeeds. Nothing is transmitted.
package submit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/model"
)

// DefaultDelay is the simulated network latency.
const DefaultDelay = 1500 * time.Millisecond

// Messages shown once a submission succeeds.
const (
	SuccessTitle   = "Cadastro Enviado!"
	SuccessMessage = "Obrigado por se voluntariar! A organização entrará em contato em breve."
)

// State is the lifecycle of a submission.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	}
	return "unknown"
}

// Receipt identifies an accepted submission.
type Receipt struct {
	ID            uuid.UUID
	OpportunityID string
	SubmittedAt   time.Time
}

// Submitter performs simulated submissions.
type Submitter struct {
	delay  time.Duration
	logger *zap.Logger
}

// New returns a Submitter that waits delay before succeeding.
func New(delay time.Duration, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{delay: delay, logger: logger}
}

// Submit reports Submitting, waits the configured delay, reports Succeeded and
// returns a receipt. observe may be nil. The only error is the context's, when
// the caller stops waiting; Succeeded is not reported in that case.
func (s *Submitter) Submit(ctx context.Context, opportunityID string, form model.VolunteerForm, observe func(State)) (Receipt, error) {
	notify := func(st State) {
		if observe != nil {
			observe(st)
		}
	}

	notify(Submitting)
	s.logger.Debug("submitting volunteer form", zap.String("opportunity_id", opportunityID), zap.Duration("delay", s.delay))

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		s.logger.Debug("submission abandoned", zap.String("opportunity_id", opportunityID), zap.Error(ctx.Err()))
		return Receipt{}, ctx.Err()
	}

	receipt := Receipt{
		ID:            uuid.New(),
		OpportunityID: opportunityID,
		SubmittedAt:   time.Now(),
	}
	notify(Succeeded)
	s.logger.Info("volunteer form submitted",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("opportunity_id", opportunityID),
		zap.Bool("has_area", form.Area != ""),
	)
	return receipt, nil
}
