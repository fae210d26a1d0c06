package submit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rsilvagit/ajudaja/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubmit_TransitionsToSucceeded(t *testing.T) {
	s := New(20*time.Millisecond, nil)

	var states []State
	start := time.Now()
	receipt, err := s.Submit(context.Background(), "3", model.VolunteerForm{Name: "Ana"}, func(st State) {
		states = append(states, st)
	})

	require.NoError(t, err)
	assert.Equal(t, []State{Submitting, Succeeded}, states)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, "3", receipt.OpportunityID)
	assert.False(t, receipt.SubmittedAt.IsZero())
}

func TestSubmit_SucceedsRegardlessOfContent(t *testing.T) {
	s := New(time.Millisecond, nil)
	_, err := s.Submit(context.Background(), "", model.VolunteerForm{}, nil)
	assert.NoError(t, err)
}

func TestSubmit_UniqueReceipts(t *testing.T) {
	s := New(0, nil)
	a, err := s.Submit(context.Background(), "1", model.VolunteerForm{}, nil)
	require.NoError(t, err)
	b, err := s.Submit(context.Background(), "1", model.VolunteerForm{}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubmit_Cancelled(t *testing.T) {
	s := New(time.Hour, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var states []State
	_, err := s.Submit(ctx, "1", model.VolunteerForm{}, func(st State) { states = append(states, st) })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []State{Submitting}, states)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "unknown", State(9).String())
}
