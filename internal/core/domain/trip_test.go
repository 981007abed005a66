package domain_test

import (
	"testing"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrip(status domain.TripStatus) *domain.Trip {
	now := time.Now().UTC()
	return &domain.Trip{
		TripID:        "trip_1",
		ResponsibleID: "user_resp",
		Status:        status,
		History:       domain.NewStateLog(status, now),
	}
}

func TestParseTripStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    domain.TripStatus
		wantErr bool
	}{
		{name: "loading", in: "LOADING", want: domain.StatusLoading},
		{name: "partially discharged", in: "PARTIALLY_DISCHARGED", want: domain.StatusPartiallyDischarged},
		{name: "lower case is rejected", in: "loading", wantErr: true},
		{name: "unknown", in: "LOST", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTripStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrip_FullLifecycle(t *testing.T) {
	trip := newTrip(domain.StatusLoading)
	path := []domain.TripStatus{
		domain.StatusLoaded,
		domain.StatusDeparted,
		domain.StatusArrived,
		domain.StatusCustoms,
		domain.StatusCleared,
		domain.StatusAllocated,
		domain.StatusPartiallyDischarged,
		domain.StatusDischarged,
	}

	for _, target := range path {
		require.NoError(t, trip.ApplyTransition(target, "user_resp", time.Now().UTC()), "advance to %s", target)
		assert.Equal(t, target, trip.Status)
	}

	assert.Len(t, trip.History, len(path)+1)
	for _, e := range trip.History {
		assert.True(t, e.Validated, "entry %s should be validated", e.State)
	}
	assert.NotNil(t, trip.DepartedAt)
	assert.NotNil(t, trip.ArrivedAt)
	assert.Empty(t, trip.Status.NextStates())
}

func TestTrip_CheckTransition_RejectsSkipsAndRepeats(t *testing.T) {
	trip := newTrip(domain.StatusLoading)

	err := trip.CheckTransition(domain.StatusDeparted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, err, apperrors.ErrBusinessRule)

	require.NoError(t, trip.ApplyTransition(domain.StatusLoaded, "u", time.Now()))
	assert.ErrorIs(t, trip.CheckTransition(domain.StatusLoaded), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, trip.CheckTransition("BOGUS"), apperrors.ErrValidation)
}

func TestStateLog_NeverValidatesTwice(t *testing.T) {
	log := domain.NewStateLog(domain.StatusLoading, time.Now())
	log, err := log.Append(domain.StatusLoaded, time.Now())
	require.NoError(t, err)

	_, err = log.Append(domain.StatusLoaded, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	seen := map[domain.TripStatus]int{}
	for _, e := range log {
		if e.Validated {
			seen[e.State]++
		}
	}
	for state, n := range seen {
		assert.Equal(t, 1, n, "state %s validated more than once", state)
	}
}

func TestStateLog_AppendLeavesReceiverUntouched(t *testing.T) {
	log := domain.NewStateLog(domain.StatusLoading, time.Now())
	next, err := log.Append(domain.StatusLoaded, time.Now())
	require.NoError(t, err)

	assert.False(t, log[0].Validated)
	assert.True(t, next[0].Validated)
	cur, ok := next.Current()
	require.True(t, ok)
	assert.Equal(t, domain.StatusLoaded, cur.State)
}

func TestCanAdvance(t *testing.T) {
	admin := domain.Actor{UserID: "admin", Roles: []domain.Role{domain.RoleAdmin}}
	customs := domain.Actor{UserID: "douane", Roles: []domain.Role{domain.RoleCustoms}}
	responsible := domain.Actor{UserID: "user_resp", Roles: []domain.Role{domain.RoleOperator}}
	stranger := domain.Actor{UserID: "someone", Roles: []domain.Role{domain.RoleOperator}}

	released := func(status domain.TripStatus, rel bool) *domain.Trip {
		trip := newTrip(status)
		trip.Released = rel
		return trip
	}

	tests := []struct {
		name  string
		actor domain.Actor
		trip  *domain.Trip
		want  bool
	}{
		{name: "admin always", actor: admin, trip: released(domain.StatusAllocated, false), want: true},
		{name: "responsible before clearance", actor: responsible, trip: released(domain.StatusCustoms, false), want: true},
		{name: "responsible past clearance", actor: responsible, trip: released(domain.StatusCleared, true), want: false},
		{name: "customs before clearance", actor: customs, trip: released(domain.StatusArrived, true), want: false},
		{name: "customs on unreleased cleared trip", actor: customs, trip: released(domain.StatusCleared, false), want: false},
		{name: "customs on released cleared trip", actor: customs, trip: released(domain.StatusCleared, true), want: true},
		{name: "customs on released allocated trip", actor: customs, trip: released(domain.StatusAllocated, true), want: true},
		{name: "stranger", actor: stranger, trip: released(domain.StatusLoading, false), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.CanAdvance(tt.actor, tt.trip)
			assert.Equal(t, tt.want, d.Allowed, d.Reason)
			assert.NotEmpty(t, d.Reason)
		})
	}
}
