package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"meal-admin/internal/models"
	"meal-admin/internal/scheduler"
)

func activeCustomer(createdAt time.Time) models.Customer {
	return models.Customer{
		ID:                "c1",
		IsActive:          true,
		AutoOrdersEnabled: true,
		CreatedAt:         createdAt,
	}
}

func TestGate_ThirtyDayBoundary(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	g := scheduler.Gate{}

	// Elapsed time is floored to whole days: 29 days and change is not 30.
	require.False(t, g.Eligible(activeCustomer(now.Add(-29*24*time.Hour)), now))
	require.False(t, g.Eligible(activeCustomer(now.Add(-30*24*time.Hour+time.Minute)), now))
	require.True(t, g.Eligible(activeCustomer(now.Add(-30*24*time.Hour)), now))
	require.True(t, g.Eligible(activeCustomer(now.Add(-45*24*time.Hour)), now))
}

func TestGate_SwitchesShortCircuit(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	g := scheduler.Gate{}

	old := activeCustomer(now.Add(-90 * 24 * time.Hour))

	paused := old
	paused.IsActive = false
	require.False(t, g.Eligible(paused, now))

	disabled := old
	disabled.AutoOrdersEnabled = false
	require.False(t, g.Eligible(disabled, now))
}

func TestGate_CreationClauseBeatsRecentCheck(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	g := scheduler.Gate{}

	// Created 45 days ago, checked 5 days ago: the creation clause alone
	// admits the customer. The duplicate check downstream is what keeps this
	// from double-ordering anything.
	c := activeCustomer(now.Add(-45 * 24 * time.Hour))
	checked := now.Add(-5 * 24 * time.Hour)
	c.LastAutoOrderCheck = &checked
	require.True(t, g.Eligible(c, now))
}

func TestGate_LastCheckDefaultsToCreatedAt(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	g := scheduler.Gate{}

	c := activeCustomer(now.Add(-30 * 24 * time.Hour))
	require.Nil(t, c.LastAutoOrderCheck)
	require.Equal(t, c.CreatedAt, c.LastCheck())
	require.True(t, g.Eligible(c, now))
}

func TestGate_CustomThreshold(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	g := scheduler.Gate{Threshold: 7 * 24 * time.Hour}

	require.False(t, g.Eligible(activeCustomer(now.Add(-6*24*time.Hour)), now))
	require.True(t, g.Eligible(activeCustomer(now.Add(-7*24*time.Hour)), now))
}
