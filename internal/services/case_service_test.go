package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/services"
)

func TestCaseRegisterValidation(t *testing.T) {
	_, cases := testStores(t)
	svc := services.NewCaseService(cases)

	tests := []struct {
		name        string
		title       string
		description string
		wantErr     bool
	}{
		{name: "valid", title: "stolen bicycle", description: "taken overnight"},
		{name: "empty title", title: "  ", description: "taken overnight", wantErr: true},
		{name: "empty description", title: "stolen bicycle", description: "", wantErr: true},
		{name: "title too long", title: strings.Repeat("x", 101), description: "d", wantErr: true},
		{name: "description too long", title: "t", description: strings.Repeat("x", 2001), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Register("guild-1", "111", "user#111", tt.title, tt.description)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.CaseStatusFiled, c.Status)
			assert.Regexp(t, `^C-\d{8}-\d{3}$`, c.CaseNumber)
		})
	}
}

func TestCaseEditOwnership(t *testing.T) {
	_, cases := testStores(t)
	svc := services.NewCaseService(cases)

	c, err := svc.Register("guild-1", "111", "user#111", "stolen bicycle", "taken overnight")
	require.NoError(t, err)

	// A stranger cannot edit.
	_, err = svc.Edit(c.ID, "222", false, "defaced", "defaced")
	assert.ErrorIs(t, err, services.ErrForbidden)

	// The owner can.
	edited, err := svc.Edit(c.ID, "111", false, "stolen bicycle (red)", "taken overnight, red frame")
	require.NoError(t, err)
	assert.Equal(t, "stolen bicycle (red)", edited.Title)

	// An elevated actor can edit anyone's case.
	edited, err = svc.Edit(c.ID, "222", true, "amended by staff", "staff correction")
	require.NoError(t, err)
	assert.Equal(t, "amended by staff", edited.Title)
	assert.Equal(t, models.CaseStatusFiled, edited.Status)
}

func TestCaseCloseOwnership(t *testing.T) {
	_, cases := testStores(t)
	svc := services.NewCaseService(cases)

	c, err := svc.Register("guild-1", "111", "user#111", "stolen bicycle", "taken overnight")
	require.NoError(t, err)

	_, err = svc.Close(c.ID, "222")
	assert.ErrorIs(t, err, services.ErrForbidden)

	got, err := svc.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CaseStatusFiled, got.Status, "forbidden close must not change status")

	closed, err := svc.Close(c.ID, "111")
	require.NoError(t, err)
	assert.Equal(t, models.CaseStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	// Closing again is stale.
	_, err = svc.Close(c.ID, "111")
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestCaseAssign(t *testing.T) {
	_, cases := testStores(t)
	svc := services.NewCaseService(cases)

	c, err := svc.Register("guild-1", "111", "user#111", "stolen bicycle", "taken overnight")
	require.NoError(t, err)

	assigned, err := svc.Assign(c.ID, "officer#1")
	require.NoError(t, err)
	assert.Equal(t, "officer#1", assigned.Officer)

	_, err = svc.Assign("CASE_0_missing00", "officer#1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCaseActiveByUser(t *testing.T) {
	_, cases := testStores(t)
	svc := services.NewCaseService(cases)

	open, err := svc.Register("guild-1", "111", "user#111", "open case", "still open")
	require.NoError(t, err)
	closed, err := svc.Register("guild-1", "111", "user#111", "closed case", "already done")
	require.NoError(t, err)
	_, err = svc.Close(closed.ID, "111")
	require.NoError(t, err)

	active, err := svc.ActiveByUser("111")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)
}

func TestCaseDeleteReturnsRecord(t *testing.T) {
	_, cases := testStores(t)
	svc := services.NewCaseService(cases)

	c, err := svc.Register("guild-1", "111", "user#111", "stolen bicycle", "taken overnight")
	require.NoError(t, err)
	require.NoError(t, svc.SetMessageID(c.ID, "msg-1"))

	deleted, err := svc.Delete(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "msg-1", deleted.MessageID, "caller needs the message id for cleanup")

	_, err = svc.Get(c.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
