package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/services"
)

func TestFileValidation(t *testing.T) {
	reports, _ := testStores(t)
	svc := services.NewReportService(reports)

	tests := []struct {
		name       string
		reportType string
		content    string
		wantErr    error
	}{
		{name: "valid type", reportType: models.ReportTypeTheft},
		{name: "other with content", reportType: models.ReportTypeOther, content: "details"},
		{name: "unknown type", reportType: "arson", wantErr: services.ErrValidation},
		{name: "other without content", reportType: models.ReportTypeOther, wantErr: services.ErrValidation},
		{name: "content too long", reportType: models.ReportTypeOther, content: strings.Repeat("x", 1001), wantErr: services.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := svc.File("guild-1", "111", "user#111", tt.reportType, tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ReportStatusFiled, r.Status)
			assert.Regexp(t, `^REPORT_\d{13}_[0-9a-z]{9}$`, r.ID)
		})
	}
}

func TestReportLifecycleChain(t *testing.T) {
	reports, _ := testStores(t)
	svc := services.NewReportService(reports)

	r, err := svc.File("guild-1", "111", "user#111", models.ReportTypeViolence, "")
	require.NoError(t, err)

	r, err = svc.Dispatch(r.ID, "officer#1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusDispatched, r.Status)
	assert.Equal(t, "officer#1", r.Responder)

	r, err = svc.Arrive(r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusArrived, r.Status)

	r, err = svc.StartProcessing(r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusProcessing, r.Status)

	r, err = svc.Close(r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusClosed, r.Status)
	assert.Equal(t, "officer#1", r.Responder, "responder survives later transitions")
}

func TestReportOutOfOrderTransitions(t *testing.T) {
	reports, _ := testStores(t)
	svc := services.NewReportService(reports)

	r, err := svc.File("guild-1", "111", "user#111", models.ReportTypeTheft, "")
	require.NoError(t, err)

	// Filed reports cannot skip ahead.
	_, err = svc.Arrive(r.ID)
	assert.ErrorIs(t, err, services.ErrInvalidState)
	_, err = svc.Close(r.ID)
	assert.ErrorIs(t, err, services.ErrInvalidState)

	_, err = svc.Dispatch(r.ID, "officer#1")
	require.NoError(t, err)

	// Double click on the same button: one wins, the second is stale.
	_, err = svc.Dispatch(r.ID, "officer#2")
	assert.ErrorIs(t, err, services.ErrInvalidState)

	got, err := svc.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "officer#1", got.Responder, "loser must not overwrite the responder")
}

func TestReportTransitionMissingRecord(t *testing.T) {
	reports, _ := testStores(t)
	svc := services.NewReportService(reports)

	_, err := svc.Dispatch("REPORT_0_missing00", "officer#1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReportReset(t *testing.T) {
	reports, _ := testStores(t)
	svc := services.NewReportService(reports)

	_, err := svc.File("guild-1", "111", "user#111", models.ReportTypeTheft, "")
	require.NoError(t, err)
	_, err = svc.File("guild-1", "222", "user#222", models.ReportTypeFraud, "")
	require.NoError(t, err)

	count, err := svc.Reset()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	history, err := svc.History("111")
	require.NoError(t, err)
	assert.Empty(t, history)
}
