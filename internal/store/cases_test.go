package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/store"
)

func newCase(userID string) *models.Case {
	return &models.Case{
		ID:          store.NewCaseID(),
		UserID:      userID,
		Username:    "user#" + userID,
		GuildID:     "guild-1",
		Title:       "stolen bicycle",
		Description: "taken from the station rack overnight",
		Status:      models.CaseStatusFiled,
		FiledAt:     time.Now().UTC(),
	}
}

func TestCaseNumberFormat(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "C-20260829-001", store.CaseNumberFor(at, 1))
	assert.Equal(t, "C-20260829-042", store.CaseNumberFor(at, 42))
	assert.Equal(t, "C-20260829-999", store.CaseNumberFor(at, 999))
}

func TestNewIdentifierFormats(t *testing.T) {
	reportID := store.NewReportID()
	caseID := store.NewCaseID()

	assert.Regexp(t, `^REPORT_\d{13}_[0-9a-z]{9}$`, reportID)
	assert.Regexp(t, `^CASE_\d{13}_[0-9a-z]{9}$`, caseID)
	assert.NotEqual(t, store.NewReportID(), reportID)
}

func TestCreateWithNumberSequences(t *testing.T) {
	cases := store.NewCases(testDB(t))

	today := time.Now().Format("20060102")
	for i := 1; i <= 3; i++ {
		c := newCase("111")
		require.NoError(t, cases.CreateWithNumber(c))
		assert.Equal(t, fmt.Sprintf("C-%s-%03d", today, i), c.CaseNumber)
	}
}

func TestCreateWithNumberReusesFreedNumbers(t *testing.T) {
	cases := store.NewCases(testDB(t))

	first := newCase("111")
	require.NoError(t, cases.CreateWithNumber(first))
	second := newCase("111")
	require.NoError(t, cases.CreateWithNumber(second))

	// Deleting the first case frees its number; the scan hands it out
	// again.
	require.NoError(t, cases.Delete(first.ID))
	third := newCase("111")
	require.NoError(t, cases.CreateWithNumber(third))
	assert.Equal(t, first.CaseNumber, third.CaseNumber)
}

func TestCreateWithNumberConcurrent(t *testing.T) {
	cases := store.NewCases(testDB(t))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	created := make([]*models.Case, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := newCase("111")
			errs[i] = cases.CreateWithNumber(c)
			created[i] = c
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[created[i].CaseNumber], "duplicate number %s", created[i].CaseNumber)
		seen[created[i].CaseNumber] = true
	}
}

func TestCaseCloseOnce(t *testing.T) {
	cases := store.NewCases(testDB(t))

	c := newCase("111")
	require.NoError(t, cases.CreateWithNumber(c))

	at := time.Now().UTC()
	closed, err := cases.Close(c.ID, at)
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = cases.Close(c.ID, at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, closed, "second close is a no-op")

	got, found, err := cases.ByID(c.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.CaseStatusClosed, got.Status)
	require.NotNil(t, got.ClosedAt)
	assert.WithinDuration(t, at, *got.ClosedAt, time.Second)
}

func TestCaseByNumber(t *testing.T) {
	cases := store.NewCases(testDB(t))

	c := newCase("111")
	require.NoError(t, cases.CreateWithNumber(c))

	got, found, err := cases.ByNumber(c.CaseNumber)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, c.ID, got.ID)

	_, found, err = cases.ByNumber("C-19700101-001")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCaseUpdateLeavesStatus(t *testing.T) {
	cases := store.NewCases(testDB(t))

	c := newCase("111")
	require.NoError(t, cases.CreateWithNumber(c))
	require.NoError(t, cases.Update(c.ID, "amended title", "amended description"))

	got, _, err := cases.ByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "amended title", got.Title)
	assert.Equal(t, "amended description", got.Description)
	assert.Equal(t, models.CaseStatusFiled, got.Status)
	assert.Equal(t, c.CaseNumber, got.CaseNumber)
}
