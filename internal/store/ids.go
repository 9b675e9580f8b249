package store

import (
	"crypto/rand"
	"fmt"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randSuffix returns n random base36 characters.
func randSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// fall back to the clock so IDs stay non-empty.
		return fmt.Sprintf("%0*d", n, time.Now().UnixNano()%1e9)
	}
	for i, b := range buf {
		buf[i] = base36[int(b)%len(base36)]
	}
	return string(buf)
}

// NewReportID returns an identifier of the form
// REPORT_<unixMillis>_<9 random base36 chars>.
func NewReportID() string {
	return fmt.Sprintf("REPORT_%d_%s", time.Now().UnixMilli(), randSuffix(9))
}

// NewCaseID returns an identifier of the form
// CASE_<unixMillis>_<9 random base36 chars>.
func NewCaseID() string {
	return fmt.Sprintf("CASE_%d_%s", time.Now().UnixMilli(), randSuffix(9))
}

// CaseNumberFor formats the human-facing case number for a date and
// daily sequence: C-<YYYYMMDD>-<NNN>.
func CaseNumberFor(t time.Time, seq int) string {
	return fmt.Sprintf("C-%s-%03d", t.Format("20060102"), seq)
}
