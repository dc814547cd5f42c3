package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"task-tracker-app/internal/model"
)

// Computation kinds tagged into fingerprints.
const (
	KindMonthly = "monthly"
	KindWeekly  = "weekly"
)

// FingerprintScope carries the scoping parameters of a computation.
type FingerprintScope struct {
	MonthID    string
	UserID     string
	ReporterID string
}

// Fingerprint identifies one computation over one exact input set. Any insert,
// delete or edit among the input tasks changes Count or Digest. The viewer is
// not part of the key: identical visible sets produce identical results.
type Fingerprint struct {
	Kind       string
	MonthID    string
	UserID     string
	ReporterID string
	Count      int
	Digest     string
}

// NewFingerprint builds the fingerprint of computing kind over tasks.
func NewFingerprint(kind string, scope FingerprintScope, tasks []model.Task) Fingerprint {
	return Fingerprint{
		Kind:       kind,
		MonthID:    scope.MonthID,
		UserID:     scope.UserID,
		ReporterID: scope.ReporterID,
		Count:      len(tasks),
		Digest:     contentDigest(tasks),
	}
}

// String renders the fingerprint as a stable key.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%s|m=%s|u=%s|r=%s|n=%d|%s", f.Kind, f.MonthID, f.UserID, f.ReporterID, f.Count, f.Digest)
}

// ForMonth matches every fingerprint computed for monthID.
func ForMonth(monthID string) func(Fingerprint) bool {
	return func(f Fingerprint) bool {
		return f.MonthID == monthID
	}
}

// contentDigest hashes every field the fold reads, sorted so input order does
// not matter.
func contentDigest(tasks []model.Task) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = taskSignature(t)
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, l := range lines {
		h.Write([]byte(lengthPrefixed(l)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// taskSignature length-prefixes every field and list element, so values
// containing separators cannot collide.
func taskSignature(t model.Task) string {
	fields := []string{
		t.ID,
		t.OwnerID,
		t.ReporterID,
		strconv.FormatInt(millis(t.CreatedAt.UnixMilli(), t.HasTimestamp()), 10),
		strconv.FormatInt(millis(t.UpdatedAt.UnixMilli(), !t.UpdatedAt.IsZero()), 10),
		t.MonthID,
		strconv.FormatFloat(t.HoursSpent, 'g', -1, 64),
		strconv.FormatBool(t.AIUsed),
		strconv.FormatFloat(t.AIHoursSpent, 'g', -1, 64),
		strconv.FormatBool(t.Reworked),
		listSignature(t.Markets),
		t.Product,
		listSignature(t.AIModels),
		listSignature(t.Deliverables),
	}
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(lengthPrefixed(f))
	}
	return b.String()
}

func listSignature(list []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(list)))
	b.WriteByte('#')
	for _, v := range list {
		b.WriteString(lengthPrefixed(v))
	}
	return b.String()
}

func lengthPrefixed(s string) string {
	return strconv.Itoa(len(s)) + ":" + s
}

func millis(ms int64, ok bool) int64 {
	if !ok {
		return 0
	}
	return ms
}
