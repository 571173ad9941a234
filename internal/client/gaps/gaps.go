// Package gaps detects employment gaps between consecutive draft entries.
//
// Evaluation follows array order, not a chronological sort of start dates:
// entry i+1 is compared against entry i as they sit in the sequence.
package gaps

import (
	"time"

	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/common"
)

// Policy selects the gap threshold.
type Policy int

const (
	// GracePeriod flags a gap only when it exceeds one day.
	GracePeriod Policy = iota
	// Strict flags any positive gap.
	Strict
)

// ParsePolicy maps a config string to a Policy. Unknown values fall back
// to GracePeriod.
func ParsePolicy(s string) Policy {
	if s == "strict" {
		return Strict
	}
	return GracePeriod
}

// Recompute runs a full pass over the sequence and returns a new slice with
// ShowGapFlag recomputed for every entry. The input is not mutated.
//
// Every flag is reset first, then re-raised only where the current dates
// support it, so a flag never outlives the data that produced it. A pair
// with a missing or unparseable date on either side stays unevaluated for
// this pass. The first entry has no predecessor and is never flagged.
// When an evaluated pair turns out gap-free, the successor's GapReason is
// cleared: it belonged to a gap that no longer exists.
func Recompute(entries []models.DraftEntry, p Policy) []models.DraftEntry {
	out := make([]models.DraftEntry, len(entries))
	copy(out, entries)

	for i := range out {
		out[i].ShowGapFlag = false
	}

	for i := 0; i < len(out)-1; i++ {
		end, ok := parseDate(out[i].EndDate)
		if !ok {
			continue
		}
		start, ok := parseDate(out[i+1].StartDate)
		if !ok {
			continue
		}

		gap := start.Sub(end)

		var flagged bool
		switch p {
		case Strict:
			flagged = gap > 0
		default:
			flagged = gap > 24*time.Hour
		}

		if flagged {
			out[i+1].ShowGapFlag = true
		} else {
			out[i+1].GapReason = ""
		}
	}

	return out
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(common.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
