package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/models"
)

// reviewerID identifies dispatch as the author of automatic review verdicts.
const reviewerID = "dispatch"

// reviewCompleted is review gating: open a review on the completed sortie,
// run the automatic validators, and approve or reject with their feedback.
func (d *Scheduler) reviewCompleted(ctx context.Context, st *ent.Sortie) error {
	if st.Status != sortie.StatusCompleted {
		return nil
	}
	if _, err := d.sorties.OpenReview(ctx, st.ID, reviewerID); err != nil {
		return err
	}

	st, err := d.sorties.Get(ctx, st.ID)
	if err != nil {
		return err
	}
	problems := validateResult(st)
	if len(problems) == 0 {
		_, err := d.sorties.Approve(ctx, st.ID, models.ReviewRequest{Reviewer: reviewerID})
		return err
	}

	slog.Info("Review rejected sortie",
		"sortie_id", st.ID,
		"problems", len(problems))
	_, err = d.sorties.Reject(ctx, st.ID, models.ReviewRequest{
		Reviewer: reviewerID,
		Feedback: strings.Join(problems, "; "),
	})
	return err
}

// validateResult runs the automatic validators over a completion report:
// the tests_passed flag and declared-versus-touched files.
func validateResult(st *ent.Sortie) []string {
	var problems []string

	passed, ok := st.Result["tests_passed"].(bool)
	if !ok || !passed {
		problems = append(problems, "completion report does not attest passing tests")
	}

	if undeclared := undeclaredFiles(st); len(undeclared) > 0 {
		problems = append(problems,
			fmt.Sprintf("touched files not declared in the sortie: %s",
				strings.Join(undeclared, ", ")))
	}
	return problems
}

// undeclaredFiles returns files reported in the result that were not declared
// on the sortie. Sorties that declared no files accept any touched set.
func undeclaredFiles(st *ent.Sortie) []string {
	if len(st.Files) == 0 {
		return nil
	}
	declared := make(map[string]bool, len(st.Files))
	for _, f := range st.Files {
		declared[f] = true
	}

	var touched []string
	if raw, ok := st.Result["files"].([]any); ok {
		for _, v := range raw {
			if f, ok := v.(string); ok {
				touched = append(touched, f)
			}
		}
	}

	var undeclared []string
	for _, f := range touched {
		if !declared[f] {
			undeclared = append(undeclared, f)
		}
	}
	sort.Strings(undeclared)
	return undeclared
}
