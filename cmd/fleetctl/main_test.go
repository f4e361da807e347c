package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleettools/fleetd/pkg/faults"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", faults.Validation("title", "required"), exitValidation},
		{"not found", faults.ErrNotFound, exitValidation},
		{"precondition", faults.ErrNotAssigned, exitValidation},
		{"cyclic plan", faults.ErrCyclicDependency, exitValidation},
		{"store unavailable", faults.Wrap(faults.KindTransient, "cannot open coordination store", errors.New("locked")), exitUnavailable},
		{"config failure", &configError{err: errors.New("no fleet.yaml")}, exitConfig},
		{"wrapped config failure", fmt.Errorf("startup: %w", &configError{err: errors.New("bad yaml")}), exitConfig},
		{"conflict", faults.ErrDuplicateEvent, 1},
		{"uncategorised", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
