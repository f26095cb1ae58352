package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcilePlanStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []TaskStatus
		want     PlanStatus
	}{
		{name: "no tasks", statuses: nil, want: PlanPending},
		{name: "empty slice", statuses: []TaskStatus{}, want: PlanPending},
		{name: "single incomplete", statuses: []TaskStatus{TaskIncomplete}, want: PlanPending},
		{name: "all incomplete", statuses: []TaskStatus{TaskIncomplete, TaskIncomplete, TaskIncomplete}, want: PlanPending},
		{name: "single complete", statuses: []TaskStatus{TaskComplete}, want: PlanDone},
		{name: "all skipped", statuses: []TaskStatus{TaskSkipped, TaskSkipped}, want: PlanDone},
		{name: "complete and skipped", statuses: []TaskStatus{TaskComplete, TaskSkipped, TaskComplete}, want: PlanDone},
		{name: "one complete one incomplete", statuses: []TaskStatus{TaskComplete, TaskIncomplete}, want: PlanInProgress},
		{name: "skipped with incomplete", statuses: []TaskStatus{TaskIncomplete, TaskSkipped}, want: PlanInProgress},
		{name: "mixed", statuses: []TaskStatus{TaskIncomplete, TaskComplete, TaskSkipped, TaskIncomplete}, want: PlanInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcilePlanStatus(tt.statuses)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ReconcilePlanStatus(tt.statuses))
		})
	}
}

func TestReconcilePlanStatus_TaskAddedAfterCompletion(t *testing.T) {
	statuses := []TaskStatus{TaskIncomplete}
	assert.Equal(t, PlanPending, ReconcilePlanStatus(statuses))

	statuses[0] = TaskComplete
	assert.Equal(t, PlanDone, ReconcilePlanStatus(statuses))

	statuses = append(statuses, TaskIncomplete)
	assert.Equal(t, PlanInProgress, ReconcilePlanStatus(statuses))
}
