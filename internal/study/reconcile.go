package study

// ReconcilePlanStatus derives a plan's status from its tasks' statuses.
// Skipped tasks count as resolved.
func ReconcilePlanStatus(statuses []TaskStatus) PlanStatus {
	if len(statuses) == 0 {
		return PlanPending
	}
	incomplete := 0
	for _, s := range statuses {
		if s == TaskIncomplete {
			incomplete++
		}
	}
	switch incomplete {
	case 0:
		return PlanDone
	case len(statuses):
		return PlanPending
	default:
		return PlanInProgress
	}
}
