package domain

// GuardDecision is the outcome of an ownership check.
type GuardDecision struct {
	Allowed bool
	// ActualAssignee is set on deny: the display name currently on the ticket.
	ActualAssignee string
}

// CheckOwnership decides whether a work log may be written against the
// ticket. Tickets with no assignee are allowed; otherwise the assignee's
// display name must exactly equal the expected name (case-sensitive, no
// normalization). A deny is a normal branch of the run, never an error.
func CheckOwnership(info TicketInfo, expectedDisplayName string) GuardDecision {
	if info.AssigneeDisplayName == "" || info.AssigneeDisplayName == expectedDisplayName {
		return GuardDecision{Allowed: true}
	}
	return GuardDecision{Allowed: false, ActualAssignee: info.AssigneeDisplayName}
}
