package shiftchange

import "errors"

var ErrInvalidTransition = errors.New("action not allowed in current status")

// Action is the closed set of things that can happen to a change request.
// Conditional outcomes are modeled as distinct actions (withdrawing the last
// offer differs from withdrawing one of several) so the transition table
// stays a pure lookup.
type Action string

const (
	ActionSubmitOffer       Action = "submit_offer"
	ActionWithdrawOffer     Action = "withdraw_offer"
	ActionWithdrawLastOffer Action = "withdraw_last_offer"
	ActionCancel            Action = "cancel"
	ActionSelectOffer       Action = "select_offer"
	ActionApprove           Action = "approve"
	ActionComplete          Action = "complete"
	ActionAdminResolve      Action = "admin_resolve"
	ActionReject            Action = "reject"
	ActionExpire            Action = "expire"
)

type transitionKey struct {
	from   Status
	action Action
}

var transitions = map[transitionKey]Status{
	{StatusOpen, ActionSubmitOffer}:      StatusSelecting,
	{StatusSelecting, ActionSubmitOffer}: StatusSelecting,

	{StatusSelecting, ActionWithdrawOffer}:     StatusSelecting,
	{StatusSelecting, ActionWithdrawLastOffer}: StatusOpen,

	{StatusOpen, ActionCancel}:      StatusCancelled,
	{StatusSelecting, ActionCancel}: StatusCancelled,

	{StatusSelecting, ActionSelectOffer}: StatusAwaitingApproval,

	{StatusAwaitingApproval, ActionApprove}:  StatusAwaitingApproval,
	{StatusAwaitingApproval, ActionComplete}: StatusCompleted,
	{StatusAwaitingApproval, ActionReject}:   StatusRejected,

	// Admins may deny a request before any offer was selected (the only
	// path to reject an offer-less absence or swap).
	{StatusOpen, ActionReject}:      StatusRejected,
	{StatusSelecting, ActionReject}: StatusRejected,

	// Admin resolution of offer-less ABSENCE/SWAP requests skips the
	// selection phase entirely.
	{StatusOpen, ActionAdminResolve}:      StatusCompleted,
	{StatusSelecting, ActionAdminResolve}: StatusCompleted,

	{StatusOpen, ActionExpire}:      StatusExpired,
	{StatusSelecting, ActionExpire}: StatusExpired,
}

// Transition returns the status an action leads to from the current status,
// or ErrInvalidTransition. Guards beyond (status, action) membership — actor
// identity, offer counts, approval completeness — belong to the orchestrator.
func Transition(current Status, action Action) (Status, error) {
	next, ok := transitions[transitionKey{from: current, action: action}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// CanApply reports whether an action is valid from the current status.
func CanApply(current Status, action Action) bool {
	_, ok := transitions[transitionKey{from: current, action: action}]
	return ok
}
