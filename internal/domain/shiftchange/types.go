package shiftchange

type Status string

const (
	StatusOpen             Status = "OPEN"
	StatusSelecting        Status = "SELECTING"
	StatusAwaitingApproval Status = "AWAITING_APPROVAL"
	StatusCompleted        Status = "COMPLETED"
	StatusCancelled        Status = "CANCELLED"
	StatusRejected         Status = "REJECTED"
	StatusExpired          Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusSelecting, StatusAwaitingApproval,
		StatusCompleted, StatusCancelled, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// AcceptsOffers reports whether new coverage offers may still be submitted.
func (s Status) AcceptsOffers() bool {
	return s == StatusOpen || s == StatusSelecting
}

type ChangeType string

const (
	TypeAbsence  ChangeType = "ABSENCE"
	TypeSwap     ChangeType = "SWAP"
	TypeCoverage ChangeType = "COVERAGE"
)

func (t ChangeType) String() string {
	return string(t)
}

func (t ChangeType) IsValid() bool {
	switch t {
	case TypeAbsence, TypeSwap, TypeCoverage:
		return true
	default:
		return false
	}
}

// AdminResolvable reports whether an admin may resolve the request directly,
// without a peer offer having been selected. Coverage always needs an offerer
// to hand the shift to.
func (t ChangeType) AdminResolvable() bool {
	return t == TypeAbsence || t == TypeSwap
}

type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

type OfferStatus string

const (
	OfferPending  OfferStatus = "PENDING"
	OfferSelected OfferStatus = "SELECTED"
	OfferRejected OfferStatus = "REJECTED"
)

func (s OfferStatus) String() string {
	return string(s)
}

type ApproverRole string

const (
	RoleRequester ApproverRole = "REQUESTER"
	RoleOfferer   ApproverRole = "OFFERER"
	RoleAdmin     ApproverRole = "ADMIN"
)

func (r ApproverRole) String() string {
	return string(r)
}
