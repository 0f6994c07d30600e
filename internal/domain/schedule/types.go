package schedule

type PeriodStatus string

const (
	PeriodDraft     PeriodStatus = "DRAFT"
	PeriodPublished PeriodStatus = "PUBLISHED"
	PeriodArchived  PeriodStatus = "ARCHIVED"
)

func (s PeriodStatus) String() string {
	return string(s)
}

func (s PeriodStatus) IsValid() bool {
	switch s {
	case PeriodDraft, PeriodPublished, PeriodArchived:
		return true
	default:
		return false
	}
}
