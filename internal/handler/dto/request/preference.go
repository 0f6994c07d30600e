package request

import (
	"time"

	"shiftboard/internal/usecase/commands"

	"github.com/google/uuid"
)

type PreferenceEntryRequest struct {
	Date        string     `json:"date" binding:"required,datetime=2006-01-02"`
	ShiftTypeID *uuid.UUID `json:"shift_type_id,omitempty"`
	PrefersOff  bool       `json:"prefers_off"`
	Note        *string    `json:"note,omitempty" binding:"omitempty,max=200"`
}

type SubmitPreferencesRequest struct {
	Year    int                      `json:"year" binding:"required,min=2000,max=2100"`
	Month   int                      `json:"month" binding:"required,min=1,max=12"`
	Entries []PreferenceEntryRequest `json:"entries" binding:"required,dive"`
}

func (r SubmitPreferencesRequest) ToInput() (commands.SubmitPreferencesInput, error) {
	entries := make([]commands.PreferenceEntryInput, len(r.Entries))
	for i, e := range r.Entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return commands.SubmitPreferencesInput{}, err
		}
		entries[i] = commands.PreferenceEntryInput{
			Date:        date,
			ShiftTypeID: e.ShiftTypeID,
			PrefersOff:  e.PrefersOff,
			Note:        trimmedPtr(e.Note),
		}
	}
	return commands.SubmitPreferencesInput{
		Year:    r.Year,
		Month:   r.Month,
		Entries: entries,
	}, nil
}
