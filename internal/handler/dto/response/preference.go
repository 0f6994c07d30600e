package response

import (
	"time"

	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PreferenceEntryResponse struct {
	Date        time.Time  `json:"date"`
	ShiftTypeID *uuid.UUID `json:"shift_type_id,omitempty"`
	PrefersOff  bool       `json:"prefers_off"`
	Note        *string    `json:"note,omitempty"`
}

type PreferencePeriodResponse struct {
	ID       uuid.UUID                 `json:"id"`
	Year     int                       `json:"year"`
	Month    int                       `json:"month"`
	IsOpen   bool                      `json:"is_open"`
	Deadline time.Time                 `json:"deadline"`
	Entries  []PreferenceEntryResponse `json:"entries"`
}

func FromPreferencePeriodView(v *queries.PreferencePeriodView) *PreferencePeriodResponse {
	var resp PreferencePeriodResponse
	_ = copier.Copy(&resp, v)
	if resp.Entries == nil {
		resp.Entries = []PreferenceEntryResponse{}
	}
	return &resp
}
