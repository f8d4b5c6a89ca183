package remote

import (
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/healthdash/internal/model"
)

// PreferencesRecord is the wire/row shape of the preferences table.
// Absent (nil) fields are left untouched by an upsert.
type PreferencesRecord struct {
	ID                         uuid.UUID  `json:"id"`
	HydrationThresholdTemp     *float64   `json:"hydration_threshold_temp,omitempty"`
	HydrationThresholdHumidity *float64   `json:"hydration_threshold_humidity,omitempty"`
	HydrationThresholdUV       *float64   `json:"hydration_threshold_uv,omitempty"`
	HydrationInterval          *int       `json:"hydration_interval,omitempty"`
	StretchInterval            *int       `json:"stretch_interval,omitempty"`
	SleepTime                  *string    `json:"sleep_time,omitempty"`
	WakeTime                   *string    `json:"wake_time,omitempty"`
	UpdatedAt                  *time.Time `json:"updated_at,omitempty"`
}

// RecordFromPreferences builds a full record for id stamped with updatedAt.
func RecordFromPreferences(id uuid.UUID, p model.Preferences, updatedAt time.Time) PreferencesRecord {
	patch := p.Patch()
	return PreferencesRecord{
		ID:                         id,
		HydrationThresholdTemp:     patch.HydrationThresholdTemp,
		HydrationThresholdHumidity: patch.HydrationThresholdHumidity,
		HydrationThresholdUV:       patch.HydrationThresholdUV,
		HydrationInterval:          patch.HydrationInterval,
		StretchInterval:            patch.StretchInterval,
		SleepTime:                  patch.SleepTime,
		WakeTime:                   patch.WakeTime,
		UpdatedAt:                  &updatedAt,
	}
}

// Patch converts the record into a partial preferences update. Clock
// values stored as SQL time ("22:00:00") are trimmed to HH:MM.
func (r PreferencesRecord) Patch() model.PreferencesPatch {
	return model.PreferencesPatch{
		HydrationThresholdTemp:     r.HydrationThresholdTemp,
		HydrationThresholdHumidity: r.HydrationThresholdHumidity,
		HydrationThresholdUV:       r.HydrationThresholdUV,
		HydrationInterval:          r.HydrationInterval,
		StretchInterval:            r.StretchInterval,
		SleepTime:                  trimSeconds(r.SleepTime),
		WakeTime:                   trimSeconds(r.WakeTime),
		UpdatedAt:                  r.UpdatedAt,
	}
}

func trimSeconds(s *string) *string {
	if s == nil || len(*s) != len("00:00:00") {
		return s
	}
	t := (*s)[:5]
	return &t
}
