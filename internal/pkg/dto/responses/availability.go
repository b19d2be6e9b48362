package responses

// HourAvailability is one raw slot of a provider's day, exactly as the
// upstream serves it. Fetched fresh on every provider or date change;
// never cached across changes.
type HourAvailability struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// HourOption is a raw slot plus its display label, recomputed whenever
// the raw list changes.
type HourOption struct {
	Hour      int    `json:"hour"`
	Available bool   `json:"available"`
	Label     string `json:"label"`
}

// DaySchedule groups a day's hour options into the three display
// buckets: morning (<12), afternoon (12-17) and night (>=18).
type DaySchedule struct {
	Morning   []HourOption `json:"morning"`
	Afternoon []HourOption `json:"afternoon"`
	Night     []HourOption `json:"night"`
}
