package model

import "time"

// DateLayout is the wire format for every date in the heatmap payload.
const DateLayout = "2006-01-02"

// ContributionDay is one raw upstream day: calendar date (day
// granularity, UTC midnight) and non-negative contribution count.
type ContributionDay struct {
	Date  time.Time
	Count int
}

// ContributionCalendar is the flattened trailing window of days.
// Invariant: contiguous, strictly increasing by date, no gaps or
// duplicates. The GitHub client validates this while flattening.
type ContributionCalendar []ContributionDay

// HeatmapDay is the output unit, derived one-to-one from ContributionDay.
type HeatmapDay struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"` // 0 = Sunday
	Count   int    `json:"count"`
	Level   int    `json:"level"` // 0..4
}

// HeatmapWeek holds the days sharing one Sunday-aligned week start.
// Only the first and last week of the window may be partial.
type HeatmapWeek struct {
	WeekStart string       `json:"week_start"`
	Days      []HeatmapDay `json:"days"`
}

// HeatmapResponse is the full /heatmap/me payload.
type HeatmapResponse struct {
	Username string        `json:"username"`
	Total    int           `json:"total"`
	Weeks    []HeatmapWeek `json:"weeks"`
}
