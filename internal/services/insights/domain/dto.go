// Package domain holds DTOs for insights http and service contracts
package domain

// NoData is the label rendered when a series has nothing to show.
// Zero states are one-element series, never empty arrays
const NoData = "No data available"

// Series is a labels/data pair ready for charting
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// CountSeries is a labels/counts pair ready for charting
type CountSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// CodingStats summarizes a user's logged coding time
type CodingStats struct {
	TotalHours   float64 `json:"totalHours" example:"123.4"`
	DailyAverage float64 `json:"dailyAverage" example:"1.7"`
}

// CodingTime is the full coding-time insight payload
type CodingTime struct {
	Weekly    Series             `json:"weekly"`
	Languages map[string]float64 `json:"languages"`
	Projects  map[string]float64 `json:"projects"`
	Stats     CodingStats        `json:"stats"`
}

// SkillsByMonth is the monthly skill acquisition insight
type SkillsByMonth struct {
	Monthly CountSeries `json:"monthly"`
	// Skills lists acquired skill names, display cased
	Skills []string `json:"skills"`
}

// ProjectCompletion partitions projects by status and buckets the finished
// ones by month
type ProjectCompletion struct {
	Statuses map[string]int `json:"statuses"`
	Monthly  CountSeries    `json:"monthly"`
}
