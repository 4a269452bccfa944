package models

// Order groups the jobs created by a single batch submission and tracks
// how many of them sit in each state.
type Order struct {
	OrderID        int64   `json:"order_id"`
	TotalCredits   string  `json:"total_credits"`
	TotalUnits     int     `json:"total_units"`
	Currency       string  `json:"currency"`
	JobsAvailable  []int64 `json:"jobs_available"`
	JobsPending    []int64 `json:"jobs_pending"`
	JobsReviewable []int64 `json:"jobs_reviewable"`
	JobsApproved   []int64 `json:"jobs_approved"`
	JobsQueued     int     `json:"jobs_queued"`
	TotalJobs      int     `json:"total_jobs"`
}
