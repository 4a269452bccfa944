package models

// JobRecord is the full job entity as stored by the service, returned from
// job reads and job submissions.
type JobRecord struct {
	JobID       int64  `json:"job_id"`
	OrderID     int64  `json:"order_id,omitempty"`
	Slug        string `json:"slug"`
	BodySrc     string `json:"body_src"`
	BodyTgt     string `json:"body_tgt,omitempty"`
	LcSrc       string `json:"lc_src"`
	LcTgt       string `json:"lc_tgt"`
	UnitCount   int    `json:"unit_count"`
	Tier        string `json:"tier"`
	Credits     string `json:"credits"`
	Status      string `json:"status"`
	Eta         int64  `json:"eta"`
	Ctime       int64  `json:"ctime"`
	CallbackURL string `json:"callback_url,omitempty"`
	AutoApprove int    `json:"auto_approve,omitempty"`
	CustomData  string `json:"custom_data,omitempty"`
}

// JobSummary is the abbreviated job entry returned by job listings.
type JobSummary struct {
	JobID int64 `json:"job_id"`
	Ctime int64 `json:"ctime"`
}

// JobQuote is a per-job cost estimate returned by the quote endpoint.
type JobQuote struct {
	Type       string `json:"type"`
	UnitCount  int    `json:"unit_count"`
	Credits    string `json:"credits"`
	Eta        int64  `json:"eta"`
	Currency   string `json:"currency"`
	LcSrc      string `json:"lc_src,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

// JobsSubmission is the result of posting a batch of jobs.
type JobsSubmission struct {
	OrderID     int64       `json:"order_id"`
	JobCount    int         `json:"job_count"`
	CreditsUsed string      `json:"credits_used"`
	Currency    string      `json:"currency"`
	Jobs        []JobRecord `json:"jobs,omitempty"`
}
