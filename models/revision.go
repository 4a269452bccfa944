package models

// Revision is one historical version of a job's translated text.
type Revision struct {
	RevID   int64  `json:"rev_id"`
	BodyTgt string `json:"body_tgt"`
	Ctime   int64  `json:"ctime"`
}

// Feedback is the customer feedback left on a completed job.
type Feedback struct {
	Rating        int    `json:"rating"`
	ForTranslator string `json:"for_translator"`
}
