package models

// Comment is the payload for posting a comment on a translation job.
type Comment struct {
	Body string `json:"body"`
}

// PostedComment is a single entry of a job's comment thread as returned by
// the service.
type PostedComment struct {
	Body   string `json:"body"`
	Author string `json:"author"`
	Ctime  int64  `json:"ctime"`
}
