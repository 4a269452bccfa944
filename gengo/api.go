package gengo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gengo/gengo-go/models"
)

// Typed wrappers, one per entry of the endpoint table. Each delegates to
// Invoke and decodes the envelope's response payload into its models type;
// the dispatch itself stays table-driven.

// decodeResult unmarshals an envelope's response payload into dst.
func decodeResult(env *Envelope, what string, dst any) error {
	if err := json.Unmarshal(env.Response, dst); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	return nil
}

// AccountStats returns usage statistics of the authenticated account.
func (c *Client) AccountStats(ctx context.Context) (*models.AccountStats, error) {
	env, err := c.Invoke(ctx, "getAccountStats", nil)
	if err != nil {
		return nil, err
	}
	var stats models.AccountStats
	if err := decodeResult(env, "account stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AccountBalance returns the account's available credit.
func (c *Client) AccountBalance(ctx context.Context) (*models.AccountBalance, error) {
	env, err := c.Invoke(ctx, "getAccountBalance", nil)
	if err != nil {
		return nil, err
	}
	var balance models.AccountBalance
	if err := decodeResult(env, "account balance", &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SubmitTranslationJob submits a single job for translation and returns the
// created job record.
func (c *Client) SubmitTranslationJob(ctx context.Context, job models.Job) (*models.JobRecord, error) {
	env, err := c.Invoke(ctx, "postTranslationJob", Args{"job": job})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Job models.JobRecord `json:"job"`
	}
	if err := decodeResult(env, "submitted job", &wrap); err != nil {
		return nil, err
	}
	return &wrap.Job, nil
}

// SubmitTranslationJobs submits a batch of jobs in one order. With asGroup
// set the service assigns the whole batch to a single translator.
func (c *Client) SubmitTranslationJobs(ctx context.Context, jobs []models.Job, asGroup bool) (*models.JobsSubmission, error) {
	payload := map[string]any{"jobs": jobs}
	if asGroup {
		payload["as_group"] = 1
	}
	env, err := c.Invoke(ctx, "postTranslationJobs", Args{"jobs": payload})
	if err != nil {
		return nil, err
	}
	var submission models.JobsSubmission
	if err := decodeResult(env, "jobs submission", &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// UpdateTranslationJob applies an action (approve, revise, reject, …) to a
// job in progress.
func (c *Client) UpdateTranslationJob(ctx context.Context, jobID int64, action models.Action) error {
	_, err := c.Invoke(ctx, "updateTranslationJob", Args{"id": jobID, "action": action})
	return err
}

// TranslationJob fetches one job by id.
func (c *Client) TranslationJob(ctx context.Context, jobID int64) (*models.JobRecord, error) {
	env, err := c.Invoke(ctx, "getTranslationJob", Args{"id": jobID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Job models.JobRecord `json:"job"`
	}
	if err := decodeResult(env, "job", &wrap); err != nil {
		return nil, err
	}
	return &wrap.Job, nil
}

// TranslationJobs lists the account's jobs. filters may carry the optional
// listing parameters the service understands (status, timestamp_after,
// count); pass nil for no filtering.
func (c *Client) TranslationJobs(ctx context.Context, filters Args) ([]models.JobSummary, error) {
	env, err := c.Invoke(ctx, "getTranslationJobs", filters)
	if err != nil {
		return nil, err
	}
	var jobs []models.JobSummary
	if err := decodeResult(env, "job listing", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// TranslationJobBatch fetches all jobs submitted together with the given job.
func (c *Client) TranslationJobBatch(ctx context.Context, jobID int64) ([]models.JobRecord, error) {
	env, err := c.Invoke(ctx, "getTranslationJobBatch", Args{"id": jobID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Jobs []models.JobRecord `json:"jobs"`
	}
	if err := decodeResult(env, "job batch", &wrap); err != nil {
		return nil, err
	}
	return wrap.Jobs, nil
}

// TranslationJobGroup fetches the jobs of a group submitted with as_group.
func (c *Client) TranslationJobGroup(ctx context.Context, groupID int64) ([]models.JobRecord, error) {
	env, err := c.Invoke(ctx, "getTranslationJobGroup", Args{"id": groupID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Jobs []models.JobRecord `json:"jobs"`
	}
	if err := decodeResult(env, "job group", &wrap); err != nil {
		return nil, err
	}
	return wrap.Jobs, nil
}

// TranslationCostQuote estimates the cost of the given jobs without
// submitting them. File jobs carrying a FilePath are uploaded as multipart
// parts so the service can count translation units in the file contents.
func (c *Client) TranslationCostQuote(ctx context.Context, jobs []models.Job) ([]models.JobQuote, error) {
	env, err := c.Invoke(ctx, "determineTranslationCost", Args{"jobs": map[string]any{"jobs": jobs}})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Jobs []models.JobQuote `json:"jobs"`
	}
	if err := decodeResult(env, "cost quote", &wrap); err != nil {
		return nil, err
	}
	return wrap.Jobs, nil
}

// SubmitTranslationJobComment posts a comment on a job's thread.
func (c *Client) SubmitTranslationJobComment(ctx context.Context, jobID int64, comment models.Comment) error {
	_, err := c.Invoke(ctx, "postTranslationJobComment", Args{"id": jobID, "comment": comment})
	return err
}

// TranslationJobComments returns a job's comment thread.
func (c *Client) TranslationJobComments(ctx context.Context, jobID int64) ([]models.PostedComment, error) {
	env, err := c.Invoke(ctx, "getTranslationJobComments", Args{"id": jobID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Thread []models.PostedComment `json:"thread"`
	}
	if err := decodeResult(env, "comment thread", &wrap); err != nil {
		return nil, err
	}
	return wrap.Thread, nil
}

// TranslationJobFeedback returns the feedback left on a completed job.
func (c *Client) TranslationJobFeedback(ctx context.Context, jobID int64) (*models.Feedback, error) {
	env, err := c.Invoke(ctx, "getTranslationJobFeedback", Args{"id": jobID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Feedback models.Feedback `json:"feedback"`
	}
	if err := decodeResult(env, "feedback", &wrap); err != nil {
		return nil, err
	}
	return &wrap.Feedback, nil
}

// TranslationJobRevisions lists the revisions of a job's translation.
func (c *Client) TranslationJobRevisions(ctx context.Context, jobID int64) ([]models.Revision, error) {
	env, err := c.Invoke(ctx, "getTranslationJobRevisions", Args{"id": jobID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Revisions []models.Revision `json:"revisions"`
	}
	if err := decodeResult(env, "revisions", &wrap); err != nil {
		return nil, err
	}
	return wrap.Revisions, nil
}

// TranslationJobRevision fetches one specific revision of a job.
func (c *Client) TranslationJobRevision(ctx context.Context, jobID, revisionID int64) (*models.Revision, error) {
	env, err := c.Invoke(ctx, "getTranslationJobRevision", Args{"id": jobID, "revision_id": revisionID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Revision models.Revision `json:"revision"`
	}
	if err := decodeResult(env, "revision", &wrap); err != nil {
		return nil, err
	}
	return &wrap.Revision, nil
}

// TranslationJobPreview returns the raw response payload of the job preview
// operation. The preview's shape varies by job type, so no decoding beyond
// the envelope is attempted.
func (c *Client) TranslationJobPreview(ctx context.Context, jobID int64) (json.RawMessage, error) {
	env, err := c.Invoke(ctx, "getTranslationJobPreviewImage", Args{"id": jobID})
	if err != nil {
		return nil, err
	}
	return env.Response, nil
}

// DeleteTranslationJob cancels a job that has not been started yet.
func (c *Client) DeleteTranslationJob(ctx context.Context, jobID int64) error {
	_, err := c.Invoke(ctx, "deleteTranslationJob", Args{"id": jobID})
	return err
}

// ServiceLanguagePairs lists translatable language combinations and their
// unit prices. filters may carry lc_src to restrict the source language.
func (c *Client) ServiceLanguagePairs(ctx context.Context, filters Args) ([]models.LanguagePair, error) {
	env, err := c.Invoke(ctx, "getServiceLanguagePairs", filters)
	if err != nil {
		return nil, err
	}
	var pairs []models.LanguagePair
	if err := decodeResult(env, "language pairs", &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ServiceLanguages lists every language the service supports.
func (c *Client) ServiceLanguages(ctx context.Context) ([]models.Language, error) {
	env, err := c.Invoke(ctx, "getServiceLanguages", nil)
	if err != nil {
		return nil, err
	}
	var langs []models.Language
	if err := decodeResult(env, "languages", &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// GlossaryList lists the account's glossaries.
func (c *Client) GlossaryList(ctx context.Context) ([]models.Glossary, error) {
	env, err := c.Invoke(ctx, "getGlossaryList", nil)
	if err != nil {
		return nil, err
	}
	var glossaries []models.Glossary
	if err := decodeResult(env, "glossary list", &glossaries); err != nil {
		return nil, err
	}
	return glossaries, nil
}

// Glossary fetches one glossary by id.
func (c *Client) Glossary(ctx context.Context, glossaryID int64) (*models.Glossary, error) {
	env, err := c.Invoke(ctx, "getGlossary", Args{"id": glossaryID})
	if err != nil {
		return nil, err
	}
	var glossary models.Glossary
	if err := decodeResult(env, "glossary", &glossary); err != nil {
		return nil, err
	}
	return &glossary, nil
}

// TranslationOrderJobs fetches an order and the per-state breakdown of its
// jobs.
func (c *Client) TranslationOrderJobs(ctx context.Context, orderID int64) (*models.Order, error) {
	env, err := c.Invoke(ctx, "getTranslationOrderJobs", Args{"id": orderID})
	if err != nil {
		return nil, err
	}
	var wrap struct {
		Order models.Order `json:"order"`
	}
	if err := decodeResult(env, "order", &wrap); err != nil {
		return nil, err
	}
	return &wrap.Order, nil
}
