package gengo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gengo/gengo-go/models"
)

func TestAccountBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/balance", r.URL.Path)
		writeOK(w, `{"credits":"25.32","currency":"USD"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	balance, err := c.AccountBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "25.32", balance.Credits)
	assert.Equal(t, "USD", balance.Currency)
}

func TestAccountStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/stats", r.URL.Path)
		writeOK(w, `{"credits_spent":"1023.31","user_since":1234089500,"currency":"USD"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	stats, err := c.AccountStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1023.31", stats.CreditsSpent)
	assert.Equal(t, int64(1234089500), stats.UserSince)
}

func TestSubmitTranslationJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		var decoded map[string]models.Job
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &decoded))
		assert.Equal(t, "text", decoded["job"].Type)
		assert.Equal(t, "Hello world", decoded["job"].BodySrc)
		assert.Equal(t, "en", decoded["job"].LcSrc)

		writeOK(w, `{"job":{"job_id":901,"slug":"hello","status":"available","credits":"0.30"}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	job, err := c.SubmitTranslationJob(context.Background(), models.Job{
		Type:    "text",
		Slug:    "hello",
		BodySrc: "Hello world",
		LcSrc:   "en",
		LcTgt:   "ja",
		Tier:    "standard",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(901), job.JobID)
	assert.Equal(t, "available", job.Status)
}

func TestSubmitTranslationJobs_AsGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/jobs", r.URL.Path)
		require.NoError(t, r.ParseForm())

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &decoded))
		assert.Equal(t, float64(1), decoded["as_group"])
		assert.Len(t, decoded["jobs"], 2)

		writeOK(w, `{"order_id":88,"job_count":2,"credits_used":"2.10","currency":"USD"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	submission, err := c.SubmitTranslationJobs(context.Background(), []models.Job{
		{Type: "text", BodySrc: "one", LcSrc: "en", LcTgt: "ja"},
		{Type: "text", BodySrc: "two", LcSrc: "en", LcTgt: "ja"},
	}, true)

	require.NoError(t, err)
	assert.Equal(t, int64(88), submission.OrderID)
	assert.Equal(t, 2, submission.JobCount)
}

func TestUpdateTranslationJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/translate/job/77", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostFormValue("data"), `"action":"revise"`)
		writeOK(w, "{}")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.UpdateTranslationJob(context.Background(), 77, models.Action{
		Action:  "revise",
		Comment: "please reword the greeting",
	})
	require.NoError(t, err)
}

func TestTranslationJobRevision_PathArguments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/job/42/revisions/3", r.URL.Path)
		writeOK(w, `{"revision":{"rev_id":3,"body_tgt":"こんにちは","ctime":1352110500}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	rev, err := c.TranslationJobRevision(context.Background(), 42, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), rev.RevID)
	assert.Equal(t, "こんにちは", rev.BodyTgt)
}

func TestTranslationJobs_Filters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/jobs", r.URL.Path)
		assert.Equal(t, "available", r.URL.Query().Get("status"))
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		writeOK(w, `[{"job_id":1,"ctime":100},{"job_id":2,"ctime":200}]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	jobs, err := c.TranslationJobs(context.Background(), Args{"status": "available", "count": 5})

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, int64(2), jobs[1].JobID)
}

func TestServiceLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/service/languages", r.URL.Path)
		writeOK(w, `[{"language":"Japanese","localized_name":"日本語","lc":"ja","unit_type":"character"}]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	langs, err := c.ServiceLanguages(context.Background())

	require.NoError(t, err)
	require.Len(t, langs, 1)
	assert.Equal(t, "ja", langs[0].Lc)
}

func TestServiceLanguagePairs_SourceFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("lc_src"))
		writeOK(w, `[{"lc_src":"en","lc_tgt":"ja","tier":"standard","unit_price":"0.0300","currency":"USD"}]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	pairs, err := c.ServiceLanguagePairs(context.Background(), Args{"lc_src": "en"})

	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "0.0300", pairs[0].UnitPrice)
}

func TestTranslationOrderJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/order/55", r.URL.Path)
		writeOK(w, `{"order":{"order_id":55,"total_credits":"4.50","total_units":150,"currency":"USD","jobs_available":[10,11]}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	order, err := c.TranslationOrderJobs(context.Background(), 55)

	require.NoError(t, err)
	assert.Equal(t, int64(55), order.OrderID)
	assert.Equal(t, []int64{10, 11}, order.JobsAvailable)
}

func TestTranslationJobComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/job/12/comments", r.URL.Path)
		writeOK(w, `{"thread":[{"body":"please hurry","author":"customer","ctime":1352110500}]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	thread, err := c.TranslationJobComments(context.Background(), 12)

	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, "customer", thread[0].Author)
}

func TestSubmitTranslationJobComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate/job/12/comment", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.JSONEq(t, `{"body":"looks great"}`, r.PostFormValue("data"))
		writeOK(w, "{}")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.SubmitTranslationJobComment(context.Background(), 12, models.Comment{Body: "looks great"})
	require.NoError(t, err)
}

func TestGlossaryList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate/glossary", r.URL.Path)
		writeOK(w, `[{"id":3,"title":"product terms","status":1,"unit_count":42}]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	glossaries, err := c.GlossaryList(context.Background())

	require.NoError(t, err)
	require.Len(t, glossaries, 1)
	assert.Equal(t, "product terms", glossaries[0].Title)
}
