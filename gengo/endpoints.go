package gengo

import "net/http"

// endpoint is one entry of the API operation table: the HTTP method, the
// URL path template and whether the operation accepts multipart file
// uploads.
//
// Path parameters are written as mustaches ({{id}}, {{revision_id}}) and are
// substituted from same-named call arguments at request time.
type endpoint struct {
	method string
	path   string
	upload bool
}

// endpoints maps every supported logical operation to its definition.
// Adding support for a new remote operation means adding one entry here;
// the request pipeline needs no changes.
var endpoints = map[string]endpoint{
	// Account information.
	"getAccountStats":   {method: http.MethodGet, path: "/account/stats"},
	"getAccountBalance": {method: http.MethodGet, path: "/account/balance"},

	// Creating new translation jobs.
	"postTranslationJob":  {method: http.MethodPost, path: "/translate/job"},
	"postTranslationJobs": {method: http.MethodPost, path: "/translate/jobs"},

	// Updating an existing translation job.
	"updateTranslationJob": {method: http.MethodPut, path: "/translate/job/{{id}}"},

	// Viewing existing translation jobs.
	"getTranslationJob":      {method: http.MethodGet, path: "/translate/job/{{id}}"},
	"getTranslationJobs":     {method: http.MethodGet, path: "/translate/jobs"},
	"getTranslationJobBatch": {method: http.MethodGet, path: "/translate/jobs/{{id}}"},
	"getTranslationJobGroup": {method: http.MethodGet, path: "/translate/jobs/group/{{id}}"},

	// Cost estimation. Upload-capable: file jobs in the payload are sent as
	// multipart parts so the service can count units in the file itself.
	"determineTranslationCost": {method: http.MethodPost, path: "/translate/service/quote", upload: true},

	// Comments and other job metadata.
	"postTranslationJobComment":     {method: http.MethodPost, path: "/translate/job/{{id}}/comment"},
	"getTranslationJobComments":     {method: http.MethodGet, path: "/translate/job/{{id}}/comments"},
	"getTranslationJobFeedback":     {method: http.MethodGet, path: "/translate/job/{{id}}/feedback"},
	"getTranslationJobRevisions":    {method: http.MethodGet, path: "/translate/job/{{id}}/revisions"},
	"getTranslationJobRevision":     {method: http.MethodGet, path: "/translate/job/{{id}}/revisions/{{revision_id}}"},
	"getTranslationJobPreviewImage": {method: http.MethodGet, path: "/translate/job/{{id}}/preview"},

	// Deleting a job.
	"deleteTranslationJob": {method: http.MethodDelete, path: "/translate/job/{{id}}"},

	// Language information: which languages convert to which, and at what price.
	"getServiceLanguagePairs": {method: http.MethodGet, path: "/translate/service/language_pairs"},
	"getServiceLanguages":     {method: http.MethodGet, path: "/translate/service/languages"},

	// Glossaries.
	"getGlossaryList": {method: http.MethodGet, path: "/translate/glossary"},
	"getGlossary":     {method: http.MethodGet, path: "/translate/glossary/{{id}}"},

	// Order information.
	"getTranslationOrderJobs": {method: http.MethodGet, path: "/translate/order/{{id}}"},
}

// lookupEndpoint resolves a logical operation name to its endpoint
// definition. The second return value reports whether the name is known.
func lookupEndpoint(name string) (endpoint, bool) {
	ep, ok := endpoints[name]
	return ep, ok
}
