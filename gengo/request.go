package gengo

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// placeholderPattern matches {{name}} mustaches in URL path templates.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_]+)\}\}`)

// missingArgument is substituted for a path placeholder with no matching
// call argument. Resolving to a literal marker instead of failing keeps
// exploratory and debug calls possible.
const missingArgument = "no_argument_specified"

// payloadKey identifies which payload-carrying argument was extracted from
// a call's argument set.
type payloadKey string

const (
	payloadJob     payloadKey = "job"
	payloadJobs    payloadKey = "jobs"
	payloadComment payloadKey = "comment"
	payloadAction  payloadKey = "action"
)

// call is the per-invocation working state of the request pipeline: the
// remaining plain arguments and the extracted structured payload. Each
// Invoke builds its own call, so nothing here is shared between requests.
type call struct {
	args       map[string]any
	payloadKey payloadKey
	payload    any
}

// newCall copies args (the caller's map is never mutated) and pulls the
// payload-carrying arguments out of it.
//
// At most one of job/jobs/comment/action should be supplied per call; when
// several are present the first in that fixed order wins for the encoded
// payload. All of them, plus job_ids, are consumed either way so none leaks
// into the query string or form fields.
func newCall(args Args) *call {
	c := &call{args: make(map[string]any, len(args))}
	for k, v := range args {
		c.args[k] = v
	}

	pop := func(key payloadKey) (any, bool) {
		v, ok := c.args[string(key)]
		if ok {
			delete(c.args, string(key))
		}
		return v, ok
	}

	if v, ok := pop(payloadJob); ok {
		// Single jobs go over the wire wrapped in a "job" member.
		c.payloadKey, c.payload = payloadJob, map[string]any{"job": v}
	}
	if v, ok := pop(payloadJobs); ok && c.payload == nil {
		c.payloadKey, c.payload = payloadJobs, v
	}
	if v, ok := pop(payloadComment); ok && c.payload == nil {
		c.payloadKey, c.payload = payloadComment, v
	}
	if v, ok := pop(payloadAction); ok && c.payload == nil {
		c.payloadKey, c.payload = payloadAction, v
	}

	// job_ids is consumed like the other payload keys but is never encoded
	// into the data field.
	delete(c.args, "job_ids")

	return c
}

// resolveURL substitutes every {{name}} mustache in template with the
// same-named call argument, consuming the argument so it does not reappear
// among the signed query/form parameters. Placeholders with no matching
// argument resolve to the missingArgument marker.
func (c *call) resolveURL(template string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[2 : len(m)-2]
		v, ok := c.args[name]
		if !ok {
			return missingArgument
		}
		delete(c.args, name)
		return stringify(v)
	})
}

// params returns the arguments left after payload extraction and URL
// substitution, stringified for query-string or form encoding. Percent
// escaping of the UTF-8 bytes happens exactly once, in the transport layer.
func (c *call) params() map[string]string {
	out := make(map[string]string, len(c.args))
	for k, v := range c.args {
		out[k] = stringify(v)
	}
	return out
}

// encodePayload renders the extracted payload as compact JSON for the data
// form field. An empty string means the call carries no payload.
func (c *call) encodePayload() (string, error) {
	if c.payload == nil {
		return "", nil
	}
	raw, err := json.Marshal(c.payload)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", c.payloadKey, err)
	}
	return string(raw), nil
}

// prepareUpload rewrites a jobs payload for multipart file upload. Job
// entries of type "file" that carry a file_path have the path popped out and
// replaced with a file_key referencing the multipart part that will carry
// the file contents. Returned is part key → local path for every file to
// attach; entries keep their slice index (file_0, file_1, …) or map key as
// the part suffix.
//
// The payload is normalised through JSON on the way, so both models.Job
// values and plain maps are handled uniformly.
func (c *call) prepareUpload() (map[string]string, error) {
	if c.payloadKey != payloadJobs || c.payload == nil {
		return nil, nil
	}

	norm, err := normalizePayload(c.payload)
	if err != nil {
		return nil, err
	}

	wrapper, ok := norm.(map[string]any)
	if !ok {
		return nil, nil
	}

	files := make(map[string]string)
	mark := func(key string, entry map[string]any) {
		if entry["type"] != "file" {
			return
		}
		path, ok := entry["file_path"].(string)
		if !ok || path == "" {
			return
		}
		partKey := "file_" + key
		files[partKey] = path
		entry["file_key"] = partKey
		delete(entry, "file_path")
	}

	switch jobs := wrapper["jobs"].(type) {
	case []any:
		for i, v := range jobs {
			if entry, ok := v.(map[string]any); ok {
				mark(fmt.Sprint(i), entry)
			}
		}
	case map[string]any:
		for k, v := range jobs {
			if entry, ok := v.(map[string]any); ok {
				mark(k, entry)
			}
		}
	}

	if len(files) == 0 {
		return nil, nil
	}

	// Encode the rewritten payload, not the caller's original value.
	c.payload = norm
	return files, nil
}

// normalizePayload round-trips v through JSON so the upload scan can treat
// typed structs and free-form maps the same way.
func normalizePayload(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jobs payload: %w", err)
	}
	var norm any
	if err := json.Unmarshal(raw, &norm); err != nil {
		return nil, fmt.Errorf("normalize jobs payload: %w", err)
	}
	return norm, nil
}

// stringify converts a call argument to its wire string form.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
