// SPDX-License-Identifier: Apache-2.0

// Package gengo is a client for the Gengo translation-service HTTP API.
//
// A Client maps logical operation names (see endpoints.go) onto signed HTTP
// requests: read operations are dispatched with a signed query string, write
// operations with a signed form body carrying the JSON-encoded payload, and
// upload-capable operations additionally attach local files as multipart
// parts. Responses are decoded from the service's JSON envelope into results
// or typed errors.
//
// Typed wrappers for every operation live in api.go; Invoke is the generic
// table-driven entry point they all share.
package gengo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-resty/resty/v2"

	"github.com/gengo/gengo-go/internal/logger"
)

// Args are the named arguments of one logical call. The payload-carrying
// keys "job", "jobs", "comment" and "action" are JSON-encoded into the
// request body ("job_ids" is consumed alongside them but stays off the
// wire); keys matching a {{mustache}} in the operation's URL template are
// substituted into the path; everything else becomes a query or form
// parameter. Supply at most one payload-carrying key per call.
type Args map[string]any

// Envelope is the decoded response of a successful call. Response holds the
// operation's payload, still raw so callers (and the typed wrappers) can
// decode it into whatever shape the operation returns.
type Envelope struct {
	Opstat   string          `json:"opstat"`
	Response json.RawMessage `json:"response"`
}

// Client issues signed requests against the Gengo API. It holds no mutable
// state besides the resty transport, which is safe for concurrent use, so a
// single Client may be shared freely across goroutines.
type Client struct {
	cfg     Config
	baseURL string
	headers map[string]string
	http    *resty.Client
	log     *logger.Logger
}

// New validates cfg and constructs a Client.
//
// cfg.APIVersion must be "1.1" or "2" (empty defaults to "2"); anything else
// fails with ErrUnsupportedVersion. User headers are merged over the library
// defaults, and Accept is always forced to application/json.
func New(cfg Config) (*Client, error) {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2"
	}
	if cfg.APIVersion != "1.1" && cfg.APIVersion != "2" {
		return nil, fmt.Errorf("%w: %q (supported versions: 1.1, 2)", ErrUnsupportedVersion, cfg.APIVersion)
	}

	headers := make(map[string]string, len(cfg.Headers)+2)
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	if err := mergo.Merge(&headers, defaultHeaders()); err != nil {
		return nil, fmt.Errorf("merge default headers: %w", err)
	}
	headers["Accept"] = "application/json"

	base := cfg.BaseURL
	if base == "" {
		base = productionURL
		if cfg.Sandbox {
			base = sandboxURL
		}
	}
	base = strings.Replace(base, "{{version}}", "v"+cfg.APIVersion, 1)
	base = strings.TrimRight(base, "/")

	log := logger.Nop()
	if cfg.Debug {
		log = logger.New("gengo")
	}

	return &Client{
		cfg:     cfg,
		baseURL: base,
		headers: headers,
		http:    resty.New(),
		log:     log,
	}, nil
}

// Invoke performs one logical API call: it resolves name against the
// endpoint table, builds and signs the request from args, executes exactly
// one HTTP round-trip, and decodes the JSON envelope.
//
// Unknown names fail with ErrUnsupportedOperation before any network
// activity. Remote failures surface as *APIError (or *AuthError for
// credential problems); transport failures are wrapped and returned as-is.
func (c *Client) Invoke(ctx context.Context, name string, args Args) (*Envelope, error) {
	ep, ok := lookupEndpoint(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, name)
	}

	cl := newCall(args)
	u := cl.resolveURL(c.baseURL + ep.path)

	params := cl.params()
	if c.cfg.PublicKey != "" {
		params["api_key"] = c.cfg.PublicKey
	}
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	params["ts"] = ts

	req := c.http.R().SetContext(ctx).SetHeaders(c.headers)

	switch ep.method {
	case http.MethodGet, http.MethodDelete:
		if c.cfg.PrivateKey != "" {
			params["api_sig"] = signTimestamp(c.cfg.PrivateKey, ts)
		}
		req.SetQueryParams(params)

	case http.MethodPost, http.MethodPut:
		if ep.upload {
			files, err := cl.prepareUpload()
			if err != nil {
				return nil, err
			}
			for key, path := range files {
				f, err := os.Open(path)
				if err != nil {
					return nil, fmt.Errorf("open upload file %q: %w", path, err)
				}
				defer f.Close()
				req.SetFileReader(key, filepath.Base(path), f)
			}
		}

		data, err := cl.encodePayload()
		if err != nil {
			return nil, err
		}
		if data != "" {
			params["data"] = data
		}
		if c.cfg.PrivateKey != "" {
			params["api_sig"] = signTimestamp(c.cfg.PrivateKey, ts)
		}
		req.SetFormData(params)
	}

	c.log.Debug().
		Str("operation", name).
		Str("method", ep.method).
		Str("url", u).
		Str("ts", ts).
		Str("api_sig", params["api_sig"]).
		Msg("dispatching request")

	resp, err := req.Execute(ep.method, u)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", name, err)
	}

	return decodeEnvelope(name, resp.Body())
}

// decodeEnvelope parses body as a response envelope. A missing opstat is
// treated as success; any opstat other than "ok" is classified into the
// matching error variant.
func decodeEnvelope(name string, body []byte) (*Envelope, error) {
	var env struct {
		Envelope
		Err *remoteError `json:"err"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%s decode response: %w", name, err)
	}
	if env.Opstat != "" && env.Opstat != "ok" {
		return nil, classifyRemoteError(env.Err)
	}
	return &env.Envelope, nil
}
