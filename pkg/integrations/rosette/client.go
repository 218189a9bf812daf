package rosette

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/deptree/pkg/buildinfo"
	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/integrations"
)

// DefaultBaseURL is the public Rosette REST endpoint.
const DefaultBaseURL = "https://api.rosette.com/rest/v1/"

// KeyHeader carries the API key on every request.
const KeyHeader = "X-RosetteAPI-Key"

// RequestIDHeader carries a per-call UUID for correlating logs with the service.
const RequestIDHeader = "X-Request-Id"

// Request describes one analysis call. Exactly one of Content and ContentURI
// must be set. Language is an optional ISO 639-3 code; when empty the service
// detects the language itself.
type Request struct {
	Content    string
	ContentURI string
	Language   string
}

// Client provides access to the Rosette syntax dependencies endpoint.
//
// A Client makes exactly one HTTP call per [Client.SyntaxDependencies] and
// never retries.
type Client struct {
	*integrations.Client
	key     string
	baseURL string
}

// NewClient creates a Rosette client.
//
// Parameters:
//   - key: API key sent as X-RosetteAPI-Key (validated on each call, not here)
//   - baseURL: service root, [DefaultBaseURL] when empty
//   - timeout: bound on the request/response cycle, [integrations.DefaultTimeout] when zero
func NewClient(key, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client: integrations.NewClient(timeout, map[string]string{
			"User-Agent": buildinfo.UserAgent(),
		}),
		key:     key,
		baseURL: baseURL,
	}
}

type requestBody struct {
	Content    string `json:"content,omitempty"`
	ContentURI string `json:"contentUri,omitempty"`
	Language   string `json:"language,omitempty"`
}

type response struct {
	Sentences *[]sentence `json:"sentences"`
	Tokens    *[]string   `json:"tokens"`
}

type sentence struct {
	StartTokenIndex *int         `json:"startTokenIndex"`
	EndTokenIndex   *int         `json:"endTokenIndex"`
	Dependencies    []dependency `json:"dependencies"`
}

type dependency struct {
	DependencyType      string `json:"dependencyType"`
	GovernorTokenIndex  *int   `json:"governorTokenIndex"`
	DependentTokenIndex *int   `json:"dependentTokenIndex"`
}

// SyntaxDependencies sends the request to the service and returns the
// validated dependency parse.
//
// Input problems (no key, no input, both inputs, bad URI or language) are
// reported as CONFIGURATION_ERROR before any network activity. Network and
// status failures carry REQUEST_ERROR and API_ERROR as described in
// [integrations.Client.PostJSON]. A response that decodes but does not form
// a well-formed forest per sentence is a RESPONSE_FORMAT_ERROR.
func (c *Client) SyntaxDependencies(ctx context.Context, req Request) (*deptree.Parse, error) {
	body, err := c.buildBody(req)
	if err != nil {
		return nil, err
	}
	endpoint, err := url.JoinPath(c.baseURL, "syntax", "dependencies")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "invalid API URL %q", c.baseURL)
	}

	headers := map[string]string{
		KeyHeader:       c.key,
		RequestIDHeader: uuid.NewString(),
	}

	var resp response
	if err := c.PostJSON(ctx, endpoint, headers, body, &resp); err != nil {
		return nil, err
	}

	p, err := resp.toParse()
	if err != nil {
		return nil, err
	}
	p.Language = req.Language
	return p, nil
}

func (c *Client) buildBody(req Request) (requestBody, error) {
	if strings.TrimSpace(c.key) == "" {
		return requestBody{}, errors.New(errors.ErrCodeConfiguration,
			"no API key provided (use --key, set ROSETTE_USER_KEY, or add key to the config file)")
	}
	if req.Content != "" && req.ContentURI != "" {
		return requestBody{}, errors.New(errors.ErrCodeConfiguration, "content and content URI are mutually exclusive")
	}
	if err := errors.ValidateLanguage(req.Language); err != nil {
		return requestBody{}, err
	}

	body := requestBody{Language: req.Language}
	switch {
	case req.ContentURI != "":
		uri, err := errors.NormalizeContentURI(req.ContentURI)
		if err != nil {
			return requestBody{}, err
		}
		body.ContentURI = uri
	case strings.TrimSpace(req.Content) != "":
		body.Content = req.Content
	default:
		return requestBody{}, errors.New(errors.ErrCodeConfiguration, "no input text provided")
	}
	return body, nil
}

// toParse converts the service response into a validated parse. Token
// indices stay document-level; each sentence owns the inclusive token range
// [startTokenIndex, endTokenIndex].
func (r response) toParse() (*deptree.Parse, error) {
	if r.Sentences == nil {
		return nil, errors.New(errors.ErrCodeResponseFormat, "response has no \"sentences\" field")
	}
	if r.Tokens == nil {
		return nil, errors.New(errors.ErrCodeResponseFormat, "response has no \"tokens\" field")
	}
	tokens := *r.Tokens

	p := &deptree.Parse{Sentences: make([]deptree.Sentence, 0, len(*r.Sentences))}
	for i, s := range *r.Sentences {
		if s.StartTokenIndex == nil || s.EndTokenIndex == nil {
			return nil, errors.New(errors.ErrCodeResponseFormat, "sentence %d: missing token bounds", i)
		}
		start, end := *s.StartTokenIndex, *s.EndTokenIndex
		if start < 0 || end < start || end >= len(tokens) {
			return nil, errors.New(errors.ErrCodeResponseFormat,
				"sentence %d: token range [%d, %d] outside %d tokens", i, start, end, len(tokens))
		}

		ps := deptree.Sentence{
			Index:  i,
			Tokens: make([]deptree.Token, 0, end-start+1),
			Edges:  make([]deptree.Edge, 0, len(s.Dependencies)),
		}
		for idx := start; idx <= end; idx++ {
			ps.Tokens = append(ps.Tokens, deptree.Token{Index: idx, Text: tokens[idx], Sentence: i})
		}
		for j, d := range s.Dependencies {
			if d.GovernorTokenIndex == nil || d.DependentTokenIndex == nil {
				return nil, errors.New(errors.ErrCodeResponseFormat,
					"sentence %d: dependency %d is missing a token index", i, j)
			}
			ps.Edges = append(ps.Edges, deptree.Edge{
				Governor:  *d.GovernorTokenIndex,
				Dependent: *d.DependentTokenIndex,
				Relation:  d.DependencyType,
			})
		}
		p.Sentences = append(p.Sentences, ps)
	}

	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResponseFormat, err, "malformed dependency parse")
	}
	return p, nil
}
