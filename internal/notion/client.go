// Package notion reads every row of a Notion database through the public
// query API and converts pages into rows.Row values.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-homepage/internal/errs"
	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/internal/rows"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

const (
	DefaultBaseURL  = "https://api.notion.com"
	DefaultVersion  = "2022-06-28"
	DefaultMaxPages = 10

	// SourceName identifies rows fetched by this package in logs.
	SourceName = "notion"

	maxResponseBytes = 16 << 20
	missingSecrets   = "Misconfigured server environment. Missing Notion secrets."
)

// Config carries the credentials and endpoint settings of a Client.
type Config struct {
	Token      string
	DatabaseID string
	BaseURL    string
	Version    string
	// MaxPages bounds the number of query requests a single Fetch issues.
	MaxPages int
	// PageSize is forwarded as page_size when positive.
	PageSize   int
	HTTPClient *http.Client
}

// Client queries one database. It is safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	logger interfaces.Logger
}

var _ interfaces.RowSource = (*Client)(nil)

// NewClient applies defaults to cfg. Missing credentials are not an error
// here; Fetch reports them as a configuration failure on every call.
func NewClient(cfg Config, logger interfaces.Logger) *Client {
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.DatabaseID = strings.TrimSpace(cfg.DatabaseID)
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if strings.TrimSpace(cfg.Version) == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logging.EnsureLogger(logger),
	}
}

// Configured reports whether both the token and the database id are set.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.Token != "" && c.cfg.DatabaseID != ""
}

// Fetch returns every row of the database, following pagination cursors
// up to MaxPages requests. Each request is attempted once.
func (c *Client) Fetch(ctx context.Context) ([]rows.Row, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := c.logger.WithContext(ctx)

	if !c.Configured() {
		logger.Error("notion.credentials.missing",
			"token_set", c.cfg.Token != "",
			"database_set", c.cfg.DatabaseID != "",
		)
		return nil, errs.Configuration(errs.ErrMissingCredentials, missingSecrets)
	}

	var (
		out    []rows.Row
		cursor string
		pages  int
	)
	for {
		resp, err := c.query(ctx, cursor)
		if err != nil {
			logger.Error("notion.query.failed", "error", err, "page", pages+1, "code", errs.TextCode(err))
			return nil, err
		}
		pages++
		out = append(out, convertPages(resp.Results)...)

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		if pages >= c.cfg.MaxPages {
			logger.Warn("notion.query.truncated", "pages", pages, "rows", len(out))
			break
		}
		cursor = *resp.NextCursor
	}

	logger.Debug("notion.query.completed", "pages", pages, "rows", len(out))
	return out, nil
}

func (c *Client) query(ctx context.Context, cursor string) (*queryResponse, error) {
	payload, err := json.Marshal(queryRequest{StartCursor: cursor, PageSize: c.cfg.PageSize})
	if err != nil {
		return nil, errs.Upstream(err, errs.CodeRequestFailed, "notion query failed: "+err.Error())
	}

	endpoint := c.cfg.BaseURL + "/v1/databases/" + url.PathEscape(c.cfg.DatabaseID) + "/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Upstream(err, errs.CodeRequestFailed, "notion query failed: "+err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", c.cfg.Version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Upstream(err, errs.CodeRequestFailed, "notion query failed: "+err.Error())
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Upstream(err, errs.CodeRequestFailed, "notion query failed: "+err.Error())
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := statusMessage(res.StatusCode, body)
		return nil, errs.Upstream(
			fmt.Errorf("%w: status %d", errs.ErrUpstreamStatus, res.StatusCode),
			errs.CodeStatus,
			message,
		)
	}

	if err := validateEnvelope(body); err != nil {
		return nil, malformed(err)
	}
	var decoded queryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, malformed(err)
	}
	return &decoded, nil
}

func malformed(cause error) error {
	return errs.Upstream(
		fmt.Errorf("%w: %v", errs.ErrMalformedResponse, cause),
		errs.CodeMalformed,
		"notion returned a malformed response: "+cause.Error(),
	)
}

// statusMessage prefers the API's own error message when the body carries
// one.
func statusMessage(status int, body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fmt.Sprintf("notion responded with status %d", status)
}
