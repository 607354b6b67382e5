// Package wanikani implements the WaniKani v2 API client.
// It handles bearer authentication, the pinned protocol revision, and
// cursor pagination over the collection endpoints.
package wanikani

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/wanisync/wanisync/internal/domain/assignment"
	"github.com/wanisync/wanisync/internal/domain/shared"
	"github.com/wanisync/wanisync/internal/domain/subject"
)

// DefaultBaseURL is the public WaniKani v2 API root.
const DefaultBaseURL = "https://api.wanikani.com/v2"

// apiRevision pins the protocol revision; page and record shapes are stable
// for a pinned revision.
const apiRevision = "20170710"

// Resource names, used in request paths and error reporting.
const (
	ResourceAssignments = "assignments"
	ResourceSubjects    = "subjects"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// ClientConfig contains configuration for the WaniKani API client.
type ClientConfig struct {
	// BaseURL is the API root without a trailing slash.
	BaseURL string

	// APIKey is the personal access token sent as a bearer credential.
	// It is never logged.
	APIKey string

	// Logger for structured logging.
	Logger zerolog.Logger

	// Debug enables request-level debug logging.
	Debug bool
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the WaniKani v2 API client.
//
// Requests are plain and sequential: no retries, no rate-limit handling, no
// request timeout. A failed request fails the whole run; a hanging request
// hangs it.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     zerolog.Logger
	mapper     *Mapper
}

// NewClient creates a new WaniKani API client.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{},
		logger:     config.Logger,
		mapper:     NewMapper(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// COLLECTION OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// Assignments fetches every page of the user's assignments.
func (c *Client) Assignments(ctx context.Context) ([]assignment.Assignment, error) {
	dtos, err := fetchAllPages[assignmentDTO](ctx, c, ResourceAssignments, nil)
	if err != nil {
		return nil, err
	}

	records, err := c.mapper.AssignmentsFromDTO(dtos)
	if err != nil {
		return nil, &FetchError{Resource: ResourceAssignments, Err: err}
	}

	c.logger.Info().Int("count", len(records)).Msg("retrieved assignments")
	return records, nil
}

// Subjects fetches every page of the vocabulary and kanji catalog. The
// category filter is applied server-side, so radicals never reach the sync.
func (c *Client) Subjects(ctx context.Context) ([]subject.Subject, error) {
	params := url.Values{}
	params.Set("types", "vocabulary,kanji")

	dtos, err := fetchAllPages[subjectDTO](ctx, c, ResourceSubjects, params)
	if err != nil {
		return nil, err
	}

	subjects, err := c.mapper.SubjectsFromDTO(dtos)
	if err != nil {
		return nil, &FetchError{Resource: ResourceSubjects, Err: err}
	}

	c.logger.Info().Int("count", len(subjects)).Msg("retrieved subjects")
	return subjects, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PAGINATION
// ══════════════════════════════════════════════════════════════════════════════

// fetchAllPages walks a collection resource page by page and returns the
// concatenated records in server order.
//
// Only the first request carries the caller's query parameters; every later
// request follows the envelope's next_url verbatim, because the server
// already embeds the original parameters in the continuation URL. Reapplying
// caller parameters on top of next_url would corrupt the cursor.
//
// Any transport error, non-2xx status, or malformed envelope aborts the
// walk; partial pages are discarded.
func fetchAllPages[T any](ctx context.Context, c *Client, resource string, params url.Values) ([]T, error) {
	pageURL := c.config.BaseURL + "/" + resource
	if len(params) > 0 {
		pageURL += "?" + params.Encode()
	}

	var records []T
	for page := 1; ; page++ {
		c.logger.Info().Str("url", pageURL).Int("page", page).Msg("fetching page")

		body, status, err := c.get(ctx, pageURL)
		if err != nil {
			return nil, &FetchError{Resource: resource, StatusCode: status, Err: err}
		}

		var envelope pageDTO[T]
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, &FetchError{Resource: resource, Err: fmt.Errorf("decode page %d: %w", page, err)}
		}
		if envelope.Data == nil || envelope.Pages == nil {
			return nil, &FetchError{Resource: resource, Err: fmt.Errorf("page %d: %w", page, ErrMalformedPage)}
		}

		records = append(records, envelope.Data...)

		if envelope.Pages.NextURL == nil || *envelope.Pages.NextURL == "" {
			return records, nil
		}
		pageURL = *envelope.Pages.NextURL
	}
}

// get performs one GET request with the auth and revision headers applied.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Wanikani-Revision", apiRevision)
	req.Header.Set("Accept", "application/json")

	if c.config.Debug {
		c.logger.Debug().Str("url", rawURL).Msg("wanikani api request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return body, resp.StatusCode, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ERRORS
// ══════════════════════════════════════════════════════════════════════════════

// ErrMalformedPage marks a page envelope missing its data or pages section.
var ErrMalformedPage = errors.New("malformed page envelope")

// FetchError is a fatal failure while fetching one resource collection.
// The run aborts; no partial results are kept.
type FetchError struct {
	Resource   string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the shared fetch failure sentinel.
func (e *FetchError) Is(target error) bool {
	return target == shared.ErrFetchFailed || target == shared.ErrExternalService
}
