// Package api is the HTTP client for the remote timetable service.
//
// The service owns dataset storage and the actual schedule generation; this
// client only uploads, triggers, polls, and fetches. Fetched entries are
// validated here, at the boundary, so the layout engine downstream never
// sees a malformed time or weekday.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmvillaverde/horario/internal/timetable"
)

// Client talks to the timetable service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Wire types returned by the service.

type timetableResponse struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Entries []entryDTO `json:"entries"`
}

type entryDTO struct {
	ID        int64             `json:"id"`
	DayOfWeek int               `json:"day_of_week"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Course    timetable.Course  `json:"course"`
	Teacher   timetable.Teacher `json:"teacher"`
	Room      timetable.Room    `json:"room"`
	Section   timetable.Section `json:"section"`
}

// GenerationStatus reports the remote scheduler's progress on a timetable.
type GenerationStatus struct {
	State    string  `json:"state"`    // "queued", "running", "done", "failed"
	Progress float64 `json:"progress"` // 0-100
	Fitness  float64 `json:"fitness"`
	Message  string  `json:"message"`
}

// Timetable fetches a timetable by ID, validating every entry.
func (c *Client) Timetable(ctx context.Context, id string) (*timetable.Snapshot, error) {
	var resp timetableResponse
	if err := c.getJSON(ctx, "/api/timetables/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}

	// Entries anywhere in the week are valid; a narrower display range only
	// hides days, it never makes the timetable unfetchable.
	entries := make([]*timetable.Entry, 0, len(resp.Entries))
	for _, dto := range resp.Entries {
		e, err := timetable.NewEntry(dto.ID, dto.DayOfWeek, dto.StartTime, dto.EndTime, timetable.DaysPerWeek,
			dto.Course, dto.Teacher, dto.Room, dto.Section)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", dto.ID, err)
		}
		entries = append(entries, e)
	}

	return &timetable.Snapshot{
		ID:        resp.ID,
		Name:      resp.Name,
		FetchedAt: time.Now(),
		Entries:   entries,
	}, nil
}

// UploadDataset uploads a dataset file and returns the dataset ID the
// service assigned to it.
func (c *Client) UploadDataset(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("reading dataset: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finishing upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/datasets", &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", statusError("/api/datasets", resp)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	return created.ID, nil
}

// Generate asks the service to (re)generate the timetable's schedule.
func (c *Client) Generate(ctx context.Context, id string) error {
	path := "/api/timetables/" + url.PathEscape(id) + "/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("triggering generation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return statusError(path, resp)
	}
	return nil
}

// Status polls the generation status of a timetable.
func (c *Client) Status(ctx context.Context, id string) (*GenerationStatus, error) {
	var status GenerationStatus
	path := "/api/timetables/" + url.PathEscape(id) + "/status"
	if err := c.getJSON(ctx, path, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Export downloads the timetable in the requested format and view
// ("master", "teacher", "room", ...). The blob is returned as-is.
func (c *Client) Export(ctx context.Context, id, format, view string) ([]byte, error) {
	path := "/api/timetables/" + url.PathEscape(id) + "/export"
	query := url.Values{"format": {format}, "view": {view}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exporting timetable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(path, resp)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	return blob, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError(path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// statusError turns a non-2xx response into an error carrying the status
// and a short body excerpt.
func statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	excerpt := strings.TrimSpace(string(body))
	if excerpt == "" {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, excerpt)
}
