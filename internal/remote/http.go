package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"coursesync/internal/domain/course"
	"coursesync/internal/domain/todo"
)

const (
	baseURL        = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
	queryPageSize  = 100
)

// ErrTransport wraps any failure getting a request to or a response
// back from the remote, as opposed to the remote rejecting the request.
var ErrTransport = errors.New("remote transport error")

// HTTPAdapter implements Adapter against the real workspace-database
// HTTP API.
type HTTPAdapter struct {
	client      *http.Client
	log         *slog.Logger
	token       string
	coursesDBID string
	todosDBID   string
}

// NewHTTPAdapter builds an adapter bound to the given database ids and
// bearer token.
func NewHTTPAdapter(token, coursesDBID, todosDBID string, log *slog.Logger) *HTTPAdapter {
	return &HTTPAdapter{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:         log,
		token:       token,
		coursesDBID: coursesDBID,
		todosDBID:   todosDBID,
	}
}

func (a *HTTPAdapter) FetchCourses(ctx context.Context) ([]course.Course, error) {
	pages, err := a.queryAllPages(ctx, a.coursesDBID)
	if err != nil {
		return nil, err
	}

	var out []course.Course
	for _, p := range pages {
		c, err := courseFromPage(p)
		if err != nil {
			a.log.Warn("failed to parse course page", "page_id", p.ID, "err", err)
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (a *HTTPAdapter) FetchTodos(ctx context.Context) ([]todo.Todo, error) {
	pages, err := a.queryAllPages(ctx, a.todosDBID)
	if err != nil {
		return nil, err
	}

	var out []todo.Todo
	for _, p := range pages {
		t, err := todoFromPage(p)
		if err != nil {
			a.log.Warn("failed to parse todo page", "page_id", p.ID, "err", err)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (a *HTTPAdapter) PushCourse(ctx context.Context, c course.Course) error {
	existingID, err := a.findPageIDByText(ctx, a.coursesDBID, "course_id", c.ID)
	if err != nil {
		return err
	}

	properties := courseToProperties(c)
	if existingID != "" {
		return a.updatePage(ctx, existingID, properties)
	}
	return a.createPage(ctx, a.coursesDBID, properties)
}

func (a *HTTPAdapter) PushTodo(ctx context.Context, t todo.Todo) error {
	existingID, err := a.findPageIDByText(ctx, a.todosDBID, "todo_id", t.ID)
	if err != nil {
		return err
	}

	properties := todoToProperties(t)
	if existingID != "" {
		return a.updatePage(ctx, existingID, properties)
	}

	// The Course relation is only set when the page is first created;
	// updates never move a todo between courses through this path.
	properties["Course"] = map[string]any{
		"relation": []map[string]any{{"id": t.CourseID}},
	}
	return a.createPage(ctx, a.todosDBID, properties)
}

func (a *HTTPAdapter) queryAllPages(ctx context.Context, databaseID string) ([]page, error) {
	var all []page
	cursor := ""
	for {
		reqBody := queryDatabaseRequest{PageSize: queryPageSize, StartCursor: cursor}
		resp, err := a.doRequest(ctx, http.MethodPost, "/databases/"+databaseID+"/query", reqBody)
		if err != nil {
			return nil, err
		}

		var parsed queryDatabaseResponse
		if err := a.parseResponse(resp, &parsed); err != nil {
			return nil, err
		}
		all = append(all, parsed.Results...)

		if !parsed.HasMore || parsed.NextCursor == "" {
			break
		}
		cursor = parsed.NextCursor
	}
	return all, nil
}

func (a *HTTPAdapter) findPageIDByText(ctx context.Context, databaseID, property, value string) (string, error) {
	filter, _ := json.Marshal(map[string]any{
		"property": property,
		"rich_text": map[string]any{"equals": value},
	})
	reqBody := queryDatabaseRequest{Filter: filter, PageSize: 1}

	resp, err := a.doRequest(ctx, http.MethodPost, "/databases/"+databaseID+"/query", reqBody)
	if err != nil {
		return "", err
	}

	var parsed queryDatabaseResponse
	if err := a.parseResponse(resp, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Results) == 0 {
		return "", nil
	}
	return parsed.Results[0].ID, nil
}

func (a *HTTPAdapter) updatePage(ctx context.Context, pageID string, properties map[string]any) error {
	resp, err := a.doRequest(ctx, http.MethodPatch, "/pages/"+pageID, updatePageRequest{Properties: properties})
	if err != nil {
		return err
	}
	return a.parseResponse(resp, nil)
}

func (a *HTTPAdapter) createPage(ctx context.Context, databaseID string, properties map[string]any) error {
	resp, err := a.doRequest(ctx, http.MethodPost, "/pages", createPageRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: properties,
	})
	if err != nil {
		return err
	}
	return a.parseResponse(resp, nil)
}

func (a *HTTPAdapter) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Notion-Version", apiVersion)

	a.log.Debug("sending remote request", "method", method, "path", path)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return resp, nil
}

func (a *HTTPAdapter) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote responded %d: %s", resp.StatusCode, string(body))
	}

	if result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response body: %w", err)
	}
	return nil
}
