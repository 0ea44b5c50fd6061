package applicantapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roster-ats/roster/pkg/errx"
	"github.com/roster-ats/roster/tracking/applicant"
	"github.com/roster-ats/roster/tracking/applicant/applicantinfra"
	"github.com/roster-ats/roster/tracking/applicant/applicantsrv"
)

// newTestApp mirrors the server wiring over the file backend in a temp dir
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	repo, err := applicantinfra.NewFileApplicantRepository(filepath.Join(t.TempDir(), "applicants.json"))
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	RegisterRoutes(app, NewHandlers(applicantsrv.NewApplicantService(repo, nil)))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func createApplicant(t *testing.T, app *fiber.App, fields map[string]any) map[string]any {
	t.Helper()

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/applicants", fields)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	created, ok := body["applicant"].(map[string]any)
	require.True(t, ok)
	return created
}

func listApplicants(t *testing.T, app *fiber.App) []map[string]any {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/api/applicants", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var applicants []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&applicants))
	return applicants
}

func TestListEmptyStore(t *testing.T) {
	app := newTestApp(t)
	assert.Empty(t, listApplicants(t, app))
}

func TestCreateAndListApplicant(t *testing.T) {
	app := newTestApp(t)

	created := createApplicant(t, app, map[string]any{
		"fullName":       "Jane Doe",
		"linkedinUrl":    "https://linkedin.com/in/janedoe",
		"expectedSalary": "90000",
		"notes":          "referral",
	})

	assert.NotZero(t, created["id"])
	assert.NotEmpty(t, created["dateAdded"])
	assert.Equal(t, "Jane Doe", created["fullName"])

	applicants := listApplicants(t, app)
	require.Len(t, applicants, 1)
	assert.Equal(t, created["id"], applicants[0]["id"])
	assert.Equal(t, "referral", applicants[0]["notes"])
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/applicants", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateApplicant(t *testing.T) {
	app := newTestApp(t)

	created := createApplicant(t, app, map[string]any{
		"fullName": "Jane Doe",
		"notes":    "old",
	})

	id := int64(created["id"].(float64))
	resp, body := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/applicants/%d", id), map[string]any{
		"notes": "updated",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	updated := body["applicant"].(map[string]any)
	assert.Equal(t, "updated", updated["notes"])
	assert.Equal(t, "Jane Doe", updated["fullName"])
	assert.Equal(t, created["dateAdded"], updated["dateAdded"])
}

func TestUpdateNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPut, "/api/applicants/12345", map[string]any{"notes": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestUpdateNonNumericID(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPut, "/api/applicants/abc", map[string]any{"notes": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestDeleteApplicant(t *testing.T) {
	app := newTestApp(t)

	created := createApplicant(t, app, map[string]any{"fullName": "Jane Doe"})
	id := int64(created["id"].(float64))

	resp, body := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/applicants/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	assert.Empty(t, listApplicants(t, app))

	// Second delete of the same id is a 404
	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/applicants/%d", id), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddCommentFlow(t *testing.T) {
	app := newTestApp(t)

	created := createApplicant(t, app, map[string]any{"fullName": "Jane Doe"})
	id := int64(created["id"].(float64))
	commentsURL := fmt.Sprintf("/api/applicants/%d/comments", id)

	resp, body := doJSON(t, app, fiber.MethodPost, commentsURL, map[string]any{
		"person": "Alice", "text": "first", "date": "2025-03-01",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	comment := body["comment"].(map[string]any)
	assert.Equal(t, "Alice", comment["person"])

	_, _ = doJSON(t, app, fiber.MethodPost, commentsURL, map[string]any{
		"person": "Bob", "text": "b1", "date": "2025-03-02",
	})
	_, _ = doJSON(t, app, fiber.MethodPost, commentsURL, map[string]any{
		"person": "Alice", "text": "second", "date": "2025-03-03",
	})

	applicants := listApplicants(t, app)
	require.Len(t, applicants, 1)

	comments := applicants[0]["comments"].([]any)
	require.Len(t, comments, 2)
	first := comments[0].(map[string]any)
	second := comments[1].(map[string]any)
	assert.Equal(t, "Bob", first["person"])
	assert.Equal(t, "Alice", second["person"])
	assert.Equal(t, "second", second["text"])
}

func TestAddCommentNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/applicants/777/comments", map[string]any{
		"person": "Alice", "text": "x",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClearAll(t *testing.T) {
	app := newTestApp(t)

	createApplicant(t, app, map[string]any{"fullName": "First"})
	createApplicant(t, app, map[string]any{"fullName": "Second"})

	resp, body := doJSON(t, app, fiber.MethodDelete, "/api/clear-all", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	assert.Empty(t, listApplicants(t, app))
}

func TestCommentsNotUpdatableThroughPut(t *testing.T) {
	app := newTestApp(t)

	created := createApplicant(t, app, map[string]any{"fullName": "Jane Doe"})
	id := int64(created["id"].(float64))

	_, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/applicants/%d/comments", id), map[string]any{
		"person": "Alice", "text": "keep me",
	})

	// A stray comments field in the update body is ignored
	resp, _ := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/applicants/%d", id), map[string]any{
		"comments": []any{},
		"notes":    "x",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	applicants := listApplicants(t, app)
	require.Len(t, applicants, 1)
	require.Len(t, applicants[0]["comments"].([]any), 1)

	var unmarshaled applicant.Applicant
	raw, err := json.Marshal(applicants[0])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &unmarshaled))
	assert.Equal(t, "keep me", unmarshaled.Comments[0].Text)
}
