package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/fontdeck/fontdeck/internal/model"
)

// StatusSuccess is the envelope status the server sends on success.
const StatusSuccess = "success"

// Endpoint paths on the font-group server.
const (
	PathListFonts   = "/getFonts"
	PathGetFont     = "/getFont"
	PathCreateFont  = "/createFont"
	PathDeleteFont  = "/deleteFont"
	PathListGroups  = "/getGroups"
	PathCreateGroup = "/createGroup"
	PathUpdateGroup = "/updateGroup"
	PathDeleteGroup = "/deleteGroup"
)

// Multipart field names expected by the server.
const (
	FieldFile    = "file"
	FieldTitle   = "title"
	FieldFontIDs = "font_ids[]"
)

// DefaultTimeout is used when the caller passes a non-positive timeout.
const DefaultTimeout = 15 * time.Second

// Error is an application-level failure reported inside the envelope
// (status other than "success"). Transport failures are returned as plain
// wrapped errors instead.
type Error struct {
	Status  string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %q", e.Status)
	}
	return fmt.Sprintf("server returned status %q: %s", e.Status, e.Message)
}

// envelope is the common response wrapper of the font-group server.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// updateGroupRequest is the JSON body for the update endpoint.
type updateGroupRequest struct {
	Title   string   `json:"title"`
	FontIDs []string `json:"font_ids"`
}

// Client talks to the font-group server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured server origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListFonts fetches the full font catalog.
func (c *Client) ListFonts(ctx context.Context) ([]model.Font, error) {
	var fonts []model.Font
	if err := c.do(ctx, http.MethodGet, PathListFonts, nil, nil, "", &fonts); err != nil {
		return nil, err
	}
	return fonts, nil
}

// GetFont fetches a single font by ID.
func (c *Client) GetFont(ctx context.Context, id string) (model.Font, error) {
	var font model.Font
	query := url.Values{"id": {id}}
	if err := c.do(ctx, http.MethodGet, PathGetFont, query, nil, "", &font); err != nil {
		return model.Font{}, err
	}
	return font, nil
}

// UploadFont uploads one font file as multipart form data and returns the
// server-created Font record.
func (c *Client) UploadFont(ctx context.Context, filename string, data io.Reader) (model.Font, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(FieldFile, filepath.Base(filename))
	if err != nil {
		return model.Font{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return model.Font{}, fmt.Errorf("copy font data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return model.Font{}, fmt.Errorf("finalize multipart body: %w", err)
	}

	var font model.Font
	if err := c.do(ctx, http.MethodPost, PathCreateFont, nil, &body, writer.FormDataContentType(), &font); err != nil {
		return model.Font{}, err
	}
	return font, nil
}

// DeleteFont deletes a font by ID and returns the server's message.
func (c *Client) DeleteFont(ctx context.Context, id string) (string, error) {
	var message string
	query := url.Values{"id": {id}}
	if err := c.do(ctx, http.MethodDelete, PathDeleteFont, query, nil, "", &message); err != nil {
		return "", err
	}
	return message, nil
}

// ListGroups fetches all font groups.
func (c *Client) ListGroups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := c.do(ctx, http.MethodGet, PathListGroups, nil, nil, "", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// CreateGroup creates a group from a title and an ordered list of font IDs.
// The endpoint takes multipart form data with one font_ids[] field per font.
func (c *Client) CreateGroup(ctx context.Context, title string, fontIDs []string) (model.Group, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField(FieldTitle, title); err != nil {
		return model.Group{}, fmt.Errorf("write title field: %w", err)
	}
	for _, id := range fontIDs {
		if err := writer.WriteField(FieldFontIDs, id); err != nil {
			return model.Group{}, fmt.Errorf("write font id field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return model.Group{}, fmt.Errorf("finalize multipart body: %w", err)
	}

	var group model.Group
	if err := c.do(ctx, http.MethodPost, PathCreateGroup, nil, &body, writer.FormDataContentType(), &group); err != nil {
		return model.Group{}, err
	}
	return group, nil
}

// UpdateGroup replaces a group's title and membership wholesale. The server
// treats font_ids as the complete new membership, not a delta.
func (c *Client) UpdateGroup(ctx context.Context, id, title string, fontIDs []string) (model.Group, error) {
	payload, err := json.Marshal(updateGroupRequest{Title: title, FontIDs: fontIDs})
	if err != nil {
		return model.Group{}, fmt.Errorf("encode update request: %w", err)
	}

	var group model.Group
	query := url.Values{"id": {id}}
	if err := c.do(ctx, http.MethodPut, PathUpdateGroup, query, bytes.NewReader(payload), "application/json", &group); err != nil {
		return model.Group{}, err
	}
	return group, nil
}

// DeleteGroup deletes a group by ID and returns the server's message.
func (c *Client) DeleteGroup(ctx context.Context, id string) (string, error) {
	var message string
	query := url.Values{"id": {id}}
	if err := c.do(ctx, http.MethodDelete, PathDeleteGroup, query, nil, "", &message); err != nil {
		return "", err
	}
	return message, nil
}

// do issues one request and decodes the envelope into out. A nil out
// discards the payload. Transport errors are wrapped; envelope statuses
// other than "success" become *Error values.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("request %s %s: unexpected status %s", method, path, resp.Status)
		}
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}

	if env.Status != StatusSuccess {
		apiErr := &Error{Status: env.Status}
		// On failure the data field carries a message string; anything else
		// is left empty rather than guessed at.
		var message string
		if err := json.Unmarshal(env.Data, &message); err == nil {
			apiErr.Message = message
		}
		log.Printf("API failure on %s %s: status=%s message=%q", method, path, apiErr.Status, apiErr.Message)
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode payload of %s %s: %w", method, path, err)
	}
	return nil
}
