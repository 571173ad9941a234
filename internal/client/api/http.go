package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/go-resty/resty/v2"
)

// HTTPClient implements Client over the record store's JSON API.
type HTTPClient struct {
	rc *resty.Client
}

// NewHTTPClient builds a client bound to baseURL (e.g. "http://localhost:8080").
func NewHTTPClient(baseURL string) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	return &HTTPClient{rc: rc}
}

// errorEnvelope is the uniform error body the server sends on failures.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const codeDuplicateApplication = "duplicate_application"

// mapError translates a failed response into the sentinel taxonomy. The
// duplicate-application code keeps the server message attached so callers
// can show it verbatim next to the email field.
func mapError(resp *resty.Response) error {
	env, _ := resp.Error().(*errorEnvelope)
	msg := ""
	if env != nil {
		msg = env.Error
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return common.ErrNotFound
	case env != nil && env.Code == codeDuplicateApplication:
		return fmt.Errorf("%w: %s", common.ErrDuplicateApplication, msg)
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode(), msg)
	}
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(&errorEnvelope{}).
		Post(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	if resp.IsError() {
		return mapError(resp)
	}
	return nil
}

func (c *HTTPClient) CountExistingRows(ctx context.Context, email string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := c.post(ctx, "/api/v1/experience/count", map[string]string{"email": email}, &out)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) BatchSaveDrafts(ctx context.Context, name, email string, drafts []DraftPayload) ([]models.SaveResult, error) {
	body := struct {
		Name        string         `json:"name"`
		Email       string         `json:"email"`
		Experiences []DraftPayload `json:"experiences"`
	}{Name: name, Email: email, Experiences: drafts}

	var out struct {
		Results []models.SaveResult `json:"results"`
	}
	if err := c.post(ctx, "/api/v1/experience/batch-save", body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *HTTPClient) UploadRawFile(ctx context.Context, fileName, base64Data string) (string, error) {
	body := struct {
		FileName   string `json:"fileName"`
		Base64Data string `json:"base64Data"`
	}{FileName: fileName, Base64Data: base64Data}

	var out struct {
		DocumentID string `json:"documentId"`
	}
	if err := c.post(ctx, "/api/v1/documents/upload", body, &out); err != nil {
		return "", err
	}
	return out.DocumentID, nil
}

func (c *HTTPClient) AttachDocument(ctx context.Context, ownerRecordID, documentID string) error {
	body := struct {
		OwnerRecordID string `json:"ownerRecordId"`
		DocumentID    string `json:"documentId"`
	}{OwnerRecordID: ownerRecordID, DocumentID: documentID}

	var out struct{}
	return c.post(ctx, "/api/v1/documents/attach", body, &out)
}

func (c *HTTPClient) ListFilesForOwner(ctx context.Context, ownerRecordID string) ([]models.FileRef, error) {
	var out struct {
		Files []models.FileRef `json:"files"`
	}
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("owner", ownerRecordID).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Get("/api/v1/documents")
	if err != nil {
		return nil, fmt.Errorf("request /api/v1/documents: %w", err)
	}
	if resp.IsError() {
		return nil, mapError(resp)
	}
	return out.Files, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, documentID, ownerRecordID string) error {
	body := struct {
		DocumentID    string `json:"documentId"`
		OwnerRecordID string `json:"ownerRecordId"`
	}{DocumentID: documentID, OwnerRecordID: ownerRecordID}

	var out struct{}
	return c.post(ctx, "/api/v1/documents/delete", body, &out)
}

func (c *HTTPClient) LookupRecordByEmail(ctx context.Context, email string) (*models.ChecklistRecord, error) {
	var out struct {
		Record *models.ChecklistRecord `json:"record"`
	}
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&out).
		SetError(&errorEnvelope{}).
		Get("/api/v1/checklist")
	if err != nil {
		return nil, fmt.Errorf("request /api/v1/checklist: %w", err)
	}
	if resp.IsError() {
		return nil, mapError(resp)
	}
	return out.Record, nil
}

func (c *HTTPClient) SaveChecklist(ctx context.Context, profile models.Profile, docIDs map[models.Category]string) error {
	docs := make(map[string]string, len(docIDs))
	for cat, id := range docIDs {
		docs[string(cat)] = id
	}
	body := struct {
		Name      string            `json:"name"`
		Email     string            `json:"email"`
		Phone     string            `json:"phone"`
		Documents map[string]string `json:"documents"`
	}{Name: profile.Name, Email: profile.Email, Phone: profile.Phone, Documents: docs}

	var out struct{}
	return c.post(ctx, "/api/v1/checklist/save", body, &out)
}

func (c *HTTPClient) CreateLeadWithAttachment(ctx context.Context, lead models.LeadForm) (string, error) {
	var out struct {
		LeadID string `json:"leadId"`
	}
	if err := c.post(ctx, "/api/v1/leads", lead, &out); err != nil {
		return "", err
	}
	return out.LeadID, nil
}
