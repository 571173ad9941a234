package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobintake/internal/client/api"
	"github.com/dmitrijs2005/jobintake/internal/client/models"
)

// fakeClient implements api.Client with per-method hooks and a call log.
// Methods without a hook succeed with zero values.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	countFn  func(email string) (int, error)
	batchFn  func(name, email string, drafts []api.DraftPayload) ([]models.SaveResult, error)
	uploadFn func(fileName, base64Data string) (string, error)
	attachFn func(ctx context.Context, ownerRecordID, documentID string) error
	listFn   func(ownerRecordID string) ([]models.FileRef, error)
	deleteFn func(documentID, ownerRecordID string) error
	lookupFn func(email string) (*models.ChecklistRecord, error)
	saveFn   func(profile models.Profile, docIDs map[models.Category]string) error
	leadFn   func(lead models.LeadForm) (string, error)
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeClient) CountExistingRows(_ context.Context, email string) (int, error) {
	f.record("count:" + email)
	if f.countFn != nil {
		return f.countFn(email)
	}
	return 0, nil
}

func (f *fakeClient) BatchSaveDrafts(_ context.Context, name, email string, drafts []api.DraftPayload) ([]models.SaveResult, error) {
	f.record("batchSave")
	if f.batchFn != nil {
		return f.batchFn(name, email, drafts)
	}
	return nil, nil
}

func (f *fakeClient) UploadRawFile(_ context.Context, fileName, base64Data string) (string, error) {
	f.record("upload:" + fileName)
	if f.uploadFn != nil {
		return f.uploadFn(fileName, base64Data)
	}
	return "D-" + fileName, nil
}

func (f *fakeClient) AttachDocument(ctx context.Context, ownerRecordID, documentID string) error {
	f.record("attach:" + ownerRecordID + ":" + documentID)
	if f.attachFn != nil {
		return f.attachFn(ctx, ownerRecordID, documentID)
	}
	return nil
}

func (f *fakeClient) ListFilesForOwner(_ context.Context, ownerRecordID string) ([]models.FileRef, error) {
	f.record("list:" + ownerRecordID)
	if f.listFn != nil {
		return f.listFn(ownerRecordID)
	}
	return nil, nil
}

func (f *fakeClient) DeleteDocument(_ context.Context, documentID, ownerRecordID string) error {
	f.record("delete:" + documentID)
	if f.deleteFn != nil {
		return f.deleteFn(documentID, ownerRecordID)
	}
	return nil
}

func (f *fakeClient) LookupRecordByEmail(_ context.Context, email string) (*models.ChecklistRecord, error) {
	f.record("lookup:" + email)
	if f.lookupFn != nil {
		return f.lookupFn(email)
	}
	return nil, nil
}

func (f *fakeClient) SaveChecklist(_ context.Context, profile models.Profile, docIDs map[models.Category]string) error {
	f.record("saveChecklist")
	if f.saveFn != nil {
		return f.saveFn(profile, docIDs)
	}
	return nil
}

func (f *fakeClient) CreateLeadWithAttachment(_ context.Context, lead models.LeadForm) (string, error) {
	f.record("lead:" + lead.Email)
	if f.leadFn != nil {
		return f.leadFn(lead)
	}
	return "L1", nil
}
