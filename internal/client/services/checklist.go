package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/jobintake/internal/client/api"
	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/notify"
)

// ChecklistService drives the document checklist variant: look up what the
// candidate already has on file, collect files for the missing categories
// only, upload them sequentially and issue one combined save.
type ChecklistService struct {
	client   api.Client
	notifier notify.Notifier
	logger   logging.Logger

	mu       sync.Mutex
	profile  models.Profile
	items    []models.ChecklistItem
	selected map[models.Category]FileUpload
	started  bool
}

func NewChecklistService(client api.Client, notifier notify.Notifier, logger logging.Logger) *ChecklistService {
	return &ChecklistService{
		client:   client,
		notifier: notifier,
		logger:   logger,
		selected: make(map[models.Category]FileUpload),
	}
}

// Items returns the current checklist (a copy).
func (s *ChecklistService) Items() []models.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChecklistItem, len(s.items))
	copy(out, s.items)
	return out
}

// Started reports whether the file section is open.
func (s *ChecklistService) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Lookup checks the server for an existing record and builds the checklist
// of still-missing categories. When everything is already on file the
// workflow stops with an informational notice and no checklist. When no
// record exists every category is missing.
func (s *ChecklistService) Lookup(ctx context.Context, profile models.Profile) ([]models.ChecklistItem, error) {
	if profile.Name == "" || profile.Email == "" || profile.Phone == "" {
		s.notifier.Notify(ctx, notify.SeverityError, "Error", "Please enter Name, Email and Phone.")
		return nil, fmt.Errorf("%w: name, email and phone are required", common.ErrValidation)
	}

	rec, err := s.client.LookupRecordByEmail(ctx, profile.Email)
	if err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "Error", "Failed to check existing record: "+err.Error())
		return nil, err
	}

	var items []models.ChecklistItem
	if rec != nil {
		for _, cat := range models.AllCategories {
			if !rec.Present[cat] {
				items = append(items, models.ChecklistItem{Category: cat, Label: cat.Label()})
			}
		}
		if len(items) == 0 {
			s.notifier.Notify(ctx, notify.SeverityInfo, "Info", "All documents already submitted for this email.")
			return nil, nil
		}
	} else {
		items = make([]models.ChecklistItem, 0, len(models.AllCategories))
		for _, cat := range models.AllCategories {
			items = append(items, models.ChecklistItem{Category: cat, Label: cat.Label()})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.items = items
	s.selected = make(map[models.Category]FileUpload)
	s.started = true

	out := make([]models.ChecklistItem, len(items))
	copy(out, items)
	return out, nil
}

// SelectFile records a locally chosen file for one missing category and
// updates that item's display name. Categories not on the checklist are
// rejected.
func (s *ChecklistService) SelectFile(category models.Category, upload FileUpload) ([]models.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]models.ChecklistItem, len(s.items))
	copy(next, s.items)
	for i := range next {
		if next[i].Category == category {
			next[i].FileName = upload.Name
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: category %q is not on the checklist", common.ErrValidation, string(category))
	}

	s.items = next
	s.selected[category] = upload

	out := make([]models.ChecklistItem, len(next))
	copy(out, next)
	return out, nil
}

// Submit uploads the selected files one by one, accumulating document ids
// per category, then issues the single combined save. At least one category
// must have a file selected. On success the service resets to its initial
// empty state.
func (s *ChecklistService) Submit(ctx context.Context) error {
	s.mu.Lock()
	profile := s.profile
	items := make([]models.ChecklistItem, len(s.items))
	copy(items, s.items)
	selected := make(map[models.Category]FileUpload, len(s.selected))
	for k, v := range s.selected {
		selected[k] = v
	}
	s.mu.Unlock()

	any := false
	for _, item := range items {
		if _, ok := selected[item.Category]; ok {
			any = true
			break
		}
	}
	if !any {
		s.notifier.Notify(ctx, notify.SeverityError, "Error", "Please upload at least one document before submitting.")
		return fmt.Errorf("%w: no documents selected", common.ErrValidation)
	}

	// Uploads are deliberately sequential: one document at a time, each id
	// recorded before the next upload starts.
	docIDs := make(map[models.Category]string)
	for _, item := range items {
		upload, ok := selected[item.Category]
		if !ok {
			continue
		}
		docID, err := s.client.UploadRawFile(ctx, safeName(item.Label, upload.Name), upload.Base64)
		if err != nil {
			s.notifier.Notify(ctx, notify.SeverityError, "Error", "Failed to upload "+item.Label+": "+err.Error())
			return err
		}
		docIDs[item.Category] = docID
	}

	if err := s.client.SaveChecklist(ctx, profile, docIDs); err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "Error", "Failed to submit documents: "+err.Error())
		return err
	}

	s.notifier.Notify(ctx, notify.SeveritySuccess, "Success", "Documents submitted successfully.")
	s.reset()
	return nil
}

// Reset clears the checklist back to its initial empty state.
func (s *ChecklistService) Reset() {
	s.reset()
}

func (s *ChecklistService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = models.Profile{}
	s.items = nil
	s.selected = make(map[models.Category]FileUpload)
	s.started = false
}

// safeName renames an upload after its category label, keeping the original
// extension, so server-side titles stay predictable.
func safeName(label, fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		ext = "pdf"
	}
	return label + "." + ext
}
