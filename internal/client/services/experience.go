// Package services contains the client-side workflow services: the
// employment-history form, the document checklist and the lead pipeline.
// Each service owns its state as immutable snapshots and talks to the
// record store only through api.Client.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobintake/internal/client/api"
	"github.com/dmitrijs2005/jobintake/internal/client/gaps"
	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/notify"
	"golang.org/x/sync/errgroup"
)

// FileUpload is one locally selected file, already encoded for transport.
type FileUpload struct {
	Name   string
	Base64 string
}

// Snapshot is an immutable view of the draft collection. Every mutation
// installs a fresh Entries slice and bumps Version, so observers can detect
// change by identity or counter without deep comparison.
type Snapshot struct {
	Entries []models.DraftEntry
	Version int64
}

// ExperienceService drives the employment-history form: draft creation from
// a count lookup, field edits with gap recomputation, the batch save with
// partial-acceptance reconciliation, and the per-entry document workflow.
type ExperienceService struct {
	client   api.Client
	notifier notify.Notifier
	logger   logging.Logger
	policy   gaps.Policy

	mu      sync.Mutex
	name    string
	email   string
	entries []models.DraftEntry
	version int64
}

func NewExperienceService(client api.Client, notifier notify.Notifier, logger logging.Logger, policy gaps.Policy) *ExperienceService {
	return &ExperienceService{
		client:   client,
		notifier: notifier,
		logger:   logger,
		policy:   policy,
	}
}

// Snapshot returns the current draft collection.
func (s *ExperienceService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Entries: s.entries, Version: s.version}
}

// install replaces the draft collection. Callers must hold s.mu.
func (s *ExperienceService) install(entries []models.DraftEntry) Snapshot {
	s.entries = entries
	s.version++
	return Snapshot{Entries: s.entries, Version: s.version}
}

// Start sizes the draft set from the server's count for the given email and
// creates that many addressable drafts. ClientIndex values are assigned
// from position and stay fixed for the session.
func (s *ExperienceService) Start(ctx context.Context, name, email string) (Snapshot, error) {
	if email == "" {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Please enter an email")
		return s.Snapshot(), fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	count, err := s.client.CountExistingRows(ctx, email)
	if err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Error looking up experience count: "+err.Error())
		return s.Snapshot(), err
	}

	entries := make([]models.DraftEntry, count)
	for i := range entries {
		entries[i] = models.DraftEntry{ClientIndex: i}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.email = email
	return s.install(entries), nil
}

// SetField assigns value to one field of the draft at clientIndex. Date
// edits trigger a full gap recompute over the whole sequence.
func (s *ExperienceService) SetField(clientIndex int, field models.Field, value string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clientIndex < 0 || clientIndex >= len(s.entries) {
		return Snapshot{Entries: s.entries, Version: s.version},
			fmt.Errorf("%w: no draft with index %d", common.ErrValidation, clientIndex)
	}

	next := make([]models.DraftEntry, len(s.entries))
	copy(next, s.entries)

	if err := next[clientIndex].Set(field, value); err != nil {
		return Snapshot{Entries: s.entries, Version: s.version}, err
	}

	if field.IsDate() {
		next = gaps.Recompute(next, s.policy)
	}

	return s.install(next), nil
}

// Save submits the full draft set. The server is authoritative about which
// rows qualify: rows it skipped simply do not appear in the response and
// their drafts stay untouched. Accepted rows get their RecordID set (a
// one-way transition) and each newly persisted entry gets an independent
// file-listing fetch. Exactly one summary notification is emitted: a
// success with a count, or a "nothing was saved" warning.
//
// If the call itself fails no local state changes; the user resubmits
// manually.
func (s *ExperienceService) Save(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	payload := make([]api.DraftPayload, len(s.entries))
	for i, e := range s.entries {
		payload[i] = api.DraftPayload{
			ClientIndex:      e.ClientIndex,
			Employer:         e.Employer,
			Role:             e.Role,
			Responsibilities: e.Responsibilities,
			StartDate:        e.StartDate,
			EndDate:          e.EndDate,
			GapReason:        e.GapReason,
		}
	}
	name, email := s.name, s.email
	s.mu.Unlock()

	results, err := s.client.BatchSaveDrafts(ctx, name, email, payload)
	if err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Error saving records: "+err.Error())
		return s.Snapshot(), err
	}

	s.mu.Lock()
	next := make([]models.DraftEntry, len(s.entries))
	copy(next, s.entries)

	type saved struct {
		clientIndex int
		recordID    string
	}
	var newlySaved []saved

	for _, r := range results {
		idx := r.ClientIndex
		if idx < 0 || idx >= len(next) {
			s.logger.Warn(ctx, "save result for unknown client index", "clientIndex", idx)
			continue
		}
		if next[idx].RecordID != "" {
			continue
		}
		next[idx].RecordID = r.RecordID
		newlySaved = append(newlySaved, saved{clientIndex: idx, recordID: r.RecordID})
	}
	snap := s.install(next)
	s.mu.Unlock()

	if len(results) > 0 {
		s.notifier.Notify(ctx, notify.SeveritySuccess, "Saved",
			fmt.Sprintf("Saved %d experience(s). You can now upload files for saved rows.", len(results)))
	} else {
		s.notifier.Notify(ctx, notify.SeverityWarning, "Warning",
			"No valid experiences were saved (rows missing Start or End date were skipped).")
		return snap, nil
	}

	// Listing fetches are independent of each other: unordered, and one
	// failure must not block the rest.
	for _, sv := range newlySaved {
		go s.refreshFiles(ctx, sv.clientIndex, sv.recordID)
	}

	return snap, nil
}

// refreshFiles fetches the document listing for one persisted entry and
// replaces its Files list wholesale. Failure is non-fatal: logged, silent
// to the user, and the entry's persistence state is untouched.
func (s *ExperienceService) refreshFiles(ctx context.Context, clientIndex int, recordID string) {
	files, err := s.client.ListFilesForOwner(ctx, recordID)
	if err != nil {
		s.logger.Error(ctx, "file listing failed", "recordId", recordID, "err", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if clientIndex < 0 || clientIndex >= len(s.entries) {
		return
	}
	next := make([]models.DraftEntry, len(s.entries))
	copy(next, s.entries)
	next[clientIndex].Files = files
	s.install(next)
}

// AttachFiles uploads the selected files for one entry and links each to
// the entry's record. The entry must already be saved; otherwise the whole
// operation is rejected locally, before any network call.
//
// Uploads run one by one; the attach calls then go out concurrently and the
// workflow waits for all of them. If any attach fails the batch is reported
// as failed, even though other documents in it may already be linked
// server-side.
func (s *ExperienceService) AttachFiles(ctx context.Context, clientIndex int, uploads []FileUpload) error {
	if len(uploads) == 0 {
		return nil
	}

	s.mu.Lock()
	var recordID string
	found := false
	for _, e := range s.entries {
		if e.ClientIndex == clientIndex {
			recordID = e.RecordID
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found || recordID == "" {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Save the experience first before attaching files.")
		return common.ErrNotSaved
	}

	docIDs := make([]string, 0, len(uploads))
	for _, u := range uploads {
		docID, err := s.client.UploadRawFile(ctx, u.Name, u.Base64)
		if err != nil {
			s.notifier.Notify(ctx, notify.SeverityError, "", "Error uploading file: "+err.Error())
			return err
		}
		docIDs = append(docIDs, docID)
	}

	// Every attach call is issued and runs to completion; a failing sibling
	// must not cancel the others, they may already be linking server-side.
	var g errgroup.Group
	for _, docID := range docIDs {
		g.Go(func() error {
			return s.client.AttachDocument(ctx, recordID, docID)
		})
	}
	if err := g.Wait(); err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Error linking files: "+err.Error())
		return err
	}

	s.refreshFiles(ctx, clientIndex, recordID)
	s.notifier.Notify(ctx, notify.SeveritySuccess, "Success", "File(s) linked to experience.")
	return nil
}

// DeleteFile removes one document from one entry. The entry must already be
// saved, like AttachFiles. On success exactly that FileRef disappears from
// the entry's list; no other entry is touched.
func (s *ExperienceService) DeleteFile(ctx context.Context, clientIndex int, documentID string) error {
	s.mu.Lock()
	var recordID string
	found := false
	for _, e := range s.entries {
		if e.ClientIndex == clientIndex {
			recordID = e.RecordID
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found || recordID == "" {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Save the experience first before deleting files.")
		return common.ErrNotSaved
	}

	if err := s.client.DeleteDocument(ctx, documentID, recordID); err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "", "Error deleting file: "+err.Error())
		return err
	}

	s.mu.Lock()
	next := make([]models.DraftEntry, len(s.entries))
	copy(next, s.entries)
	for i := range next {
		if next[i].ClientIndex != clientIndex {
			continue
		}
		files := make([]models.FileRef, 0, len(next[i].Files))
		for _, f := range next[i].Files {
			if f.DocumentID != documentID {
				files = append(files, f)
			}
		}
		next[i].Files = files
	}
	s.install(next)
	s.mu.Unlock()

	s.notifier.Notify(ctx, notify.SeveritySuccess, "Deleted", "File removed successfully")
	return nil
}

// Reset returns the form to its initial empty state. Pure state transition:
// no side effects beyond producing the fresh snapshot.
func (s *ExperienceService) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = ""
	s.email = ""
	return s.install(nil)
}
