package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobintake/internal/client/api"
	"github.com/dmitrijs2005/jobintake/internal/client/gaps"
	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/notify"
	"github.com/stretchr/testify/require"
)

func newExperienceService(client api.Client, rec *notify.Recorder) *ExperienceService {
	return NewExperienceService(client, rec, logging.NewSlogLogger(slog.Default()), gaps.GracePeriod)
}

func TestStart_CreatesDraftsFromCount(t *testing.T) {
	fake := &fakeClient{countFn: func(string) (int, error) { return 3, nil }}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	snap, err := s.Start(context.Background(), "Asha", "a@x.com")
	require.NoError(t, err)
	require.Len(t, snap.Entries, 3)
	for i, e := range snap.Entries {
		require.Equal(t, i, e.ClientIndex)
		require.False(t, e.Saved())
	}
	require.Empty(t, rec.Events())
}

func TestStart_EmailRequired(t *testing.T) {
	fake := &fakeClient{}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "Asha", "")
	require.True(t, errors.Is(err, common.ErrValidation))
	require.Empty(t, fake.callLog())

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, notify.SeverityError, events[0].Severity)
	require.Equal(t, "Please enter an email", events[0].Message)
}

func TestSetField_InstallsNewSnapshot(t *testing.T) {
	fake := &fakeClient{countFn: func(string) (int, error) { return 2, nil }}
	s := newExperienceService(fake, notify.NewRecorder())

	before, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)

	after, err := s.SetField(0, models.FieldEmployer, "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", after.Entries[0].Employer)
	require.Greater(t, after.Version, before.Version)
	// the previous snapshot is untouched
	require.Equal(t, "", before.Entries[0].Employer)
}

func TestSetField_DateEditRecomputesGaps(t *testing.T) {
	fake := &fakeClient{countFn: func(string) (int, error) { return 2, nil }}
	s := newExperienceService(fake, notify.NewRecorder())

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)

	_, err = s.SetField(0, models.FieldEndDate, "2023-01-10")
	require.NoError(t, err)
	snap, err := s.SetField(1, models.FieldStartDate, "2023-01-20")
	require.NoError(t, err)

	require.True(t, snap.Entries[1].ShowGapFlag)

	snap, err = s.SetField(1, models.FieldStartDate, "2023-01-11")
	require.NoError(t, err)
	require.False(t, snap.Entries[1].ShowGapFlag)
}

func TestSetField_UnknownIndex(t *testing.T) {
	s := newExperienceService(&fakeClient{}, notify.NewRecorder())
	_, err := s.SetField(5, models.FieldEmployer, "Acme")
	require.True(t, errors.Is(err, common.ErrValidation))
}

func TestSave_PartialAcceptance(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 2, nil },
		batchFn: func(name, email string, drafts []api.DraftPayload) ([]models.SaveResult, error) {
			require.Len(t, drafts, 2) // full set submitted, incomplete rows included
			return []models.SaveResult{{ClientIndex: 1, RecordID: "E1", Status: "ok"}}, nil
		},
		listFn: func(owner string) ([]models.FileRef, error) {
			return []models.FileRef{{DocumentID: "D1", Title: "resume.pdf"}}, nil
		},
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	_, err = s.SetField(1, models.FieldStartDate, "2023-01-01")
	require.NoError(t, err)
	_, err = s.SetField(1, models.FieldEndDate, "2023-06-01")
	require.NoError(t, err)

	snap, err := s.Save(context.Background())
	require.NoError(t, err)
	require.False(t, snap.Entries[0].Saved())
	require.Equal(t, "E1", snap.Entries[1].RecordID)

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, notify.SeveritySuccess, events[0].Severity)
	require.Contains(t, events[0].Message, "Saved 1 experience(s)")

	// the newly saved entry's file listing arrives asynchronously
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Entries[1].Files) == 1
	}, time.Second, 10*time.Millisecond)
	require.Empty(t, s.Snapshot().Entries[0].Files)
}

func TestSave_NothingAccepted(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return nil, nil
		},
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)

	snap, err := s.Save(context.Background())
	require.NoError(t, err)
	require.False(t, snap.Entries[0].Saved())

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, notify.SeverityWarning, events[0].Severity)
	require.Contains(t, events[0].Message, "No valid experiences were saved")
}

func TestSave_TransportErrorLeavesStateUntouched(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	before, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)

	snap, err := s.Save(context.Background())
	require.Error(t, err)
	require.Equal(t, before.Version, snap.Version)

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, notify.SeverityError, events[0].Severity)
}

func TestSave_RecordIDTransitionIsOneWay(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return []models.SaveResult{{ClientIndex: 0, RecordID: "E-other", Status: "ok"}}, nil
		},
		listFn: func(string) ([]models.FileRef, error) { return nil, nil },
	}
	s := newExperienceService(fake, notify.NewRecorder())

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)

	_, err = s.Save(context.Background())
	require.NoError(t, err)
	require.Equal(t, "E-other", s.Snapshot().Entries[0].RecordID)

	// a second save cannot overwrite the assigned id
	_, err = s.Save(context.Background())
	require.NoError(t, err)
	require.Equal(t, "E-other", s.Snapshot().Entries[0].RecordID)
}

func TestAttachFiles_RejectedBeforeSave(t *testing.T) {
	fake := &fakeClient{countFn: func(string) (int, error) { return 1, nil }}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	fake.mu.Lock()
	fake.calls = nil
	fake.mu.Unlock()

	err = s.AttachFiles(context.Background(), 0, []FileUpload{{Name: "cv.pdf", Base64: "aGk="}})
	require.True(t, errors.Is(err, common.ErrNotSaved))
	require.Empty(t, fake.callLog(), "no network call may be issued for an unsaved entry")

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, "Save the experience first before attaching files.", events[0].Message)
}

func TestAttachFiles_UploadsThenAttachesAll(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return []models.SaveResult{{ClientIndex: 0, RecordID: "E1", Status: "ok"}}, nil
		},
		listFn: func(string) ([]models.FileRef, error) {
			return []models.FileRef{{DocumentID: "D-a.pdf"}, {DocumentID: "D-b.pdf"}}, nil
		},
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	_, err = s.Save(context.Background())
	require.NoError(t, err)
	rec.Reset()

	err = s.AttachFiles(context.Background(), 0, []FileUpload{
		{Name: "a.pdf", Base64: "YQ=="},
		{Name: "b.pdf", Base64: "Yg=="},
	})
	require.NoError(t, err)

	log := fake.callLog()
	require.Contains(t, log, "upload:a.pdf")
	require.Contains(t, log, "upload:b.pdf")
	require.Contains(t, log, "attach:E1:D-a.pdf")
	require.Contains(t, log, "attach:E1:D-b.pdf")

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, "File(s) linked to experience.", events[0].Message)

	require.Eventually(t, func() bool {
		return len(s.Snapshot().Entries[0].Files) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestAttachFiles_AttachFailureReportsBatchFailed(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return []models.SaveResult{{ClientIndex: 0, RecordID: "E1", Status: "ok"}}, nil
		},
		listFn: func(string) ([]models.FileRef, error) { return nil, nil },
		attachFn: func(_ context.Context, _, documentID string) error {
			if documentID == "D-b.pdf" {
				return errors.New("storage unavailable")
			}
			return nil
		},
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	_, err = s.Save(context.Background())
	require.NoError(t, err)
	rec.Reset()

	err = s.AttachFiles(context.Background(), 0, []FileUpload{
		{Name: "a.pdf", Base64: "YQ=="},
		{Name: "b.pdf", Base64: "Yg=="},
	})
	require.Error(t, err)

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, notify.SeverityError, events[0].Severity)
	require.Contains(t, events[0].Message, "Error linking files")
}

func TestAttachFiles_FailureDoesNotCancelSiblings(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return []models.SaveResult{{ClientIndex: 0, RecordID: "E1", Status: "ok"}}, nil
		},
		listFn: func(string) ([]models.FileRef, error) { return nil, nil },
	}
	// a.pdf fails immediately; b.pdf is slow and aborts if its context is
	// cancelled by the sibling's failure
	linked := make(chan string, 1)
	fake.attachFn = func(ctx context.Context, _, documentID string) error {
		if documentID == "D-a.pdf" {
			return errors.New("storage unavailable")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
			linked <- documentID
			return nil
		}
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	_, err = s.Save(context.Background())
	require.NoError(t, err)
	rec.Reset()

	err = s.AttachFiles(context.Background(), 0, []FileUpload{
		{Name: "a.pdf", Base64: "YQ=="},
		{Name: "b.pdf", Base64: "Yg=="},
	})
	require.Error(t, err)

	select {
	case docID := <-linked:
		require.Equal(t, "D-b.pdf", docID)
	default:
		t.Fatal("sibling attach did not run to completion")
	}
}

func TestDeleteFile_RejectedBeforeSave(t *testing.T) {
	fake := &fakeClient{countFn: func(string) (int, error) { return 1, nil }}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	fake.mu.Lock()
	fake.calls = nil
	fake.mu.Unlock()

	err = s.DeleteFile(context.Background(), 0, "D1")
	require.True(t, errors.Is(err, common.ErrNotSaved))
	require.Empty(t, fake.callLog(), "no network call may be issued for an unsaved entry")

	err = s.DeleteFile(context.Background(), 7, "D1")
	require.True(t, errors.Is(err, common.ErrNotSaved))
	require.Empty(t, fake.callLog())

	events := rec.Events()
	require.Len(t, events, 2)
	require.Equal(t, "Save the experience first before deleting files.", events[0].Message)
}

func TestDeleteFile_RemovesOnlyThatRef(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 2, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return []models.SaveResult{
				{ClientIndex: 0, RecordID: "E1", Status: "ok"},
				{ClientIndex: 1, RecordID: "E2", Status: "ok"},
			}, nil
		},
		listFn: func(owner string) ([]models.FileRef, error) {
			return []models.FileRef{{DocumentID: "D1"}, {DocumentID: "D2"}}, nil
		},
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	_, err = s.Save(context.Background())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		snap := s.Snapshot()
		return len(snap.Entries[0].Files) == 2 && len(snap.Entries[1].Files) == 2
	}, time.Second, 10*time.Millisecond)
	rec.Reset()

	err = s.DeleteFile(context.Background(), 0, "D1")
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Entries[0].Files, 1)
	require.Equal(t, "D2", snap.Entries[0].Files[0].DocumentID)
	require.Len(t, snap.Entries[1].Files, 2, "other entries must not be touched")

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, "File removed successfully", events[0].Message)
}

func TestDeleteFile_ServerErrorKeepsList(t *testing.T) {
	fake := &fakeClient{
		countFn: func(string) (int, error) { return 1, nil },
		batchFn: func(string, string, []api.DraftPayload) ([]models.SaveResult, error) {
			return []models.SaveResult{{ClientIndex: 0, RecordID: "E1", Status: "ok"}}, nil
		},
		listFn: func(string) ([]models.FileRef, error) {
			return []models.FileRef{{DocumentID: "D1"}}, nil
		},
		deleteFn: func(string, string) error { return errors.New("boom") },
	}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	_, err = s.Save(context.Background())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(s.Snapshot().Entries[0].Files) == 1
	}, time.Second, 10*time.Millisecond)
	rec.Reset()

	err = s.DeleteFile(context.Background(), 0, "D1")
	require.Error(t, err)
	require.Len(t, s.Snapshot().Entries[0].Files, 1)
}

func TestReset_PureTransition(t *testing.T) {
	fake := &fakeClient{countFn: func(string) (int, error) { return 2, nil }}
	rec := notify.NewRecorder()
	s := newExperienceService(fake, rec)

	_, err := s.Start(context.Background(), "A", "a@x.com")
	require.NoError(t, err)
	fake.mu.Lock()
	fake.calls = nil
	fake.mu.Unlock()

	snap := s.Reset()
	require.Empty(t, snap.Entries)
	require.Empty(t, fake.callLog())
	require.Empty(t, rec.Events())
}
