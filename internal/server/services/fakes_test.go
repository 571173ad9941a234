package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/candidates"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/checklists"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/documents"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/experiences"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/leads"
)

// fakeRepoMgr vends in-memory repositories backed by shared maps, so the
// services can be exercised without a database. The vended repos ignore the
// db handle they are given.
type fakeRepoMgr struct {
	candidates  *fakeCandidateRepo
	experiences *fakeExperienceRepo
	documents   *fakeDocumentRepo
	checklists  *fakeChecklistRepo
	leads       *fakeLeadRepo
}

func newFakeRepoMgr() *fakeRepoMgr {
	return &fakeRepoMgr{
		candidates:  &fakeCandidateRepo{byEmail: map[string]*models.Candidate{}},
		experiences: &fakeExperienceRepo{byID: map[string]*models.Experience{}},
		documents:   &fakeDocumentRepo{byID: map[string]*models.Document{}},
		checklists:  &fakeChecklistRepo{byEmail: map[string]*models.Checklist{}},
		leads:       &fakeLeadRepo{byID: map[string]*models.Lead{}},
	}
}

func (m *fakeRepoMgr) RunMigrations(context.Context, *sql.DB) error          { return nil }
func (m *fakeRepoMgr) Candidates(dbx.DBTX) candidates.Repository             { return m.candidates }
func (m *fakeRepoMgr) Experiences(dbx.DBTX) experiences.Repository           { return m.experiences }
func (m *fakeRepoMgr) Documents(dbx.DBTX) documents.Repository               { return m.documents }
func (m *fakeRepoMgr) Checklists(dbx.DBTX) checklists.Repository             { return m.checklists }
func (m *fakeRepoMgr) Leads(dbx.DBTX) leads.Repository                       { return m.leads }

type fakeCandidateRepo struct {
	byEmail map[string]*models.Candidate
}

func (r *fakeCandidateRepo) GetByEmail(_ context.Context, email string) (*models.Candidate, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) Upsert(_ context.Context, c *models.Candidate) (*models.Candidate, error) {
	if existing, ok := r.byEmail[c.Email]; ok {
		existing.Name = c.Name
		return existing, nil
	}
	cp := *c
	r.byEmail[c.Email] = &cp
	return &cp, nil
}

type fakeExperienceRepo struct {
	byID    map[string]*models.Experience
	countFn func(email string) (int, error)
}

func (r *fakeExperienceRepo) CountByEmail(_ context.Context, email string) (int, error) {
	if r.countFn != nil {
		return r.countFn(email)
	}
	return len(r.byID), nil
}

func (r *fakeExperienceRepo) Create(_ context.Context, e *models.Experience) (*models.Experience, error) {
	cp := *e
	r.byID[e.ID] = &cp
	return &cp, nil
}

func (r *fakeExperienceRepo) GetByID(_ context.Context, id string) (*models.Experience, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return e, nil
}

type fakeDocumentRepo struct {
	byID map[string]*models.Document
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *models.Document) (*models.Document, error) {
	cp := *d
	r.byID[d.ID] = &cp
	return &cp, nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*models.Document, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (r *fakeDocumentRepo) SetOwner(_ context.Context, id, owner string) error {
	d, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	d.OwnerRecordID = sql.NullString{String: owner, Valid: true}
	return nil
}

func (r *fakeDocumentRepo) ListByOwner(_ context.Context, owner string) ([]*models.Document, error) {
	var out []*models.Document
	for _, d := range r.byID {
		if d.OwnerRecordID.Valid && d.OwnerRecordID.String == owner {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id, owner string) error {
	d, ok := r.byID[id]
	if !ok || !d.OwnerRecordID.Valid || d.OwnerRecordID.String != owner {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeChecklistRepo struct {
	byEmail map[string]*models.Checklist
}

func (r *fakeChecklistRepo) GetByEmail(_ context.Context, email string) (*models.Checklist, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func coalesce(incoming, existing sql.NullString) sql.NullString {
	if incoming.Valid {
		return incoming
	}
	return existing
}

func (r *fakeChecklistRepo) Upsert(_ context.Context, c *models.Checklist) (*models.Checklist, error) {
	if existing, ok := r.byEmail[c.Email]; ok {
		existing.Name = c.Name
		existing.Phone = c.Phone
		existing.Tenth = coalesce(c.Tenth, existing.Tenth)
		existing.Twelfth = coalesce(c.Twelfth, existing.Twelfth)
		existing.Graduation = coalesce(c.Graduation, existing.Graduation)
		existing.PostGraduation = coalesce(c.PostGraduation, existing.PostGraduation)
		existing.Aadhaar = coalesce(c.Aadhaar, existing.Aadhaar)
		existing.PAN = coalesce(c.PAN, existing.PAN)
		return existing, nil
	}
	cp := *c
	r.byEmail[c.Email] = &cp
	return &cp, nil
}

type fakeLeadRepo struct {
	byID map[string]*models.Lead
}

func (r *fakeLeadRepo) ExistsByEmailAndJob(_ context.Context, email, jobID string) (bool, error) {
	for _, l := range r.byID {
		if l.Email == email && l.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeadRepo) Create(_ context.Context, l *models.Lead) (*models.Lead, error) {
	cp := *l
	r.byID[l.ID] = &cp
	return &cp, nil
}

// fakeBlobStore records puts and deletes in memory.
type fakeBlobStore struct {
	objects map[string][]byte

	putErr     error
	presignErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (s *fakeBlobStore) Put(_ context.Context, key string, data []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = data
	return nil
}

func (s *fakeBlobStore) PresignGet(_ context.Context, key string) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return fmt.Sprintf("http://signed/%s", key), nil
}

func (s *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}
