package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobintake/internal/server/storage"
	"github.com/google/uuid"
)

// LeadInput is one application form with its resume payload.
type LeadInput struct {
	JobID         string
	JobName       string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Skills        string
	Experience    string
	Qualification string
	Location      string
	FileName      string
	Base64Data    string
}

type LeadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
}

func NewLeadService(db *sql.DB, repomanager repomanager.RepositoryManager, store storage.BlobStore) *LeadService {
	return &LeadService{db: db, repomanager: repomanager, store: store}
}

// Create files one application. A repeat application for the same job by
// the same email fails with ErrDuplicateApplication before anything is
// written. The resume is stored first; the lead row then references it.
func (s *LeadService) Create(ctx context.Context, in LeadInput) (string, error) {
	switch {
	case in.JobID == "":
		return "", fmt.Errorf("%w: jobId is required", common.ErrValidation)
	case in.FirstName == "" || in.LastName == "":
		return "", fmt.Errorf("%w: first and last name are required", common.ErrValidation)
	case in.Email == "":
		return "", fmt.Errorf("%w: email is required", common.ErrValidation)
	case in.Phone == "":
		return "", fmt.Errorf("%w: phone is required", common.ErrValidation)
	case in.FileName == "" || in.Base64Data == "":
		return "", fmt.Errorf("%w: a resume file is required", common.ErrValidation)
	}

	exists, err := s.repomanager.Leads(s.db).ExistsByEmailAndJob(ctx, in.Email, in.JobID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: you have already applied for this job", common.ErrDuplicateApplication)
	}

	data, err := base64.StdEncoding.DecodeString(in.Base64Data)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 payload", common.ErrValidation)
	}

	key := storage.GetRandomStorageKey()
	if err := s.store.Put(ctx, key, data); err != nil {
		return "", fmt.Errorf("error storing resume: %v", err)
	}

	var leadID string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		doc := &models.Document{
			ID:         uuid.NewString(),
			Title:      in.FileName,
			StorageKey: key,
		}
		if _, err := s.repomanager.Documents(tx).Create(ctx, doc); err != nil {
			return err
		}

		lead := &models.Lead{
			ID:               uuid.NewString(),
			JobID:            in.JobID,
			JobName:          in.JobName,
			FirstName:        in.FirstName,
			LastName:         in.LastName,
			Email:            in.Email,
			Phone:            in.Phone,
			Skills:           in.Skills,
			Experience:       in.Experience,
			Qualification:    in.Qualification,
			Location:         in.Location,
			ResumeDocumentID: sql.NullString{String: doc.ID, Valid: true},
		}
		if _, err := s.repomanager.Leads(tx).Create(ctx, lead); err != nil {
			return err
		}

		leadID = lead.ID
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("error creating lead: %v", err)
	}

	return leadID, nil
}
