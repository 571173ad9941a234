package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jobintake/internal/server/storage"
	"github.com/google/uuid"
)

// FileInfo is one listed document with a presigned download URL.
type FileInfo struct {
	DocumentID  string
	Title       string
	DownloadURL string
}

type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
	logger      logging.Logger
}

func NewDocumentService(db *sql.DB, repomanager repomanager.RepositoryManager, store storage.BlobStore, logger logging.Logger) *DocumentService {
	return &DocumentService{db: db, repomanager: repomanager, store: store, logger: logger}
}

// Upload stores a raw file and creates an unattached document row. The
// returned id is a dangling reference until a subsequent attach claims it.
func (s *DocumentService) Upload(ctx context.Context, fileName, base64Data string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("%w: fileName is required", common.ErrValidation)
	}

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 payload", common.ErrValidation)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", common.ErrValidation)
	}

	key := storage.GetRandomStorageKey()
	if err := s.store.Put(ctx, key, data); err != nil {
		return "", fmt.Errorf("error storing file: %v", err)
	}

	doc := &models.Document{
		ID:         uuid.NewString(),
		Title:      fileName,
		StorageKey: key,
	}
	if _, err := s.repomanager.Documents(s.db).Create(ctx, doc); err != nil {
		return "", err
	}

	return doc.ID, nil
}

// Attach links an uploaded document to its owning experience record. The
// owner must exist; attaching to a missing record fails with ErrNotFound.
func (s *DocumentService) Attach(ctx context.Context, ownerRecordID, documentID string) error {
	if ownerRecordID == "" || documentID == "" {
		return fmt.Errorf("%w: ownerRecordId and documentId are required", common.ErrValidation)
	}

	if _, err := s.repomanager.Experiences(s.db).GetByID(ctx, ownerRecordID); err != nil {
		return err
	}

	return s.repomanager.Documents(s.db).SetOwner(ctx, documentID, ownerRecordID)
}

// List returns the owner's documents, each with a fresh presigned download
// URL. Unattached documents never show up here.
func (s *DocumentService) List(ctx context.Context, ownerRecordID string) ([]FileInfo, error) {
	if ownerRecordID == "" {
		return nil, fmt.Errorf("%w: owner is required", common.ErrValidation)
	}

	docs, err := s.repomanager.Documents(s.db).ListByOwner(ctx, ownerRecordID)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(docs))
	for _, d := range docs {
		url, err := s.store.PresignGet(ctx, d.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error presigning %s: %v", d.ID, err)
		}
		files = append(files, FileInfo{DocumentID: d.ID, Title: d.Title, DownloadURL: url})
	}

	return files, nil
}

// Delete removes one document scoped to its owner: the database row first,
// then the stored object. A failed blob delete is logged and swallowed; the
// row is already gone and the object is unreachable.
func (s *DocumentService) Delete(ctx context.Context, documentID, ownerRecordID string) error {
	if documentID == "" {
		return fmt.Errorf("%w: documentId is required", common.ErrValidation)
	}

	repo := s.repomanager.Documents(s.db)

	doc, err := repo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, documentID, ownerRecordID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		s.logger.Warn(ctx, "blob delete failed", "storageKey", doc.StorageKey, "err", err.Error())
	}

	return nil
}
