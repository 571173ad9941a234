package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Handlers binds the service layer to the gin routes.
type Handlers struct {
	experience ExperienceService
	documents  DocumentService
	checklist  ChecklistService
	leads      LeadService
	logger     logging.Logger
}

func NewHandlers(experience ExperienceService, documents DocumentService, checklist ChecklistService, leads LeadService, logger logging.Logger) *Handlers {
	return &Handlers{
		experience: experience,
		documents:  documents,
		checklist:  checklist,
		leads:      leads,
		logger:     logger,
	}
}

// draftPayload mirrors the client's wire form of one draft row.
type draftPayload struct {
	ClientIndex      int    `json:"clientIndex"`
	Employer         string `json:"employerName"`
	Role             string `json:"jobRole"`
	Responsibilities string `json:"keyResponsibilities"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	GapReason        string `json:"reasonOfGap"`
}

type saveResultPayload struct {
	ClientIndex int    `json:"clientIndex"`
	RecordID    string `json:"recordId"`
	Status      string `json:"status"`
}

func (h *Handlers) countExperiences(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	count, err := h.experience.Count(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handlers) batchSaveExperiences(c *gin.Context) {
	var req struct {
		Name        string         `json:"name"`
		Email       string         `json:"email"`
		Experiences []draftPayload `json:"experiences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	rows := make([]services.DraftRow, 0, len(req.Experiences))
	for _, p := range req.Experiences {
		rows = append(rows, services.DraftRow{
			ClientIndex:      p.ClientIndex,
			Employer:         p.Employer,
			Role:             p.Role,
			Responsibilities: p.Responsibilities,
			StartDate:        p.StartDate,
			EndDate:          p.EndDate,
			GapReason:        p.GapReason,
		})
	}

	results, err := h.experience.BatchSave(c.Request.Context(), req.Name, req.Email, rows)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]saveResultPayload, 0, len(results))
	for _, r := range results {
		out = append(out, saveResultPayload{ClientIndex: r.ClientIndex, RecordID: r.RecordID, Status: "ok"})
	}

	c.JSON(http.StatusOK, gin.H{"results": out})
}

func (h *Handlers) uploadDocument(c *gin.Context) {
	var req struct {
		FileName   string `json:"fileName"`
		Base64Data string `json:"base64Data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	docID, err := h.documents.Upload(c.Request.Context(), req.FileName, req.Base64Data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documentId": docID})
}

func (h *Handlers) attachDocument(c *gin.Context) {
	var req struct {
		OwnerRecordID string `json:"ownerRecordId"`
		DocumentID    string `json:"documentId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	if err := h.documents.Attach(c.Request.Context(), req.OwnerRecordID, req.DocumentID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handlers) listDocuments(c *gin.Context) {
	files, err := h.documents.List(c.Request.Context(), c.Query("owner"))
	if err != nil {
		writeError(c, err)
		return
	}

	type filePayload struct {
		DocumentID  string `json:"documentId"`
		Title       string `json:"title"`
		DownloadURL string `json:"downloadUrl"`
	}
	out := make([]filePayload, 0, len(files))
	for _, f := range files {
		out = append(out, filePayload{DocumentID: f.DocumentID, Title: f.Title, DownloadURL: f.DownloadURL})
	}

	c.JSON(http.StatusOK, gin.H{"files": out})
}

func (h *Handlers) deleteDocument(c *gin.Context) {
	var req struct {
		DocumentID    string `json:"documentId"`
		OwnerRecordID string `json:"ownerRecordId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	if err := h.documents.Delete(c.Request.Context(), req.DocumentID, req.OwnerRecordID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// lookupChecklist answers 200 with a null record when no checklist exists:
// an absent record is a normal state on first visit, not an error.
func (h *Handlers) lookupChecklist(c *gin.Context) {
	view, err := h.checklist.Lookup(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}

	if view == nil {
		c.JSON(http.StatusOK, gin.H{"record": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": gin.H{"recordId": view.RecordID, "present": view.Present}})
}

func (h *Handlers) saveChecklist(c *gin.Context) {
	var req struct {
		Name      string            `json:"name"`
		Email     string            `json:"email"`
		Phone     string            `json:"phone"`
		Documents map[string]string `json:"documents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	if err := h.checklist.Save(c.Request.Context(), req.Name, req.Email, req.Phone, req.Documents); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handlers) createLead(c *gin.Context) {
	var req struct {
		JobID         string `json:"jobId"`
		JobName       string `json:"jobName"`
		FirstName     string `json:"firstName"`
		LastName      string `json:"lastName"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Skills        string `json:"skills"`
		Experience    string `json:"experience"`
		Qualification string `json:"qualification"`
		Location      string `json:"location"`
		FileName      string `json:"fileName"`
		Base64Data    string `json:"base64Data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": codeValidation})
		return
	}

	leadID, err := h.leads.Create(c.Request.Context(), services.LeadInput{
		JobID:         req.JobID,
		JobName:       req.JobName,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Skills:        req.Skills,
		Experience:    req.Experience,
		Qualification: req.Qualification,
		Location:      req.Location,
		FileName:      req.FileName,
		Base64Data:    req.Base64Data,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leadId": leadID})
}
