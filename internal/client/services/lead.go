package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobintake/internal/client/api"
	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/notify"
)

// LeadResult is the outcome of one application attempt. A duplicate
// application is not an error in the transport sense: it comes back as a
// field-scoped message the caller renders next to the email input.
type LeadResult struct {
	LeadID     string
	EmailError string
}

// LeadService submits job applications with an attached resume.
type LeadService struct {
	client   api.Client
	notifier notify.Notifier
	logger   logging.Logger
}

func NewLeadService(client api.Client, notifier notify.Notifier, logger logging.Logger) *LeadService {
	return &LeadService{client: client, notifier: notifier, logger: logger}
}

// Apply validates the form locally, then creates the lead together with its
// resume attachment in one call. Validation failures and duplicate
// applications never reach the notifier as generic errors: the former return
// a wrapped ErrValidation, the latter populate LeadResult.EmailError.
func (s *LeadService) Apply(ctx context.Context, form models.LeadForm) (LeadResult, error) {
	if err := validateLeadForm(form); err != nil {
		s.notifier.Notify(ctx, notify.SeverityError, "Error", err.Error())
		return LeadResult{}, err
	}

	leadID, err := s.client.CreateLeadWithAttachment(ctx, form)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateApplication) {
			msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), common.ErrDuplicateApplication.Error()+":"))
			return LeadResult{EmailError: msg}, nil
		}
		s.notifier.Notify(ctx, notify.SeverityError, "Error", "Failed to submit application: "+err.Error())
		return LeadResult{}, err
	}

	s.notifier.Notify(ctx, notify.SeveritySuccess, "Success", "Application submitted successfully.")
	return LeadResult{LeadID: leadID}, nil
}

func validateLeadForm(form models.LeadForm) error {
	switch {
	case form.FirstName == "" || form.LastName == "":
		return fmt.Errorf("%w: first and last name are required", common.ErrValidation)
	case form.Email == "":
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	case form.Phone == "":
		return fmt.Errorf("%w: phone is required", common.ErrValidation)
	case form.FileName == "" || form.Base64Data == "":
		return fmt.Errorf("%w: a resume file is required", common.ErrValidation)
	default:
		return nil
	}
}
