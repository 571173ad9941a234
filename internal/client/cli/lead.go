package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/filex"
)

// Apply walks through the job-application form and submits it with the
// resume attached. A duplicate application is shown next to the email
// field, not as a toast.
func (a *App) Apply(ctx context.Context) error {
	form := models.LeadForm{}

	var err error
	if form.JobID, err = GetSimpleText(a.reader, "Job id", a.out); err != nil {
		return err
	}
	if form.JobName, err = GetSimpleText(a.reader, "Job name", a.out); err != nil {
		return err
	}
	if form.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if form.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if form.Skills, err = GetSimpleText(a.reader, "Skills", a.out); err != nil {
		return err
	}
	if form.Experience, err = GetSimpleText(a.reader, "Experience", a.out); err != nil {
		return err
	}
	if form.Qualification, err = GetSimpleText(a.reader, "Qualification", a.out); err != nil {
		return err
	}
	if form.Location, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}

	path, err := GetSimpleText(a.reader, "Resume file path", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		if form.FileName, form.Base64Data, err = filex.ReadAsBase64(path); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
	}

	res, err := a.lead.Apply(ctx, form)
	if err != nil {
		return err
	}
	if res.EmailError != "" {
		fmt.Fprintf(a.out, "Email: %s\n", res.EmailError)
		return nil
	}
	fmt.Fprintf(a.out, "Application %s created\n", res.LeadID)
	return nil
}
