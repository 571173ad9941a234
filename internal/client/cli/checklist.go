package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/client/services"
	"github.com/dmitrijs2005/jobintake/internal/filex"
)

// Checklist opens the document-checklist flow: identity first, then the
// list of still-missing categories.
func (a *App) Checklist(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}

	items, err := a.checklist.Lookup(ctx, models.Profile{Name: name, Email: email, Phone: phone})
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "  %-16s %s\n", string(item.Category), item.Label)
	}
	return nil
}

// Pick selects a local file for one checklist category.
func (a *App) Pick(ctx context.Context) error {
	cat, err := GetSimpleText(a.reader, "Category key", a.out)
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "File path", a.out)
	if err != nil {
		return err
	}

	name, data, err := filex.ReadAsBase64(path)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	items, err := a.checklist.SelectFile(models.Category(cat), services.FileUpload{Name: name, Base64: data})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	for _, item := range items {
		mark := " "
		if item.FileName != "" {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %-16s %s %s\n", mark, string(item.Category), item.Label, item.FileName)
	}
	return nil
}

// SubmitChecklist uploads the selected files and saves the combined record.
func (a *App) SubmitChecklist(ctx context.Context) error {
	return a.checklist.Submit(ctx)
}
