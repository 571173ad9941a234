package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/jobintake/internal/client/models"
	"github.com/dmitrijs2005/jobintake/internal/client/services"
	"github.com/dmitrijs2005/jobintake/internal/filex"
)

// Start opens an employment-history form: it asks for the candidate's name
// and email, then sizes the draft set from the server.
func (a *App) Start(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	snap, err := a.experience.Start(ctx, name, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Prepared %d draft(s)\n", len(snap.Entries))
	return nil
}

// Edit assigns one field of one draft. Date fields use YYYY-MM-DD;
// responsibilities accept multi-line input.
func (a *App) Edit(ctx context.Context) error {
	idx, err := a.promptIndex()
	if err != nil {
		return err
	}

	field, err := GetSimpleText(a.reader, "Field (employer, role, responsibilities, startDate, endDate, gapReason)", a.out)
	if err != nil {
		return err
	}

	var value string
	if models.Field(field) == models.FieldResponsibilities {
		value, err = GetMultiline(a.reader, "Key responsibilities", a.out)
	} else {
		value, err = GetSimpleText(a.reader, "Value", a.out)
	}
	if err != nil {
		return err
	}

	snap, err := a.experience.SetField(idx, models.Field(field), value)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if snap.Entries[idx].ShowGapFlag {
		fmt.Fprintln(a.out, "Note: this entry now shows an employment gap; consider adding a reason.")
	}
	return nil
}

// List prints every draft with its persistence state, gap flag and files.
func (a *App) List(_ context.Context) error {
	snap := a.experience.Snapshot()
	if len(snap.Entries) == 0 {
		fmt.Fprintln(a.out, "No drafts. Use 'start' first.")
		return nil
	}
	for _, e := range snap.Entries {
		status := "draft"
		if e.Saved() {
			status = "saved " + e.RecordID
		}
		fmt.Fprintf(a.out, "[%d] %s | %s | %s..%s | %s\n",
			e.ClientIndex, e.Employer, e.Role, e.StartDate, e.EndDate, status)
		if e.ShowGapFlag {
			fmt.Fprintf(a.out, "    gap before this entry; reason: %q\n", e.GapReason)
		}
		for _, f := range e.Files {
			fmt.Fprintf(a.out, "    file %s %s %s\n", f.DocumentID, f.Title, f.DownloadURL)
		}
	}
	return nil
}

// Save submits the whole draft set.
func (a *App) Save(ctx context.Context) error {
	_, err := a.experience.Save(ctx)
	return err
}

// Attach reads local files and links them to one saved draft.
func (a *App) Attach(ctx context.Context) error {
	idx, err := a.promptIndex()
	if err != nil {
		return err
	}

	paths, err := GetFilePaths(a.reader, a.out)
	if err != nil {
		return err
	}

	uploads := make([]services.FileUpload, 0, len(paths))
	for _, p := range paths {
		name, data, err := filex.ReadAsBase64(p)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		uploads = append(uploads, services.FileUpload{Name: name, Base64: data})
	}

	return a.experience.AttachFiles(ctx, idx, uploads)
}

// DeleteFile removes one linked document from one draft.
func (a *App) DeleteFile(ctx context.Context) error {
	idx, err := a.promptIndex()
	if err != nil {
		return err
	}
	docID, err := GetSimpleText(a.reader, "Document id", a.out)
	if err != nil {
		return err
	}
	return a.experience.DeleteFile(ctx, idx, docID)
}

// Reset discards the form.
func (a *App) Reset(_ context.Context) error {
	a.experience.Reset()
	a.checklist.Reset()
	fmt.Fprintln(a.out, "Form cleared.")
	return nil
}

func (a *App) promptIndex() (int, error) {
	s, err := GetSimpleText(a.reader, "Draft index", a.out)
	if err != nil {
		return 0, err
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintln(a.out, "Not a number:", s)
		return 0, err
	}
	return idx, nil
}
