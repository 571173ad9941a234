package api

import "github.com/dmitrijs2005/jobintake/internal/client/models"

func leadFixture() models.LeadForm {
	return models.LeadForm{
		JobID:      "J1",
		JobName:    "Backend Engineer",
		FirstName:  "Asha",
		LastName:   "Verma",
		Email:      "asha@x.com",
		Phone:      "5550001",
		FileName:   "resume.pdf",
		Base64Data: "aGVsbG8=",
	}
}
