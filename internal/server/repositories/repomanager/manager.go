package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/candidates"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/checklists"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/documents"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/experiences"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/leads"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Candidates(db dbx.DBTX) candidates.Repository
	Experiences(db dbx.DBTX) experiences.Repository
	Documents(db dbx.DBTX) documents.Repository
	Checklists(db dbx.DBTX) checklists.Repository
	Leads(db dbx.DBTX) leads.Repository
}
