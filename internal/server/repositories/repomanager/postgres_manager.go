package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/migrations"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/candidates"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/checklists"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/documents"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/experiences"
	"github.com/dmitrijs2005/jobintake/internal/server/repositories/leads"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func (m *PostgresRepositoryManager) Candidates(db dbx.DBTX) candidates.Repository {
	return candidates.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Experiences(db dbx.DBTX) experiences.Repository {
	return experiences.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Checklists(db dbx.DBTX) checklists.Repository {
	return checklists.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Leads(db dbx.DBTX) leads.Repository {
	return leads.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager() (RepositoryManager, error) {
	m := &PostgresRepositoryManager{}
	return m, nil
}
