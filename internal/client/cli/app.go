package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobintake/internal/client/api"
	"github.com/dmitrijs2005/jobintake/internal/client/config"
	"github.com/dmitrijs2005/jobintake/internal/client/gaps"
	"github.com/dmitrijs2005/jobintake/internal/client/services"
	"github.com/dmitrijs2005/jobintake/internal/logging"
	"github.com/dmitrijs2005/jobintake/internal/notify"
)

type App struct {
	config     *config.Config
	experience *services.ExperienceService
	checklist  *services.ChecklistService
	lead       *services.LeadService
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr)
	notifier := notify.NewLogNotifier(logger)
	apiClient := api.NewHTTPClient(c.ServerEndpointAddr)
	policy := gaps.ParsePolicy(c.GapPolicy)

	return &App{
		config:     c,
		experience: services.NewExperienceService(apiClient, notifier, logger, policy),
		checklist:  services.NewChecklistService(apiClient, notifier, logger),
		lead:       services.NewLeadService(apiClient, notifier, logger),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to the candidate intake CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	snap := a.experience.Snapshot()
	if len(snap.Entries) == 0 {
		return ""
	}
	saved := 0
	for _, e := range snap.Entries {
		if e.Saved() {
			saved++
		}
	}
	return fmt.Sprintf("(%d drafts, %d saved)", len(snap.Entries), saved)
}

func (a *App) hasDrafts() bool {
	return len(a.experience.Snapshot().Entries) > 0 || a.checklist.Started()
}
