package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/fetchstate"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/termview"
)

var (
	listForceError bool
	listNoColor    bool
	listDelay      time.Duration
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Render the projects list in the terminal",
	Long: `Mount the projects view against the simulated API, print the loading
frame, wait for the read to settle and print the result.

Examples:
  projects-overview list
  projects-overview list --error      # simulate an API failure
  projects-overview list --delay 0s   # skip the simulated latency`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listForceError, "error", false, "Make the simulated API fail")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	listCmd.Flags().DurationVar(&listDelay, "delay", 0, "Simulated latency, overrides PROJECTS_FETCH_DELAY")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		cfg.Projects.FetchDelay = listDelay
	}

	ctx := cmd.Context()
	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	r := termview.New(cmd.OutOrStdout(), termview.Config{
		NoColor:    listNoColor,
		DateLayout: cfg.Projects.DateLayout,
	})
	if err := r.Header(identity.FromConfig(cfg.Identity)); err != nil {
		return err
	}

	loader := fetchstate.NewLoader(repository.WithFailure(ctx, listForceError), a.projects.ListProjects)
	defer loader.Close()

	if err := r.Render(loader.Output()); err != nil {
		return err
	}

	st, err := loader.Wait(ctx)
	if err != nil {
		return err
	}
	if err := r.Render(fetchstate.OutputOf(st)); err != nil {
		return err
	}

	if f, ok := st.(fetchstate.Failure); ok {
		return f.Err
	}
	return nil
}
