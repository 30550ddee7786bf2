package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/delavector/officedb/internal/config"
	"github.com/delavector/officedb/internal/csvstore"
	"github.com/delavector/officedb/internal/domain/colleague"
	"github.com/delavector/officedb/internal/domain/contact"
	"github.com/delavector/officedb/internal/domain/project"
	"github.com/delavector/officedb/internal/repository"
	"github.com/delavector/officedb/internal/sqlite"
)

const usage = `usage: officedb <command>

commands:
  init         prepare the configured store and seed the colleague list
  import       copy records from a csv data directory into the sqlite store
  next-number  print the next free project number
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx := context.Background()

	switch os.Args[1] {
	case "init":
		err = runInit(ctx, cfg, logger)
	case "import":
		err = runImport(ctx, cfg, logger, os.Args[2:])
	case "next-number":
		err = runNextNumber(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

// repos bundles the three stores of whichever backend is configured.
type repos struct {
	contacts   repository.ContactRepository
	projects   repository.ProjectRepository
	colleagues repository.ColleagueRepository
	close      func() error
}

func openRepos(cfg config.Config) (*repos, error) {
	switch cfg.Storage.Backend {
	case config.BackendCSV:
		store, err := csvstore.Open(cfg.Storage.CSVDir)
		if err != nil {
			return nil, fmt.Errorf("open csv store: %w", err)
		}
		return &repos{
			contacts:   csvstore.NewContactRepository(store),
			projects:   csvstore.NewProjectRepository(store),
			colleagues: csvstore.NewColleagueRepository(store),
			close:      func() error { return nil },
		}, nil
	default:
		if err := ensureDBDir(cfg.Storage.SQLitePath); err != nil {
			return nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return &repos{
			contacts:   sqlite.NewContactRepository(db),
			projects:   sqlite.NewProjectRepository(db),
			colleagues: sqlite.NewColleagueRepository(db),
			close:      db.Close,
		}, nil
	}
}

func runInit(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	r, err := openRepos(cfg)
	if err != nil {
		return err
	}
	defer r.close()

	colleagueSvc := colleague.NewService(r.colleagues, logger)
	if err := colleagueSvc.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("seed colleagues: %w", err)
	}

	logger.Info("store ready", "backend", cfg.Storage.Backend)
	return nil
}

func runImport(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dir := fs.String("dir", cfg.Storage.CSVDir, "csv data directory to import from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := csvstore.Open(*dir)
	if err != nil {
		return fmt.Errorf("open csv store: %w", err)
	}
	src := &repos{
		contacts:   csvstore.NewContactRepository(store),
		projects:   csvstore.NewProjectRepository(store),
		colleagues: csvstore.NewColleagueRepository(store),
	}

	if err := ensureDBDir(cfg.Storage.SQLitePath); err != nil {
		return fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.Storage.SQLitePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	dst := &repos{
		contacts:   sqlite.NewContactRepository(db),
		projects:   sqlite.NewProjectRepository(db),
		colleagues: sqlite.NewColleagueRepository(db),
	}

	contacts, err := src.contacts.List(ctx, contact.Filters{}, contact.OrderModified)
	if err != nil {
		return fmt.Errorf("read contacts: %w", err)
	}
	for i := range contacts {
		if err := dst.contacts.Create(ctx, &contacts[i]); err != nil {
			return fmt.Errorf("import contact %s: %w", contacts[i].ID, err)
		}
	}

	projects, err := src.projects.List(ctx, project.Filters{})
	if err != nil {
		return fmt.Errorf("read projects: %w", err)
	}
	for i := range projects {
		if err := dst.projects.Create(ctx, &projects[i]); err != nil {
			return fmt.Errorf("import project %s: %w", projects[i].Number, err)
		}
	}

	colleagues, err := src.colleagues.List(ctx)
	if err != nil {
		return fmt.Errorf("read colleagues: %w", err)
	}
	for i := range colleagues {
		if err := dst.colleagues.Add(ctx, &colleagues[i]); err != nil {
			return fmt.Errorf("import colleague %s: %w", colleagues[i].Name, err)
		}
	}

	logger.Info("import complete",
		"contacts", len(contacts),
		"projects", len(projects),
		"colleagues", len(colleagues))
	return nil
}

func runNextNumber(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("next-number", flag.ExitOnError)
	bureau := fs.String("bureau", string(project.BureauDelafontaine), "bureau the number is for")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := openRepos(cfg)
	if err != nil {
		return err
	}
	defer r.close()

	numbers, err := r.projects.Numbers(ctx)
	if err != nil {
		return fmt.Errorf("read project numbers: %w", err)
	}

	next := project.NextNumber(numbers)
	switch project.Bureau(*bureau) {
	case project.BureauDelafontaine:
		fmt.Println(next)
	case project.BureauVector:
		fmt.Println("V" + next)
	default:
		return fmt.Errorf("unknown bureau %q", *bureau)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
