package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/userkeeper/internal/client/config"
	"github.com/dmitrijs2005/userkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/userkeeper/internal/client/services"
	"github.com/dmitrijs2005/userkeeper/internal/client/storage"
	"github.com/dmitrijs2005/userkeeper/internal/client/validation"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
	"github.com/dmitrijs2005/userkeeper/internal/timex"
)

// App wires the store, storage and REPL together and holds the per-session
// view state (the current search query).
type App struct {
	config *config.Config
	users  *services.UserService
	kv     storage.KV
	log    logging.Logger

	reader   *bufio.Reader
	out      io.Writer
	colored  bool
	debounce *timex.Debouncer

	mu          sync.Mutex
	searchQuery string
}

func NewApp(c *config.Config, log logging.Logger, colored bool) (*App, error) {
	ctx := context.Background()

	kv, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	repo := users.NewKVRepository(kv, log)
	svc := services.NewUserService(repo, validation.New(), log)
	svc.Load(ctx)

	return &App{
		config:   c,
		users:    svc,
		kv:       kv,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		colored:  colored,
		debounce: timex.NewDebouncer(c.SearchDebounce),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		a.debounce.Stop()
		if err := a.kv.Close(); err != nil {
			a.log.Error(ctx, "error closing database", "error", err)
		}
	}()

	go a.users.StartResyncWatcher(ctx, a.config.ResyncInterval)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) currentQuery() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.searchQuery
}

func (a *App) setQuery(q string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchQuery = q
}

// status feeds the REPL prompt.
func (a *App) status() string {
	s := fmt.Sprintf("%d users", a.users.Count())
	if q := a.currentQuery(); q != "" {
		s += fmt.Sprintf(", search %q", q)
	}
	if a.users.MemoryOnly() {
		s += ", memory only"
	}
	if a.users.Dirty() {
		s += ", unsaved changes"
	}
	return s
}
