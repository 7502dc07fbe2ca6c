package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/track2success-dev/track2success/internal/aggregate"
	"github.com/track2success-dev/track2success/internal/config"
	"github.com/track2success-dev/track2success/internal/ledger"
	"github.com/track2success-dev/track2success/internal/render"
	"github.com/track2success-dev/track2success/internal/report"
)

// session wires a store, its aggregation engine, and the project config
// together for one command invocation. The ledger CSV is read on open and
// written back on save; in between everything is in memory.
type session struct {
	dir    string
	cfg    *config.Config
	store  *ledger.Store
	engine *aggregate.Engine
}

func openSession(dir string) (*session, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening project in %s: %w", dir, err)
	}

	store := ledger.NewStore()
	engine := aggregate.NewEngine(store)
	store.Watch(engine)

	s := &session{dir: dir, cfg: cfg, store: store, engine: engine}

	f, err := os.Open(s.ledgerPath())
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txns, err := ledger.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	if err := store.Restore(txns); err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return s, nil
}

func (s *session) save() error {
	f, err := os.Create(s.ledgerPath())
	if err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	defer f.Close()

	if err := ledger.WriteTransactions(f, s.store.All()); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

func (s *session) reports() *report.Generator {
	return report.NewGenerator(s.engine)
}

func (s *session) renderer() *render.Renderer {
	return render.New(s.cfg.Reports.Currency)
}

func (s *session) ledgerPath() string {
	return filepath.Join(s.dir, s.cfg.Ledger.File)
}

func (s *session) reportsDir() string {
	return filepath.Join(s.dir, s.cfg.Reports.Dir)
}
