package services

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"greanium/internal/logger"
	"greanium/internal/session"
)

// Loader builds snapshots from a DataSource and publishes them to a Store.
type Loader struct {
	source DataSource
	store  *session.Store
	now    func() time.Time
	log    *log.Logger
}

// NewLoader creates a loader.
func NewLoader(source DataSource, store *session.Store) *Loader {
	return &Loader{
		source: source,
		store:  store,
		now:    time.Now,
		log:    logger.NewStyledLogger("Loader"),
	}
}

// LoadResult summarises one load.
type LoadResult struct {
	Projects int
	Skills   int
	Links    int
	Files    int
	// Failed names the collections that could not be loaded.
	Failed []string
}

// Load fetches links, files and portfolio concurrently and publishes a new
// snapshot. A collection that fails is logged and keeps the value from the
// previous snapshot. An error is returned only when every collection failed,
// and then nothing is published.
func (l *Loader) Load(ctx context.Context) (LoadResult, error) {
	var (
		links     []session.Link
		files     []session.File
		portfolio *session.Portfolio
		errs      [3]error
	)

	// Collections fail independently, so the goroutines never return an
	// error and gctx is only cancelled with ctx.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		links, errs[0] = l.source.Links(gctx)
		return nil
	})
	g.Go(func() error {
		files, errs[1] = l.source.Files(gctx)
		return nil
	})
	g.Go(func() error {
		portfolio, errs[2] = l.source.Portfolio(gctx)
		return nil
	})
	_ = g.Wait()

	var result LoadResult
	for i, name := range []string{"links", "files", "portfolio"} {
		if errs[i] != nil {
			l.log.Warn("Failed to load collection", "source", name, "error", errs[i])
			result.Failed = append(result.Failed, name)
		}
	}
	if len(result.Failed) == 3 {
		return result, errors.Join(errs[:]...)
	}

	prev := l.store.Load()
	snap := &session.Snapshot{
		Links:    prev.Links,
		Files:    prev.Files,
		Projects: prev.Projects,
		Bio:      prev.Bio,
		LoadedAt: l.now(),
	}
	if errs[0] == nil {
		snap.Links = session.NewLinkIndex(links)
	}
	if errs[1] == nil {
		snap.Files = files
	}
	if errs[2] == nil {
		snap.Projects, snap.Bio = nil, nil
		if portfolio != nil {
			snap.Projects = portfolio.Projects
			snap.Bio = portfolio.Bio
		}
	}
	l.store.Replace(snap)

	result.Projects = len(snap.Projects)
	if snap.Bio != nil {
		result.Skills = len(snap.Bio.Skills)
	}
	result.Links = snap.Links.Len()
	result.Files = len(snap.Files)
	l.log.Info("Session data loaded", "projects", result.Projects, "links", result.Links, "files", result.Files)
	return result, nil
}
