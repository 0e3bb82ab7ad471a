// Package gen creates or completes a project's manifest.
//
// A run loads the manifest, collects candidates from the project root,
// reconciles them and writes the result. A pending update is confirmed
// once unless forced; a fresh manifest is written without asking.
package gen

import (
	"context"

	"github.com/arthur-debert/pkgignore/pkg/candidates"
	"github.com/arthur-debert/pkgignore/pkg/config"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/filesystem"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/manifest"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/reconcile"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/rs/zerolog"
)

// Options holds options for a generation run
type Options struct {
	// Root is the project root directory
	Root string

	// FS defaults to the OS filesystem
	FS types.FS

	// Config defaults to config.Default()
	Config *config.Config

	// Policy overrides the policy resolved from Config
	Policy *patterns.Policy

	// Force skips confirmation; confirm.force in Config has the same effect
	Force bool

	// DryRun computes everything but never writes
	DryRun bool

	// Confirmer is asked about pending updates. Required unless forced.
	Confirmer types.Confirmer
}

// Outcome reports what a run did
type Outcome struct {
	Status    types.Status
	Path      string
	Content   []byte
	Additions []string

	// Created is set when no manifest existed before the run
	Created bool

	// Written is set when the manifest was saved
	Written bool

	DryRun bool
}

// Prepared is a reconciled but unresolved run
type Prepared struct {
	Path       string
	Candidates []patterns.Pattern
	Plan       *reconcile.Plan
	Store      *manifest.Store
	Config     *config.Config
}

// Prepare validates the root, loads the manifest, collects candidates and
// reconciles them. Nothing is written.
func Prepare(opts Options) (*Prepared, error) {
	logger := logging.GetLogger("commands.gen")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if opts.Root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "project root is empty")
	}
	info, err := fsys.Stat(opts.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootNotFound, "project root %s not found", opts.Root).
			WithDetail("root", opts.Root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootNotFound, "project root %s is not a directory", opts.Root).
			WithDetail("root", opts.Root)
	}

	var policy patterns.Policy
	if opts.Policy != nil {
		policy = *opts.Policy
	} else if policy, err = cfg.Policy(); err != nil {
		return nil, err
	}

	catalog, err := cfg.CandidateCatalog()
	if err != nil {
		return nil, err
	}

	store := manifest.NewStore(fsys)
	path := manifest.Path(opts.Root, cfg.Manifest.Filename)
	existing, err := store.Load(path)
	if err != nil {
		return nil, err
	}

	found := candidates.NewCollector(fsys, catalog).Collect(opts.Root)

	plan, err := reconcile.New(policy, cfg.Header()).Reconcile(existing, found)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("policy", policy.Name).
		Int("candidates", len(found)).
		Str("status", plan.Status.String()).
		Msg("Manifest reconciled")

	return &Prepared{
		Path:       path,
		Candidates: found,
		Plan:       plan,
		Store:      store,
		Config:     cfg,
	}, nil
}

// Run performs a generation run
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	logger := logging.GetLogger("commands.gen")
	done := logging.LogOperationStart(logger, "gen")
	defer done()

	prep, err := Prepare(opts)
	if err != nil {
		logRun(logger, opts, nil, err)
		return nil, err
	}
	plan := prep.Plan
	force := opts.Force || prep.Config.Confirm.Force

	approved := true
	if plan.NeedsConfirmation(force) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Confirmer == nil {
			return nil, errors.New(errors.ErrConfirm, "confirmation required but no confirmer available")
		}
		req := types.ConfirmationRequest{
			Path:      prep.Path,
			Additions: plan.AdditionLines(),
			Default:   prep.Config.Confirm.Default,
		}
		approved, err = opts.Confirmer.Confirm(req.Prompt())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfirm, "confirmation failed")
		}
		logger.Debug().Bool("approved", approved).Msg("Confirmation answered")
	}

	result := plan.Resolve(approved)
	outcome := &Outcome{
		Status:    result.Status,
		Path:      prep.Path,
		Content:   result.Content,
		Additions: result.Additions,
		Created:   plan.Status == types.StatusNoFile,
		DryRun:    opts.DryRun,
	}
	if outcome.Created {
		outcome.Status = types.StatusSaved
	}

	if result.Write && !opts.DryRun {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := prep.Store.Save(prep.Path, result.Content); err != nil {
			logRun(logger, opts, outcome, err)
			return nil, err
		}
		outcome.Written = true
	}

	logRun(logger, opts, outcome, nil)
	return outcome, nil
}

func logRun(logger zerolog.Logger, opts Options, outcome *Outcome, err error) {
	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err)
	}

	event.
		Str("command", "gen").
		Str("root", opts.Root).
		Bool("dry_run", opts.DryRun)

	if outcome != nil {
		event.
			Str("path", outcome.Path).
			Str("status", outcome.Status.String()).
			Int("additions", len(outcome.Additions)).
			Bool("created", outcome.Created).
			Bool("written", outcome.Written)
	}

	if err != nil {
		event.Msg("Gen command failed")
	} else {
		event.Msg("Gen command completed")
	}
}
