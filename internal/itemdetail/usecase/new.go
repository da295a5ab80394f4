package usecase

import (
	"time"

	"item-details-service/internal/itemdetail"
	"item-details-service/internal/itemdetail/repository"
	"item-details-service/pkg/datemath"
	"item-details-service/pkg/log"
)

// Options holds the optional collaborators of the use case.
// Nil collaborators are skipped.
type Options struct {
	Cache    repository.CacheRepository
	CacheTTL time.Duration

	// Dates resolves due dates. Defaults to a UTC parser.
	Dates *datemath.Parser

	// Hooks run in order after every committed mutation.
	Hooks []itemdetail.Hook

	Attachments  itemdetail.AttachmentLister
	Comments     itemdetail.CommentLister
	Dependencies itemdetail.DependencyLister
	History      itemdetail.HistoryLister
}

type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	cache repository.CacheRepository
	ttl   time.Duration
	dates *datemath.Parser
	hooks []itemdetail.Hook

	attachments  itemdetail.AttachmentLister
	comments     itemdetail.CommentLister
	dependencies itemdetail.DependencyLister
	history      itemdetail.HistoryLister

	now func() time.Time
}

// New creates a new itemdetail UseCase implementation.
func New(repo repository.Repository, l log.Logger, opt Options) *implUseCase {
	dates := opt.Dates
	if dates == nil {
		dates, _ = datemath.NewParser("UTC")
	}
	return &implUseCase{
		repo:         repo,
		l:            l,
		cache:        opt.Cache,
		ttl:          opt.CacheTTL,
		dates:        dates,
		hooks:        opt.Hooks,
		attachments:  opt.Attachments,
		comments:     opt.Comments,
		dependencies: opt.Dependencies,
		history:      opt.History,
		now:          time.Now,
	}
}
