package usecase

import (
	"time"

	"tasklist-widget/internal/board"
	"tasklist-widget/internal/board/repository"
	"tasklist-widget/internal/ordering"
	"tasklist-widget/pkg/listpdf"
	"tasklist-widget/pkg/log"
)

// implUseCase is the private implementation of board.UseCase.
type implUseCase struct {
	repo        repository.Repository
	pdf         listpdf.Renderer
	l           log.Logger
	exportTitle string
	engineOpts  []ordering.Option
	now         func() time.Time
}

var _ board.UseCase = (*implUseCase)(nil)

// Option tweaks the use case.
type Option func(*implUseCase)

// WithExportTitle sets the heading printed on exported lists.
func WithExportTitle(title string) Option {
	return func(uc *implUseCase) { uc.exportTitle = title }
}

// WithEngineOptions is forwarded to every new board's engine.
func WithEngineOptions(opts ...ordering.Option) Option {
	return func(uc *implUseCase) { uc.engineOpts = opts }
}

// New creates a new board UseCase implementation.
func New(repo repository.Repository, pdf listpdf.Renderer, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo:        repo,
		pdf:         pdf,
		l:           l,
		exportTitle: "To-do list",
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
