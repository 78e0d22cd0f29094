package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tasklist-widget/internal/board"
	"tasklist-widget/internal/board/repository"
	"tasklist-widget/pkg/log"
)

const (
	DefaultMaxBoards = 10000
	DefaultTTL       = 2 * time.Hour
)

// Config bounds the in-memory store.
type Config struct {
	MaxBoards int
	TTL       time.Duration
}

type implRepository struct {
	boards *expirable.LRU[string, *board.Board]
	l      log.Logger
	now    func() time.Time
}

// New creates an in-memory Repository. Boards idle for longer than cfg.TTL,
// or pushed out by cfg.MaxBoards newer ones, are dropped.
func New(cfg Config, l log.Logger) repository.Repository {
	if l == nil {
		panic("board/repository/memory: logger is required")
	}
	if cfg.MaxBoards <= 0 {
		cfg.MaxBoards = DefaultMaxBoards
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	r := &implRepository{l: l, now: time.Now}
	r.boards = expirable.NewLRU[string, *board.Board](cfg.MaxBoards, r.onEvict, cfg.TTL)
	return r
}

func (r *implRepository) onEvict(id string, _ *board.Board) {
	r.l.Debugf(context.Background(), "%s: board %s evicted", r.dsn("onEvict"), id)
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("board/repository/memory.%s", method)
}
