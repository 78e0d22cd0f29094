package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"tasklist-widget/internal/board"
	"tasklist-widget/internal/board/repository"
	"tasklist-widget/internal/board/repository/memory"
	"tasklist-widget/internal/board/usecase"
	"tasklist-widget/internal/model"
	"tasklist-widget/internal/ordering"
	"tasklist-widget/pkg/listpdf"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRenderer struct {
	got  listpdf.Document
	fail bool
}

func (m *mockRenderer) Render(doc listpdf.Document) ([]byte, error) {
	if m.fail {
		return nil, errors.New("render failed")
	}
	m.got = doc
	return []byte("%PDF-1.3 fake"), nil
}

type failingRepo struct {
	repository.Repository
}

func (f failingRepo) GetBoard(ctx context.Context, id string) (*board.Board, error) {
	return nil, errors.New("store down")
}

func newUseCase(t *testing.T) (board.UseCase, *mockRenderer) {
	t.Helper()
	l := &mockLogger{}
	pdf := &mockRenderer{}
	repo := memory.New(memory.Config{MaxBoards: 100, TTL: time.Minute}, l)
	return usecase.New(repo, pdf, l, usecase.WithExportTitle("My tasks")), pdf
}

func labels(s board.Snapshot) []string {
	out := make([]string, len(s.Tasks))
	for i, t := range s.Tasks {
		out[i] = t.Label
	}
	return out
}

func addAll(t *testing.T, uc board.UseCase, boardID string, ls ...string) map[string]string {
	t.Helper()
	ids := map[string]string{}
	for _, l := range ls {
		out, err := uc.AddTask(context.Background(), board.AddTaskInput{BoardID: boardID, Label: l})
		if err != nil {
			t.Fatalf("AddTask(%q): %v", l, err)
		}
		ids[l] = out.Task.ID
	}
	return ids
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	snap, err := uc.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if snap.BoardID == "" || snap.State != model.ListEmpty || snap.Mode != board.ModeInput {
		t.Errorf("unexpected new board: %+v", snap)
	}

	got, err := uc.Get(ctx, snap.BoardID)
	if err != nil || got.BoardID != snap.BoardID {
		t.Errorf("Get = %+v, %v", got, err)
	}
	if stats := uc.Stats(ctx); stats.LiveBoards != 1 {
		t.Errorf("LiveBoards = %d", stats.LiveBoards)
	}
}

func TestUnknownBoard(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	if _, err := uc.Get(ctx, "nope"); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("Get err = %v", err)
	}
	if _, err := uc.AddTask(ctx, board.AddTaskInput{BoardID: "nope", Label: "x"}); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("AddTask err = %v", err)
	}
	if _, err := uc.ToggleSort(ctx, "nope"); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("ToggleSort err = %v", err)
	}
	if err := uc.Discard(ctx, "nope"); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("Discard err = %v", err)
	}
}

func TestStoreErrorPropagates(t *testing.T) {
	l := &mockLogger{}
	repo := failingRepo{memory.New(memory.Config{}, l)}
	uc := usecase.New(repo, &mockRenderer{}, l)

	if _, err := uc.Get(context.Background(), "any"); err == nil || errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestAddTaskFlow(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	snap, _ := uc.Create(ctx)

	if _, err := uc.AddTask(ctx, board.AddTaskInput{BoardID: snap.BoardID, Label: "   "}); !errors.Is(err, board.ErrEmptyLabel) {
		t.Fatalf("blank AddTask err = %v", err)
	}
	got, _ := uc.Get(ctx, snap.BoardID)
	if len(got.Tasks) != 0 || got.Mode != board.ModeInput {
		t.Errorf("blank add changed the board: %+v", got)
	}

	out, err := uc.AddTask(ctx, board.AddTaskInput{BoardID: snap.BoardID, Label: " a "})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if out.Task.Label != "a" || out.Snapshot.State != model.ListNonEmpty || out.Snapshot.Mode != board.ModeList {
		t.Errorf("unexpected output: %+v", out)
	}

	shown, _ := uc.ShowInput(ctx, snap.BoardID)
	if shown.Mode != board.ModeInput || len(shown.Tasks) != 1 {
		t.Errorf("ShowInput = %+v", shown)
	}

	rm, err := uc.RemoveTask(ctx, board.RemoveTaskInput{BoardID: snap.BoardID, TaskID: out.Task.ID})
	if err != nil || !rm.Removed {
		t.Fatalf("RemoveTask = %+v, %v", rm, err)
	}
	if rm.Snapshot.State != model.ListEmpty || rm.Snapshot.Mode != board.ModeInput {
		t.Errorf("after last remove: %+v", rm.Snapshot)
	}

	rm, err = uc.RemoveTask(ctx, board.RemoveTaskInput{BoardID: snap.BoardID, TaskID: out.Task.ID})
	if err != nil || rm.Removed {
		t.Errorf("second RemoveTask = %+v, %v", rm, err)
	}
}

func TestDragFlow(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	snap, _ := uc.Create(ctx)
	ids := addAll(t, uc, snap.BoardID, "1", "2", "3")

	began, err := uc.BeginDrag(ctx, board.BeginDragInput{BoardID: snap.BoardID, TaskID: ids["2"]})
	if err != nil || began.Dragging != ids["2"] {
		t.Fatalf("BeginDrag = %+v, %v", began, err)
	}

	out, err := uc.CompleteDrag(ctx, board.CompleteDragInput{BoardID: snap.BoardID, TargetID: ids["1"]})
	if err != nil || !out.Moved {
		t.Fatalf("CompleteDrag = %+v, %v", out, err)
	}
	if got := labels(out.Snapshot); !slices.Equal(got, []string{"2", "1", "3"}) {
		t.Errorf("order = %v", got)
	}

	ended, err := uc.EndDrag(ctx, snap.BoardID)
	if err != nil || ended.Dragging != "" {
		t.Errorf("EndDrag = %+v, %v", ended, err)
	}
}

func TestToggleSortFlow(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	snap, _ := uc.Create(ctx)
	addAll(t, uc, snap.BoardID, "3", "1", "2")

	asc, err := uc.ToggleSort(ctx, snap.BoardID)
	if err != nil {
		t.Fatalf("ToggleSort: %v", err)
	}
	if got := labels(asc); !slices.Equal(got, []string{"1", "2", "3"}) || asc.Direction != model.SortAscending {
		t.Errorf("first toggle = %v %s", got, asc.Direction)
	}

	desc, _ := uc.ToggleSort(ctx, snap.BoardID)
	if got := labels(desc); !slices.Equal(got, []string{"3", "2", "1"}) || desc.Direction != model.SortDescending {
		t.Errorf("second toggle = %v %s", got, desc.Direction)
	}
	if desc.Display != ordering.DisplayFor(model.SortDescending) {
		t.Errorf("display = %+v", desc.Display)
	}
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	snap, _ := uc.Create(ctx)

	if err := uc.Discard(ctx, snap.BoardID); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if _, err := uc.Get(ctx, snap.BoardID); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("Get after Discard err = %v", err)
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	uc, pdf := newUseCase(t)
	snap, _ := uc.Create(ctx)
	addAll(t, uc, snap.BoardID, "b", "a")

	out, err := uc.Export(ctx, snap.BoardID)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out.FileName != fmt.Sprintf("tasks-%s.pdf", snap.BoardID) || len(out.Content) == 0 {
		t.Errorf("unexpected output %q (%d bytes)", out.FileName, len(out.Content))
	}
	if pdf.got.Title != "My tasks" || !slices.Equal(pdf.got.Items, []string{"b", "a"}) {
		t.Errorf("renderer got %+v", pdf.got)
	}

	pdf.fail = true
	if _, err := uc.Export(ctx, snap.BoardID); err == nil {
		t.Errorf("expected render error")
	}
}

func TestConcurrentAddsOnOneBoard(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	snap, _ := uc.Create(ctx)

	const n = 50
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := uc.AddTask(ctx, board.AddTaskInput{BoardID: snap.BoardID, Label: fmt.Sprint(i)})
			done <- err
		}(i)
	}
	for i := 0; i < n; i++ {
		if err := <-done; err != nil {
			t.Fatalf("AddTask: %v", err)
		}
	}

	got, _ := uc.Get(ctx, snap.BoardID)
	if len(got.Tasks) != n {
		t.Errorf("len = %d, want %d", len(got.Tasks), n)
	}
}

func TestDiscardWhileEventWaits(t *testing.T) {
	ctx := context.Background()
	l := &mockLogger{}
	repo := memory.New(memory.Config{MaxBoards: 10, TTL: time.Minute}, l)
	uc := usecase.New(repo, &mockRenderer{}, l)
	snap, _ := uc.Create(ctx)
	b, _ := repo.GetBoard(ctx, snap.BoardID)

	// Hold the board so the add is queued behind the lock when Discard runs.
	b.Lock()
	added := make(chan error, 1)
	go func() {
		_, err := uc.AddTask(ctx, board.AddTaskInput{BoardID: snap.BoardID, Label: "1"})
		added <- err
	}()
	discarded := make(chan error, 1)
	go func() {
		discarded <- uc.Discard(ctx, snap.BoardID)
	}()
	time.Sleep(20 * time.Millisecond)
	b.Unlock()

	if err := <-discarded; err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if err := <-added; err != nil && !errors.Is(err, board.ErrBoardNotFound) {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := uc.Get(ctx, snap.BoardID); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("Get after Discard err = %v", err)
	}
	if n := uc.Stats(ctx).LiveBoards; n != 0 {
		t.Errorf("live boards = %d", n)
	}
}

func TestDiscardTwice(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	snap, _ := uc.Create(ctx)

	if err := uc.Discard(ctx, snap.BoardID); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if err := uc.Discard(ctx, snap.BoardID); !errors.Is(err, board.ErrBoardNotFound) {
		t.Errorf("second Discard err = %v", err)
	}
}
