package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tasklist-widget/config"
	"tasklist-widget/internal/board"
	boardHTTP "tasklist-widget/internal/board/delivery/http"
	"tasklist-widget/internal/board/repository/memory"
	"tasklist-widget/internal/board/usecase"
	"tasklist-widget/internal/middleware"
	"tasklist-widget/pkg/listpdf"
	"tasklist-widget/pkg/log"
)

// ── Helpers ────────────────────────────────────────────────────────────────

type taskJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type boardJSON struct {
	ID        string     `json:"id"`
	Tasks     []taskJSON `json:"tasks"`
	Direction string     `json:"direction"`
	Display   struct {
		Visible string `json:"visible"`
		Hidden  string `json:"hidden"`
	} `json:"display"`
	State    string `json:"state"`
	Mode     string `json:"mode"`
	Dragging string `json:"dragging"`
}

type envelope[T any] struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
}

func newRouter(uc board.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	mw := middleware.New(l, config.RateLimitConfig{})
	boardHTTP.RegisterRoutes(r.Group("/api/v1"), boardHTTP.New(l, uc), mw)
	return r
}

func newTestRouter() *gin.Engine {
	l := log.NewNop()
	repo := memory.New(memory.Config{MaxBoards: 10, TTL: time.Minute}, l)
	return newRouter(usecase.New(repo, listpdf.New("A4"), l))
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %s: %v", w.Body.String(), err)
	}
	return env
}

func createBoard(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/boards", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create board: %d %s", w.Code, w.Body.String())
	}
	return decode[boardJSON](t, w).Data.ID
}

func addTask(t *testing.T, r http.Handler, boardID, label string) taskJSON {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/boards/"+boardID+"/tasks", map[string]string{"label": label})
	if w.Code != http.StatusOK {
		t.Fatalf("add task %q: %d %s", label, w.Code, w.Body.String())
	}
	return decode[struct {
		Task taskJSON `json:"task"`
	}](t, w).Data.Task
}

func labels(b boardJSON) []string {
	out := make([]string, len(b.Tasks))
	for i, task := range b.Tasks {
		out[i] = task.Label
	}
	return out
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreateAndDetail(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)

	w := do(t, r, http.MethodGet, "/api/v1/boards/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	b := decode[boardJSON](t, w).Data
	if b.ID != id || b.State != "empty" || b.Mode != "input" || b.Direction != "ascending" {
		t.Errorf("unexpected board %+v", b)
	}
	if b.Display.Visible != "sort-ascending" || b.Display.Hidden != "sort-descending" {
		t.Errorf("unexpected display %+v", b.Display)
	}
}

func TestUnknownBoardIs404(t *testing.T) {
	r := newTestRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/boards/missing"},
		{http.MethodDelete, "/api/v1/boards/missing"},
		{http.MethodPost, "/api/v1/boards/missing/sort/toggle"},
		{http.MethodGet, "/api/v1/boards/missing/export.pdf"},
	} {
		w := do(t, r, tc.method, tc.path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: status %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestAddTaskValidation(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)

	for _, label := range []string{"", "   "} {
		w := do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/tasks", map[string]string{"label": label})
		if w.Code != http.StatusBadRequest {
			t.Errorf("label %q: status %d", label, w.Code)
		}
		if msg := decode[any](t, w).Message; msg != board.ErrEmptyLabel.Error() {
			t.Errorf("label %q: message %q", label, msg)
		}
	}

	w := do(t, r, http.MethodGet, "/api/v1/boards/"+id, nil)
	if b := decode[boardJSON](t, w).Data; len(b.Tasks) != 0 {
		t.Errorf("blank adds changed the board: %+v", b)
	}
}

func TestAddShowInputRemove(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/tasks", map[string]string{"label": "a"})
	added := decode[struct {
		Task  taskJSON  `json:"task"`
		Board boardJSON `json:"board"`
	}](t, w).Data
	if added.Board.State != "non_empty" || added.Board.Mode != "list" {
		t.Errorf("after add: %+v", added.Board)
	}

	w = do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/input", nil)
	if b := decode[boardJSON](t, w).Data; b.Mode != "input" {
		t.Errorf("after show input: mode %s", b.Mode)
	}

	w = do(t, r, http.MethodDelete, "/api/v1/boards/"+id+"/tasks/"+added.Task.ID, nil)
	removed := decode[struct {
		Removed bool      `json:"removed"`
		Board   boardJSON `json:"board"`
	}](t, w).Data
	if !removed.Removed || removed.Board.State != "empty" || removed.Board.Mode != "input" {
		t.Errorf("after remove: %+v", removed)
	}

	w = do(t, r, http.MethodDelete, "/api/v1/boards/"+id+"/tasks/"+added.Task.ID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("removing unknown task: status %d", w.Code)
	}
}

func TestDragAndDrop(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)
	one := addTask(t, r, id, "1")
	addTask(t, r, id, "2")
	three := addTask(t, r, id, "3")

	w := do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/drag", map[string]string{"task_id": three.ID})
	if b := decode[boardJSON](t, w).Data; b.Dragging != three.ID {
		t.Fatalf("dragging = %q", b.Dragging)
	}

	w = do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/drop", map[string]string{"target_id": one.ID})
	dropped := decode[struct {
		Moved bool      `json:"moved"`
		Board boardJSON `json:"board"`
	}](t, w).Data
	if !dropped.Moved || !slices.Equal(labels(dropped.Board), []string{"3", "1", "2"}) {
		t.Errorf("after drop: %+v", dropped)
	}

	w = do(t, r, http.MethodDelete, "/api/v1/boards/"+id+"/drag", nil)
	if b := decode[boardJSON](t, w).Data; b.Dragging != "" {
		t.Errorf("drag not cleared: %q", b.Dragging)
	}
}

func TestDropRequiresTarget(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/drop", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d", w.Code)
	}
}

func TestToggleSort(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)
	for _, l := range []string{"3", "1", "2"} {
		addTask(t, r, id, l)
	}

	w := do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/sort/toggle", nil)
	b := decode[boardJSON](t, w).Data
	if !slices.Equal(labels(b), []string{"1", "2", "3"}) || b.Direction != "ascending" {
		t.Errorf("first toggle: %v %s", labels(b), b.Direction)
	}

	w = do(t, r, http.MethodPost, "/api/v1/boards/"+id+"/sort/toggle", nil)
	b = decode[boardJSON](t, w).Data
	if !slices.Equal(labels(b), []string{"3", "2", "1"}) || b.Direction != "descending" {
		t.Errorf("second toggle: %v %s", labels(b), b.Direction)
	}
	if b.Display.Visible != "sort-descending" {
		t.Errorf("display %+v", b.Display)
	}
}

func TestExportPDF(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)
	addTask(t, r, id, "buy milk")

	w := do(t, r, http.MethodGet, "/api/v1/boards/"+id+"/export.pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Errorf("body is not a PDF")
	}
}

func TestDiscard(t *testing.T) {
	r := newTestRouter()
	id := createBoard(t, r)

	if w := do(t, r, http.MethodDelete, "/api/v1/boards/"+id, nil); w.Code != http.StatusOK {
		t.Fatalf("discard status %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/boards/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after discard status %d", w.Code)
	}
}

type brokenUseCase struct {
	board.UseCase
}

func (brokenUseCase) Get(ctx context.Context, boardID string) (board.Snapshot, error) {
	return board.Snapshot{}, errors.New("store exploded")
}

func TestUnexpectedErrorIs500(t *testing.T) {
	r := newRouter(brokenUseCase{})

	w := do(t, r, http.MethodGet, "/api/v1/boards/any", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", w.Code)
	}
	if msg := decode[any](t, w).Message; msg == "store exploded" {
		t.Errorf("internal error leaked to client")
	}
}
