package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

// fakeStore is an in-memory stand-in for the remote task service. Ids are
// assigned server-side, as the real store does.
type fakeStore struct {
	mu    sync.Mutex
	tasks map[string]model.Task
	order []string

	requests []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: make(map[string]model.Task)}
}

func (s *fakeStore) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/summary", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		summary := model.DailySummary{Summary: "**Steady progress.**", Categories: map[string]int{}}
		s.mu.Lock()
		for _, id := range s.order {
			t := s.tasks[id]
			summary.TotalTasks++
			if t.Completed {
				summary.CompletedTasks++
			}
			summary.Categories[model.DisplayCategory(t.Category)]++
		}
		s.mu.Unlock()
		if summary.TotalTasks > 0 {
			summary.CompletionRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
		}
		writeJSON(w, http.StatusOK, summary)
	})
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		switch r.Method {
		case http.MethodGet:
			s.mu.Lock()
			out := make([]model.Task, 0, len(s.order))
			for _, id := range s.order {
				out = append(out, s.tasks[id])
			}
			s.mu.Unlock()
			writeJSON(w, http.StatusOK, out)
		case http.MethodPost:
			var in struct {
				Description string `json:"description"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			t := model.Task{
				ID:          uuid.NewString(),
				Description: in.Description,
				Priority:    model.PriorityMedium,
			}
			s.mu.Lock()
			s.tasks[t.ID] = t
			s.order = append(s.order, t.ID)
			s.mu.Unlock()
			writeJSON(w, http.StatusCreated, t)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		id := strings.TrimPrefix(r.URL.Path, "/tasks/")
		s.mu.Lock()
		defer s.mu.Unlock()
		stored, ok := s.tasks[id]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, stored)
		case http.MethodPut:
			var in model.Task
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			in.ID = id
			s.tasks[id] = in
			writeJSON(w, http.StatusOK, in)
		case http.MethodDelete:
			delete(s.tasks, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func (s *fakeStore) record(r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T) (*Client, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	server := httptest.NewServer(store.handler())
	t.Cleanup(server.Close)
	return NewClient(server.URL), store
}

func TestCreateThenListTasks(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, "Buy milk")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected server-assigned id")
	}
	if created.Description != "Buy milk" {
		t.Fatalf("unexpected description: %q", created.Description)
	}

	tasks, err := client.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "Buy milk" {
		t.Fatalf("unexpected list: %#v", tasks)
	}
}

func TestCreateTaskRejectsWhitespaceWithoutNetworkCall(t *testing.T) {
	client, store := newTestClient(t)

	_, err := client.CreateTask(context.Background(), "  ")
	if !errors.Is(err, model.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got: %v", err)
	}
	if len(store.requests) != 0 {
		t.Fatalf("expected zero network calls, saw %v", store.requests)
	}
}

func TestUpdateTaskSendsFullRecord(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, "File taxes")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Priority = model.PriorityHigh
	created.Category = "Finance"
	updated, err := client.UpdateTask(ctx, created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Priority != model.PriorityHigh || updated.Category != "Finance" {
		t.Fatalf("unexpected updated task: %#v", updated)
	}

	fetched, err := client.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Priority != model.PriorityHigh {
		t.Fatalf("expected persisted priority, got %#v", fetched)
	}
}

func TestDeleteTask(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateTask(ctx, "Temp")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := client.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	tasks, err := client.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list, got %#v", tasks)
	}
}

func TestDailySummary(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	first, err := client.CreateTask(ctx, "One")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := client.CreateTask(ctx, "Two"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	first.Completed = true
	if _, err := client.UpdateTask(ctx, first); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	summary, err := client.DailySummary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalTasks != 2 || summary.CompletedTasks != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.CompletionRate != 50 {
		t.Fatalf("expected 50%% completion rate, got %v", summary.CompletionRate)
	}
	if summary.Summary == "" {
		t.Fatal("expected narrative text")
	}
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetTask(context.Background(), "missing")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got: %v", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", statusErr.Code)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	store := newFakeStore()
	server := httptest.NewServer(store.handler())
	t.Cleanup(server.Close)

	client := NewClient(server.URL + "/")
	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("list with trailing-slash base failed: %v", err)
	}
}
