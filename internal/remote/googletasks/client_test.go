package googletasks_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"google.golang.org/api/option"

	"todos/internal/config"
	"todos/internal/remote"
	"todos/internal/remote/googletasks"
)

// fakeAPI serves the subset of the Tasks REST API the client uses.
type fakeAPI struct {
	mu      sync.Mutex
	lists   []map[string]string
	open    map[string][]string // list id -> open titles
	created map[string][]string // list id -> inserted titles
	status  int                 // non-zero forces every response to this code
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != 0 {
		w.WriteHeader(f.status)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": f.status, "message": "nope"}})
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/tasks/v1/users/@me/lists/@default":
		writeJSON(w, map[string]string{"id": "real-default", "title": "My Tasks"})
	case r.Method == http.MethodGet && r.URL.Path == "/tasks/v1/users/@me/lists":
		writeJSON(w, map[string]any{"items": f.lists})
	case r.URL.Path == "/tasks/v1/lists/work/tasks" || r.URL.Path == "/tasks/v1/lists/@default/tasks":
		listID := filepath.Base(filepath.Dir(r.URL.Path))
		if r.Method == http.MethodPost {
			var body struct {
				Title string `json:"title"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.created[listID] = append(f.created[listID], body.Title)
			writeJSON(w, map[string]string{"id": "new", "title": body.Title})
			return
		}
		items := []map[string]string{}
		for _, title := range f.open[listID] {
			items = append(items, map[string]string{"title": title, "status": "needsAction"})
		}
		writeJSON(w, map[string]any{"items": items})
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, api *fakeAPI) *googletasks.Client {
	t.Helper()
	if api.open == nil {
		api.open = map[string][]string{}
	}
	if api.created == nil {
		api.created = map[string][]string{}
	}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := googletasks.NewWithOptions(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	if err != nil {
		t.Fatalf("NewWithOptions: %v", err)
	}
	return client
}

func TestClient_DefaultList(t *testing.T) {
	client := newTestClient(t, &fakeAPI{})

	list, err := client.DefaultList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.ID != googletasks.DefaultListID || list.Title != "My Tasks" || !list.IsDefault {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestClient_ResolveList(t *testing.T) {
	api := &fakeAPI{lists: []map[string]string{
		{"id": "work", "title": "Work"},
		{"id": "a", "title": "Dup"},
		{"id": "b", "title": " dup "},
	}}
	client := newTestClient(t, api)
	ctx := context.Background()

	list, err := client.ResolveList(ctx, "  WORK ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.ID != "work" {
		t.Errorf("expected work, got %+v", list)
	}

	if _, err := client.ResolveList(ctx, "missing"); !errors.Is(err, remote.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := client.ResolveList(ctx, "dup"); !errors.Is(err, remote.ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}
}

func TestClient_ListAndCreate(t *testing.T) {
	api := &fakeAPI{open: map[string][]string{"work": {"walk dog", "file taxes"}}}
	client := newTestClient(t, api)
	ctx := context.Background()

	titles, err := client.ListOpenTitles(ctx, "work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "walk dog" || titles[1] != "file taxes" {
		t.Errorf("unexpected titles %q", titles)
	}

	if err := client.CreateTask(ctx, "work", "buy milk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	if got := api.created["work"]; len(got) != 1 || got[0] != "buy milk" {
		t.Errorf("unexpected created titles %q", got)
	}
}

func TestClient_AuthErrors(t *testing.T) {
	client := newTestClient(t, &fakeAPI{status: http.StatusUnauthorized})

	_, err := client.DefaultList(context.Background())
	if !errors.Is(err, remote.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	_, err := googletasks.New(context.Background(), cfg)
	if !errors.Is(err, remote.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestNew_MissingToken(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	clientJSON := `{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`
	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(clientJSON), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := googletasks.New(context.Background(), cfg)
	if !errors.Is(err, remote.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
	if !cfg.HasOAuthClient() || cfg.HasToken() {
		t.Error("unexpected credential state")
	}
}

func TestLogin_MissingClient(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	err := googletasks.Login(context.Background(), cfg, os.Stderr)
	if !errors.Is(err, googletasks.ErrNoOAuthClient) {
		t.Fatalf("expected ErrNoOAuthClient, got %v", err)
	}
}
