package emoji

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanDedupe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a.png", "/b.png", "/c.png":
			w.Write([]byte("same-bytes"))
		case "/unique.png":
			w.Write([]byte("other-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	emojis := []Ref{
		{ID: "3", Name: "newest", URL: srv.URL + "/c.png", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "1", Name: "oldest", URL: srv.URL + "/a.png", CreatedAt: base},
		{ID: "2", Name: "middle", URL: srv.URL + "/b.png", CreatedAt: base.Add(time.Hour)},
		{ID: "4", Name: "unique", URL: srv.URL + "/unique.png", CreatedAt: base},
		{ID: "5", Name: "broken", URL: srv.URL + "/missing.png", CreatedAt: base},
	}

	plan := NewImporter().PlanDedupe(context.Background(), emojis)

	assert.Equal(t, 4, plan.Scanned)
	assert.Equal(t, 1, plan.FailedFetch)

	// The oldest copy survives; the two newer ones are marked.
	ids := make([]string, 0, len(plan.Duplicates))
	for _, d := range plan.Duplicates {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"2", "3"}, ids)
}

func TestPlanDedupe_NoDuplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	plan := NewImporter().PlanDedupe(context.Background(), []Ref{
		{ID: "1", Name: "a", URL: srv.URL + "/a.png"},
		{ID: "2", Name: "b", URL: srv.URL + "/b.png"},
	})

	assert.Equal(t, 2, plan.Scanned)
	assert.Empty(t, plan.Duplicates)
}
