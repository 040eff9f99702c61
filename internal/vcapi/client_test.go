package vcapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchContent(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantHits  int
		wantViews int
		wantURL   string
	}{
		{
			name:   "counters in nested object",
			status: http.StatusOK,
			body: `{"result":{"id":1234567,"url":"https://vc.ru/marketing/1234567-title",
				"title":"Title","date":1700000000,"counters":{"views":900,"hits":120}}}`,
			wantHits:  120,
			wantViews: 900,
			wantURL:   "https://vc.ru/marketing/1234567-title",
		},
		{
			name:   "legacy hitsCount fallback",
			status: http.StatusOK,
			body: `{"result":{"id":1234567,"title":"Title","date":1700000000,
				"counters":{"views":50},"hitsCount":77,"customUri":"marketing/1234567-title"}}`,
			wantHits:  77,
			wantViews: 50,
			wantURL:   "https://vc.ru/marketing/1234567-title",
		},
		{
			name:    "upstream 404",
			status:  http.StatusNotFound,
			body:    `{"message":"not found"}`,
			wantErr: true,
		},
		{
			name:    "upstream 500",
			status:  http.StatusInternalServerError,
			body:    ``,
			wantErr: true,
		},
		{
			name:    "malformed payload",
			status:  http.StatusOK,
			body:    `{"result":`,
			wantErr: true,
		},
		{
			name:    "empty result object",
			status:  http.StatusOK,
			body:    `{"result":{}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2.10/content", r.URL.Path)
				assert.Equal(t, "1234567", r.URL.Query().Get("id"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)
			article, err := client.FetchContent(context.Background(), 1234567)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, article)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1234567, article.ID)
			assert.Equal(t, tt.wantURL, article.URL)
			assert.Equal(t, tt.wantHits, article.Counters.Hits)
			assert.Equal(t, tt.wantViews, article.Counters.Views)
			assert.Equal(t, time.Unix(1700000000, 0).UTC(), article.PublishedAt)
			assert.WithinDuration(t, time.Now().UTC(), article.LastUpdated, time.Second)
		})
	}
}

func TestClient_FetchContent_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchContent(ctx, 1234567)
	require.Error(t, err)
}
