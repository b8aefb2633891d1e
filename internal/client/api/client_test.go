package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/common"
	"github.com/agoramujeres/agora-client/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(ts.URL, logging.NewNopLogger())
}

func TestHealth(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	require.NoError(t, c.Health(context.Background()))
	assert.Equal(t, "/api/health", gotPath)
}

func TestCreateDiaryEntry_SendsPayloadAndDecodes(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"e1","device_id":"d1","emotional_state":{"calma":3,"fatiga":0,"niebla_mental":0,"dolor_difuso":0,"gratitud":0,"tension":0},"created_at":"2025-03-01T10:00:00"}`))
	})

	entry, err := c.CreateDiaryEntry(context.Background(), models.DiaryEntryCreate{
		DeviceID:       "d1",
		EmotionalState: models.EmotionalState{Calma: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/diary", gotPath)
	assert.Equal(t, "e1", entry.ID)
	assert.Equal(t, 3, entry.EmotionalState.Calma)

	_, physicalPresent := gotBody["physical_state"]
	assert.False(t, physicalPresent)
}

func TestCreateDiaryEntry_RejectsInvalidInputBeforeRequest(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := c.CreateDiaryEntry(context.Background(), models.DiaryEntryCreate{
		DeviceID:       "d1",
		EmotionalState: models.EmotionalState{Calma: 9},
	})
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.False(t, called, "validation failures must not reach the network")
}

func TestListDiaryEntries_PassesPagination(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	entries, err := c.ListDiaryEntries(context.Background(), "d1", 30, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, gotQuery, "limit=30")
	assert.Contains(t, gotQuery, "offset=10")
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, common.ErrNotFound},
		{"server error", http.StatusInternalServerError, common.ErrServer},
		{"bad request", http.StatusBadRequest, common.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.GetSubscriptionStatus(context.Background(), "d1")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestErrorMapping_Network(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := New(url, logging.NewNopLogger())
	_, err := c.GetSubscriptionStatus(context.Background(), "d1")
	assert.True(t, errors.Is(err, common.ErrNetwork), "got %v", err)
}
