package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/culture-swap/internal/http/response"
	"github.com/magabrotheeeer/culture-swap/internal/models"
)

type ContentServiceMock struct {
	mock.Mock
}

func (m *ContentServiceMock) Feed(ctx context.Context, filter models.FeedFilter) ([]models.FeedItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]models.FeedItem)
	return items, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestFeedListHandler_ServeHTTP(t *testing.T) {
	sampleItems := []models.FeedItem{
		{
			Kind:   models.KindStory,
			Index:  0,
			Author: "bob",
			Date:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Story:  &models.Story{Title: "Tale"},
		},
	}

	tests := []struct {
		name           string
		url            string
		wantFilter     models.FeedFilter
		mockItems      []models.FeedItem
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantCount      float64
	}{
		{
			name:           "no filters",
			url:            "/api/v1/feed",
			wantFilter:     models.FeedFilter{},
			mockItems:      sampleItems,
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
			wantCount:      1,
		},
		{
			name: "repeated query params become filter sets",
			url:  "/api/v1/feed?culture=Japan&culture=Italy&season=Winter&dietary=Vegan",
			wantFilter: models.FeedFilter{
				Culture: []string{"Japan", "Italy"},
				Season:  []string{"Winter"},
				Dietary: []string{"Vegan"},
			},
			mockItems:      nil,
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
			wantCount:      0,
		},
		{
			name:           "service failure",
			url:            "/api/v1/feed",
			wantFilter:     models.FeedFilter{},
			mockErr:        errors.New("boom"),
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ContentServiceMock)
			serviceMock.On("Feed", mock.Anything, tt.wantFilter).
				Return(tt.mockItems, tt.mockErr).Once()
			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)

			var resp response.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantStatus == response.StatusOK {
				data, ok := resp.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.wantCount, data["feed_count"])
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
