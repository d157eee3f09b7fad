package content

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/culture-swap/internal/lib/tags"
	"github.com/magabrotheeeer/culture-swap/internal/models"
	"github.com/magabrotheeeer/culture-swap/internal/storage/jsondb"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestService(t *testing.T) *ContentService {
	t.Helper()
	db, err := jsondb.New(t.TempDir())
	require.NoError(t, err)
	return NewContentService(db, newNoopLogger())
}

func TestCreateRecipe(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	req := models.DummyRecipe{
		Title:        "Soup",
		Description:  "grandma's winter soup",
		Ingredients:  "2 cups broth\n1 onion\nsalt",
		Instructions: "simmer for an hour",
		CultureTags:  []string{"Italy"},
		MealType:     []string{"Dinner"},
		DietaryTags:  []string{"Vegetarian"},
		Season:       []string{"Winter"},
		Media:        []string{"media/soup.jpg"},
	}
	index, err := s.CreateRecipe(ctx, "alice", req)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	items, err := s.Feed(ctx, models.FeedFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0].Recipe
	assert.Equal(t, "Soup", got.Title)
	assert.Equal(t, []string{"2 cups broth", "1 onion", "salt"}, got.Ingredients)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, 0, got.Hearts)
	assert.Equal(t, []string{"media/soup.jpg"}, got.Media)
	assert.Equal(t, time.Now().Format(models.DateLayout), got.DateAdded)
}

func TestCreateRecipe_WindowsLineEndings(t *testing.T) {
	s := newTestService(t)

	req := models.DummyRecipe{
		Title:        "Bread",
		Ingredients:  "flour\r\nwater\r\nyeast",
		Instructions: "bake",
	}
	_, err := s.CreateRecipe(context.Background(), "alice", req)
	require.NoError(t, err)

	items, err := s.Feed(context.Background(), models.FeedFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "water", "yeast"}, items[0].Recipe.Ingredients)
}

func TestCreateRecipe_UnknownTags(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	base := models.DummyRecipe{
		Title:        "Soup",
		Ingredients:  "broth",
		Instructions: "simmer",
	}

	tests := []struct {
		name   string
		mutate func(r *models.DummyRecipe)
	}{
		{
			name:   "unknown culture",
			mutate: func(r *models.DummyRecipe) { r.CultureTags = []string{"Atlantis"} },
		},
		{
			name:   "unknown meal type",
			mutate: func(r *models.DummyRecipe) { r.MealType = []string{"Brunch"} },
		},
		{
			name:   "unknown dietary tag",
			mutate: func(r *models.DummyRecipe) { r.DietaryTags = []string{"Paleo"} },
		},
		{
			name:   "unknown season",
			mutate: func(r *models.DummyRecipe) { r.Season = []string{"Monsoon"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := s.CreateRecipe(ctx, "alice", req)
			assert.ErrorIs(t, err, tags.ErrUnknownTag)
		})
	}

	// Отклонённые запросы ничего не записали.
	items, err := s.Feed(ctx, models.FeedFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateStory_UnknownOccasion(t *testing.T) {
	s := newTestService(t)

	req := models.DummyStory{
		Title:    "Tale",
		Story:    "long ago",
		Occasion: []string{"Housewarming"},
	}
	_, err := s.CreateStory(context.Background(), "bob", req)
	assert.ErrorIs(t, err, tags.ErrUnknownTag)
}

func TestFeed_CombinedAndFiltered(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateRecipe(ctx, "alice", models.DummyRecipe{
		Title:        "Soup",
		Ingredients:  "broth",
		Instructions: "simmer",
		CultureTags:  []string{"Italy"},
		Season:       []string{"Winter"},
		DietaryTags:  []string{},
	})
	require.NoError(t, err)

	_, err = s.CreateStory(ctx, "bob", models.DummyStory{
		Title:       "Tale",
		Story:       "a festival memory",
		CultureTags: []string{"Japan"},
		Occasion:    []string{"Festival"},
	})
	require.NoError(t, err)

	all, err := s.Feed(ctx, models.FeedFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	japanese, err := s.Feed(ctx, models.FeedFilter{Culture: []string{"Japan"}})
	require.NoError(t, err)
	require.Len(t, japanese, 1)
	assert.Equal(t, models.KindStory, japanese[0].Kind)
	assert.Equal(t, "Tale", japanese[0].Story.Title)
}

func TestAddHeart(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateRecipe(ctx, "alice", models.DummyRecipe{
		Title:        "Soup",
		Ingredients:  "broth",
		Instructions: "simmer",
	})
	require.NoError(t, err)
	_, err = s.CreateStory(ctx, "bob", models.DummyStory{
		Title: "Tale",
		Story: "long ago",
	})
	require.NoError(t, err)

	hearts, err := s.AddHeart(ctx, models.KindRecipe, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, hearts)

	hearts, err = s.AddHeart(ctx, models.KindRecipe, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, hearts)

	// История не тронута.
	items, err := s.Feed(ctx, models.FeedFilter{})
	require.NoError(t, err)
	for _, item := range items {
		if item.Kind == models.KindStory {
			assert.Equal(t, 0, item.Story.Hearts)
		}
	}

	_, err = s.AddHeart(ctx, models.KindStory, 5)
	assert.ErrorIs(t, err, jsondb.ErrItemNotFound)

	_, err = s.AddHeart(ctx, "comment", 0)
	assert.Error(t, err)
}
