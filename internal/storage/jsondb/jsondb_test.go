package jsondb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/culture-swap/internal/models"
)

func testRecipe(title string) models.Recipe {
	return models.Recipe{
		Title:        title,
		Description:  "family dish",
		Ingredients:  []string{"2 cups flour", "1 egg"},
		Instructions: "mix and bake",
		CultureTags:  []string{"Italy"},
		MealType:     []string{"Dinner"},
		DietaryTags:  []string{"Vegetarian"},
		Season:       []string{"Winter"},
		DateAdded:    "2024-03-01",
		Hearts:       0,
		Media:        []string{"media/soup.jpg"},
		Author:       "alice",
	}
}

func testStory(title string) models.Story {
	return models.Story{
		Title:       title,
		Story:       "a tale from home",
		CultureTags: []string{"Japan"},
		Occasion:    []string{"Festival"},
		DateAdded:   "2024-03-02",
		Hearts:      0,
		Media:       nil,
		Author:      "bob",
	}
}

func TestNew_EmptyDataDir(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	recipes, err := s.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)

	stories, err := s.ListStories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stories)

	count, err := s.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNew_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipes.json"), []byte("{not json"), 0o644))

	_, err := New(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	first := models.User{
		Username:     "alice",
		PasswordHash: "hash-1",
		Email:        "a@x.com",
		CreatedAt:    "2024-03-01",
		ID:           "id-1",
	}
	id, err := s.RegisterUser(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	second := first
	second.PasswordHash = "hash-2"
	second.Email = "b@x.com"
	second.ID = "id-2"
	_, err = s.RegisterUser(ctx, second)
	assert.ErrorIs(t, err, ErrUserExists)

	// Данные первой учётной записи не изменились.
	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", got.PasswordHash)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "id-1", got.ID)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRoundTrip_FreshProcess(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := New(dir)
	require.NoError(t, err)

	user := models.User{
		Username:     "alice",
		PasswordHash: "hash-1",
		Email:        "a@x.com",
		CreatedAt:    "2024-03-01",
		ID:           "id-1",
	}
	_, err = s.RegisterUser(ctx, user)
	require.NoError(t, err)

	recipe := testRecipe("Soup")
	_, err = s.AppendRecipe(ctx, recipe)
	require.NoError(t, err)

	story := testStory("Tale")
	_, err = s.AppendStory(ctx, story)
	require.NoError(t, err)

	// Новый Storage поверх того же каталога имитирует свежий процесс.
	reloaded, err := New(dir)
	require.NoError(t, err)

	gotUser, err := reloaded.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, *gotUser)

	gotRecipes, err := reloaded.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, gotRecipes, 1)
	assert.Equal(t, recipe, gotRecipes[0])

	gotStories, err := reloaded.ListStories(ctx)
	require.NoError(t, err)
	require.Len(t, gotStories, 1)
	assert.Equal(t, story, gotStories[0])
}

func TestIncrementRecipeHearts(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := New(dir)
	require.NoError(t, err)

	for _, title := range []string{"Soup", "Bread", "Pasta"} {
		_, err = s.AppendRecipe(ctx, testRecipe(title))
		require.NoError(t, err)
	}

	hearts, err := s.IncrementRecipeHearts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, hearts)

	// Увеличился ровно один счётчик, остальные записи не тронуты.
	recipes, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recipes[0].Hearts)
	assert.Equal(t, 1, recipes[1].Hearts)
	assert.Equal(t, 0, recipes[2].Hearts)

	// Инкремент персистится сразу.
	reloaded, err := New(dir)
	require.NoError(t, err)
	recipes, err = reloaded.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recipes[1].Hearts)
}

func TestIncrementStoryHearts_OutOfRange(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.AppendStory(ctx, testStory("Tale"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		index int
	}{
		{name: "negative index", index: -1},
		{name: "past the end", index: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.IncrementStoryHearts(ctx, tt.index)
			assert.ErrorIs(t, err, ErrItemNotFound)
		})
	}
}

func TestListRecipes_ReturnsCopy(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.AppendRecipe(ctx, testRecipe("Soup"))
	require.NoError(t, err)

	recipes, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	recipes[0].Hearts = 100

	again, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again[0].Hearts)
}

func TestContextCancelled(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.ListRecipes(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.RegisterUser(ctx, models.User{Username: "alice"})
	assert.ErrorIs(t, err, context.Canceled)
}
