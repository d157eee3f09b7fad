// Package content содержит бизнес-логику публикации рецептов и историй,
// лайков и сборки ленты поверх репозитория коллекций.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/culture-swap/internal/lib/tags"
	"github.com/magabrotheeeer/culture-swap/internal/models"
	"github.com/magabrotheeeer/culture-swap/internal/services/feed"
)

// Repository описывает контракт репозитория коллекций рецептов и историй.
// Репозиторий — единственный владелец персистентных коллекций; сервис
// ленты их только читает.
type Repository interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListStories(ctx context.Context) ([]models.Story, error)
	AppendRecipe(ctx context.Context, r models.Recipe) (int, error)
	AppendStory(ctx context.Context, st models.Story) (int, error)
	IncrementRecipeHearts(ctx context.Context, index int) (int, error)
	IncrementStoryHearts(ctx context.Context, index int) (int, error)
}

// ContentService реализует операции над пользовательским контентом.
type ContentService struct {
	repo Repository
	log  *slog.Logger
}

// NewContentService создает новый экземпляр ContentService.
func NewContentService(repo Repository, log *slog.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

// CreateRecipe валидирует теги по словарям, разбивает ингредиенты по
// строкам и добавляет рецепт в коллекцию. Автор — имя вошедшего
// пользователя. Возвращает индекс новой записи.
func (s *ContentService) CreateRecipe(ctx context.Context, author string, req models.DummyRecipe) (int, error) {
	const op = "services.content.CreateRecipe"

	if err := tags.Validate(req.CultureTags, tags.Culture); err != nil {
		return 0, fmt.Errorf("%s: culture: %w", op, err)
	}
	if err := tags.Validate(req.MealType, tags.Meal); err != nil {
		return 0, fmt.Errorf("%s: meal_type: %w", op, err)
	}
	if err := tags.Validate(req.DietaryTags, tags.Dietary); err != nil {
		return 0, fmt.Errorf("%s: dietary: %w", op, err)
	}
	if err := tags.Validate(req.Season, tags.Seasons); err != nil {
		return 0, fmt.Errorf("%s: season: %w", op, err)
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  splitLines(req.Ingredients),
		Instructions: req.Instructions,
		CultureTags:  req.CultureTags,
		MealType:     req.MealType,
		DietaryTags:  req.DietaryTags,
		Season:       req.Season,
		DateAdded:    time.Now().Format(models.DateLayout),
		Hearts:       0,
		Media:        req.Media,
		Author:       author,
	}
	index, err := s.repo.AppendRecipe(ctx, recipe)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("recipe created", slog.String("title", req.Title), slog.Int("index", index))
	return index, nil
}

// CreateStory валидирует теги и добавляет историю в коллекцию.
func (s *ContentService) CreateStory(ctx context.Context, author string, req models.DummyStory) (int, error) {
	const op = "services.content.CreateStory"

	if err := tags.Validate(req.CultureTags, tags.Culture); err != nil {
		return 0, fmt.Errorf("%s: culture: %w", op, err)
	}
	if err := tags.Validate(req.Occasion, tags.Occasion); err != nil {
		return 0, fmt.Errorf("%s: occasion: %w", op, err)
	}

	story := models.Story{
		Title:       req.Title,
		Story:       req.Story,
		CultureTags: req.CultureTags,
		Occasion:    req.Occasion,
		DateAdded:   time.Now().Format(models.DateLayout),
		Hearts:      0,
		Media:       req.Media,
		Author:      author,
	}
	index, err := s.repo.AppendStory(ctx, story)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("story created", slog.String("title", req.Title), slog.Int("index", index))
	return index, nil
}

// Feed пересобирает объединённую ленту из обеих коллекций и применяет фильтры.
func (s *ContentService) Feed(ctx context.Context, filter models.FeedFilter) ([]models.FeedItem, error) {
	const op = "services.content.Feed"

	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stories, err := s.repo.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := feed.BuildFeed(recipes, stories)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return feed.ApplyFilters(items, filter), nil
}

// AddHeart увеличивает счётчик лайков элемента указанного вида на единицу
// и возвращает новое значение.
func (s *ContentService) AddHeart(ctx context.Context, kind string, index int) (int, error) {
	const op = "services.content.AddHeart"

	var hearts int
	var err error
	switch kind {
	case models.KindRecipe:
		hearts, err = s.repo.IncrementRecipeHearts(ctx, index)
	case models.KindStory:
		hearts, err = s.repo.IncrementStoryHearts(ctx, index)
	default:
		return 0, fmt.Errorf("%s: unknown kind %q", op, kind)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return hearts, nil
}

// splitLines разбивает многострочный ввод на строки, по одной записи на
// строку, как в исходной форме.
func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
