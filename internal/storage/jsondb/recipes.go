package jsondb

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// ListRecipes возвращает копию коллекции рецептов в порядке добавления.
func (s *Storage) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	const op = "storage.jsondb.ListRecipes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Recipe, len(s.recipes))
	copy(result, s.recipes)
	return result, nil
}

// AppendRecipe добавляет рецепт в коллекцию, перезаписывает recipes.json
// и возвращает индекс новой записи.
func (s *Storage) AppendRecipe(ctx context.Context, r models.Recipe) (int, error) {
	const op = "storage.jsondb.AppendRecipe"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = append(s.recipes, r)
	if err := saveFile(s.path(recipesFile), s.recipes); err != nil {
		s.recipes = s.recipes[:len(s.recipes)-1]
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return len(s.recipes) - 1, nil
}

// IncrementRecipeHearts увеличивает счётчик лайков рецепта с данным
// индексом ровно на единицу и персистит коллекцию. Возвращает новое
// значение счётчика или ErrItemNotFound.
func (s *Storage) IncrementRecipeHearts(ctx context.Context, index int) (int, error) {
	const op = "storage.jsondb.IncrementRecipeHearts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.recipes) {
		return 0, fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}
	s.recipes[index].Hearts++
	if err := saveFile(s.path(recipesFile), s.recipes); err != nil {
		s.recipes[index].Hearts--
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return s.recipes[index].Hearts, nil
}
