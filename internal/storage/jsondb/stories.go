package jsondb

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// ListStories возвращает копию коллекции историй в порядке добавления.
func (s *Storage) ListStories(ctx context.Context) ([]models.Story, error) {
	const op = "storage.jsondb.ListStories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Story, len(s.stories))
	copy(result, s.stories)
	return result, nil
}

// AppendStory добавляет историю в коллекцию, перезаписывает stories.json
// и возвращает индекс новой записи.
func (s *Storage) AppendStory(ctx context.Context, st models.Story) (int, error) {
	const op = "storage.jsondb.AppendStory"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stories = append(s.stories, st)
	if err := saveFile(s.path(storiesFile), s.stories); err != nil {
		s.stories = s.stories[:len(s.stories)-1]
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return len(s.stories) - 1, nil
}

// IncrementStoryHearts увеличивает счётчик лайков истории с данным
// индексом ровно на единицу и персистит коллекцию.
func (s *Storage) IncrementStoryHearts(ctx context.Context, index int) (int, error) {
	const op = "storage.jsondb.IncrementStoryHearts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.stories) {
		return 0, fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}
	s.stories[index].Hearts++
	if err := saveFile(s.path(storiesFile), s.stories); err != nil {
		s.stories[index].Hearts--
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return s.stories[index].Hearts, nil
}
