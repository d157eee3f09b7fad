// Package feed собирает объединённую ленту из коллекций рецептов и
// историй. Обе функции чистые и детерминированные: лента никогда не
// мутирует исходные коллекции, только читает и пересобирает.
package feed

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// ErrBadDate — у записи нечитаемое поле date_added.
var ErrBadDate = errors.New("unparseable date_added")

// BuildFeed превращает каждый рецепт и каждую историю в FeedItem и
// сортирует результат по дате по убыванию. Сортировка стабильная:
// при равных датах сохраняется порядок вставки. Автор без значения
// отображается как Anonymous.
func BuildFeed(recipes []models.Recipe, stories []models.Story) ([]models.FeedItem, error) {
	const op = "services.feed.BuildFeed"

	items := make([]models.FeedItem, 0, len(recipes)+len(stories))
	for i := range recipes {
		r := recipes[i]
		date, err := time.Parse(models.DateLayout, r.DateAdded)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: recipe %q", op, ErrBadDate, r.Title)
		}
		items = append(items, models.FeedItem{
			Kind:   models.KindRecipe,
			Index:  i,
			Author: authorOrAnonymous(r.Author),
			Date:   date,
			Recipe: &r,
		})
	}
	for i := range stories {
		st := stories[i]
		date, err := time.Parse(models.DateLayout, st.DateAdded)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: story %q", op, ErrBadDate, st.Title)
		}
		items = append(items, models.FeedItem{
			Kind:   models.KindStory,
			Index:  i,
			Author: authorOrAnonymous(st.Author),
			Date:   date,
			Story:  &st,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

// ApplyFilters оставляет элементы, проходящие все непустые фильтры.
// Фильтры соединяются по И, внутри каждого — совпадение хотя бы одного
// тега. Пустые фильтры ограничений не накладывают: с полностью пустым
// набором лента возвращается без изменений. У историй нет диетических
// тегов, поэтому непустой диетический фильтр они не проходят.
func ApplyFilters(items []models.FeedItem, filter models.FeedFilter) []models.FeedItem {
	if len(filter.Culture) == 0 && len(filter.Season) == 0 && len(filter.Dietary) == 0 {
		return items
	}

	result := make([]models.FeedItem, 0, len(items))
	for i := range items {
		item := items[i]
		if len(filter.Culture) > 0 && !anyMatch(item.CultureTags(), filter.Culture) {
			continue
		}
		if len(filter.Season) > 0 && !anyMatch(item.SeasonTags(), filter.Season) {
			continue
		}
		if len(filter.Dietary) > 0 {
			dietary, ok := item.DietaryTags()
			if !ok || !anyMatch(dietary, filter.Dietary) {
				continue
			}
		}
		result = append(result, item)
	}
	return result
}

func anyMatch(itemTags, filterTags []string) bool {
	for _, ft := range filterTags {
		for _, it := range itemTags {
			if ft == it {
				return true
			}
		}
	}
	return false
}

func authorOrAnonymous(author string) string {
	if author == "" {
		return models.AnonymousAuthor
	}
	return author
}
