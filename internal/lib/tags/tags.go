// Package tags содержит контролируемые словари тегов, по которым
// валидируются публикуемые рецепты и истории. Культурные теги — полный
// список названий стран ISO-3166, остальные словари фиксированы.
package tags

import (
	"errors"
	"fmt"
	"sort"

	"github.com/biter777/countries"
)

// ErrUnknownTag возвращается, если тег отсутствует в словаре.
var ErrUnknownTag = errors.New("unknown tag")

// Фиксированные словари.
var (
	// Meal — типы приёма пищи для рецептов.
	Meal = []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Snack", "Appetizer", "Beverage"}
	// Dietary — диетические ограничения для рецептов.
	Dietary = []string{"Vegetarian", "Vegan", "Gluten-Free", "Kid-Friendly", "Dairy-Free", "Nut-Free", "Halal", "Kosher"}
	// Occasion — поводы для историй.
	Occasion = []string{"Festival", "Wedding", "Birthday", "Holiday", "Everyday", "Religious", "Celebration"}
	// Seasons — сезоны для рецептов.
	Seasons = []string{"Spring", "Summer", "Fall", "Winter"}
)

// Culture — отсортированный список названий стран ISO-3166 (~249 записей).
var Culture = cultureTags()

func cultureTags() []string {
	all := countries.All()
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Info().Name)
	}
	sort.Strings(names)
	return names
}

// Contains сообщает, входит ли тег в словарь.
func Contains(vocabulary []string, tag string) bool {
	for _, v := range vocabulary {
		if v == tag {
			return true
		}
	}
	return false
}

// Validate проверяет, что каждый выбранный тег входит в словарь.
// Возвращает ErrUnknownTag с именем первого постороннего тега.
func Validate(selected, vocabulary []string) error {
	for _, tag := range selected {
		if !Contains(vocabulary, tag) {
			return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
		}
	}
	return nil
}
