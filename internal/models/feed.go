package models

import "time"

// Виды элементов ленты.
const (
	KindRecipe = "recipe"
	KindStory  = "story"
)

// AnonymousAuthor подставляется в ленту, если у записи нет автора.
const AnonymousAuthor = "Anonymous"

// FeedItem — производный элемент объединённой ленты. Не персистится:
// собирается заново из коллекций рецептов и историй при каждом чтении.
// Ровно одно из полей Recipe/Story не равно nil, в соответствии с Kind.
type FeedItem struct {
	Kind   string    `json:"type"`  // KindRecipe или KindStory
	Index  int       `json:"index"` // Позиция в своей коллекции; стабильна, записи не удаляются
	Author string    `json:"author"`
	Date   time.Time `json:"date"` // Распарсенное date_added
	Recipe *Recipe   `json:"recipe,omitempty"`
	Story  *Story    `json:"story,omitempty"`
}

// CultureTags возвращает культурные теги элемента независимо от его вида.
func (f *FeedItem) CultureTags() []string {
	if f.Kind == KindRecipe {
		return f.Recipe.CultureTags
	}
	return f.Story.CultureTags
}

// SeasonTags возвращает сезонные теги; у историй их нет.
func (f *FeedItem) SeasonTags() []string {
	if f.Kind == KindRecipe {
		return f.Recipe.Season
	}
	return nil
}

// DietaryTags возвращает диетические теги и признак того, что поле вообще
// есть у данного вида. У историй поля нет, поэтому непустой диетический
// фильтр они не проходят никогда.
func (f *FeedItem) DietaryTags() ([]string, bool) {
	if f.Kind == KindRecipe {
		return f.Recipe.DietaryTags, true
	}
	return nil, false
}

// FeedFilter — набор фильтров ленты. Пустой набор по полю означает
// отсутствие ограничения по этому полю.
type FeedFilter struct {
	Culture []string
	Season  []string
	Dietary []string
}
