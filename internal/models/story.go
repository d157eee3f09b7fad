package models

// Story представляет культурную историю так, как она лежит в stories.json.
// Жизненный цикл тот же, что у Recipe: запись только добавляется,
// мутируется лишь счётчик Hearts.
type Story struct {
	Title       string   `json:"title"`
	Story       string   `json:"story"`
	CultureTags []string `json:"culture_tags"`
	Occasion    []string `json:"occasion"`
	DateAdded   string   `json:"date_added"`
	Hearts      int      `json:"hearts"`
	Media       []string `json:"media"`
	Author      string   `json:"author,omitempty"`
}

// DummyStory используется для приёма данных истории из JSON-запроса.
type DummyStory struct {
	Title       string   `json:"title" validate:"required"`
	Story       string   `json:"story" validate:"required"`
	CultureTags []string `json:"culture_tags" validate:"omitempty"`
	Occasion    []string `json:"occasion" validate:"omitempty"`
	Media       []string `json:"media" validate:"omitempty"`
}
