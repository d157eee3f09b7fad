package models

// DateLayout — формат всех дат, сохраняемых в JSON-файлах.
const DateLayout = "2006-01-02"

// Recipe представляет опубликованный рецепт так, как он лежит в recipes.json.
// Записи только добавляются и никогда не удаляются; единственная мутация
// после публикации — увеличение счётчика Hearts.
type Recipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"` // По одному ингредиенту на строку исходного ввода
	Instructions string   `json:"instructions"`
	CultureTags  []string `json:"culture_tags"`
	MealType     []string `json:"meal_type"`
	DietaryTags  []string `json:"dietary_tags"`
	Season       []string `json:"season"`
	DateAdded    string   `json:"date_added"` // Дата публикации, неизменяемая
	Hearts       int      `json:"hearts"`     // Счётчик лайков, начинается с 0
	Media        []string `json:"media"`      // Ссылки на сохранённые вложения
	Author       string   `json:"author,omitempty"`
}

// DummyRecipe используется для приёма данных рецепта из JSON-запроса,
// прежде чем конвертировать их в Recipe. Ингредиенты приходят одним
// текстом (по одному на строку), как в исходной форме.
type DummyRecipe struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Ingredients  string   `json:"ingredients" validate:"required"`
	Instructions string   `json:"instructions" validate:"required"`
	CultureTags  []string `json:"culture_tags" validate:"omitempty"`
	MealType     []string `json:"meal_type" validate:"omitempty"`
	DietaryTags  []string `json:"dietary_tags" validate:"omitempty"`
	Season       []string `json:"season" validate:"omitempty"`
	Media        []string `json:"media" validate:"omitempty"`
}
