// Package jsondb реализует хранилище сервиса поверх плоских JSON-файлов:
// users.json, recipes.json и stories.json в каталоге данных.
//
// Контракт хранения — полная перезапись файла коллекции при каждой
// мутации. Каждый файл пишется атомарно через временный файл и rename,
// но пара recipes/stories между собой не транзакционна. Мьютекс
// сериализует писателей внутри процесса; от двух конкурирующих процессов
// хранилище не защищает — известное ограничение развёртывания
// "одно небольшое сообщество".
package jsondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// Имена файлов коллекций в каталоге данных.
const (
	usersFile   = "users.json"
	recipesFile = "recipes.json"
	storiesFile = "stories.json"
)

// Ошибки хранилища.
var (
	// ErrUserExists — имя пользователя уже занято.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь с таким именем не зарегистрирован.
	ErrUserNotFound = errors.New("user not found")
	// ErrItemNotFound — ссылка на несуществующий рецепт или историю.
	ErrItemNotFound = errors.New("item not found")
	// ErrParse — файл коллекции содержит некорректный JSON.
	ErrParse = errors.New("malformed data file")
)

// Storage владеет коллекциями пользователей, рецептов и историй.
// Коллекции загружаются при создании и персистятся после каждой мутации.
type Storage struct {
	dataDir string

	mu      sync.Mutex
	users   map[string]models.User
	recipes []models.Recipe
	stories []models.Story
}

// New создаёт каталог данных при необходимости и загружает все три
// коллекции. Отсутствующий файл означает пустую коллекцию; нечитаемый
// каталог или битый JSON — ошибка запуска.
func New(dataDir string) (*Storage, error) {
	const op = "storage.jsondb.New"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{
		dataDir: dataDir,
		users:   make(map[string]models.User),
	}
	if err := loadFile(s.path(usersFile), &s.users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := loadFile(s.path(recipesFile), &s.recipes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := loadFile(s.path(storiesFile), &s.stories); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

func loadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, filepath.Base(path), err)
	}
	return nil
}

// saveFile пишет коллекцию целиком: сначала во временный файл в том же
// каталоге, затем rename поверх старого содержимого.
func saveFile(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
