// Package media персистит загруженные вложения в каталоге медиафайлов.
//
// Файлы адресуются исходным именем загрузки; повторная загрузка с тем же
// именем молча перезаписывает предыдущую. Ссылка вида "media/<имя>"
// сохраняется как есть в списках media рецептов и историй.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Ошибки медиахранилища.
var (
	// ErrExtension — расширение файла вне списка допустимых.
	ErrExtension = errors.New("unsupported file extension")
	// ErrNotFound — запрошенного файла нет в хранилище.
	ErrNotFound = errors.New("media file not found")
)

// Допустимые расширения вложений.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".mp4":  {},
}

// Store пишет и читает вложения под фиксированным корневым каталогом.
type Store struct {
	root string
}

// New создаёт каталог медиафайлов при необходимости.
func New(root string) (*Store, error) {
	const op = "storage.media.New"
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{root: root}, nil
}

// Save пишет байты вложения под исходным именем файла и возвращает
// стабильную ссылку "media/<имя>". Проверяется только расширение;
// сверки содержимого с типом нет.
func (s *Store) Save(fileName string, r io.Reader) (string, error) {
	const op = "storage.media.Save"

	name, err := sanitize(fileName)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return path.Join("media", name), nil
}

// Open открывает сохранённое вложение по имени файла.
// Вызывающий закрывает возвращённый файл.
func (s *Store) Open(fileName string) (*os.File, error) {
	const op = "storage.media.Open"

	name, err := sanitize(fileName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	f, err := os.Open(filepath.Join(s.root, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

// sanitize отбрасывает путь до файла, оставляя имя, и проверяет расширение.
func sanitize(fileName string) (string, error) {
	name := filepath.Base(fileName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", ErrExtension
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrExtension, ext)
	}
	return name, nil
}
