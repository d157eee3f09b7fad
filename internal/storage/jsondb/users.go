package jsondb

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/culture-swap/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его ID.
// Возвращает ErrUserExists, если имя уже занято. Успешная регистрация
// полностью перезаписывает users.json.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.jsondb.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return "", fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	s.users[user.Username] = user
	if err := saveFile(s.path(usersFile), s.users); err != nil {
		delete(s.users, user.Username)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return user.ID, nil
}

// GetUserByUsername возвращает пользователя по его username
// или ErrUserNotFound.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.jsondb.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	u.Username = username
	return &u, nil
}

// CountUsers возвращает число зарегистрированных пользователей.
func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.jsondb.CountUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}
