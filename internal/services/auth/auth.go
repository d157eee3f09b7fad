// Package auth содержит бизнес-логику регистрации, входа и выхода
// пользователей, а также валидации токенов сессии.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/culture-swap/internal/lib/jwt"
	"github.com/magabrotheeeer/culture-swap/internal/lib/password"
	"github.com/magabrotheeeer/culture-swap/internal/models"
	"github.com/magabrotheeeer/culture-swap/internal/storage/jsondb"
)

// Ошибки уровня бизнес-логики аутентификации.
var (
	// ErrUserExists — имя пользователя уже занято.
	ErrUserExists = errors.New("username already exists")
	// ErrUserNotFound — пользователь не зарегистрирован.
	ErrUserNotFound = errors.New("username not found")
	// ErrWrongPassword — пароль не совпадает с сохранённым хэшем.
	ErrWrongPassword = errors.New("incorrect password")
	// ErrTokenRevoked — токен был отозван через logout.
	ErrTokenRevoked = errors.New("token revoked")
)

// UserRepository описывает контракт для работы с учётными записями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход, выход и валидацию JWT.
//
// Отозванные токены держатся в памяти процесса: выход действует до
// рестарта, после которого непросроченные токены снова валидны. Для
// одного небольшого сообщества этого достаточно.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker

	mu      sync.Mutex
	revoked map[string]struct{}
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		revoked:  make(map[string]struct{}),
	}
}

// Register создает нового пользователя: хэширует пароль, выдает uuid и
// сегодняшнюю дату регистрации. Возвращает ErrUserExists при занятом имени.
func (s *AuthService) Register(ctx context.Context, username, rawPassword, email string) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
		CreatedAt:    time.Now().Format(models.DateLayout),
		ID:           uuid.NewString(),
	}
	id, err := s.users.RegisterUser(ctx, user)
	if errors.Is(err, jsondb.ErrUserExists) {
		return "", fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет пароль пользователя и генерирует JWT сессии.
// Различает ErrUserNotFound и ErrWrongPassword; наружу обработчики
// отдают оба одинаковым сообщением.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, jsondb.ErrUserNotFound) {
		return "", fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrWrongPassword)
	}
	token, err := s.jwtMaker.GenerateToken(user.Username, user.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Logout отзывает предъявленный токен до конца жизни процесса.
func (s *AuthService) Logout(_ context.Context, token string) error {
	const op = "services.auth.Logout"

	if _, err := s.jwtMaker.ParseToken(token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
	return nil
}

// ValidateToken проверяет JWT и возвращает пользователя сессии.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, error) {
	const op = "services.auth.ValidateToken"

	s.mu.Lock()
	_, revoked := s.revoked[token]
	s.mu.Unlock()
	if revoked {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.User{
		Username: claims.Username,
		ID:       claims.UserUID,
	}, nil
}
