// Package models содержит доменные структуры сервиса: учётную запись
// пользователя, рецепт, историю и производные типы ленты.
package models

// User представляет зарегистрированного пользователя системы.
// В users.json записи хранятся в объекте username -> User, поэтому само
// имя пользователя в JSON не сериализуется.
type User struct {
	Username     string `json:"-"`          // Имя пользователя (ключ в users.json, уникальное)
	PasswordHash string `json:"password"`   // bcrypt-хэш пароля, открытый текст не хранится
	Email        string `json:"email"`      // Электронная почта
	CreatedAt    string `json:"created_at"` // Дата регистрации в формате 2006-01-02
	ID           string `json:"id"`         // Уникальный идентификатор (uuid), выдаётся при регистрации
}
