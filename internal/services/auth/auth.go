// Package auth содержит бизнес-логику учётных записей и сессионных токенов:
// регистрацию, вход, обновление токена и чтение собственного профиля.
//
// Сервис возвращает типизированные ошибки; перевод их в HTTP-статусы —
// обязанность слоя обработчиков.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/suit-shop/internal/lib/email"
	"github.com/magabrotheeeer/suit-shop/internal/lib/id"
	"github.com/magabrotheeeer/suit-shop/internal/lib/password"
	"github.com/magabrotheeeer/suit-shop/internal/lib/token"
	"github.com/magabrotheeeer/suit-shop/internal/models"
)

// Ошибки аутентификации. Неизвестный email и неверный пароль намеренно
// неразличимы снаружи, чтобы не подсказывать перебор учётных записей.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// PolicyError содержит полный список нарушенных правил парольной политики.
type PolicyError struct {
	Violations []string
}

func (e *PolicyError) Error() string {
	return "password policy violated"
}

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// Session — результат регистрации, входа или обновления токена.
type Session struct {
	UserID  string
	Email   string
	IsAdmin bool
	Token   string
}

// AuthService отвечает за учетные данные и выпуск JWT.
type AuthService struct {
	users  UserRepository
	tokens token.Maker
}

// New создает новый экземпляр AuthService.
func New(users UserRepository, tokens token.Maker) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register создает нового пользователя и сразу выдает ему сессионный токен.
// Email проверяется структурно, пароль — по политике с накоплением всех
// нарушений. Новые пользователи никогда не получают права администратора.
func (s *AuthService) Register(ctx context.Context, rawEmail, rawPassword string) (*Session, error) {
	if !email.Valid(rawEmail) {
		return nil, ErrInvalidEmail
	}
	if violations := password.ValidatePolicy(rawPassword); len(violations) > 0 {
		return nil, &PolicyError{Violations: violations}
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           id.NewUserID(),
		Email:        rawEmail,
		PasswordHash: hashed,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	tokenStr, err := s.tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   tokenStr,
	}, nil
}

// Login проверяет учетные данные и выдает сессионный токен.
func (s *AuthService) Login(ctx context.Context, rawEmail, rawPassword string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, rawEmail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenStr, err := s.tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   tokenStr,
	}, nil
}

// Me перечитывает запись пользователя из базы. Токен может пережить
// удаление строки, тогда возвращается storage.ErrNotFound.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

// Refresh принимает действующий токен и выпускает новый с теми же клеймами
// и свежим сроком действия. Просроченный или испорченный токен обновить
// нельзя — возвращается ErrInvalidToken.
func (s *AuthService) Refresh(_ context.Context, tokenStr string) (*Session, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	fresh, err := s.tokens.Generate(claims.UserID, claims.Email, claims.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
		Token:   fresh,
	}, nil
}
