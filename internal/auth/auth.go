package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mmeshcher/storefront-system/internal/model"
	"github.com/mmeshcher/storefront-system/internal/validation"
)

// ErrUserExists возвращается при попытке зарегистрировать уже занятый email.
var (
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidEmail возвращается при некорректном адресе электронной почты.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Service хранит пользователей и состояние текущей сессии.
// Витрина рассчитана на одну сессию, поэтому текущий пользователь один.
type Service struct {
	signer       *TokenSigner
	usersByEmail map[string]*model.User
	usersByID    map[string]*model.User
	current      *model.User
}

// NewService создаёт сервис сессии с указанным секретом для токенов.
func NewService(secret string) *Service {
	return &Service{
		signer:       NewTokenSigner(secret),
		usersByEmail: make(map[string]*model.User),
		usersByID:    make(map[string]*model.User),
	}
}

// Register регистрирует нового пользователя с указанной ролью.
func (s *Service) Register(name, email, password string, role model.Role) (*model.User, error) {
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if _, ok := s.usersByEmail[email]; ok {
		return nil, ErrUserExists
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hashPassword(email, password),
		CreatedAt:    time.Now(),
	}

	s.usersByEmail[email] = u
	s.usersByID[u.ID] = u

	return u, nil
}

// SignIn проверяет email и пароль, открывает сессию и возвращает её токен.
func (s *Service) SignIn(email, password string) (string, error) {
	u, ok := s.usersByEmail[email]
	if !ok {
		return "", ErrUserNotFound
	}

	hashed := hashPassword(email, password)
	if subtle.ConstantTimeCompare(hashed, u.PasswordHash) != 1 {
		return "", ErrInvalidCredentials
	}

	s.current = u
	return s.signer.Sign(u.ID), nil
}

// Resume восстанавливает сессию по ранее выданному токену.
func (s *Service) Resume(token string) error {
	userID, ok := s.signer.Parse(token)
	if !ok {
		return ErrInvalidCredentials
	}

	u, ok := s.usersByID[userID]
	if !ok {
		return ErrUserNotFound
	}

	s.current = u
	return nil
}

// SignOut закрывает текущую сессию.
func (s *Service) SignOut() {
	s.current = nil
}

// CurrentUser возвращает пользователя текущей сессии или nil.
func (s *Service) CurrentUser() *model.User {
	return s.current
}

// IsAuthenticated сообщает, открыта ли сессия пользователя.
func (s *Service) IsAuthenticated() bool {
	return s.current != nil
}

func hashPassword(email, password string) []byte {
	sum := sha256.Sum256([]byte(email + ":" + password))
	return sum[:]
}
