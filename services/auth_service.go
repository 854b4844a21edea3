package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/theoMich19/delivecrous/entity"
	"github.com/theoMich19/delivecrous/repository"
	"github.com/theoMich19/delivecrous/utils"
)

var (
	ErrEmailTaken         = errors.New("Cet email est déjà utilisé")
	ErrInvalidCredentials = errors.New("Email ou mot de passe incorrect")
)

// AuthService owns the register/login logic and token issuance.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user and returns it with a fresh token.
func (s *AuthService) Register(email, password, name string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Role:     "customer",
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login checks the password and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// allowed fields for PATCH /users/:id
var profileFields = map[string]bool{
	"phone":                true,
	"address":              true,
	"buildingInfo":         true,
	"accessCode":           true,
	"deliveryInstructions": true,
}

var profileColumns = map[string]string{
	"phone":                "phone",
	"address":              "address",
	"buildingInfo":         "building_info",
	"accessCode":           "access_code",
	"deliveryInstructions": "delivery_instructions",
}

// UpdateProfile applies only the allowed profile fields; anything else in
// the payload is silently dropped, matching the PATCH contract.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if profileFields[k] {
			filtered[profileColumns[k]] = v
		}
	}
	if len(filtered) > 0 {
		if err := s.userRepo.Update(userID, filtered); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindPublic(userID)
}
