package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
	"github.com/naturenectar/billing-api/pkg/oauth"
	"github.com/naturenectar/billing-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo    repository.UserRepository
	jwtManager  *utils.JWTManager
	googleOAuth *oauth.GoogleOAuth
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	googleOAuth *oauth.GoogleOAuth,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		googleOAuth: googleOAuth,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new operator account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(input.Email),
		Password:  hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// GoogleAuthURL returns the Google consent URL and the state to verify
// on callback. Returns an error when Google sign-in is not configured.
func (s *AuthService) GoogleAuthURL() (url, state string, err error) {
	if !s.googleOAuth.IsConfigured() {
		return "", "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	state, err = s.googleOAuth.GenerateState()
	if err != nil {
		return "", "", err
	}
	return s.googleOAuth.AuthURL(state), state, nil
}

// GoogleSignIn exchanges the callback code, then finds or creates the
// matching user and issues tokens.
func (s *AuthService) GoogleSignIn(ctx context.Context, code string) (*LoginOutput, error) {
	info, err := s.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Google sign-in failed")
	}

	user, err := s.userRepo.GetByProviderID(ctx, "google", info.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Link to an existing local account by email, or create one.
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(info.Email))
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.Provider = "google"
			user.ProviderID = &info.ID
			if user.Photo == nil && info.Picture != "" {
				photo := info.Picture
				user.Photo = &photo
			}
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		} else {
			user = &entity.User{
				FirstName:  info.GivenName,
				LastName:   info.FamilyName,
				Email:      strings.ToLower(info.Email),
				Provider:   "google",
				ProviderID: &info.ID,
			}
			if info.Picture != "" {
				photo := info.Picture
				user.Photo = &photo
			}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
