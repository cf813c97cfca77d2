package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/models"
	"github.com/halcyon-app/halcyon/backend/internal/repository"
	"github.com/halcyon-app/halcyon/backend/pkg/supabase"
)

type authService struct {
	client   *supabase.Client
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client *supabase.Client, userRepo repository.UserRepository) AuthService {
	return &authService{
		client:   client,
		userRepo: userRepo,
	}
}

// supabaseAuthResponse is the shape returned by the Supabase auth endpoints
type supabaseAuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (s *authService) postAuth(path string, email, password string) (*supabaseAuthResponse, error) {
	url := fmt.Sprintf("%s%s", s.client.URL, path)

	jsonData, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("apikey", s.client.ServiceKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("auth failed: %s", string(body))
	}

	var authResp supabaseAuthResponse
	if err := json.Unmarshal(body, &authResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &authResp, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	authResp, err := s.postAuth("/auth/v1/token?grant_type=password", req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  authResp.AccessToken,
		RefreshToken: authResp.RefreshToken,
		User: models.User{
			ID:    authResp.User.ID,
			Email: authResp.User.Email,
		},
	}, nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	authResp, err := s.postAuth("/auth/v1/signup", req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// Create the user record in our users table. Failure here is tolerated:
	// the auth user already exists and the record may have been created by a
	// previous attempt.
	user := &models.User{
		ID:    authResp.User.ID,
		Email: authResp.User.Email,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		logger.Ctx(ctx).Warn("failed to create user record", logger.Err(err))
	}

	return &models.AuthResponse{
		AccessToken:  authResp.AccessToken,
		RefreshToken: authResp.RefreshToken,
		User: models.User{
			ID:    authResp.User.ID,
			Email: authResp.User.Email,
		},
	}, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
