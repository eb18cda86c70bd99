package services

import (
	"context"

	"github.com/juruweb/epms_backend/internal/dto"
)

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT for the member.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
