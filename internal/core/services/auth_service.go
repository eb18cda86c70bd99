package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/juruweb/epms_backend/internal/utils"
)

// AuthService verifies credentials and issues JWTs.
type AuthService struct {
	BaseService
	teamRepo  portsrepo.TeamMemberRepositoryFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new AuthService.
func NewAuthService(teamRepo portsrepo.TeamMemberRepositoryFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		teamRepo:  teamRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

// Login verifies the member's credentials and returns a signed JWT.
// Unknown email and wrong password both come back as ErrForbidden so the
// response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	member, err := s.teamRepo.FindTeamMemberByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up member for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, member.PasswordHash) {
		s.LogWarn(ctx, "Login failed, wrong password", "email", req.Email)
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(member.TeamMemberID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Token:      token,
		TeamMember: dto.ToTeamMemberResponse(member),
	}, nil
}
