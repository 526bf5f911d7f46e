package identity

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/auth"
	"github.com/stayhub/backend/internal/infrastructure/cache"
	"github.com/stayhub/backend/internal/infrastructure/storage"
)

// Service orchestrates authentication and profile use cases
type Service struct {
	users   identity.Repository
	tokens  *auth.JWTManager
	cache   cache.ProfileCache
	storage storage.ObjectStorage
	log     *zap.Logger
}

// NewService creates the identity application service
func NewService(users identity.Repository, tokens *auth.JWTManager, profileCache cache.ProfileCache, objectStorage storage.ObjectStorage, log *zap.Logger) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		cache:   profileCache,
		storage: objectStorage,
		log:     log,
	}
}

// Login authenticates a user and issues a token pair. Unknown emails
// and wrong passwords yield the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "invalid email or password")
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "invalid email or password")
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	s.log.Info("user logged in", zap.String("user_id", user.ID.String()))
	return &LoginResponse{Tokens: pair, Profile: toProfileDTO(user)}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *Service) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.tokens.Verify(req.RefreshToken, auth.TokenRefresh)
	if err != nil {
		return nil, err
	}
	// the user may have been deleted since the token was issued
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	return s.tokens.IssuePair(user.ID, user.Email)
}

// GetProfile returns the user's profile, serving from cache when warm
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	var cached ProfileDTO
	found, err := s.cache.Get(ctx, userID, &cached)
	if err != nil {
		s.log.Warn("profile cache read", zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toProfileDTO(user)
	if err := s.cache.Set(ctx, userID, dto); err != nil {
		s.log.Warn("profile cache write", zap.Error(err))
	}
	return &dto, nil
}

// UpdateProfile updates the contact fields and invalidates the cache
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.FirstName, req.LastName, req.Phone, req.Address, req.City, req.Country); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn("profile cache invalidate", zap.Error(err))
	}

	dto := toProfileDTO(user)
	return &dto, nil
}

// UploadDocument stores a verification document and appends it to the
// profile
func (s *Service) UploadDocument(ctx context.Context, userID uuid.UUID, docType, fileName, contentType string, body io.Reader) (*ProfileDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("documents/%s/%s%s", userID, uuid.NewString(), path.Ext(fileName))
	storedKey, err := s.storage.Put(ctx, key, body, contentType)
	if err != nil {
		return nil, err
	}

	if _, err := user.AddDocument(docType, fileName, storedKey); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn("profile cache invalidate", zap.Error(err))
	}

	s.log.Info("verification document uploaded",
		zap.String("user_id", userID.String()),
		zap.String("type", docType),
	)
	dto := toProfileDTO(user)
	return &dto, nil
}
