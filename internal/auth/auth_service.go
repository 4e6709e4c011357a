package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	autherrors "go-storefront-api/internal/auth/errors"
	"go-storefront-api/internal/cart"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
	cartSvc  cart.Service
	logger   *zap.Logger
}

type Deps struct {
	Repo     Repository
	CartRepo cart.Repository
	CartSvc  cart.Service
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("auth repository cannot be nil")
	}
	if deps.CartRepo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:     deps.Repo,
		cartRepo: deps.CartRepo,
		cartSvc:  deps.CartSvc,
		logger:   deps.Logger,
	}
}

func (s *service) generateToken(user User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user, err := s.repo.Create(ctx, CreateUserParams{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return AuthResponse{}, err
	}

	// The cart comes into existence with the account, so the first login
	// from any device finds the same cart.
	serverCart, err := s.cartRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to provision cart at registration",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return AuthResponse{}, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))

	return AuthResponse{
		Token: token,
		User: UserResponse{
			ID:      user.ID.String(),
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
		Cart: cart.CartResponse{
			ID:          serverCart.ID.String(),
			OwnerUserID: user.ID.String(),
			Items:       []cart.LineItemDTO{},
			Total:       0,
			PushSeq:     serverCart.PushSeq,
		},
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	serverCart, err := s.cartSvc.GetItems(ctx, user.ID.String())
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return AuthResponse{
		Token: token,
		User: UserResponse{
			ID:      user.ID.String(),
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
		Cart: serverCart,
	}, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
