package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"go-storefront-api/internal/auth"
	autherrors "go-storefront-api/internal/auth/errors"
	"go-storefront-api/internal/cart"
	authmock "go-storefront-api/internal/mock/auth"
	cartmock "go-storefront-api/internal/mock/cart"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// fakeCartService only has to answer GetItems during login.
type fakeCartService struct {
	GetItemsFn func(ctx context.Context, userID string) (cart.CartResponse, error)
}

func (f *fakeCartService) AddItem(ctx context.Context, authUserID string, req cart.AddItemRequest) (cart.CartResponse, error) {
	panic("not used")
}
func (f *fakeCartService) ReplaceItems(ctx context.Context, authUserID, targetUserID string, req cart.ReplaceItemsRequest) (cart.ReplaceItemsResponse, error) {
	panic("not used")
}
func (f *fakeCartService) GetItems(ctx context.Context, userID string) (cart.CartResponse, error) {
	return f.GetItemsFn(ctx, userID)
}
func (f *fakeCartService) RemoveItem(ctx context.Context, authUserID, targetUserID, productID string) (cart.CartResponse, error) {
	panic("not used")
}

func newAuthServiceForTest(t *testing.T, cartSvc cart.Service) (auth.Service, *authmock.MockRepository, *cartmock.MockRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	cartRepo := cartmock.NewMockRepository(ctrl)

	if cartSvc == nil {
		cartSvc = &fakeCartService{}
	}

	svc := auth.NewService(auth.Deps{
		Repo:     repo,
		CartRepo: cartRepo,
		CartSvc:  cartSvc,
	})
	return svc, repo, cartRepo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	req := auth.RegisterRequest{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "secret123",
	}

	t.Run("success_provisions_cart", func(t *testing.T) {
		svc, repo, cartRepo := newAuthServiceForTest(t, nil)

		userID := uuid.New()
		cartID := uuid.New()

		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, params auth.CreateUserParams) (auth.User, error) {
				// The stored password is a hash, never the plaintext.
				assert.NotEqual(t, req.Password, params.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(params.Password), []byte(req.Password)))
				return auth.User{ID: userID, Name: params.Name, Email: params.Email}, nil
			})
		cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart.Cart{ID: cartID, OwnerUserID: userID}, nil)

		resp, err := svc.Register(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, userID.String(), resp.User.ID)
		assert.Equal(t, cartID.String(), resp.Cart.ID)
		assert.Empty(t, resp.Cart.Items)
	})

	t.Run("error_email_already_registered", func(t *testing.T) {
		svc, repo, _ := newAuthServiceForTest(t, nil)

		repo.EXPECT().Create(ctx, gomock.Any()).
			Return(auth.User{}, &pq.Error{Code: "23505"})

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("error_cart_provisioning_fails", func(t *testing.T) {
		svc, repo, cartRepo := newAuthServiceForTest(t, nil)

		userID := uuid.New()
		repo.EXPECT().Create(ctx, gomock.Any()).Return(auth.User{ID: userID}, nil)
		cartRepo.EXPECT().GetOrCreate(ctx, userID).Return(cart.Cart{}, sql.ErrConnDone)

		_, err := svc.Register(ctx, req)
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	userID := uuid.New()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	storedUser := auth.User{
		ID:       userID,
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashed),
	}

	t.Run("success_returns_server_cart", func(t *testing.T) {
		cartSvc := &fakeCartService{
			GetItemsFn: func(ctx context.Context, id string) (cart.CartResponse, error) {
				return cart.CartResponse{
					OwnerUserID: id,
					Items: []cart.LineItemDTO{
						{ProductID: "p-1", ProductName: "USB Cable", Quantity: 2, Price: 9.99},
					},
					Total: 19.98,
				}, nil
			},
		}
		svc, repo, _ := newAuthServiceForTest(t, cartSvc)

		repo.EXPECT().GetByEmail(ctx, storedUser.Email).Return(storedUser, nil)

		resp, err := svc.Login(ctx, storedUser.Email, "secret123")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Len(t, resp.Cart.Items, 1)
		assert.Equal(t, 19.98, resp.Cart.Total)
	})

	t.Run("error_unknown_email", func(t *testing.T) {
		svc, repo, _ := newAuthServiceForTest(t, nil)

		repo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(auth.User{}, sql.ErrNoRows)

		_, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("error_wrong_password", func(t *testing.T) {
		svc, repo, _ := newAuthServiceForTest(t, nil)

		repo.EXPECT().GetByEmail(ctx, storedUser.Email).Return(storedUser, nil)

		_, err := svc.Login(ctx, storedUser.Email, "wrong-password")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := newAuthServiceForTest(t, nil)

		userID := uuid.New()
		repo.EXPECT().GetByID(ctx, userID).Return(auth.User{ID: userID, Name: "Test User", Email: "test@example.com"}, nil)

		resp, err := svc.GetProfile(ctx, userID.String())
		assert.NoError(t, err)
		assert.Equal(t, "Test User", resp.Name)
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest(t, nil)

		_, err := svc.GetProfile(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("error_user_not_found", func(t *testing.T) {
		svc, repo, _ := newAuthServiceForTest(t, nil)

		userID := uuid.New()
		repo.EXPECT().GetByID(ctx, userID).Return(auth.User{}, sql.ErrNoRows)

		_, err := svc.GetProfile(ctx, userID.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
