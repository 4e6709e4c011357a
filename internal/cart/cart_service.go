package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	autherrors "go-storefront-api/internal/auth/errors"
	carterrors "go-storefront-api/internal/cart/errors"
	"go-storefront-api/internal/outbox"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	AddItem(ctx context.Context, authUserID string, req AddItemRequest) (CartResponse, error)
	ReplaceItems(ctx context.Context, authUserID, targetUserID string, req ReplaceItemsRequest) (ReplaceItemsResponse, error)
	GetItems(ctx context.Context, userID string) (CartResponse, error)
	RemoveItem(ctx context.Context, authUserID, targetUserID, productID string) (CartResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		validate:   validator.New(),
		logger:     deps.Logger,
	}
}

// ========================
// helpers
// ========================

func (s *service) parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return id, nil
}

// requireOwner binds the request identity to the cart it may mutate.
func requireOwner(authUserID, targetUserID string) error {
	if targetUserID != "" && targetUserID != authUserID {
		return carterrors.ErrNotCartOwner
	}
	return nil
}

// mapProductValidation names the field that failed so a missing name is not
// reported as a missing id.
func mapProductValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "ID":
				return carterrors.ErrMissingProductID
			case "Name":
				return carterrors.ErrMissingProductName
			}
		}
	}
	return carterrors.ErrMissingProductID
}

func validateItems(items []LineItemDTO) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			return carterrors.ErrMissingProductID
		}
		if it.Quantity < 1 {
			return carterrors.ErrInvalidQty
		}
		if it.Price < 0 {
			return carterrors.ErrInvalidPrice
		}
		if _, dup := seen[it.ProductID]; dup {
			return carterrors.ErrDuplicateItem
		}
		seen[it.ProductID] = struct{}{}
	}
	return nil
}

func toLineItemDTOs(items []CartItem) []LineItemDTO {
	out := make([]LineItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return out
}

func (s *service) buildResponse(ctx context.Context, c Cart) (CartResponse, error) {
	items, err := s.repo.ListItems(ctx, c.ID)
	if err != nil {
		return CartResponse{}, err
	}

	return CartResponse{
		ID:          c.ID.String(),
		OwnerUserID: c.OwnerUserID.String(),
		Items:       toLineItemDTOs(items),
		Total:       c.Total,
		PushSeq:     c.PushSeq,
	}, nil
}

func (s *service) enqueueCartUpdated(ctx context.Context, repo outbox.Repository, c Cart, total float64) error {
	payload, _ := json.Marshal(map[string]any{
		"cart_id": c.ID.String(),
		"user_id": c.OwnerUserID.String(),
		"total":   total,
	})

	return repo.CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: "cart",
		AggregateID:   c.ID,
		EventType:     outbox.EventCartUpdated,
		Payload:       payload,
	})
}

// ========================
// operations
// ========================

func (s *service) AddItem(ctx context.Context, authUserID string, req AddItemRequest) (CartResponse, error) {
	if err := requireOwner(authUserID, req.UserID); err != nil {
		return CartResponse{}, err
	}

	if err := s.validate.Struct(req.Product); err != nil {
		return CartResponse{}, mapProductValidation(err)
	}
	if req.Product.Price < 0 {
		return CartResponse{}, carterrors.ErrInvalidPrice
	}

	uid, err := s.parseUserID(authUserID)
	if err != nil {
		return CartResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	c, err := repo.GetOrCreate(ctx, uid)
	if err != nil {
		return CartResponse{}, err
	}

	if _, err := repo.UpsertItemIncrement(ctx, UpsertItemParams{
		CartID:      c.ID,
		ProductID:   req.Product.ID,
		ProductName: req.Product.Name,
		Price:       req.Product.Price,
	}); err != nil {
		return CartResponse{}, err
	}

	total, err := repo.RecomputeTotal(ctx, c.ID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := s.enqueueCartUpdated(ctx, s.outboxRepo.WithTx(tx), c, total); err != nil {
		return CartResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CartResponse{}, err
	}

	s.logger.Info("cart item added",
		zap.String("user_id", authUserID),
		zap.String("product_id", req.Product.ID),
	)

	c.Total = total
	return s.buildResponse(ctx, c)
}

func (s *service) ReplaceItems(ctx context.Context, authUserID, targetUserID string, req ReplaceItemsRequest) (ReplaceItemsResponse, error) {
	if authUserID != targetUserID {
		return ReplaceItemsResponse{}, carterrors.ErrNotCartOwner
	}

	if err := validateItems(req.Items); err != nil {
		return ReplaceItemsResponse{}, err
	}

	uid, err := s.parseUserID(targetUserID)
	if err != nil {
		return ReplaceItemsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReplaceItemsResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	c, err := repo.GetOrCreate(ctx, uid)
	if err != nil {
		return ReplaceItemsResponse{}, err
	}

	// Stale pushes lose on sequence, not on arrival order. The losing push
	// leaves the stored cart untouched.
	if req.PushSeq > 0 {
		applied, err := repo.AdvancePushSeq(ctx, c.ID, req.PushSeq)
		if err != nil {
			return ReplaceItemsResponse{}, err
		}
		if !applied {
			s.logger.Warn("stale cart push ignored",
				zap.String("user_id", targetUserID),
				zap.Int64("push_seq", req.PushSeq),
				zap.Int64("current_seq", c.PushSeq),
			)

			current, err := s.buildResponse(ctx, c)
			if err != nil {
				return ReplaceItemsResponse{}, err
			}
			return ReplaceItemsResponse{Message: "Stale push ignored", Cart: current}, nil
		}
		c.PushSeq = req.PushSeq
	}

	items := make([]ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	if err := repo.ReplaceAllItems(ctx, c.ID, items); err != nil {
		return ReplaceItemsResponse{}, err
	}

	total, err := repo.RecomputeTotal(ctx, c.ID)
	if err != nil {
		return ReplaceItemsResponse{}, err
	}

	if err := s.enqueueCartUpdated(ctx, s.outboxRepo.WithTx(tx), c, total); err != nil {
		return ReplaceItemsResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ReplaceItemsResponse{}, err
	}

	c.Total = total
	updated, err := s.buildResponse(ctx, c)
	if err != nil {
		return ReplaceItemsResponse{}, err
	}
	return ReplaceItemsResponse{Message: "Cart updated successfully", Cart: updated}, nil
}

func (s *service) GetItems(ctx context.Context, userID string) (CartResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartResponse{}, err
	}

	c, err := s.repo.GetByOwner(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		// A missing cart reads as an empty one, never as an error.
		return CartResponse{
			OwnerUserID: userID,
			Items:       []LineItemDTO{},
			Total:       0,
		}, nil
	}
	if err != nil {
		return CartResponse{}, err
	}

	return s.buildResponse(ctx, c)
}

func (s *service) RemoveItem(ctx context.Context, authUserID, targetUserID, productID string) (CartResponse, error) {
	if authUserID != targetUserID {
		return CartResponse{}, carterrors.ErrNotCartOwner
	}
	if productID == "" {
		return CartResponse{}, carterrors.ErrMissingProductID
	}

	uid, err := s.parseUserID(targetUserID)
	if err != nil {
		return CartResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	c, err := repo.GetByOwner(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return CartResponse{}, carterrors.ErrCartNotFound
	}
	if err != nil {
		return CartResponse{}, err
	}

	// Removing an item that is not there is a no-op, not an error.
	removed, err := repo.DeleteItem(ctx, c.ID, productID)
	if err != nil {
		return CartResponse{}, err
	}

	if removed > 0 {
		total, err := repo.RecomputeTotal(ctx, c.ID)
		if err != nil {
			return CartResponse{}, err
		}
		if err := s.enqueueCartUpdated(ctx, s.outboxRepo.WithTx(tx), c, total); err != nil {
			return CartResponse{}, err
		}
		c.Total = total
	}

	if err := tx.Commit(); err != nil {
		return CartResponse{}, err
	}

	return s.buildResponse(ctx, c)
}
