package cart

type AddItemRequest struct {
	UserID  string            `json:"userId"`
	Product AddItemProductDTO `json:"product" binding:"required"`
}

type AddItemProductDTO struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price"`
}

type ReplaceItemsRequest struct {
	Items   []LineItemDTO `json:"items"`
	PushSeq int64         `json:"pushSeq"`
}

type LineItemDTO struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int32   `json:"quantity" validate:"min=1"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type CartResponse struct {
	ID          string        `json:"id,omitempty"`
	OwnerUserID string        `json:"ownerUserId"`
	Items       []LineItemDTO `json:"items"`
	Total       float64       `json:"total"`
	PushSeq     int64         `json:"pushSeq"`
}

type ReplaceItemsResponse struct {
	Message string       `json:"message"`
	Cart    CartResponse `json:"cart"`
}
