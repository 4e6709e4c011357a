package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-storefront-api/internal/admin"

	"github.com/redis/go-redis/v9"
)

type cartUpdatedPayload struct {
	CartID string  `json:"cart_id"`
	UserID string  `json:"user_id"`
	Total  float64 `json:"total"`
}

func handleCartUpdated(ctx context.Context, payload []byte, rdb *redis.Client) error {
	var data cartUpdatedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	if err := rdb.Incr(ctx, admin.CartActivityKey).Err(); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Recorded cart update for user: %s", data.UserID)
	return nil
}
