package apiclient

import (
	"context"

	"go-storefront-api/internal/localcart"
)

type cartPusher struct {
	client *Client
	token  string
	userID string
}

// Pusher adapts the client to the local cache's push hook for one
// authenticated session.
func (c *Client) Pusher(userID, token string) localcart.Pusher {
	return &cartPusher{client: c, token: token, userID: userID}
}

func (p *cartPusher) Push(ctx context.Context, items []localcart.Entry, seq int64) error {
	return p.client.ReplaceCart(ctx, p.token, p.userID, localcart.ServerItemsFromEntries(items), seq)
}
