package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/localcart"
)

// Client is the storefront-side SDK for the cart and auth endpoints. It is
// what the session reconciler and the background pusher talk through.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSession is what a successful login or registration hands back: the
// credential plus the authoritative cart to overwrite the local mirror with.
type AuthSession struct {
	Token   string
	UserID  string
	Items   []localcart.ServerItem
	Total   float64
	PushSeq int64
}

type authResponseBody struct {
	Token string `json:"token"`
	User  struct {
		ID string `json:"id"`
	} `json:"user"`
	Cart cartBody `json:"cart"`
}

type cartBody struct {
	OwnerUserID string                 `json:"ownerUserId"`
	Items       []localcart.ServerItem `json:"items"`
	Total       float64                `json:"total"`
	PushSeq     int64                  `json:"pushSeq"`
}

type replaceCartBody struct {
	Items   []localcart.ServerItem `json:"items"`
	PushSeq int64                  `json:"pushSeq"`
}

type addToCartBody struct {
	UserID  string         `json:"userId"`
	Product ProductPayload `json:"product"`
}

type ProductPayload struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthSession, error) {
	body := map[string]string{"email": email, "password": password}

	var res authResponseBody
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &res); err != nil {
		return AuthSession{}, err
	}

	return AuthSession{
		Token:   res.Token,
		UserID:  res.User.ID,
		Items:   res.Cart.Items,
		Total:   res.Cart.Total,
		PushSeq: res.Cart.PushSeq,
	}, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (AuthSession, error) {
	var res authResponseBody
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", payload, &res); err != nil {
		return AuthSession{}, err
	}

	return AuthSession{
		Token:   res.Token,
		UserID:  res.User.ID,
		Items:   res.Cart.Items,
		Total:   res.Cart.Total,
		PushSeq: res.Cart.PushSeq,
	}, nil
}

func (c *Client) GetCartItems(ctx context.Context, userID string) ([]localcart.ServerItem, error) {
	var res cartBody
	if err := c.do(ctx, http.MethodGet, "/api/cart/items/"+userID, "", nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *Client) AddToCart(ctx context.Context, token, userID string, product ProductPayload) error {
	return c.do(ctx, http.MethodPost, "/api/cart/add", token, addToCartBody{
		UserID:  userID,
		Product: product,
	}, nil)
}

// AddProductToCart resolves a product through the catalog before adding it,
// so callers only ever hand over the product id.
func (c *Client) AddProductToCart(ctx context.Context, catalogSvc catalog.Service, token, userID, productID string) error {
	p, err := catalogSvc.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return c.AddToCart(ctx, token, userID, ProductPayload{
		ID:    p.ID,
		Name:  p.Title,
		Price: p.Price,
	})
}

func (c *Client) RemoveFromCart(ctx context.Context, token, userID, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/remove/"+userID+"/"+productID, token, nil, nil)
}

func (c *Client) ReplaceCart(ctx context.Context, token, userID string, items []localcart.ServerItem, seq int64) error {
	return c.do(ctx, http.MethodPut, "/api/cart/update/"+userID, token, replaceCartBody{
		Items:   items,
		PushSeq: seq,
	}, nil)
}
