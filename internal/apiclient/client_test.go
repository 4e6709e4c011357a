package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront-api/internal/apiclient"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/localcart"

	"github.com/stretchr/testify/assert"
)

func TestClient_Login(t *testing.T) {
	t.Run("success_decodes_session_and_cart", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.c", body["email"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"token": "token-1",
				"user": {"id": "user-1"},
				"cart": {
					"ownerUserId": "user-1",
					"items": [{"productId":"p-1","productName":"USB Cable","quantity":2,"price":9.99}],
					"total": 19.98,
					"pushSeq": 11
				}
			}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		sess, err := c.Login(context.Background(), "a@b.c", "secret")

		assert.NoError(t, err)
		assert.Equal(t, "token-1", sess.Token)
		assert.Equal(t, "user-1", sess.UserID)
		assert.Len(t, sess.Items, 1)
		assert.Equal(t, "p-1", sess.Items[0].ProductID)
		assert.Equal(t, 19.98, sess.Total)
		assert.Equal(t, int64(11), sess.PushSeq)
	})

	t.Run("non_2xx_is_an_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":"UNAUTHORIZED"}}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		_, err := c.Login(context.Background(), "a@b.c", "wrong")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}

func TestClient_ReplaceCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cart/update/user-1", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var body struct {
			Items   []localcart.ServerItem `json:"items"`
			PushSeq int64                  `json:"pushSeq"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Items, 1)
		assert.Equal(t, int64(4), body.PushSeq)

		w.Write([]byte(`{"message":"Cart updated successfully"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	err := c.ReplaceCart(context.Background(), "token-1", "user-1", []localcart.ServerItem{
		{ProductID: "p-1", ProductName: "USB Cable", Quantity: 2, Price: 9.99},
	}, 4)

	assert.NoError(t, err)
}

func TestClient_Pusher(t *testing.T) {
	var gotSeq int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Items   []localcart.ServerItem `json:"items"`
			PushSeq int64                  `json:"pushSeq"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotSeq = body.PushSeq
		w.Write([]byte(`{"message":"Cart updated successfully"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	pusher := c.Pusher("user-1", "token-1")

	err := pusher.Push(context.Background(), []localcart.Entry{
		{ID: "p-1", Title: "USB Cable", Price: 9.99, Qty: 2},
	}, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), gotSeq)
}

type fakeCatalog struct {
	product catalog.Product
	err     error
}

func (f *fakeCatalog) GetProduct(ctx context.Context, productID string) (catalog.Product, error) {
	return f.product, f.err
}

func TestClient_AddProductToCart(t *testing.T) {
	t.Run("resolves_product_before_adding", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/cart/add", r.URL.Path)
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		cat := &fakeCatalog{product: catalog.Product{ID: "7", Title: "USB Cable", Price: 9.99}}

		err := c.AddProductToCart(context.Background(), cat, "token-1", "user-1", "7")

		assert.NoError(t, err)
		product := gotBody["product"].(map[string]any)
		assert.Equal(t, "USB Cable", product["name"])
		assert.Equal(t, 9.99, product["price"])
	})

	t.Run("catalog_miss_never_reaches_cart", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		cat := &fakeCatalog{err: errors.New("status 404")}

		err := c.AddProductToCart(context.Background(), cat, "token-1", "user-1", "missing")

		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestClient_GetCartItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart/items/user-1", r.URL.Path)
		w.Write([]byte(`{"ownerUserId":"user-1","items":[],"total":0}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	items, err := c.GetCartItems(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Empty(t, items)
}
