package serverhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/config"
	"voiceorder-service/internal/ordering/model"
	"voiceorder-service/internal/ordering/service"
	"voiceorder-service/internal/orders"
)

const menu = `{"menu": {
  "appetizers": [{"name": "Gobi Manchurian", "price": "$12.99"}],
  "breads": [{"name": "Naan", "variations": [{"type": "garlic", "price": "$3.50"}, {"type": "plain", "price": "$2.50"}]}]
}}`

func TestMain(m *testing.M) {
	// как в cmd/main: суммы в JSON числами
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(menu), 0o644))

	store, err := catalog.OpenStore(path)
	require.NoError(t, err)
	repo, err := orders.Open(context.Background(), "sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	logger := zerolog.Nop()
	engine := service.NewEngine(store, service.DefaultOptions(), logger)
	cfg := config.Config{AllowOrigins: []string{"*"}, MaxBodyKB: 64}

	srv := httptest.NewServer(NewRouter(cfg, logger, Deps{
		Catalog: store,
		Pricer:  engine,
		Orders:  orders.NewService(engine, repo, logger),
	}))
	t.Cleanup(srv.Close)
	return srv, path
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestPriceEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, out := post(t, srv.URL+"/price", `{"item_name": "gobee manchurian", "quantity": 2}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 25.98, out["price"])
	assert.Equal(t, 12.99, out["unit_price"])
	assert.Equal(t, "gobi manchurian", out["resolved"])
	assert.Equal(t, "found", out["status"])

	_, out = post(t, srv.URL+"/price", `{"item_name": "xyz-unknown-dish", "quantity": 1}`)
	assert.Equal(t, 0.0, out["price"])
	assert.Equal(t, "not_found", out["status"])

	resp, _ = post(t, srv.URL+"/price", `{"item_name": "naan", "quantity": 0, "dish_type": "garlic"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuoteEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/orders/quote", "application/json",
		bytes.NewBufferString(`{"cart_items": {"Gobi Manchurian": [2, ""], "Naan": [3, "garlic", "well done"]}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.OrderResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, decimal.RequireFromString("36.48").Equal(res.TotalPrice), res.TotalPrice.String())
	require.Len(t, res.Breakdown, 2)
	assert.Equal(t, "Gobi Manchurian", res.Breakdown[0].Item)
	assert.Equal(t, "Naan", res.Breakdown[1].Item)
	assert.Equal(t, "well done", res.Breakdown[1].Notes)
}

func TestWebhookDispatch(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, out := post(t, srv.URL+"/webhook", `{"item_name": "naan", "quantity": 2, "dish_type": "plain"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5.0, out["price"])

	resp, out = post(t, srv.URL+"/webhook", `{"cart_items": [{"name": "naan", "quantity": 1, "style": "garlic"}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3.5, out["total_price"])

	resp, out = post(t, srv.URL+"/webhook", `{"first_name": "priya", "last_name": "shah", "phone": "972-555-0101",
		"address": "1 Elm St", "cart_items": {"Naan": [2, "plain"]}}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Thank you, Priya your order has been placed", out["message"])
	id, _ := out["order_id"].(string)
	require.NotEmpty(t, id)

	getResp, err := http.Get(srv.URL + "/orders/" + id)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	resp, out = post(t, srv.URL+"/webhook", `{"first_name": "a", "phone": "12", "cart_items": {"Naan": [1]}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, out["success"])

	resp, _ = post(t, srv.URL+"/webhook", `{"address_txt": "1 Elm St"}`)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)

	// address_txt проверяется раньше оформления заказа
	resp, out = post(t, srv.URL+"/webhook", `{"first_name": "priya", "phone": "9725550101",
		"address_txt": "1 Elm St", "cart_items": {"Naan": [1]}}`)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Nil(t, out["order_id"])

	resp, out = post(t, srv.URL+"/webhook", `{"hello": "world"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Could not identify tool from arguments", out["error"])
}

func TestGetOrderMissing(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/orders/does-not-exist")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSuggestAndReload(t *testing.T) {
	srv, path := newTestServer(t)

	resp, err := http.Get(srv.URL + "/catalog/suggest?q=gobi+manchoorian")
	require.NoError(t, err)
	var sug struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sug))
	resp.Body.Close()
	assert.Equal(t, []string{"gobi manchurian"}, sug.Suggestions)

	require.NoError(t, os.WriteFile(path, []byte(`{"menu": {"drinks": [{"name": "Mango Lassi", "price": "$4.99"}]}}`), 0o644))
	resp, out := post(t, srv.URL+"/catalog/reload", ``)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, out["entries"])

	_, out = post(t, srv.URL+"/price", `{"item_name": "mango lassi", "quantity": 2}`)
	assert.Equal(t, 9.98, out["price"])
}
