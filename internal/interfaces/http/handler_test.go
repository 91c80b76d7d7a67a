package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/myland-api/internal/application/analytics"
	"github.com/jhoicas/myland-api/internal/application/production"
	"github.com/jhoicas/myland-api/internal/application/sales"
	"github.com/jhoicas/myland-api/internal/application/usecase"
	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
	apphttp "github.com/jhoicas/myland-api/internal/interfaces/http"
	"github.com/jhoicas/myland-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble en memoria: un solo tipo implementa todos los puertos de persistencia
// y ambos métodos transaccionales (sin snapshot; la atomicidad se prueba en
// los tests de los casos de uso, aquí interesa el mapeo HTTP).
// ──────────────────────────────────────────────────────────────────────────────

type memBackend struct {
	ingredients map[string]*entity.Ingredient
	products    map[string]*entity.Product
	recipes     map[string][]*entity.ProductIngredient
	productions map[string]*entity.Production
	lines       map[string][]*entity.ProductionIngredient
	shops       map[string]*entity.Shop
	sales       map[string]*entity.Sale
}

func newMemBackend() *memBackend {
	return &memBackend{
		ingredients: make(map[string]*entity.Ingredient),
		products:    make(map[string]*entity.Product),
		recipes:     make(map[string][]*entity.ProductIngredient),
		productions: make(map[string]*entity.Production),
		lines:       make(map[string][]*entity.ProductionIngredient),
		shops:       make(map[string]*entity.Shop),
		sales:       make(map[string]*entity.Sale),
	}
}

type memIngredients struct{ b *memBackend }

func (r memIngredients) Create(ing *entity.Ingredient) error { r.b.ingredients[ing.ID] = ing; return nil }
func (r memIngredients) GetByID(id string) (*entity.Ingredient, error) {
	return r.b.ingredients[id], nil
}
func (r memIngredients) GetForUpdate(id string) (*entity.Ingredient, error) {
	return r.b.ingredients[id], nil
}
func (r memIngredients) UpdateQuantity(id string, q decimal.Decimal) error {
	r.b.ingredients[id].Quantity = q
	return nil
}
func (r memIngredients) List() ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.b.ingredients))
	for _, ing := range r.b.ingredients {
		out = append(out, ing)
	}
	return out, nil
}
func (r memIngredients) Delete(id string) error { delete(r.b.ingredients, id); return nil }

type memProducts struct{ b *memBackend }

func (r memProducts) Create(p *entity.Product) error { r.b.products[p.ID] = p; return nil }
func (r memProducts) GetByID(id string) (*entity.Product, error) {
	return r.b.products[id], nil
}
func (r memProducts) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.b.products))
	for _, p := range r.b.products {
		out = append(out, p)
	}
	return out, nil
}
func (r memProducts) Delete(id string) error { delete(r.b.products, id); return nil }
func (r memProducts) CreateRecipeLine(line *entity.ProductIngredient) error {
	r.b.recipes[line.ProductID] = append(r.b.recipes[line.ProductID], line)
	return nil
}
func (r memProducts) ListRecipe(productID string) ([]*entity.ProductIngredient, error) {
	return r.b.recipes[productID], nil
}
func (r memProducts) DeleteRecipeByProduct(productID string) error {
	delete(r.b.recipes, productID)
	return nil
}

type memProductions struct{ b *memBackend }

func (r memProductions) Create(p *entity.Production, lines []*entity.ProductionIngredient) error {
	r.b.productions[p.ID] = p
	r.b.lines[p.ID] = lines
	return nil
}
func (r memProductions) GetByID(id string) (*entity.Production, error) {
	return r.b.productions[id], nil
}
func (r memProductions) List() ([]*entity.Production, error) {
	out := make([]*entity.Production, 0, len(r.b.productions))
	for _, p := range r.b.productions {
		out = append(out, p)
	}
	return out, nil
}
func (r memProductions) ListLines(id string) ([]*entity.ProductionIngredient, error) {
	return r.b.lines[id], nil
}
func (r memProductions) DeleteLines(id string) error { delete(r.b.lines, id); return nil }
func (r memProductions) Delete(id string) error      { delete(r.b.productions, id); return nil }

type memShops struct{ b *memBackend }

func (r memShops) Create(s *entity.Shop) error            { r.b.shops[s.ID] = s; return nil }
func (r memShops) GetByID(id string) (*entity.Shop, error) { return r.b.shops[id], nil }
func (r memShops) Update(s *entity.Shop) error            { r.b.shops[s.ID] = s; return nil }
func (r memShops) List() ([]*entity.Shop, error)          { return nil, nil }
func (r memShops) Delete(id string) error                 { delete(r.b.shops, id); return nil }

type memSales struct{ b *memBackend }

func (r memSales) Create(s *entity.Sale) error            { r.b.sales[s.ID] = s; return nil }
func (r memSales) GetByID(id string) (*entity.Sale, error) { return r.b.sales[id], nil }
func (r memSales) List() ([]*entity.Sale, error)          { return nil, nil }
func (r memSales) Delete(id string) error                 { delete(r.b.sales, id); return nil }
func (r memSales) DeleteByShop(shopID string) error {
	for id, s := range r.b.sales {
		if s.ShopID != nil && *s.ShopID == shopID {
			delete(r.b.sales, id)
		}
	}
	return nil
}

func (b *memBackend) Run(_ context.Context, fn func(
	repository.IngredientRepository,
	repository.ProductRepository,
	repository.ProductionRepository,
) error) error {
	return fn(memIngredients{b}, memProducts{b}, memProductions{b})
}

func (b *memBackend) RunSales(_ context.Context, fn func(
	repository.ProductRepository,
	repository.ShopRepository,
	repository.SaleRepository,
) error) error {
	return fn(memProducts{b}, memShops{b}, memSales{b})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID    = "00000000-0000-0000-0000-0000000000aa"
	testIngredientID = "00000000-0000-0000-0000-000000000001"
)

// buildTestApp arma la aplicación Fiber completa sobre el backend en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *memBackend) {
	t.Helper()
	b := newMemBackend()
	b.products[testProductID] = &entity.Product{
		ID:           testProductID,
		Name:         "Torta de vainilla",
		SellingPrice: decimal.NewFromInt(8),
		ProductCost:  decimal.NewFromInt(5),
	}
	b.ingredients[testIngredientID] = &entity.Ingredient{
		ID: testIngredientID, Name: "Harina", Type: "KG",
		Quantity: decimal.NewFromInt(10),
	}

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		IngredientUC: usecase.NewIngredientUseCase(memIngredients{b}),
		ProductUC:    usecase.NewProductUseCase(memProducts{b}, b),
		ShopUC:       usecase.NewShopUseCase(memShops{b}, b),
		ProductionUC: production.NewProductionUseCase(b, memProductions{b}, false),
		SaleUC:       sales.NewRecordSaleUseCase(b, memSales{b}),
		DashboardUC:  analytics.NewDashboardUseCase(nil),
		ReportUC:     analytics.NewSalesReportUseCase(nil, nil),
		Log:          log,
	})
	return app, b
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores y casos felices
// ──────────────────────────────────────────────────────────────────────────────

// POST /ingredient sin tipo de unidad → 400 con el mensaje bajo "error".
func TestPostIngredient_SinTipoEs400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/ingredient", fiber.Map{
		"name": "Harina", "quantity": "10",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["error"])
}

func TestPostIngredient_Valido201(t *testing.T) {
	app, b := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/ingredient", fiber.Map{
		"name": "Leche", "type": "LITERS", "quantity": "5", "pricePerUnit": "1.5",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, b.ingredients, 2)
}

// Producción con stock suficiente → 200 con las líneas persistidas.
func TestPostProduction_Feliz200(t *testing.T) {
	app, b := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/production", fiber.Map{
		"product":       fiber.Map{"id": testProductID},
		"date":          "2026-03-10",
		"producedUnits": 12,
		"usedIngredients": []fiber.Map{
			{"ingredientId": testIngredientID, "quantityUsed": "2.5"},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testProductID, body["productId"])
	lines, ok := body["usedIngredients"].([]any)
	require.True(t, ok)
	assert.Len(t, lines, 1)
	assert.True(t, b.ingredients[testIngredientID].Quantity.Equal(decimal.RequireFromString("7.5")))
}

// Stock insuficiente → 400 con código estable y detalle del faltante.
func TestPostProduction_StockInsuficiente400(t *testing.T) {
	app, b := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/production", fiber.Map{
		"product": fiber.Map{"id": testProductID},
		"usedIngredients": []fiber.Map{
			{"ingredientId": testIngredientID, "quantityUsed": "99"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Contains(t, body["error"], "Harina")
	// El stock no cambió.
	assert.True(t, b.ingredients[testIngredientID].Quantity.Equal(decimal.NewFromInt(10)))
}

// Producto referenciado inexistente en el POST → 400 (no 404).
func TestPostProduction_ProductoInexistente400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/production", fiber.Map{
		"product": fiber.Map{"id": "no-existe"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// DELETE de una producción inexistente → 404.
func TestDeleteProduction_Inexistente404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/myland/production/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// Venta feliz → 201 con montos derivados.
func TestPostSale_Feliz201(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/sale", fiber.Map{
		"product":       fiber.Map{"id": testProductID},
		"soldUnits":     20,
		"returnedUnits": 12,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	// netas = 8 → ingreso 64, utilidad 24
	assert.Equal(t, "64", body["totalIncome"])
	assert.Equal(t, "24", body["totalProfit"])
}

// GET de una tienda inexistente → 404.
func TestGetShop_Inexistente404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/myland/shop/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Ciclo completo de tienda: crear, actualizar, borrar.
func TestShop_CicloCompleto(t *testing.T) {
	app, b := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/myland/shop", fiber.Map{
		"name": "Tienda Centro", "city": "Bogotá",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	shopID, _ := created["id"].(string)
	require.NotEmpty(t, shopID)

	resp = doJSON(t, app, http.MethodPut, "/api/myland/shop/"+shopID, fiber.Map{
		"city": "Medellín",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "Medellín", updated["city"])
	assert.Equal(t, "Tienda Centro", updated["name"])

	resp = doJSON(t, app, http.MethodDelete, "/api/myland/shop/"+shopID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, b.shops)
}
