package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "shipnotice/internal/adapters/in/http"
	"shipnotice/internal/adapters/in/order"
	"shipnotice/internal/adapters/out/x12"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/application/usecases/queries"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderPayload = `{
	"order_id": "ORD-2026-001",
	"purchase_order": "PO-12345",
	"ship_date": "2026-03-15",
	"ship_from": {"name": "Acme Warehouse", "address_line1": "123 Industrial Blvd", "city": "Dallas", "state": "TX", "postal_code": "75201"},
	"ship_to": {"name": "Retail Store #42", "address_line1": "456 Commerce St", "city": "Austin", "state": "TX", "postal_code": "78701"},
	"carrier_code": "UPSN",
	"items": [
		{"line_number": 1, "sku": "WIDGET-A", "description": "Premium Widget", "quantity": 25, "unit_weight": 2.0}
	]
}`

type nullStore struct{}

func (nullStore) Save(_ context.Context, shipmentID string, _ string) (string, error) {
	return "/outbox/856_" + shipmentID + ".edi", nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	parser, err := order.NewParser()
	require.NoError(t, err)

	packingConfig, err := services.NewPackingConfig(50, nil, false, shipment.Dimensions{}, "")
	require.NoError(t, err)
	generator, err := sscc.NewGenerator(sscc.DefaultConfig())
	require.NoError(t, err)

	generateNotice, err := commands.NewGenerateShipNoticeCommandHandler(
		packingConfig, generator, x12.NewAssembler("", "", ""), nullStore{}, "ACME", "RETAILCO")
	require.NoError(t, err)
	previewIDs, err := queries.NewPreviewContainerIDsQueryHandler(generator)
	require.NoError(t, err)

	e := echo.New()
	httpin.NewServer(parser, generateNotice, previewIDs).RegisterRoutes(e)
	return e
}

func TestServer_CreateShipNotice(t *testing.T) {
	t.Run("should generate a document for a valid order", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/ship-notices", strings.NewReader(orderPayload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var response httpin.ShipNoticeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "SHIP-ORD-2026-001", response.ShipmentID)
		assert.Equal(t, 1, response.TotalCartons)
		assert.Equal(t, 25, response.TotalUnits)
		assert.Contains(t, response.Document, "ST*856*")
		assert.Contains(t, response.Document, "CTT*1***50.00*LB")
	})

	t.Run("should reject an invalid payload with 422", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/ship-notices",
			strings.NewReader(`{"order_id": "ORD-1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body httpin.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusUnprocessableEntity, body.Code)
	})
}

func TestServer_PreviewContainerIDs(t *testing.T) {
	t.Run("should preview the requested number of identifiers", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/container-ids/preview?count=3", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response httpin.PreviewResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response.ContainerIDs, 3)
		assert.Len(t, response.ContainerIDs[0], 18)
	})

	t.Run("should reject a non-integer count", func(t *testing.T) {
		e := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/container-ids/preview?count=ten", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
