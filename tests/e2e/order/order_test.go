//go:build e2e

package order_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"kantine-order-api/internal/usecase/queries"
	"kantine-order-api/tests/common/dbtest"
	"kantine-order-api/tests/common/httptest"
	"kantine-order-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ordersURL = "/api/orders"

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

// today returns the current date in the admission reference zone, which the
// test config pins to UTC.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (s *OrderSuite) createOrderBody(roomID, productID uuid.UUID, quantity int) map[string]any {
	return map[string]any{
		"requestedDeliveryDate": today(),
		"roomId":                roomID,
		"products": []map[string]any{
			{"productId": productID, "quantity": quantity},
		},
	}
}

func (s *OrderSuite) TestCreateOrder() {
	s.Run("accepts a valid order", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lokale 2.14")
		productID := dbtest.CreateTestProduct(t, s.DB, "Frokostanretning", 5, 3)
		optionID := dbtest.CreateTestOption(t, s.DB, "Kaffe", 10, 4)

		body := s.createOrderBody(roomID, productID, 2)
		body["options"] = []map[string]any{{"optionId": optionID, "quantity": 1}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, body)

		var created queries.OrderView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, roomID, created.RoomID)
		require.Len(t, created.Products, 1)
		require.Equal(t, 2, created.Products[0].Quantity)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%s", ordersURL, created.ID), nil)
		var fetched queries.OrderView
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)
	})

	s.Run("rejects an inadmissible order with the full violation list", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lokale 2.14")
		productID := dbtest.CreateTestProduct(t, s.DB, "Frokostanretning", 1, 3)

		body := map[string]any{
			"requestedDeliveryDate": time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02"),
			"roomId":                roomID,
			"products": []map[string]any{
				{"productId": productID, "quantity": 2},
				{"productId": uuid.New(), "quantity": 1},
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, body)
		require.Equal(t, http.StatusBadRequest, w.Code, "Response: %s", w.Body.String())

		violations := httptest.DecodeViolations(t, w)
		kinds := make(map[string]bool, len(violations))
		for _, v := range violations {
			kinds[v.Kind] = true
		}
		require.True(t, kinds["DELIVERY_DATE_IN_PAST"])
		require.True(t, kinds["PRODUCT_QUANTITY_OVER_AVAILABILITY"])
		require.True(t, kinds["PRODUCT_NOT_FOUND"])

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil)
		var orders []queries.OrderView
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &orders)
		require.Empty(t, orders, "a rejected order must not be persisted")
	})

	s.Run("rejects an order outside the product window", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lokale 2.14")
		// Pick a one-hour window guaranteed not to contain the current time.
		closedFrom, closedTo := 1, 2
		if time.Now().UTC().Hour() < 12 {
			closedFrom, closedTo = 13, 14
		}
		productID := dbtest.CreateTestProductWithWindow(t, s.DB, "Morgenbrød", 5, 3, closedFrom, 0, closedTo, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderBody(roomID, productID, 1))
		require.Equal(t, http.StatusBadRequest, w.Code, "Response: %s", w.Body.String())

		violations := httptest.DecodeViolations(t, w)
		require.NotEmpty(t, violations)
		found := false
		for _, v := range violations {
			if v.Kind == "PRODUCT_OUTSIDE_ORDER_WINDOW" {
				found = true
			}
		}
		require.True(t, found)
	})
}

func (s *OrderSuite) TestUpdateOrder() {
	s.Run("re-validates the merged order", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lokale 2.14")
		productID := dbtest.CreateTestProduct(t, s.DB, "Frokostanretning", 5, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderBody(roomID, productID, 2))
		var created queries.OrderView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		patch := map[string]any{
			"products": []map[string]any{{"productId": productID, "quantity": 3}},
		}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%s", ordersURL, created.ID), patch)
		var updated queries.OrderView
		httptest.AssertSuccessResponse(t, uw, http.StatusOK, &updated)
		require.Equal(t, 3, updated.Products[0].Quantity)

		overMax := map[string]any{
			"products": []map[string]any{{"productId": productID, "quantity": 4}},
		}
		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%s", ordersURL, created.ID), overMax)
		require.Equal(t, http.StatusBadRequest, rw.Code)

		violations := httptest.DecodeViolations(t, rw)
		require.NotEmpty(t, violations)
	})

	s.Run("unknown order id", func() {
		t := s.T()

		patch := map[string]any{"roomId": uuid.New()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%s", ordersURL, uuid.New()), patch)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func (s *OrderSuite) TestDeleteOrder() {
	s.Run("only a boolean true confirms", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lokale 2.14")
		productID := dbtest.CreateTestProduct(t, s.DB, "Frokostanretning", 5, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderBody(roomID, productID, 1))
		var created queries.OrderView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		url := fmt.Sprintf("%s/%s", ordersURL, created.ID)

		missing := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(t, missing, http.StatusBadRequest, "confirm")

		denied := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, map[string]any{"confirm": false})
		httptest.AssertErrorResponse(t, denied, http.StatusBadRequest, "confirm")

		stringTrue := httptest.PerformRawRequest(t, s.Router, http.MethodDelete, url, []byte(`{"confirm": "true"}`))
		httptest.AssertErrorResponse(t, stringTrue, http.StatusBadRequest, "confirm")

		confirmed := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, map[string]any{"confirm": true})
		require.Equal(t, http.StatusNoContent, confirmed.Code)

		gone := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusNotFound, gone.Code)
	})

	s.Run("confirmed delete of an unknown id", func() {
		t := s.T()

		url := fmt.Sprintf("%s/%s", ordersURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, map[string]any{"confirm": true})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func (s *OrderSuite) TestCatalogReferences() {
	s.Run("room referenced by an order cannot be deleted", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Lokale 2.14")
		productID := dbtest.CreateTestProduct(t, s.DB, "Frokostanretning", 5, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderBody(roomID, productID, 1))
		var created queries.OrderView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/rooms/"+roomID.String(), map[string]any{"confirm": true})
		require.Equal(t, http.StatusConflict, dw.Code, "Response: %s", dw.Body.String())
	})
}
