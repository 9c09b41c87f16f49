package controllers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderController(t *testing.T, upstream *fakeUpstream) *OrderController {
	t.Helper()
	return NewOrderController(upstream.commerceService(), newTestSessions(), nil)
}

func TestGetOrdersForwardsFilters(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/admin/order/all": `{"status":true,"data":[]}`,
	})
	oc := newOrderController(t, upstream)

	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet,
		"/api/console/orders?search=9876&fromDate=2026-01-01&toDate=2026-01-31", "", "")

	require.NoError(t, oc.GetOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, upstream.calls, 1)
	assert.Equal(t, "/admin/order/all", upstream.calls[0].Path)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	oc := newOrderController(t, upstream)

	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPut, "/api/console/orders/o1/status",
		`{"orderStatus":"Shipped"}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, oc.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, upstream.calls)
}

func TestUpdateStatusCancelledNeedsReason(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	oc := newOrderController(t, upstream)
	e := newTestEcho()

	for _, body := range []string{
		`{"orderStatus":"Cancelled"}`,
		`{"orderStatus":"Cancelled","reason":"   "}`,
	} {
		c, rec := newTestContext(e, http.MethodPut, "/api/console/orders/o1/status", body, echo.MIMEApplicationJSON)
		c.SetParamNames("id")
		c.SetParamValues("o1")

		require.NoError(t, oc.UpdateStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Empty(t, upstream.calls)
}

func TestUpdateStatusForwardsReasonOnlyForCancellations(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	oc := newOrderController(t, upstream)
	e := newTestEcho()

	// Cancelled carries the reason.
	c, rec := newTestContext(e, http.MethodPut, "/api/console/orders/o1/status",
		`{"orderStatus":"Cancelled","reason":"Out of stock"}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	require.NoError(t, oc.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, upstream.calls, 1)
	assert.Equal(t, "/admin/order/updateStatus/o1", upstream.calls[0].Path)
	assert.Contains(t, upstream.calls[0].Body, "Out of stock")

	// Accepted drops any stray reason from the form.
	c, rec = newTestContext(e, http.MethodPut, "/api/console/orders/o2/status",
		`{"orderStatus":"Accepted","reason":"leftover text"}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("o2")
	require.NoError(t, oc.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, upstream.calls, 2)
	assert.NotContains(t, upstream.calls[1].Body, "leftover text")
}

func TestVerifyDeliveryRejectsNonNumericCode(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	oc := newOrderController(t, upstream)

	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPut, "/api/console/orders/o1/verify-delivery",
		`{"otp":"12ab56"}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, oc.VerifyDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, upstream.calls)
}

func TestVerifyDeliverySurfacesUpstreamMessage(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/admin/order/verifyDelivery/o1": `{"status":true,"message":"Order delivered"}`,
	})
	oc := newOrderController(t, upstream)

	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPut, "/api/console/orders/o1/verify-delivery",
		`{"otp":"123456"}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, oc.VerifyDelivery(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order delivered")
}

func TestVerifyDeliveryWrongCodeKeepsUpstreamError(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	upstream.srv.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"Invalid OTP"}`))
	})
	oc := newOrderController(t, upstream)

	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPut, "/api/console/orders/o1/verify-delivery",
		`{"otp":"000000"}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, oc.VerifyDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid OTP")
}
