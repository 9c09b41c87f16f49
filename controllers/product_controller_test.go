package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRequiresTitleAndImage(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewProductController(upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	// Missing title.
	c, rec := newMultipartContext(t, e, http.MethodPost, "/api/console/products",
		map[string]string{"sellingPrice": "20"}, "productImg", "jar.png", []byte("png"))
	require.NoError(t, pc.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing image.
	c, rec = newMultipartContext(t, e, http.MethodPost, "/api/console/products",
		map[string]string{"title": "Water Jar 20L"}, "", "", nil)
	require.NoError(t, pc.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, upstream.calls)
}

func TestCreateProductForwardsFormAndImages(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewProductController(upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	c, rec := newMultipartContext(t, e, http.MethodPost, "/api/console/products",
		map[string]string{
			"title":         "Water Jar 20L",
			"sellingPrice":  "40",
			"bulkAvailable": "true",
		}, "productImg", "jar.png", []byte("pngbytes"))

	require.NoError(t, pc.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, upstream.calls, 1)
	call := upstream.calls[0]
	assert.Equal(t, "/admin/product/create", call.Path)
	assert.Contains(t, call.Body, "Water Jar 20L")
	assert.Contains(t, call.Body, `filename="jar.png"`)
}

func TestUpdateProductImagesOptional(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewProductController(upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	c, rec := newMultipartContext(t, e, http.MethodPut, "/api/console/products/p1",
		map[string]string{"title": "Water Jar 20L", "sellingPrice": "45"}, "", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, pc.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, upstream.calls, 1)
	assert.Equal(t, "/admin/product/update/p1", upstream.calls[0].Path)
}

func TestGetProductsSearchFiltersByTitle(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/admin/product/getAll": `{"status":true,"data":[
			{"_id":"1","title":"Water Jar 20L"},
			{"_id":"2","title":"Water Bottle 1L"},
			{"_id":"3","title":"Cooler Stand"}]}`,
	})
	pc := NewProductController(upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/console/products?search=water", "", "")
	require.NoError(t, pc.GetProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Water Jar 20L")
	assert.Contains(t, rec.Body.String(), "Water Bottle 1L")
	assert.NotContains(t, rec.Body.String(), "Cooler Stand")
}
