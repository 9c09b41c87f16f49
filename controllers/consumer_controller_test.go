package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenewstale/admin-console/models"
)

const consumerListReply = `{"status":true,"data":[
	{"_id":"1","fullName":"Asha Verma","phone":"9876501234","email":"asha@example.com"},
	{"_id":"2","fullName":"Ravi Kumar","phone":"9876505678","email":"ravi@example.com"},
	{"_id":"3","fullName":"Meena Asha","phone":"9000000000","email":"meena@example.com"}]}`

func TestGetConsumersSearchesNamePhoneEmail(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/admin/consumerData/allconsumer": consumerListReply,
	})
	cc := NewConsumerController(upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/console/consumers?search=asha", "", "")
	require.NoError(t, cc.GetConsumers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.ConsumerPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)

	// Phone search matches too.
	c, rec = newTestContext(e, http.MethodGet, "/api/console/consumers?search=987650", "", "")
	require.NoError(t, cc.GetConsumers(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
}

func TestGetConsumersPaginates(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/admin/consumerData/allconsumer": consumerListReply,
	})
	cc := NewConsumerController(upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/console/consumers?page=2&limit=2", "", "")
	require.NoError(t, cc.GetConsumers(c))

	var resp struct {
		Data models.ConsumerPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Page)
	require.Len(t, resp.Data.Consumers, 1)
	assert.Equal(t, "Meena Asha", resp.Data.Consumers[0].FullName)

	// A page past the end is empty, not an error.
	c, rec = newTestContext(e, http.MethodGet, "/api/console/consumers?page=9&limit=2", "", "")
	require.NoError(t, cc.GetConsumers(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Consumers)
}

func TestDashboardStatsAggregatesBothHosts(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/public/category/getAll": `{"status":true,"categories":[{"_id":"1"},{"_id":"2"}]}`,
		"/admin/newsPost/getAll": `{"status":true,"posts":[
			{"_id":"1","heading":"a","title":"a","content":"x","published":true},
			{"_id":"2","heading":"b","title":"b","content":"x","published":false}]}`,
		"/admin/product/getAll":           `{"status":true,"data":[{"_id":"1","title":"Jar"}]}`,
		"/public/banner/getAll":           `{"status":true,"data":[{"_id":"1","isActive":true},{"_id":"2","isActive":false}]}`,
		"/admin/consumerData/allconsumer": `{"status":true,"data":[{"_id":"1"},{"_id":"2"},{"_id":"3"}]}`,
	})

	dc := NewDashboardController(upstream.contentService(), upstream.commerceService(), newTestSessions())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/console/dashboard/stats", "", "")
	require.NoError(t, dc.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.TotalCategories)
	assert.Equal(t, 2, resp.Data.TotalPosts)
	assert.Equal(t, 1, resp.Data.PublishedPosts)
	assert.Equal(t, 1, resp.Data.TotalProducts)
	assert.Equal(t, 2, resp.Data.TotalBanners)
	assert.Equal(t, 1, resp.Data.ActiveBanners)
	assert.Equal(t, 3, resp.Data.TotalConsumers)
}
