package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func TestGinMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	collector := NewCollector(reg)

	router := gin.New()
	router.Use(collector.GinMiddleware())
	router.GET("/api/v1/companies/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/C100", nil)
		router.ServeHTTP(w, req)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	var total float64
	for _, mf := range families {
		if mf.GetName() != "careertrack_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["route"] != "/api/v1/companies/:id" {
				t.Errorf("unexpected route label %q", labels["route"])
			}
			if labels["status"] != "200" {
				t.Errorf("unexpected status label %q", labels["status"])
			}
			total += m.GetCounter().GetValue()
		}
	}
	if total != 3 {
		t.Errorf("expected 3 recorded requests, got %v", total)
	}
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewCollector(reg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(collector.GinMiddleware())
	router.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	scrape := httptest.NewRecorder()
	Handler(reg).ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(scrape.Result().Body)
	if err != nil {
		t.Fatalf("failed to read scrape body: %v", err)
	}
	if !strings.Contains(string(body), "careertrack_http_requests_total") {
		t.Error("scrape output missing request counter")
	}
}
