package httphandler

import (
	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	prometheus "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /metrics
func MetricsHandler(gatherer prometheus.Gatherer) (string, httprequest.PathItem) {
	metrics := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return "/metrics", httprequest.NewPathItem("Metrics", "Research metrics").Get(metrics.ServeHTTP, "Research metrics in the prometheus text format")
}
