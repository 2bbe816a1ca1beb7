package chi

import (
	"net/http"

	"github.com/marcelsud/library-api/metrics"
)

// getStats handles GET /api/stats with the same numbers /metrics exports
func getStats(collector metrics.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, err := collector.Collect(r.Context())
		if err != nil {
			fail(w, r, err)
			return
		}
		ok(w, m)
	})
}
