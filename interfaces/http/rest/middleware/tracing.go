package middleware

import (
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/projectsdatadna/test-series-api-sub001/pkg/observability"
)

// Trace opens a subsegment per request under the surrounding trace (the
// Lambda runtime's segment in deployed environments). Without a parent
// segment the request passes through untraced.
func Trace(tracer *observability.Tracer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, seg := tracer.StartSubsegment(r.Context(), r.Method+" "+r.URL.Path)
			if seg == nil {
				next.ServeHTTP(w, r)
				return
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			tracer.AddAnnotation(ctx, "method", r.Method)
			next.ServeHTTP(ww, r.WithContext(ctx))

			tracer.AddAnnotation(ctx, "route", routePattern(r))
			tracer.AddAnnotation(ctx, "status", fmt.Sprintf("%d", ww.Status()))
			if ww.Status() >= http.StatusInternalServerError {
				tracer.RecordError(ctx, fmt.Errorf("request failed with status %d", ww.Status()))
			}
			seg.Close(nil)
		})
	}
}
