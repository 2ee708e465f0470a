package middleware

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/adamwoolhether/plaid/internal/web"
	"github.com/adamwoolhether/plaid/internal/web/errs"
	"github.com/adamwoolhether/plaid/internal/web/mux"
)

// CORS lets browsers on the allowed origins call the API. An origin of
// "*" allows everything; other entries may contain path.Match wildcards,
// e.g. "http://localhost:*". Preflight requests are answered with 204.
func CORS(allowedOrigins []string, allowedHeaders ...string) mux.Middleware {
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type", "Accept", "Plaid-Version", "User-Agent"}
	}

	originAllowed := CheckOriginFunc(allowedOrigins)
	headers := strings.Join(allowedHeaders, ", ")

	m := func(handler mux.Handler) mux.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return handler(ctx, w, r)
			}

			if !originAllowed(origin) {
				return web.RespondError(ctx, w, errs.New(http.StatusForbidden, errs.TypeInvalidRequest, "CORS_ORIGIN_NOT_ALLOWED", fmt.Errorf("origin %s is not allowed", origin)))
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				return web.RespondJSON(ctx, w, http.StatusNoContent, nil)
			}

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}

// CheckOriginFunc returns a matcher for the given origins. Entries may be
// comma-separated lists.
func CheckOriginFunc(allowedOrigins []string) func(string) bool {
	allowed := make(map[string]bool)
	var wildcards []string

	for _, entry := range allowedOrigins {
		for o := range strings.SplitSeq(entry, ",") {
			o = strings.TrimSpace(o)
			switch {
			case o == "":
			case o == "*":
				allowed["*"] = true
			case strings.Contains(o, "*"):
				wildcards = append(wildcards, o)
			default:
				allowed[o] = true
			}
		}
	}
	allowAll := allowed["*"]

	return func(origin string) bool {
		if allowAll || allowed[origin] {
			return true
		}
		for _, pattern := range wildcards {
			if ok, err := path.Match(pattern, origin); ok && err == nil {
				return true
			}
		}
		return false
	}
}
