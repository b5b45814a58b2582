package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
)

// HeaderAccountID carries the authenticated caller identity, resolved by the
// upstream session service. The engine trusts it only behind the service
// API key; it never performs session authentication itself.
const HeaderAccountID = "X-Account-ID"

type ctxKey string

const accountIDKey ctxKey = "accountID"

// unauthorizedBody mirrors the handler package's ErrorResponse shape so
// clients see one uniform 401 surface regardless of which layer rejected.
const unauthorizedBody = `{"error":"` + domain.ErrMsgUnauthorized + `","kind":"UNAUTHORIZED"}`

// WithAccountID returns a new context carrying the caller's account id.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromContext extracts the caller's account id from the context.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(accountIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// Middleware rejects requests without a well-formed caller identity before
// any engine logic runs. All unauthenticated calls fail uniformly.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := r.Header.Get(HeaderAccountID)
			if _, err := uuid.Parse(accountID); err != nil {
				logger.FromContext(r.Context()).Warn("Rejected request without caller identity",
					"path", r.URL.Path, "has_header", accountID != "")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(unauthorizedBody))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), accountID)))
		})
	}
}
