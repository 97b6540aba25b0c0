package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/candrasdkd/easywork/internal/model"
)

type contextKey string

const identityContextKey contextKey = "identity"

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		authz := req.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		who, err := h.auth.ParseToken(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		ctx := context.WithValue(req.Context(), identityContextKey, who)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) model.Identity {
	who, _ := ctx.Value(identityContextKey).(model.Identity)
	return who
}
