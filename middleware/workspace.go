package middleware

import (
	"log"
	"net/http"

	"crmbackend/appctx"
	"crmbackend/core"
)

// WorkspaceHeader carries the caller's workspace identifier on every API
// request
const WorkspaceHeader = "X-Workspace-ID"

// WorkspaceMiddleware extracts and validates the workspace identifier and
// stores it on the request context. Requests without a valid workspace are
// rejected before reaching any handler.
func WorkspaceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := r.Header.Get(WorkspaceHeader)
		if workspaceID == "" {
			log.Printf("❌ Missing %s header on %s %s", WorkspaceHeader, r.Method, r.URL.Path)
			http.Error(w, "workspace id required", http.StatusUnauthorized)
			return
		}
		if !core.IsValidULID(workspaceID) {
			log.Printf("❌ Invalid workspace id %q on %s %s", workspaceID, r.Method, r.URL.Path)
			http.Error(w, "invalid workspace id", http.StatusUnauthorized)
			return
		}

		ctx := appctx.SetWorkspaceID(r.Context(), workspaceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
