package appctx

import (
	"context"
)

// Context key for storing the workspace identifier
type contextKey string

const WorkspaceContextKey contextKey = "workspace"

// SetWorkspaceID adds the workspace identifier to the request context
func SetWorkspaceID(ctx context.Context, workspaceID string) context.Context {
	return context.WithValue(ctx, WorkspaceContextKey, workspaceID)
}

// GetWorkspaceID extracts the workspace identifier from the request context
func GetWorkspaceID(ctx context.Context) (string, bool) {
	workspaceID, ok := ctx.Value(WorkspaceContextKey).(string)
	return workspaceID, ok
}
