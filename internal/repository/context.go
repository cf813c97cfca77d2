package repository

import "context"

// userTokenFromContext extracts the caller JWT placed in the request context
// by the auth middleware. Empty for unauthenticated flows; the supabase
// client then falls back to the service key.
func userTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value("user_token").(string); ok {
		return token
	}
	return ""
}
