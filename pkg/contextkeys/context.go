package contextkeys

type contextKey string

// UserIDContextKey holds the authenticated profile id in gin contexts.
const UserIDContextKey = contextKey("userID")

// RoleContextKey holds the authenticated profile role in gin contexts.
const RoleContextKey = contextKey("role")
