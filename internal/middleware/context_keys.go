package middleware

type contextKey string

// ContextKeyAdminEmail carries the authenticated admin's email through the
// request context.
const ContextKeyAdminEmail contextKey = "admin_email"
