package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "lostfound-admin context key " + string(c)
}

// RequestIDKey is the key for the request ID in context.Context
const RequestIDKey = contextKey("requestID")

// AdminEmailKey is the key for the authenticated staff email in context.Context
const AdminEmailKey = contextKey("adminEmail")

// SessionIDKey is the key for the admin session ID in context.Context
const SessionIDKey = contextKey("sessionID")

// CollectionKey is the key for the item collection being operated on
const CollectionKey = contextKey("collection")

// ComponentKey is the key for the component name in context.Context
const ComponentKey = contextKey("component")

// OperationKey is the key for the operation name in context.Context
const OperationKey = contextKey("operation")
