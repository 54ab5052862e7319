package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Store key layout. Every collection lives under one flat string key; the
// per-tenant patterns take the owning user id. Only the owning service may
// write its keys — a convention, not a runtime check.
const (
	StoreKeyUsers          = "users"
	StoreKeyTrains         = "trains"
	StoreKeySession        = "currentUser"
	StoreKeyBookings       = "bookings:%s"
	StoreKeyPaymentMethods = "paymentMethods:%s"
	StoreKeyPassengers     = "passengers:%s"
)

// The administrator record is re-asserted on every application start.
const (
	AdminID       = "admin-001"
	AdminName     = "Admin"
	AdminEmail    = "admin@irctc.com"
	AdminPassword = "admin123"
)

const (
	PNRPrefix       = "PNR"
	PNRSuffixDigits = 10
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"

	OtelStoreKeyAttribute = "store.key"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	RequestParamID = "id"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

const (
	Empty = ""
)
