package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyConfig        = "config"
	KeyEmail         = "email"
	KeyRole          = "role"
	KeyToken         = "token"
	KeyRequestID     = "requestId"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyTraceID       = "traceId"
	KeySpanID        = "spanId"

	KeySessionID    = "sessionId"
	KeyCartKey      = "cartKey"
	KeyCartItems    = "cartItems"
	KeyCacheKey     = "cacheKey"
	KeyProductID    = "productId"
	KeyProduct      = "product"
	KeyProducts     = "products"
	KeyCategory     = "category"
	KeyOrderID      = "orderId"
	KeyOrder        = "order"
	KeyOrderStatus  = "orderStatus"
	KeyUserID       = "userId"
	KeyImagePath    = "imagePath"
	KeyMailTo       = "mailTo"
	KeyMailTemplate = "mailTemplate"
)
