package http

const (
	KEY_HEADER_CONTENT_TYPE       = "Content-Type"
	VALUE_HEADER_APPLICATION_JSON = "application/json"
	KEY_HEADER_REQUEST_ID         = "X-Request-Id"
	KEY_HEADER_SESSION_ID         = "Storefront-Session"
)

const (
	CATALOG_BASE_URL = "http://catalog-service:8080/products"
	CART_BASE_URL    = "http://cart-service:8080/carts"
	ORDER_BASE_URL   = "http://order-service:8080/orders"
	USER_BASE_URL    = "http://user-service:8080/users"
)
