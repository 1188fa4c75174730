package constants

const (
	APP_CATALOG_SERVICE      = "catalog-service"
	APP_CART_SERVICE         = "cart-service"
	APP_ORDER_SERVICE        = "order-service"
	APP_USER_SERVICE         = "user-service"
	APP_NOTIFICATION_SERVICE = "notification-service"
	APP_MAIN_STOREFRONT      = "main storefront"

	AUDIENCE_USER = "user"
)
