package cache

const (
	KEY_PRODUCTS          = "products"
	KEY_PRODUCT           = "products:%s"
	KEY_FEATURED_PRODUCTS = "products:featured:%s"
)
