package request

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	Name        string          `validate:"required"                                          json:"name"`
	Price       decimal.Decimal `validate:"required"                                          json:"price"`
	Category    string          `validate:"required"                                          json:"category"`
	Sizes       []string        `validate:"required,gt=0"                                     json:"sizes"`
	Stock       int32           `validate:"gte=0"                                             json:"stock"`
	Description string          `                                                             json:"description"`
	Images      []string        `                                                             json:"images"`
	Featured    string          `validate:"omitempty,oneof=best-selling trending-now none"    json:"featured"`
}

type UpdateProduct struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Sizes       []string         `json:"sizes"`
	Stock       *int32           `validate:"omitempty,gte=0"                                  json:"stock"`
	Description *string          `json:"description"`
	Images      []string         `json:"images"`
	Featured    *string          `validate:"omitempty,oneof=best-selling trending-now none"   json:"featured"`
}

type UploadImage struct {
	DataURL string `validate:"required,startswith=data:" json:"data_url"`
}

type Category struct {
	Name string `validate:"required" json:"name"`
}
