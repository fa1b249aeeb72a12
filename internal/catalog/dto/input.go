package dto

type CreateProductInput struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Price              float64           `json:"price"`
	SalePrice          *float64          `json:"sale_price"`
	CategoryID         *int64            `json:"category_id"`
	Brand              string            `json:"brand"`
	ModelCompatibility []string          `json:"model_compatibility"`
	YearRangeStart     *int              `json:"year_range_start"`
	YearRangeEnd       *int              `json:"year_range_end"`
	Condition          string            `json:"condition"`
	SKU                string            `json:"sku"`
	StockQuantity      int               `json:"stock_quantity"`
	Specifications     map[string]string `json:"specifications"`
	Weight             *float64          `json:"weight"`
	Dimensions         *DimensionsInput  `json:"dimensions"`
	WarrantyMonths     *int              `json:"warranty_months"`
	Location           *string           `json:"location"`
	ImageURLs          []string          `json:"image_urls"`
}

type DimensionsInput struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// UpdateProductInput is a partial update: nil fields are left untouched.
type UpdateProductInput struct {
	Name               *string           `json:"name"`
	Description        *string           `json:"description"`
	Price              *float64          `json:"price"`
	SalePrice          *float64          `json:"sale_price"`
	CategoryID         *int64            `json:"category_id"`
	Brand              *string           `json:"brand"`
	ModelCompatibility []string          `json:"model_compatibility"`
	Condition          *string           `json:"condition"`
	SKU                *string           `json:"sku"`
	StockQuantity      *int              `json:"stock_quantity"`
	Specifications     map[string]string `json:"specifications"`
	Weight             *float64          `json:"weight"`
	Dimensions         *DimensionsInput  `json:"dimensions"`
	WarrantyMonths     *int              `json:"warranty_months"`
}
