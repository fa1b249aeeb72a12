package model

// Condition is the product condition enum.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return true
	}
	return false
}

type Product struct {
	BaseModel
	VendorID           int64          `db:"vendor_id" json:"vendor_id"`
	CategoryID         *int64         `db:"category_id" json:"category_id"`
	Name               string         `db:"name" json:"name"`
	Description        string         `db:"description" json:"description"`
	Price              float64        `db:"price" json:"price"`
	SalePrice          *float64       `db:"sale_price" json:"sale_price"`
	Brand              string         `db:"brand" json:"brand"`
	ModelCompatibility StringList     `db:"model_compatibility" json:"model_compatibility"`
	YearRangeStart     *int           `db:"year_range_start" json:"year_range_start"`
	YearRangeEnd       *int           `db:"year_range_end" json:"year_range_end"`
	Condition          Condition      `db:"condition" json:"condition"`
	SKU                string         `db:"sku" json:"sku"`
	StockQuantity      int            `db:"stock_quantity" json:"stock_quantity"`
	Specifications     SpecMap        `db:"specifications" json:"specifications"`
	Weight             *float64       `db:"weight" json:"weight"`
	Dimensions         NullDimensions `db:"dimensions" json:"dimensions"`
	WarrantyMonths     *int           `db:"warranty_months" json:"warranty_months"`
	Location           *string        `db:"location" json:"location,omitempty"`
	// LegacyImage is the single-image column products had before the
	// product_images table existed. Used as a display fallback only.
	LegacyImage *string `db:"image" json:"-"`
	IsActive    bool    `db:"is_active" json:"is_active"`

	// Joined columns, not on the products table.
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
	CategorySlug *string `db:"category_slug" json:"category_slug,omitempty"`
	VendorName   *string `db:"vendor_name" json:"vendor_name,omitempty"`
	Images       []ProductImage `db:"-" json:"images"`
}

// UnitPrice is the price a buyer pays right now: the sale price when one is
// set, else the list price.
func (p *Product) UnitPrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

type ProductImage struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"product_id" json:"-"`
	URL       string `db:"url" json:"url"`
	IsPrimary bool   `db:"is_primary" json:"is_primary"`
}

// DisplayImage picks the image to denormalize onto an order line: the primary
// image if one exists, else the first image, else the legacy column.
func (p *Product) DisplayImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	if p.LegacyImage != nil {
		return *p.LegacyImage
	}
	return ""
}
