package dto

// MaxPerPage caps list page sizes.
const MaxPerPage = 50

const DefaultPerPage = 20

type ProductFilters struct {
	Search       string   `json:"search"`
	CategorySlug string   `json:"category"`
	Brand        string   `json:"brand"`
	Condition    string   `json:"condition"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	Location     string   `json:"location"`
	Sort         string   `json:"sort"` // price_asc, price_desc, newest
	Page         int      `json:"page"`
	PerPage      int      `json:"per_page"`
}

// Normalize clamps paging to sane bounds. A per_page of zero or less means
// unset and gets the default page size, not a one-item page.
func (f *ProductFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
}
