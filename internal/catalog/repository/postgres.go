package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/catalog"
	"github.com/partsbaypro/baypro-api/internal/catalog/dto"
	"github.com/partsbaypro/baypro-api/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const productColumns = `
    p.*, c.name AS category_name, c.slug AS category_slug, u.name AS vendor_name
`

const productJoins = `
    FROM products p
    LEFT JOIN categories c ON p.category_id = c.id
    LEFT JOIN users u ON p.vendor_id = u.id
`

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conditions := []string{"p.is_active = TRUE"}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "(p.name ILIKE :search OR p.description ILIKE :search OR p.brand ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	if f.CategorySlug != "" {
		conditions = append(conditions, "c.slug = :category_slug")
		args["category_slug"] = f.CategorySlug
	}
	if f.Brand != "" {
		conditions = append(conditions, "p.brand = :brand")
		args["brand"] = f.Brand
	}
	if f.Condition != "" && f.Condition != "all" {
		conditions = append(conditions, "p.condition = :condition")
		args["condition"] = f.Condition
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "COALESCE(p.sale_price, p.price) >= :min_price")
		args["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "COALESCE(p.sale_price, p.price) <= :max_price")
		args["max_price"] = *f.MaxPrice
	}
	if f.Location != "" {
		conditions = append(conditions, "p.location = :location")
		args["location"] = f.Location
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	// Whitelisted sort expressions only; anything else sorts by newest.
	orderBy := "p.created_at DESC"
	switch f.Sort {
	case "price_asc":
		orderBy = "COALESCE(p.sale_price, p.price) ASC"
	case "price_desc":
		orderBy = "COALESCE(p.sale_price, p.price) DESC"
	case "newest":
		orderBy = "p.created_at DESC"
	}

	countQuery := "SELECT count(*)" + productJoins + whereClause
	var count int
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count products")
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, errors.Wrap(err, "scan product count")
		}
	}

	offset := (f.Page - 1) * f.PerPage
	query := fmt.Sprintf("SELECT %s %s %s ORDER BY %s LIMIT %d OFFSET %d",
		productColumns, productJoins, whereClause, orderBy, f.PerPage, offset)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "prepare product list")
	}
	defer nstmt.Close()

	products := []model.Product{}
	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, errors.Wrap(err, "select products")
	}

	return products, count, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	query := "SELECT " + productColumns + productJoins + " WHERE p.id = $1"
	var p model.Product
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find product")
	}
	return &p, nil
}

func (r *PGRepository) ImagesFor(ctx context.Context, productIDs []int64) (map[int64][]model.ProductImage, error) {
	result := map[int64][]model.ProductImage{}
	if len(productIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, product_id, url, is_primary FROM product_images WHERE product_id IN (?) ORDER BY is_primary DESC, id ASC`,
		productIDs,
	)
	if err != nil {
		return nil, errors.Wrap(err, "build image query")
	}
	query = r.DB.Rebind(query)

	var images []model.ProductImage
	if err := r.DB.SelectContext(ctx, &images, query, args...); err != nil {
		return nil, errors.Wrap(err, "select product images")
	}

	for _, img := range images {
		result[img.ProductID] = append(result[img.ProductID], img)
	}
	return result, nil
}

func (r *PGRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `
        SELECT c.id, c.name, c.slug, c.parent_id, c.image, COUNT(p.id) AS product_count
        FROM categories c
        LEFT JOIN products p ON c.id = p.category_id AND p.is_active = TRUE
        GROUP BY c.id
        ORDER BY c.name ASC
    `
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (r *PGRepository) FindByVendor(ctx context.Context, vendorID int64) ([]model.Product, error) {
	products := []model.Product{}
	query := "SELECT " + productColumns + productJoins + " WHERE p.vendor_id = $1 ORDER BY p.created_at DESC"
	if err := r.DB.SelectContext(ctx, &products, query, vendorID); err != nil {
		return nil, errors.Wrap(err, "list vendor products")
	}
	return products, nil
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product, imageURLs []string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin create product")
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (
            vendor_id, category_id, name, description, price, sale_price, brand,
            model_compatibility, year_range_start, year_range_end, condition, sku,
            stock_quantity, specifications, weight, dimensions, warranty_months,
            location, is_active, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, TRUE, $19, $20)
        RETURNING id
    `
	err = tx.QueryRowxContext(ctx, query,
		p.VendorID, p.CategoryID, p.Name, p.Description, p.Price, p.SalePrice, p.Brand,
		p.ModelCompatibility, p.YearRangeStart, p.YearRangeEnd, p.Condition, p.SKU,
		p.StockQuantity, p.Specifications, p.Weight, p.Dimensions, p.WarrantyMonths,
		p.Location, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return errors.Wrap(err, "insert product")
	}

	// First image becomes primary, matching the upload convention.
	for i, url := range imageURLs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_images (product_id, url, is_primary) VALUES ($1, $2, $3)`,
			p.ID, url, i == 0,
		)
		if err != nil {
			return errors.Wrap(err, "insert product image")
		}
	}

	return errors.Wrap(tx.Commit(), "commit create product")
}

func (r *PGRepository) Update(ctx context.Context, vendorID, id int64, input *dto.UpdateProductInput) error {
	sets := []string{"updated_at = NOW()"}
	args := map[string]interface{}{"id": id, "vendor_id": vendorID}

	set := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
		args[col] = val
	}

	if input.Name != nil {
		set("name", *input.Name)
	}
	if input.Description != nil {
		set("description", *input.Description)
	}
	if input.Price != nil {
		set("price", *input.Price)
	}
	if input.SalePrice != nil {
		set("sale_price", *input.SalePrice)
	}
	if input.CategoryID != nil {
		set("category_id", *input.CategoryID)
	}
	if input.Brand != nil {
		set("brand", *input.Brand)
	}
	if input.ModelCompatibility != nil {
		set("model_compatibility", model.StringList(input.ModelCompatibility))
	}
	if input.Condition != nil {
		set("condition", *input.Condition)
	}
	if input.SKU != nil {
		set("sku", *input.SKU)
	}
	if input.StockQuantity != nil {
		set("stock_quantity", *input.StockQuantity)
	}
	if input.Specifications != nil {
		set("specifications", model.SpecMap(input.Specifications))
	}
	if input.Weight != nil {
		set("weight", *input.Weight)
	}
	if input.Dimensions != nil {
		set("dimensions", model.NullDimensions{Dimensions: &model.Dimensions{
			Length: input.Dimensions.Length,
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
			Unit:   input.Dimensions.Unit,
		}})
	}
	if input.WarrantyMonths != nil {
		set("warranty_months", *input.WarrantyMonths)
	}

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = :id AND vendor_id = :vendor_id",
		strings.Join(sets, ", "),
	)
	res, err := r.DB.NamedExecContext(ctx, query, args)
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, vendorID, id int64) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND vendor_id = $2`, id, vendorID)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
