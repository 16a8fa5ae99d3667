package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"club-management-platform/internal/models"
)

// ProductRepository handles product catalog data operations
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product
func (r *ProductRepository) Create(product *models.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO products (id, name, category, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	_, err := r.db.Exec(query, product.ID, product.Name, product.Category, product.Price, product.Stock, now, now)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	query := `
		SELECT id, name, category, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1`

	product := &models.Product{}
	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Stock,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// List retrieves all products ordered by name
func (r *ProductRepository) List() ([]*models.Product, error) {
	query := `
		SELECT id, name, category, price, stock, created_at, updated_at
		FROM products
		ORDER BY name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Stock,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// UpdateStock sets the stock of a product (administrative edit)
func (r *ProductRepository) UpdateStock(id string, stock int) error {
	if stock < 0 {
		return &models.ValidationError{Field: "stock", Message: "stock cannot be negative"}
	}

	query := `UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(query, id, stock, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrProductNotFound
	}

	return nil
}
