package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, unit_id, name, quantity, sold_quantity, weight, volume, category,
	purchase_price, selling_price, manufacturer, unit_gain, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const insertProduct = `
	INSERT INTO products (` + productColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func insertArgs(p *entity.Product) []any {
	return []any{
		p.ID, p.UnitID, p.Name, p.Quantity, p.SoldQuantity, p.Weight, p.Volume, p.Category,
		p.PurchasePrice, p.SellingPrice, p.Manufacturer, p.UnitGain, p.CreatedAt, p.UpdatedAt,
	}
}

// Create persiste un nuevo producto en su unidad.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.q.Exec(ctx, insertProduct, insertArgs(product)...); err != nil {
		return mapWriteError("insert product", err)
	}
	return nil
}

// CreateMany inserta varios productos en un batch. Si alguno falla no queda ninguno:
// el caller lo ejecuta dentro de TxRunner cuando necesita atomicidad con otras escrituras.
func (r *ProductRepo) CreateMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, insertArgs(p))
	}
	// CopyFrom no está en Querier; un INSERT multi-fila es una sola sentencia y por lo tanto atómico.
	var sb strings.Builder
	sb.WriteString(`INSERT INTO products (` + productColumns + `) VALUES `)
	args := make([]any, 0, len(rows)*14)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", len(args)+j+1)
		}
		sb.WriteString(")")
		args = append(args, row...)
	}
	if _, err := r.q.Exec(ctx, sb.String(), args...); err != nil {
		return mapWriteError("insert products", err)
	}
	return nil
}

// Get obtiene un producto por id dentro de una unidad, o la primera fila con ese id si unitID es vacío.
func (r *ProductRepo) Get(ctx context.Context, id, unitID string) (*entity.Product, error) {
	var row pgx.Row
	if unitID == "" {
		row = r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 ORDER BY unit_id LIMIT 1`, id)
	} else {
		row = r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND unit_id = $2`, id, unitID)
	}
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos de una unidad (o de todas) con paginación.
func (r *ProductRepo) List(ctx context.Context, unitID string, limit, offset int) ([]*entity.Product, error) {
	return r.Search(ctx, repository.ProductFilter{UnitID: unitID, Limit: limit, Offset: offset})
}

// Search aplica los filtros presentes y el orden pedido. Sin OrderField el orden es (unit_id, id).
func (r *ProductRepo) Search(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE TRUE`
	args := []any{}
	pos := 1
	if f.Name != "" {
		query += fmt.Sprintf(" AND name = $%d", pos)
		args = append(args, f.Name)
		pos++
	}
	if f.ID != "" {
		query += fmt.Sprintf(" AND id = $%d", pos)
		args = append(args, f.ID)
		pos++
	}
	if f.UnitID != "" {
		query += fmt.Sprintf(" AND unit_id = $%d", pos)
		args = append(args, f.UnitID)
		pos++
	}
	if f.MinQuantity != nil {
		query += fmt.Sprintf(" AND quantity >= $%d", pos)
		args = append(args, *f.MinQuantity)
		pos++
	}
	if f.MaxQuantity != nil {
		query += fmt.Sprintf(" AND quantity <= $%d", pos)
		args = append(args, *f.MaxQuantity)
		pos++
	}

	// La columna de orden sale de una lista cerrada, nunca del input.
	direction := "ASC"
	if f.Descending {
		direction = "DESC"
	}
	switch f.OrderField {
	case repository.OrderByName:
		query += " ORDER BY name " + direction + ", unit_id, id"
	case repository.OrderByQuantity:
		query += " ORDER BY quantity " + direction + ", unit_id, id"
	default:
		query += " ORDER BY unit_id, id"
	}
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UsedVolume suma quantity*volume de la unidad.
func (r *ProductRepo) UsedVolume(ctx context.Context, unitID string) (decimal.Decimal, error) {
	var used decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity * volume), 0) FROM products WHERE unit_id = $1`, unitID,
	).Scan(&used)
	if err != nil {
		return decimal.Zero, fmt.Errorf("used volume: %w", err)
	}
	return used, nil
}

// Sell hace la venta con una sola sentencia condicional: si quantity < n no se toca la fila.
func (r *ProductRepo) Sell(ctx context.Context, id, unitID string, n int, profit decimal.Decimal) (*entity.Product, error) {
	query := `
		UPDATE products
		SET quantity = quantity - $3, sold_quantity = sold_quantity + $3, unit_gain = unit_gain + $4, updated_at = $5
		WHERE id = $1 AND unit_id = $2 AND quantity >= $3
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, unitID, n, profit, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sell product: %w", err)
	}
	return p, nil
}

// Restock suma stock y descuenta el costo de unit_gain.
func (r *ProductRepo) Restock(ctx context.Context, id, unitID string, n int, cost decimal.Decimal) (*entity.Product, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $3, unit_gain = unit_gain - $4, updated_at = $5
		WHERE id = $1 AND unit_id = $2
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, unitID, n, cost, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restock product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos descriptivos. No toca quantity, sold_quantity ni unit_gain.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, weight = $4, volume = $5, category = $6, purchase_price = $7,
		       selling_price = $8, manufacturer = $9, updated_at = $10
		WHERE id = $1 AND unit_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.UnitID, product.Name, product.Weight, product.Volume, product.Category,
		product.PurchasePrice, product.SellingPrice, product.Manufacturer, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina el producto de la unidad.
func (r *ProductRepo) Delete(ctx context.Context, id, unitID string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND unit_id = $2`, id, unitID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.UnitID, &p.Name, &p.Quantity, &p.SoldQuantity, &p.Weight, &p.Volume,
		&p.Category, &p.PurchasePrice, &p.SellingPrice, &p.Manufacturer, &p.UnitGain,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrUnitNotFound
	case isCheckViolation(err):
		return domain.ErrInvalidInput
	}
	return fmt.Errorf("%s: %w", op, err)
}
