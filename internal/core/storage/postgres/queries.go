package postgres

// SQL queries for product and sales storage.

const (
	queryListProducts = `
		SELECT id, name, category, price, stock, description, low_stock_threshold
		FROM products
		ORDER BY id ASC
	`

	queryGetProduct = `
		SELECT id, name, category, price, stock, description, low_stock_threshold
		FROM products
		WHERE id = $1
	`

	// queryInsertProduct lets the SERIAL column assign the next ID.
	queryInsertProduct = `
		INSERT INTO products (name, category, price, stock, description, low_stock_threshold)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	// querySeedProduct keeps existing rows untouched so restarts do not reset stock.
	querySeedProduct = `
		INSERT INTO products (id, name, category, price, stock, description, low_stock_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	// queryResetProductSequence moves the SERIAL past explicitly seeded IDs.
	queryResetProductSequence = `
		SELECT setval(
			pg_get_serial_sequence('products', 'id'),
			COALESCE((SELECT MAX(id) FROM products), 0) + 1,
			false
		)
	`

	queryUpdateStock = `
		UPDATE products
		SET stock = $2, updated_at = $3
		WHERE id = $1
	`

	queryListSales = `
		SELECT id, product_id, product_name, category, sale_date, quantity, revenue
		FROM sales
		ORDER BY sale_date ASC, product_id ASC
	`

	queryDeleteSales = `DELETE FROM sales`

	queryInsertSale = `
		INSERT INTO sales (id, product_id, product_name, category, sale_date, quantity, revenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
)
