package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/aevon-lab/salescope/internal/core/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:                db,
		stmtListProducts:  mustPrepareStmt(t, db, mock, queryListProducts),
		stmtGetProduct:    mustPrepareStmt(t, db, mock, queryGetProduct),
		stmtInsertProduct: mustPrepareStmt(t, db, mock, queryInsertProduct),
		stmtUpdateStock:   mustPrepareStmt(t, db, mock, queryUpdateStock),
		stmtListSales:     mustPrepareStmt(t, db, mock, queryListSales),
		nowFn:             func() time.Time { return fixedNow },
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)
	return stmt
}

func productRowColumns() []string {
	return []string{"id", "name", "category", "price", "stock", "description", "low_stock_threshold"}
}

func saleRowColumns() []string {
	return []string{"id", "product_id", "product_name", "category", "sale_date", "quantity", "revenue"}
}

func TestAdapter_ListProducts(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	rows := sqlmock.NewRows(productRowColumns()).
		AddRow(1, "Laptop", "Electronics", "999.99", 50, "High-performance laptop", 10).
		AddRow(2, "Desk Chair", "Furniture", "199.5", 5, "", 10)
	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).WillReturnRows(rows)

	products, err := adapter.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.True(t, decimal.RequireFromString("999.99").Equal(products[0].Price))
	assert.Equal(t, 50, products[0].Stock)
	assert.Equal(t, 10, products[0].LowStockThreshold)

	assert.Equal(t, "Furniture", products[1].Category)
	assert.True(t, products[1].IsLowStock())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListProducts_Empty(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).
		WillReturnRows(sqlmock.NewRows(productRowColumns()))

	products, err := adapter.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListProducts_QueryError(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).
		WillReturnError(errors.New("connection reset"))

	_, err := adapter.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		rows := sqlmock.NewRows(productRowColumns()).
			AddRow(3, "Headphones", "Electronics", "149.99", 75, "", 10)
		mock.ExpectQuery(regexp.QuoteMeta(queryGetProduct)).WithArgs(3).WillReturnRows(rows)

		p, err := adapter.GetProduct(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Headphones", p.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryGetProduct)).WithArgs(99).
			WillReturnRows(sqlmock.NewRows(productRowColumns()))

		_, err := adapter.GetProduct(context.Background(), 99)
		assert.ErrorIs(t, err, storage.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdapter_CreateProduct(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	p := &sales.Product{
		Name:              "Desk Lamp",
		Category:          "Home",
		Price:             decimal.RequireFromString("39.99"),
		Stock:             20,
		LowStockThreshold: 5,
	}

	mock.ExpectQuery(regexp.QuoteMeta(queryInsertProduct)).
		WithArgs("Desk Lamp", "Home", sqlmock.AnyArg(), 20, "", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	require.NoError(t, adapter.CreateProduct(context.Background(), p))
	assert.Equal(t, 11, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_UpdateStock(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(queryUpdateStock)).
			WithArgs(2, 42, fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, adapter.UpdateStock(context.Background(), 2, 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(queryUpdateStock)).
			WithArgs(99, 1, fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.UpdateStock(context.Background(), 99, 1)
		assert.ErrorIs(t, err, storage.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdapter_SeedProducts(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	products := []sales.Product{
		{ID: 1, Name: "Laptop", Category: "Electronics", Price: decimal.NewFromInt(999), Stock: 50, LowStockThreshold: 10},
		{ID: 2, Name: "Smartphone", Category: "Electronics", Price: decimal.NewFromInt(699), Stock: 100, LowStockThreshold: 10},
	}

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta(querySeedProduct))
	mock.ExpectExec(regexp.QuoteMeta(querySeedProduct)).
		WithArgs(1, "Laptop", "Electronics", sqlmock.AnyArg(), 50, "", 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(querySeedProduct)).
		WithArgs(2, "Smartphone", "Electronics", sqlmock.AnyArg(), 100, "", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(queryResetProductSequence)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, adapter.SeedProducts(context.Background(), products))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListSales(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(saleRowColumns()).
		AddRow("8c7a1f9e-0000-5000-8000-000000000001", 1, "Laptop", "Electronics", day, 2, "1999.98").
		AddRow("8c7a1f9e-0000-5000-8000-000000000002", 4, "Coffee Maker", "Appliances", day, 1, "79.99")
	mock.ExpectQuery(regexp.QuoteMeta(queryListSales)).WillReturnRows(rows)

	records, err := adapter.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Laptop", records[0].ProductName)
	assert.Equal(t, int64(2), records[0].Quantity)
	assert.True(t, day.Equal(records[0].Date))
	assert.Equal(t, "1999.98", records[0].Revenue.StringFixed(2))
	assert.Equal(t, 4, records[1].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ReplaceSales(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	tokyo := time.FixedZone("JST", 9*60*60)
	records := []sales.SaleRecord{
		{
			ID:          "a",
			ProductID:   1,
			ProductName: "Laptop",
			Category:    "Electronics",
			Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, tokyo),
			Quantity:    2,
			Revenue:     decimal.RequireFromString("1999.98"),
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryDeleteSales)).WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectPrepare(regexp.QuoteMeta(queryInsertSale))
	// The calendar day is written as-is even though it is 2024-01-14 in UTC.
	mock.ExpectExec(regexp.QuoteMeta(queryInsertSale)).
		WithArgs("a", 1, "Laptop", "Electronics", "2024-01-15", int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, adapter.ReplaceSales(context.Background(), records))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ReplaceSales_RollsBackOnInsertError(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	records := []sales.SaleRecord{
		{ID: "a", ProductID: 1, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Quantity: 1, Revenue: decimal.NewFromInt(1)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryDeleteSales)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(regexp.QuoteMeta(queryInsertSale))
	mock.ExpectExec(regexp.QuoteMeta(queryInsertSale)).WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	err := adapter.ReplaceSales(context.Background(), records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replace sales: insert a")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	adapter := &Adapter{db: db}
	mock.ExpectPing()

	assert.NoError(t, adapter.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-01-15", saleDate(time.Date(2024, 1, 15, 0, 0, 0, 0, tokyo)))
	assert.Equal(t, "2023-12-31", saleDate(time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestNewAdapter_PreparesStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	for _, q := range []string{queryListProducts, queryGetProduct, queryInsertProduct, queryUpdateStock, queryListSales} {
		mock.ExpectPrepare(regexp.QuoteMeta(q))
	}

	adapter, err := NewAdapter(db)
	require.NoError(t, err)
	assert.NotNil(t, adapter.stmtListSales)
	assert.Same(t, db, adapter.DB())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAdapter_MissingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectClose()

	_, err = NewAdapter(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you run migrations?")
	assert.NoError(t, mock.ExpectationsWereMet())
}
