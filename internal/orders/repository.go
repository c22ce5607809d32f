package orders

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Repository хранит оформленные заказы.
type Repository interface {
	Save(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
}

// SQLRepository: database/sql поверх sqlite3 или postgres.
type SQLRepository struct {
	db     *sql.DB
	driver string
}

const schema = `CREATE TABLE IF NOT EXISTS orders (
	id          TEXT PRIMARY KEY,
	full_name   TEXT NOT NULL,
	first_name  TEXT NOT NULL,
	last_name   TEXT NOT NULL,
	phone       TEXT NOT NULL,
	address     TEXT NOT NULL,
	total_price TEXT NOT NULL,
	details     TEXT NOT NULL,
	created_at  TEXT NOT NULL
)`

// Open открывает базу и создаёт таблицу. driver: "sqlite3" | "postgres".
func Open(ctx context.Context, driver, dsn string) (*SQLRepository, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("orders: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("orders: open %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1) // sqlite: один писатель
	}
	r := &SQLRepository{db: db, driver: driver}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLRepository) migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("orders: migrate: %w", err)
	}
	return nil
}

func (r *SQLRepository) Close() error { return r.db.Close() }

func (r *SQLRepository) Save(ctx context.Context, o Order) error {
	details, err := json.Marshal(o.Result)
	if err != nil {
		return fmt.Errorf("orders: encode details: %w", err)
	}
	q := r.rebind(`INSERT INTO orders
		(id, full_name, first_name, last_name, phone, address, total_price, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = r.db.ExecContext(ctx, q,
		o.ID, o.Customer.FullName(), o.Customer.FirstName, o.Customer.LastName,
		o.Customer.Phone, o.Customer.Address, o.Total.String(), string(details),
		o.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("orders: insert %s: %w", o.ID, err)
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (Order, error) {
	q := r.rebind(`SELECT id, first_name, last_name, phone, address, total_price, details, created_at
		FROM orders WHERE id = ?`)
	var (
		o                       Order
		total, details, created string
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &o.Customer.FirstName, &o.Customer.LastName, &o.Customer.Phone,
		&o.Customer.Address, &total, &details, &created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("orders: select %s: %w", id, err)
	}
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return Order{}, fmt.Errorf("orders: total of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(details), &o.Result); err != nil {
		return Order{}, fmt.Errorf("orders: details of %s: %w", id, err)
	}
	if o.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Order{}, fmt.Errorf("orders: created_at of %s: %w", id, err)
	}
	return o, nil
}

// "?" → "$1, $2..." для postgres
func (r *SQLRepository) rebind(q string) string {
	if r.driver != "postgres" {
		return q
	}
	var b strings.Builder
	n := 0
	for _, ch := range q {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
