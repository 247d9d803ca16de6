package postgres

import (
	"context"

	"futuresbot/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	seq         BIGSERIAL PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	symbol      TEXT NOT NULL,
	side        TEXT NOT NULL,
	quantity    DOUBLE PRECISION NOT NULL,
	order_type  TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	user_id     TEXT NOT NULL,
	price       DOUBLE PRECISION,
	stop_price  DOUBLE PRECISION,
	limit_price DOUBLE PRECISION,
	lower_price DOUBLE PRECISION,
	upper_price DOUBLE PRECISION,
	duration    INTEGER,
	slices      INTEGER,
	grids       INTEGER,
	oco_group   DOUBLE PRECISION
);
CREATE INDEX IF NOT EXISTS orders_user_id_idx ON orders (user_id, seq);`

const columns = `id,symbol,side,quantity,order_type,status,created_at,user_id,price,stop_price,limit_price,lower_price,upper_price,duration,slices,grids,oco_group`

type OrderRepository struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Migrate creates the orders table when it does not exist yet.
func (r *OrderRepository) Migrate(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, schema); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) Insert(ctx context.Context, m *models.Order) (string, error) {
	row := *m
	row.ID = uuid.NewString()

	if _, err := r.conn.NamedExecContext(ctx, "INSERT INTO orders ("+columns+") VALUES (:id,:symbol,:side,:quantity,:order_type,:status,:created_at,:user_id,:price,:stop_price,:limit_price,:lower_price,:upper_price,:duration,:slices,:grids,:oco_group)", &row); err != nil {
		return "", err
	}

	return row.ID, nil
}

func (r *OrderRepository) ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error) {
	orders := []models.Order{}

	if err := r.conn.SelectContext(ctx, &orders, "SELECT "+columns+" FROM orders WHERE user_id = $1 ORDER BY seq LIMIT $2", owner, limit); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].CreatedAt = orders[i].CreatedAt.UTC()
	}

	return orders, nil
}
