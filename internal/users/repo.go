package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListOptedIn(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listoptedin")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, delivery_opt_in
		FROM app_user
		WHERE delivery_opt_in AND phone <> ''
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list opted in users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.OptedIn); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

// FindByPhone expects a normalized (digits only) phone number.
func (r *Repo) FindByPhone(ctx context.Context, phone string) (*User, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.findbyphone")
	defer span.End()

	u := &User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, phone, delivery_opt_in
		FROM app_user
		WHERE regexp_replace(phone, '\D', '', 'g') = $1
		LIMIT 1
	`, phone).Scan(&u.ID, &u.Name, &u.Phone, &u.OptedIn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find user by phone: %w", err)
	}
	return u, nil
}
