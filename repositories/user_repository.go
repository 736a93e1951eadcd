package repositories

import (
	"context"
	"errors"
	"time"

	"medicine-shop/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, name, email, password, role,
	COALESCE(street, ''), COALESCE(city, ''), COALESCE(state, ''),
	COALESCE(zip_code, ''), COALESCE(country, ''), created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
		&u.Address.Street, &u.Address.City, &u.Address.State,
		&u.Address.ZipCode, &u.Address.Country, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(models.DB.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return scanUser(models.DB.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := models.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	return models.DB.QueryRow(ctx,
		`INSERT INTO users (name, email, password, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.Password, user.Role, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) UpdateDetails(ctx context.Context, user *models.User) error {
	tag, err := models.DB.Exec(ctx,
		`UPDATE users SET name=$1, email=$2, street=$3, city=$4, state=$5,
			zip_code=$6, country=$7, updated_at=$8
		WHERE id=$9`,
		user.Name, user.Email, user.Address.Street, user.Address.City, user.Address.State,
		user.Address.ZipCode, user.Address.Country, time.Now(), user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
