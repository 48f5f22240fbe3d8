package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
)

const (
	findByCardNumberQuery = `SELECT id, username, pin_hash, card_number FROM users WHERE card_number = $1`
	findByIDQuery         = `SELECT id, username, pin_hash, card_number FROM users WHERE id = $1`
	createQuery           = `
		INSERT INTO users (username, pin_hash, card_number)
		VALUES ($1, $2, $3)
		RETURNING id
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByCardNumber(ctx context.Context, cardNumber string) (*domain.User, error) {
	return repo.findOne(ctx, findByCardNumberQuery, cardNumber)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, findByIDQuery, id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Username, &user.PinHash, &user.CardNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.QueryRow(ctx, createQuery, user.Username, user.PinHash, user.CardNumber).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
