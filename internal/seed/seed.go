// Package seed loads the demo cardholder used by the simulator UI.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
	"github.com/likhilliki/ATM-Simulator/internal/repo"
	"github.com/likhilliki/ATM-Simulator/internal/service/ledgerservice"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
)

const (
	DemoUsername = "demo_user"
	DemoCard     = "4111111111111234"
	DemoPin      = "1234"
)

const day = 24 * time.Hour

type entry struct {
	kind        domain.TransactionType
	amount      string
	description string
	age         time.Duration
}

var demoHistory = []entry{
	{domain.TransactionDeposit, "2450.00", "Salary Deposit", 15 * day},
	{domain.TransactionWithdrawal, "-200.00", "ATM Withdrawal", 12 * day},
	{domain.TransactionPayment, "-85.23", "Bill Payment - Electricity", 7 * day},
	{domain.TransactionDeposit, "650.00", "Deposit", 2 * day},
}

// Demo creates the demo user, account and history unless the demo card
// already exists. All rows are written in one transaction.
func Demo(ctx context.Context, repos *repo.Repositories, pins auth.HashServiceInterface, now time.Time) error {
	existing, err := repos.UserRepo.FindByCardNumber(ctx, DemoCard)
	if err != nil {
		return fmt.Errorf("can't look up demo card: %w", err)
	}
	if existing != nil {
		zap.L().Info("demo data already present, skipping seed")
		return nil
	}

	pinHash, err := pins.HashPin(DemoPin)
	if err != nil {
		return fmt.Errorf("can't hash demo PIN: %w", err)
	}

	return repos.TxManager.Begin(ctx, func(ctx context.Context) error {
		user, err := repos.UserRepo.Create(ctx, &domain.User{
			Username:   DemoUsername,
			PinHash:    pinHash,
			CardNumber: DemoCard,
		})
		if err != nil {
			return fmt.Errorf("can't create demo user: %w", err)
		}

		account, err := repos.AccountRepo.Create(ctx, &domain.Account{
			UserID:          user.ID,
			Balance:         decimal.RequireFromString("2547.63"),
			AvailableCredit: decimal.RequireFromString("5000.00"),
			WithdrawalLimit: decimal.RequireFromString("1000.00"),
			LastUpdated:     now,
		})
		if err != nil {
			return fmt.Errorf("can't create demo account: %w", err)
		}

		ids := ledgerservice.NewTrxIDGenerator()
		for _, e := range demoHistory {
			_, err := repos.TransactionRepo.Create(ctx, &domain.Transaction{
				AccountID:     account.ID,
				Type:          e.kind,
				Amount:        decimal.RequireFromString(e.amount),
				Description:   e.description,
				Timestamp:     now.Add(-e.age),
				TransactionID: ids.Next(),
			})
			if err != nil {
				return fmt.Errorf("can't create demo transaction: %w", err)
			}
		}

		zap.L().Info("demo data seeded", zap.Int("userID", user.ID), zap.String("card", user.MaskedCardNumber()))
		return nil
	})
}
