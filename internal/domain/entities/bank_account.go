package entities

import (
	"errors"
	"fmt"
	"insurance/internal/domain/validation"
	"sync"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// BankAccount guards its balance: it can only change through Deposit and
// Withdraw, and it can never go negative.
type BankAccount struct {
	mu      sync.Mutex
	balance float64
}

func NewBankAccount(opening float64) (*BankAccount, error) {
	if opening < 0 {
		return nil, validation.New("balance", "gte=0", opening)
	}
	return &BankAccount{balance: opening}, nil
}

func (a *BankAccount) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance += amount
	return nil
}

func (a *BankAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return fmt.Errorf("%w: can withdraw at most %.2f", ErrInsufficientFunds, a.balance)
	}
	a.balance -= amount
	return nil
}

func (a *BankAccount) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}
