// Package betlog persists bet history and bankroll changes. The analysis
// pipelines only produce the numbers logged here; bet lifecycle (created
// pending, settled exactly once) is owned by this package.
package betlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"bet-advisor/internal/mathutil"
	"bet-advisor/internal/odds"
)

// Bet outcomes. A bet starts pending and transitions to exactly one of these.
const (
	StatusPending   = "pending"
	StatusWon       = "won"
	StatusLost      = "lost"
	StatusPush      = "push"
	StatusCancelled = "cancelled"
)

// Bet is one logged recommendation with the inputs that produced it.
type Bet struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Sport       string     `json:"sport"`
	Favorite    string     `json:"favorite"`
	Underdog    string     `json:"underdog"`
	Spread      float64    `json:"spread"`
	Pick        string     `json:"pick"`
	Odds        int        `json:"odds"`
	Stake       float64    `json:"stake"`
	Probability float64    `json:"probability"` // estimated cover probability for the pick, as a fraction
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
}

// Transaction is one bankroll change for a user.
type Transaction struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	BetID        string    `json:"bet_id"`
	Amount       float64   `json:"amount"` // signed; negative for stakes placed, positive for returns
	BalanceAfter float64   `json:"balance_after"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// DB handles bet and bankroll storage.
type DB struct {
	db *sql.DB
}

// Open creates or opens the bet log database.
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS bets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		sport TEXT NOT NULL,
		favorite TEXT NOT NULL,
		underdog TEXT NOT NULL,
		spread REAL NOT NULL,
		pick TEXT NOT NULL,
		odds INTEGER NOT NULL,
		stake REAL NOT NULL,
		probability REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		settled_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		bet_id TEXT,
		amount REAL NOT NULL,
		balance_after REAL NOT NULL,
		reason TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_bets_user ON bets(user_id);
	CREATE INDEX IF NOT EXISTS idx_bets_status ON bets(status);
	CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// AddBet records a new pending bet and returns its generated ID. A positive
// stake is debited from the user's bankroll in the same transaction as the
// bet row.
func (d *DB) AddBet(bet Bet) (string, error) {
	id := bet.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := d.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO bets (id, user_id, sport, favorite, underdog, spread, pick, odds, stake, probability, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, bet.UserID, bet.Sport, bet.Favorite, bet.Underdog, bet.Spread, bet.Pick, bet.Odds, bet.Stake, bet.Probability, StatusPending)
	if err != nil {
		return "", fmt.Errorf("inserting bet: %w", err)
	}
	if bet.Stake > 0 {
		if _, err := addTransaction(tx, bet.UserID, id, -bet.Stake, "stake"); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing bet: %w", err)
	}
	return id, nil
}

// GetBet retrieves a bet by ID; nil when absent.
func (d *DB) GetBet(id string) (*Bet, error) {
	row := d.db.QueryRow(`
		SELECT id, user_id, sport, favorite, underdog, spread, pick, odds, stake, probability, status, created_at, settled_at
		FROM bets WHERE id = ?
	`, id)

	var bet Bet
	var settledAt sql.NullTime
	err := row.Scan(&bet.ID, &bet.UserID, &bet.Sport, &bet.Favorite, &bet.Underdog,
		&bet.Spread, &bet.Pick, &bet.Odds, &bet.Stake, &bet.Probability, &bet.Status, &bet.CreatedAt, &settledAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning bet: %w", err)
	}
	if settledAt.Valid {
		bet.SettledAt = &settledAt.Time
	}
	return &bet, nil
}

// ListBets retrieves a user's bets, newest first.
func (d *DB) ListBets(userID string) ([]Bet, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, sport, favorite, underdog, spread, pick, odds, stake, probability, status, created_at, settled_at
		FROM bets WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying bets: %w", err)
	}
	defer rows.Close()

	var bets []Bet
	for rows.Next() {
		var bet Bet
		var settledAt sql.NullTime
		if err := rows.Scan(&bet.ID, &bet.UserID, &bet.Sport, &bet.Favorite, &bet.Underdog,
			&bet.Spread, &bet.Pick, &bet.Odds, &bet.Stake, &bet.Probability, &bet.Status, &bet.CreatedAt, &settledAt); err != nil {
			return nil, fmt.Errorf("scanning bet: %w", err)
		}
		if settledAt.Valid {
			bet.SettledAt = &settledAt.Time
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

// SettleBet transitions a pending bet to its final status. A bet settles
// exactly once: settling an already-settled or unknown bet is an error. The
// stake returns to the bankroll in the same transaction as the status flip:
// the full payout for a win, the stake alone for a push or cancellation,
// nothing for a loss.
func (d *DB) SettleBet(id, status string) error {
	switch status {
	case StatusWon, StatusLost, StatusPush, StatusCancelled:
	default:
		return fmt.Errorf("invalid settlement status %q", status)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var userID string
	var stake float64
	var american int
	err = tx.QueryRow(`
		SELECT user_id, stake, odds FROM bets WHERE id = ? AND status = ?
	`, id, StatusPending).Scan(&userID, &stake, &american)
	if err == sql.ErrNoRows {
		return fmt.Errorf("bet %s is not pending (unknown or already settled)", id)
	}
	if err != nil {
		return fmt.Errorf("settling bet: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE bets SET status = ?, settled_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ?
	`, status, id, StatusPending); err != nil {
		return fmt.Errorf("settling bet: %w", err)
	}

	if stake > 0 {
		ret, err := settlementReturn(stake, american, status)
		if err != nil {
			return err
		}
		if ret > 0 {
			if _, err := addTransaction(tx, userID, id, ret, "settle-"+status); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing settlement: %w", err)
	}
	return nil
}

// settlementReturn is the amount credited back to the bankroll on settlement.
func settlementReturn(stake float64, american int, status string) (float64, error) {
	switch status {
	case StatusWon:
		dec, err := odds.AmericanToDecimal(american)
		if err != nil {
			return 0, fmt.Errorf("computing payout: %w", err)
		}
		return mathutil.Round2(stake * dec), nil
	case StatusPush, StatusCancelled:
		return stake, nil
	}
	return 0, nil
}

// AddTransaction appends a bankroll change. BalanceAfter is computed from
// the user's previous balance.
func (d *DB) AddTransaction(userID, betID string, amount float64, reason string) (*Transaction, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := addTransaction(tx, userID, betID, amount, reason)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return t, nil
}

// Deposit credits funds to a user's bankroll.
func (d *DB) Deposit(userID string, amount float64) (*Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive, got %.2f", amount)
	}
	return d.AddTransaction(userID, "", amount, "deposit")
}

// addTransaction appends a bankroll change inside tx. The previous-balance
// read and the insert share the transaction so concurrent writers cannot
// interleave between them.
func addTransaction(tx *sql.Tx, userID, betID string, amount float64, reason string) (*Transaction, error) {
	var balance float64
	err := tx.QueryRow(`
		SELECT balance_after FROM transactions
		WHERE user_id = ?
		ORDER BY id DESC LIMIT 1
	`, userID).Scan(&balance)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("querying bankroll: %w", err)
	}
	after := mathutil.Round2(balance + amount)

	res, err := tx.Exec(`
		INSERT INTO transactions (user_id, bet_id, amount, balance_after, reason)
		VALUES (?, ?, ?, ?, ?)
	`, userID, betID, amount, after, reason)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}

	return &Transaction{
		ID:           id,
		UserID:       userID,
		BetID:        betID,
		Amount:       amount,
		BalanceAfter: after,
		Reason:       reason,
	}, nil
}

// Bankroll returns the user's current balance: the balance_after of their
// latest transaction, or zero for a user with no history.
func (d *DB) Bankroll(userID string) (float64, error) {
	row := d.db.QueryRow(`
		SELECT balance_after FROM transactions
		WHERE user_id = ?
		ORDER BY id DESC LIMIT 1
	`, userID)

	var balance float64
	err := row.Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying bankroll: %w", err)
	}
	return balance, nil
}

// ListTransactions retrieves a user's bankroll history, newest first.
func (d *DB) ListTransactions(userID string) ([]Transaction, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, COALESCE(bet_id, ''), amount, balance_after, reason, created_at
		FROM transactions WHERE user_id = ?
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.BetID, &t.Amount, &t.BalanceAfter, &t.Reason, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
