package domain

import "errors"

// Error message string constants, shared by services, handlers and tests
const (
	// User errors
	ErrMsgUserNotFound      = "User not found"
	ErrMsgUserAlreadyExists = "User already exists"

	// Balance errors
	ErrMsgInsufficientBalance = "Insufficient balance"
	ErrMsgInvalidAmount       = "Invalid amount"

	// Rolls errors
	ErrMsgInvalidColor      = "Invalid color"
	ErrMsgBettingClosed     = "Betting closed"
	ErrMsgBetAlreadyPlaced  = "Bet already placed"
	ErrMsgRoundNotAvailable = "Round not available"

	// Upgrade errors
	ErrMsgInvalidMultiplier = "Multiplier must be between 1.3 and 20"

	// Case errors
	ErrMsgUnknownCase      = "Unknown case"
	ErrMsgCasesLocked      = "Deposit at least 5 TON to unlock cases"
	ErrMsgFreeCaseCooldown = "Free case is not available yet"

	// Inventory errors
	ErrMsgItemNotFound = "Item not found"

	// Wallet errors
	ErrMsgDepositNotFound     = "Deposit not found"
	ErrMsgDepositNotPending   = "Deposit already processed"
	ErrMsgBelowMinWithdrawal  = "Minimum withdrawal is 10 TON"
	ErrMsgWalletRequired      = "Wallet address required"
	ErrMsgWithdrawalNotFound  = "Withdrawal not found"
	ErrMsgWithdrawalProcessed = "Withdrawal already processed"
	ErrMsgInvalidStars        = "Invalid stars amount"

	// Referral errors
	ErrMsgBelowMinReferral = "Minimum referral withdrawal is 3 TON"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors. Wrap with fmt.Errorf("%w: ...") for context.
var (
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists = errors.New(ErrMsgUserAlreadyExists)

	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	ErrInvalidColor      = errors.New(ErrMsgInvalidColor)
	ErrBettingClosed     = errors.New(ErrMsgBettingClosed)
	ErrBetAlreadyPlaced  = errors.New(ErrMsgBetAlreadyPlaced)
	ErrRoundNotAvailable = errors.New(ErrMsgRoundNotAvailable)

	ErrInvalidMultiplier = errors.New(ErrMsgInvalidMultiplier)

	ErrUnknownCase      = errors.New(ErrMsgUnknownCase)
	ErrCasesLocked      = errors.New(ErrMsgCasesLocked)
	ErrFreeCaseCooldown = errors.New(ErrMsgFreeCaseCooldown)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrDepositNotFound     = errors.New(ErrMsgDepositNotFound)
	ErrDepositNotPending   = errors.New(ErrMsgDepositNotPending)
	ErrBelowMinWithdrawal  = errors.New(ErrMsgBelowMinWithdrawal)
	ErrWalletRequired      = errors.New(ErrMsgWalletRequired)
	ErrWithdrawalNotFound  = errors.New(ErrMsgWithdrawalNotFound)
	ErrWithdrawalProcessed = errors.New(ErrMsgWithdrawalProcessed)
	ErrInvalidStars        = errors.New(ErrMsgInvalidStars)

	ErrBelowMinReferral = errors.New(ErrMsgBelowMinReferral)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
