package entities

// TransactionType represents the type of balance change
type TransactionType string

// All transaction types supported by the system
const (
	// Reward transactions
	TransactionTypeDailyReward TransactionType = "daily_reward"
	TransactionTypeWork        TransactionType = "work"
	TransactionTypeQuizPrize   TransactionType = "quiz_prize"

	// Gambling transactions
	TransactionTypeFlipWin  TransactionType = "flip_win"
	TransactionTypeFlipLoss TransactionType = "flip_loss"

	// Shop transactions
	TransactionTypePurchase TransactionType = "purchase"

	// Transfer transactions
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"

	// System transactions
	TransactionTypeAdminGrant TransactionType = "admin_grant"
)

// IsRewardType returns true if the transaction type represents an earned reward
func (tt TransactionType) IsRewardType() bool {
	return tt == TransactionTypeDailyReward ||
		tt == TransactionTypeWork ||
		tt == TransactionTypeQuizPrize
}

// IsGamblingType returns true if the transaction type is gambling-related
func (tt TransactionType) IsGamblingType() bool {
	return tt == TransactionTypeFlipWin || tt == TransactionTypeFlipLoss
}

// IsTransferType returns true if the transaction type represents a transfer
func (tt TransactionType) IsTransferType() bool {
	return tt == TransactionTypeTransferIn || tt == TransactionTypeTransferOut
}

// String returns the string representation of the transaction type
func (tt TransactionType) String() string {
	return string(tt)
}
