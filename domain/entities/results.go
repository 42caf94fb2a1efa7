package entities

// PetBonus is one pet's contribution to a daily reward
type PetBonus struct {
	ItemName string
	Amount   int64
}

// DailyRewardResult is the outcome of a successful daily claim
type DailyRewardResult struct {
	BaseAmount  int64
	PetBonuses  []PetBonus
	TotalAmount int64
	NewBalance  int64
}

// BonusTotal returns the summed pet bonus portion of the reward
func (r *DailyRewardResult) BonusTotal() int64 {
	var total int64
	for _, bonus := range r.PetBonuses {
		total += bonus.Amount
	}
	return total
}

// FlipResult is the outcome of a coin flip wager
type FlipResult struct {
	Won           bool
	Stake         int64
	Refund        int64
	NewBalance    int64
	GuaranteedWin bool
	WinChance     int // percentage used for the roll
}

// WorkResult is the outcome of a work command
type WorkResult struct {
	Amount     int64
	NewBalance int64
}

// PurchaseResult is the outcome of a successful shop purchase
type PurchaseResult struct {
	Item       *ShopItem
	NewBalance int64
}

// TransferResult is the outcome of a successful transfer
type TransferResult struct {
	Amount             int64
	RecipientDiscordID int64
	SenderNewBalance   int64
}
