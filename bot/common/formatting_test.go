package common

import (
	"strings"
	"testing"
	"time"

	"tokenbot/domain/entities"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Zero", 0, "now"},
		{"Negative", -time.Minute, "now"},
		{"Seconds only", 42 * time.Second, "42s"},
		{"Minutes and seconds", 5*time.Minute + 30*time.Second, "5m 30s"},
		{"Hours and minutes", 2*time.Hour + 15*time.Minute, "2h 15m"},
		{"Hours drop seconds", 1*time.Hour + 59*time.Second, "1h 0m"},
		{"Just under a day", 23*time.Hour + 59*time.Minute, "23h 59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatDuration(tt.duration)
			if result != tt.expected {
				t.Errorf("FormatDuration(%v) = %s; want %s", tt.duration, result, tt.expected)
			}
		})
	}
}

func TestFormatDailyResult(t *testing.T) {
	result := FormatDailyResult(&entities.DailyRewardResult{
		BaseAmount: 3200,
		PetBonuses: []entities.PetBonus{
			{ItemName: "Golden Dragon", Amount: 50000},
		},
		TotalAmount: 53200,
		NewBalance:  60000,
	})

	for _, want := range []string{"3,200 T", "Golden Dragon", "50,000 T", "60,000 T"} {
		if !strings.Contains(result, want) {
			t.Errorf("FormatDailyResult() = %q; missing %q", result, want)
		}
	}
}

func TestFormatFlipResult(t *testing.T) {
	t.Run("Loss with refund mentions the refund", func(t *testing.T) {
		result := FormatFlipResult(&entities.FlipResult{
			Won:        false,
			Stake:      400,
			Refund:     40,
			NewBalance: 640,
		})
		if !strings.Contains(result, "40 T") || !strings.Contains(result, "refunded") {
			t.Errorf("FormatFlipResult() = %q; expected refund mention", result)
		}
	})

	t.Run("Plain loss omits refund", func(t *testing.T) {
		result := FormatFlipResult(&entities.FlipResult{
			Won:        false,
			Stake:      400,
			NewBalance: 600,
		})
		if strings.Contains(result, "refunded") {
			t.Errorf("FormatFlipResult() = %q; unexpected refund mention", result)
		}
	})

	t.Run("Guaranteed win mentions the artifact", func(t *testing.T) {
		result := FormatFlipResult(&entities.FlipResult{
			Won:           true,
			Stake:         1000,
			GuaranteedWin: true,
			NewBalance:    2000,
		})
		if !strings.Contains(result, "artifact") {
			t.Errorf("FormatFlipResult() = %q; expected artifact mention", result)
		}
	})
}

func TestFormatInventory(t *testing.T) {
	t.Run("Empty inventory", func(t *testing.T) {
		result := FormatInventory(nil)
		if !strings.Contains(result, "empty") {
			t.Errorf("FormatInventory(nil) = %q; expected empty notice", result)
		}
	})

	t.Run("Groups by category", func(t *testing.T) {
		result := FormatInventory([]*entities.InventoryItem{
			{Category: entities.CategoryPets, ItemName: "Fortune Cat", Quantity: 1},
			{Category: entities.CategoryArtifacts, ItemName: "Lucky Coin", Quantity: 2},
		})
		for _, want := range []string{"Pets", "Artifacts", "Fortune Cat", "Lucky Coin"} {
			if !strings.Contains(result, want) {
				t.Errorf("FormatInventory() = %q; missing %q", result, want)
			}
		}
	})
}

func TestFormatLeaderboard(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		result := FormatLeaderboard(nil)
		if !strings.Contains(result, "empty") {
			t.Errorf("FormatLeaderboard(nil) = %q; expected empty notice", result)
		}
	})

	t.Run("Medals then numbers", func(t *testing.T) {
		accounts := []*entities.Account{
			{Username: "first", Balance: 4000},
			{Username: "second", Balance: 3000},
			{Username: "third", Balance: 2000},
			{Username: "fourth", Balance: 1000},
		}
		result := FormatLeaderboard(accounts)
		for _, want := range []string{"🥇", "🥈", "🥉", "4.", "fourth", "4,000 T"} {
			if !strings.Contains(result, want) {
				t.Errorf("FormatLeaderboard() = %q; missing %q", result, want)
			}
		}
	})
}
