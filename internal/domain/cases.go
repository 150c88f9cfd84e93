package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseType identifies a case in the catalog
type CaseType string

const (
	CaseFree    CaseType = "free"
	CaseRegular CaseType = "regular"
	CaseSnoop   CaseType = "snoop"
)

// RewardKind says what a reward does when won
type RewardKind string

const (
	RewardTON     RewardKind = "ton"
	RewardNFT     RewardKind = "nft"
	RewardNothing RewardKind = "nothing"
)

// MinCaseDeposit is the lifetime deposit needed to open cases
var MinCaseDeposit = decimal.NewFromInt(5)

// Reward is one entry of a case table. Chance is a relative weight.
type Reward struct {
	Name   string          `json:"name"`
	Image  string          `json:"image"`
	Value  decimal.Decimal `json:"value"`
	Kind   RewardKind      `json:"kind"`
	Chance float64         `json:"chance,omitempty"`
}

// Case is a purchasable case and its reward table
type Case struct {
	Type    CaseType        `json:"type"`
	Name    string          `json:"name"`
	Cost    decimal.Decimal `json:"cost"`
	Rewards []Reward        `json:"rewards"`
}

// IsFree reports whether the case is the periodic free case
func (c Case) IsFree() bool {
	return c.Type == CaseFree
}

// OpenCaseRequest opens one case
type OpenCaseRequest struct {
	TelegramID int64    `json:"telegram_id" validate:"required"`
	CaseType   CaseType `json:"case_type" validate:"required"`
}

// CaseResult is the outcome of an opened case
type CaseResult struct {
	Reward      Reward          `json:"reward"`
	NewBalance  decimal.Decimal `json:"new_balance"`
	InventoryID *int64          `json:"inventory_id,omitempty"`
}

// FreeCaseStatus reports when the free case unlocks
type FreeCaseStatus struct {
	Available        bool `json:"available"`
	RemainingSeconds int  `json:"remaining_seconds"`
}

// NewFreeCaseStatus builds a status from the remaining cooldown
func NewFreeCaseStatus(remaining time.Duration) FreeCaseStatus {
	if remaining <= 0 {
		return FreeCaseStatus{Available: true}
	}
	secs := int(remaining.Seconds())
	if remaining > time.Duration(secs)*time.Second {
		secs++
	}
	return FreeCaseStatus{Available: false, RemainingSeconds: secs}
}

// CaseAccess answers whether paid cases are unlocked
type CaseAccess struct {
	Access  bool   `json:"access"`
	Message string `json:"message,omitempty"`
}

// CaseAccessRequest asks whether paid cases are unlocked
type CaseAccessRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
}
