package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a money movement.
type TransactionKind string

const (
	TxDeposit        TransactionKind = "deposit"
	TxWithdrawal     TransactionKind = "withdrawal"
	TxAdReward       TransactionKind = "ad_reward"
	TxReferralReward TransactionKind = "referral_reward"
	TxAdSpend        TransactionKind = "ad_spend"
)

// TransactionStatus is one-way: pending may become approved or rejected,
// and neither terminal state can be reopened.
type TransactionStatus string

const (
	TxPending  TransactionStatus = "pending"
	TxApproved TransactionStatus = "approved"
	TxRejected TransactionStatus = "rejected"
)

// Transaction is a signed money movement awaiting admin review.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	Kind      TransactionKind
	Status    TransactionStatus
	CreatedAt time.Time
}
