package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wallet transaction types.
const (
	TxnTypeTopUp = "topup"
	TxnTypeDebit = "debit"
)

// WalletTransaction records one credit or debit on a user's wallet.
// PaymentReference is the gateway id of a top-up and is checked to keep
// callback retries from crediting twice.
type WalletTransaction struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	Amount           float64            `bson:"amount" json:"amount"`
	Type             string             `bson:"type" json:"type"`
	Description      string             `bson:"description" json:"description"`
	PaymentReference string             `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
