package account

import (
	"time"

	"github.com/carson-networks/pix-ledger/internal/ledger"
	"github.com/carson-networks/pix-ledger/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        int64  `json:"id" doc:"Account ID"`
	Kind      int    `json:"kind" doc:"Account kind: 0=checking, 1=savings"`
	OwnerID   *int64 `json:"ownerId,omitempty" doc:"Owning person ID"`
	Balance   string `json:"balance" doc:"Balance with two decimal places"`
	CreatedAt string `json:"createdAt" doc:"Creation time, RFC 3339"`
}

func accountFromService(acc service.Account) Account {
	return Account{
		ID:        acc.ID,
		Kind:      int(acc.Kind),
		OwnerID:   acc.OwnerID,
		Balance:   acc.Balance.StringFixed(ledger.AmountScale),
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
	}
}
