package interfaces

import (
	"context"
	"freegym_settlement/internal/domain/entities"
)

// ILedgerRepository abstracts the append-only loyalty points and cash
// register tables. There are no update or delete operations; a wrong entry
// is corrected with a compensating entry.

type ILedgerRepository interface {
	AppendKettlebellPoints(ctx context.Context, entry entities.KettlebellPointEntry) (entities.KettlebellPointEntry, error)
	AppendCashTransaction(ctx context.Context, entry entities.CashTransactionEntry) (entities.CashTransactionEntry, error)
}
