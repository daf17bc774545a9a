// Package ledgerrepo provides persistence for the platform ledger.
// The ledger is a single row created lazily on first access.
package ledgerrepo

import (
	"marketplace/internal/core/domain/model/ledger"
)

// ledgerRowID is the fixed primary key of the singleton ledger row.
const ledgerRowID = 1

// LedgerDTO represents the database structure for the platform ledger.
type LedgerDTO struct {
	ID     uint64  `gorm:"primaryKey;autoIncrement:false"`
	Profit float64 `gorm:"not null"`
}

// TableName specifies the database table name for the ledger.
func (LedgerDTO) TableName() string {
	return "ledgers"
}

func fromDomain(aggregate *ledger.Ledger) LedgerDTO {
	return LedgerDTO{
		ID:     ledgerRowID,
		Profit: aggregate.Profit(),
	}
}

func toDomain(dto LedgerDTO) (*ledger.Ledger, error) {
	return ledger.RestoreLedger(dto.Profit)
}
