package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/accounting"
	"github.com/google/uuid"
)

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// newTransaction prepares a VALIDATED ledger record. Dates default to now.
func newTransaction(kind domain.TransactionType, txn domain.Transaction, audit domain.AuditFields) domain.Transaction {
	txn.TransactionID = uuid.NewString()
	txn.Type = kind
	txn.Status = domain.TxValidated
	if txn.Date.IsZero() {
		txn.Date = audit.CreatedAt
	}
	txn.AuditFields = audit
	return txn
}

// postValidated locks every account txn touches (in id order, so concurrent
// postings cannot deadlock), checks them against their live balances, applies
// the deltas and records txn. leg, when set, also constrains account kinds.
func postValidated(ctx context.Context, uow portsrepo.UnitOfWork, txn domain.Transaction, leg *domain.Leg) error {
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	changes := accounting.BalanceChanges(txn)
	ids := make([]string, 0, len(changes))
	for id := range changes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	accounts, err := uow.Accounts().FindAccountsByIDsForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	if leg != nil {
		if err := checkLegKinds(txn, accounts, *leg); err != nil {
			return err
		}
	}

	if err := accounting.ValidateBalanceChanges(accounts, changes); err != nil {
		return err
	}
	if err := uow.Accounts().UpdateAccountBalances(ctx, changes, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}
	return uow.Transactions().SaveTransaction(ctx, txn)
}

func checkLegKinds(txn domain.Transaction, accounts map[string]domain.Account, leg domain.Leg) error {
	if leg.SourceKind != "" && txn.SourceAccountID != nil {
		if got := accounts[*txn.SourceAccountID].Kind; got != leg.SourceKind {
			return fmt.Errorf("%w: %s needs a %s source, got %s", apperrors.ErrValidation, txn.Type, leg.SourceKind, got)
		}
	}
	if leg.DestinationKind != "" && txn.DestinationAccountID != nil {
		if got := accounts[*txn.DestinationAccountID].Kind; got != leg.DestinationKind {
			return fmt.Errorf("%w: %s needs a %s destination, got %s", apperrors.ErrValidation, txn.Type, leg.DestinationKind, got)
		}
	}
	return nil
}
