package domain

import (
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger posting.
type TransactionType string

const (
	TxTransfer       TransactionType = "TRANSFER"        // bank -> bank
	TxDeposit        TransactionType = "DEPOSIT"         // cash register -> bank
	TxWithdrawal     TransactionType = "WITHDRAWAL"      // bank -> cash register
	TxSimpleTransfer TransactionType = "SIMPLE_TRANSFER" // single leg, credit only
	TxCustomsFee     TransactionType = "CUSTOMS_FEE"
	TxTransportFee   TransactionType = "TRANSPORT_FEE"
	TxOtherFee       TransactionType = "OTHER_FEE"
	TxPayment        TransactionType = "PAYMENT"
)

// IsFee reports whether t is a fee category that can be posted against a trip.
func (t TransactionType) IsFee() bool {
	switch t {
	case TxCustomsFee, TxTransportFee, TxOtherFee:
		return true
	case TxTransfer, TxDeposit, TxWithdrawal, TxSimpleTransfer, TxPayment:
		return false
	default:
		return false
	}
}

// TransactionStatus is the lifecycle of a ledger transaction.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxValidated TransactionStatus = "VALIDATED"
	TxRejected  TransactionStatus = "REJECTED"
	TxCancelled TransactionStatus = "CANCELLED"
)

// Transaction is one ledger record. Once VALIDATED it has already moved balances.
type Transaction struct {
	TransactionID        string            `json:"transactionID"`
	Type                 TransactionType   `json:"type"`
	Amount               decimal.Decimal   `json:"amount"`
	Date                 time.Time         `json:"date"`
	Status               TransactionStatus `json:"status"`
	SourceAccountID      *string           `json:"sourceAccountID,omitempty"`
	DestinationAccountID *string           `json:"destinationAccountID,omitempty"`
	TripID               *string           `json:"tripID,omitempty"`
	TruckID              *string           `json:"truckID,omitempty"`
	PaymentID            *string           `json:"paymentID,omitempty"`
	Description          string            `json:"description"`
	AuditFields
}

// Leg is the required shape of a transfer kind.
type Leg struct {
	SourceKind      AccountKind // empty: no source leg
	DestinationKind AccountKind // empty: destination may be any kind
	NeedsSource     bool
	NeedsDest       bool
}

// TransferLegs describes which accounts a transfer kind touches.
func TransferLegs(kind TransactionType) (Leg, error) {
	switch kind {
	case TxTransfer:
		return Leg{SourceKind: KindBankAccount, DestinationKind: KindBankAccount, NeedsSource: true, NeedsDest: true}, nil
	case TxDeposit:
		return Leg{SourceKind: KindCashRegister, DestinationKind: KindBankAccount, NeedsSource: true, NeedsDest: true}, nil
	case TxWithdrawal:
		return Leg{SourceKind: KindBankAccount, DestinationKind: KindCashRegister, NeedsSource: true, NeedsDest: true}, nil
	case TxSimpleTransfer:
		return Leg{NeedsDest: true}, nil
	case TxCustomsFee, TxTransportFee, TxOtherFee, TxPayment:
		return Leg{}, fmt.Errorf("%w: %s is not a transfer kind", apperrors.ErrValidation, kind)
	default:
		return Leg{}, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, string(kind))
	}
}

// TransferRequest moves money between accounts or credits a single account.
type TransferRequest struct {
	Kind          TransactionType
	SourceID      string // empty for SIMPLE_TRANSFER
	DestinationID string
	Amount        decimal.Decimal
	Date          time.Time // zero means now
	Description   string
}

// FeePosting debits an account for a fee tied to a trip.
type FeePosting struct {
	TripID      string
	Selector    AccountSelector
	Amount      decimal.Decimal
	Category    TransactionType
	Description string
}
