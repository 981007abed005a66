package services_test

import (
	"sync"
	"testing"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	serviceSuite
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestCreateAccount() {
	acc, err := s.svc.Account.CreateAccount(s.ctx, admin, dto.CreateAccountRequest{
		Kind:           domain.KindBankAccount,
		Name:           "BDM",
		InitialBalance: dec(1000),
	})
	s.Require().NoError(err)
	s.Equal(domain.BankTypeBank, acc.BankType)
	s.Equal(domain.AccountActive, acc.Status)

	_, err = s.svc.Account.CreateAccount(s.ctx, admin, dto.CreateAccountRequest{
		Kind:           domain.KindCashRegister,
		Name:           "Caisse",
		InitialBalance: dec(-1),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestTransfer_InsufficientThenAccepted() {
	src := s.account(domain.KindBankAccount, 100000)
	dst := s.account(domain.KindBankAccount, 0)
	req := domain.TransferRequest{Kind: domain.TxTransfer, SourceID: src, DestinationID: dst}

	req.Amount = dec(150000)
	_, err := s.svc.Account.PostTransfer(s.ctx, admin, req)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.True(s.balance(src).Equal(dec(100000)))
	s.True(s.balance(dst).IsZero())

	req.Amount = dec(50000)
	txn, err := s.svc.Account.PostTransfer(s.ctx, admin, req)
	s.Require().NoError(err)
	s.Equal(domain.TxValidated, txn.Status)
	s.Equal(s.now, txn.Date)
	s.True(s.balance(src).Equal(dec(50000)))
	s.True(s.balance(dst).Equal(dec(50000)))
}

func (s *LedgerServiceTestSuite) TestTransfer_LegRules() {
	bank := s.account(domain.KindBankAccount, 1000)
	bank2 := s.account(domain.KindBankAccount, 0)
	cash := s.account(domain.KindCashRegister, 1000)

	tests := []struct {
		name    string
		req     domain.TransferRequest
		wantErr error
	}{
		{"same account", domain.TransferRequest{Kind: domain.TxTransfer, SourceID: bank, DestinationID: bank, Amount: dec(1)}, apperrors.ErrSameAccount},
		{"zero amount", domain.TransferRequest{Kind: domain.TxTransfer, SourceID: bank, DestinationID: bank2}, apperrors.ErrValidation},
		{"missing source", domain.TransferRequest{Kind: domain.TxWithdrawal, DestinationID: cash, Amount: dec(1)}, apperrors.ErrValidation},
		{"simple transfer with source", domain.TransferRequest{Kind: domain.TxSimpleTransfer, SourceID: bank, DestinationID: cash, Amount: dec(1)}, apperrors.ErrValidation},
		{"deposit from a bank", domain.TransferRequest{Kind: domain.TxDeposit, SourceID: bank2, DestinationID: bank, Amount: dec(1)}, apperrors.ErrValidation},
		{"unknown account", domain.TransferRequest{Kind: domain.TxTransfer, SourceID: bank, DestinationID: "acc_ghost", Amount: dec(1)}, apperrors.ErrNotFound},
		{"fee kind", domain.TransferRequest{Kind: domain.TxCustomsFee, SourceID: bank, Amount: dec(1)}, apperrors.ErrValidation},
		{"deposit", domain.TransferRequest{Kind: domain.TxDeposit, SourceID: cash, DestinationID: bank, Amount: dec(100)}, nil},
		{"withdrawal", domain.TransferRequest{Kind: domain.TxWithdrawal, SourceID: bank, DestinationID: cash, Amount: dec(50)}, nil},
		{"simple transfer", domain.TransferRequest{Kind: domain.TxSimpleTransfer, DestinationID: bank2, Amount: dec(10)}, nil},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Account.PostTransfer(s.ctx, admin, tt.req)
			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				return
			}
			s.NoError(err)
		})
	}

	s.True(s.balance(bank).Equal(dec(1050)))
	s.True(s.balance(cash).Equal(dec(950)))
	s.True(s.balance(bank2).Equal(dec(10)))
}

func (s *LedgerServiceTestSuite) TestTransfer_ConcurrentDebitsNeverOverdraw() {
	src := s.account(domain.KindBankAccount, 1000)
	dst := s.account(domain.KindBankAccount, 0)

	const attempts = 20
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Account.PostTransfer(s.ctx, admin, domain.TransferRequest{
				Kind: domain.TxTransfer, SourceID: src, DestinationID: dst, Amount: dec(100),
			})
			if err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(10, ok)
	s.True(s.balance(src).IsZero())
	s.True(s.balance(dst).Equal(dec(1000)))
}

func (s *LedgerServiceTestSuite) TestPostFeeAgainstTrip() {
	trip := s.trip(45000)
	cash := s.account(domain.KindCashRegister, 10000)

	txn, err := s.svc.Account.PostFeeAgainstTrip(s.ctx, operator, domain.FeePosting{
		TripID:   trip.TripID,
		Selector: domain.AccountSelector{CashID: cash},
		Amount:   dec(2500),
		Category: domain.TxTransportFee,
	})
	s.Require().NoError(err)
	s.Require().NotNil(txn.TripID)
	s.Equal(trip.TripID, *txn.TripID)
	s.Require().NotNil(txn.TruckID)
	s.Equal("trk_1", *txn.TruckID)
	s.True(s.balance(cash).Equal(dec(7500)))

	_, err = s.svc.Account.PostFeeAgainstTrip(s.ctx, operator, domain.FeePosting{
		TripID:   trip.TripID,
		Selector: domain.AccountSelector{CashID: cash},
		Amount:   dec(1),
		Category: domain.TxTransfer,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.PostFeeAgainstTrip(s.ctx, operator, domain.FeePosting{
		TripID:   "trip_ghost",
		Selector: domain.AccountSelector{CashID: cash},
		Amount:   dec(1),
		Category: domain.TxOtherFee,
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	txns, err := s.svc.Account.ListTripTransactions(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Len(txns, 1)
}

func (s *LedgerServiceTestSuite) TestPostFeeAgainstTrip_RefusalsRecordNothing() {
	trip := s.trip(45000)
	cash := s.account(domain.KindCashRegister, 1000)
	bank := s.account(domain.KindBankAccount, 1000)
	fee := func(actor domain.Actor, selector domain.AccountSelector, amount int64) error {
		_, err := s.svc.Account.PostFeeAgainstTrip(s.ctx, actor, domain.FeePosting{
			TripID:   trip.TripID,
			Selector: selector,
			Amount:   dec(amount),
			Category: domain.TxOtherFee,
		})
		return err
	}

	s.ErrorIs(fee(operator, domain.AccountSelector{CashID: cash}, 1001), apperrors.ErrInsufficientFunds)
	s.ErrorIs(fee(stranger, domain.AccountSelector{CashID: cash}, 10), apperrors.ErrForbidden)
	s.ErrorIs(fee(operator, domain.AccountSelector{AccountID: bank, CashID: cash}, 10), apperrors.ErrValidation)
	s.ErrorIs(fee(operator, domain.AccountSelector{CashID: bank}, 10), apperrors.ErrValidation, "a bank account is not a cash register")
	s.ErrorIs(fee(operator, domain.AccountSelector{AccountID: cash}, 10), apperrors.ErrValidation, "a cash register is not a bank account")

	txns, err := s.svc.Account.ListTripTransactions(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Empty(txns)
	s.True(s.balance(cash).Equal(dec(1000)))
	s.True(s.balance(bank).Equal(dec(1000)))
}

func (s *LedgerServiceTestSuite) TestMoveFunds_TreasuryOnly() {
	src := s.account(domain.KindBankAccount, 1000)
	dst := s.account(domain.KindBankAccount, 0)
	req := domain.TransferRequest{Kind: domain.TxTransfer, SourceID: src, DestinationID: dst, Amount: dec(100)}

	_, err := s.svc.Account.PostTransfer(s.ctx, operator, req)
	s.ErrorIs(err, apperrors.ErrFundsForbidden)
	_, err = s.svc.Account.PostTransfer(s.ctx, douane, req)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.True(s.balance(src).Equal(dec(1000)))

	_, err = s.svc.Account.PostTransfer(s.ctx, treasurer, req)
	s.Require().NoError(err)
	s.True(s.balance(dst).Equal(dec(100)))

	_, err = s.svc.Account.CreateAccount(s.ctx, operator, dto.CreateAccountRequest{
		Kind: domain.KindCashRegister,
		Name: "Caisse",
	})
	s.ErrorIs(err, apperrors.ErrForbidden)
}
