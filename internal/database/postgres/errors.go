package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

// Postgres error codes the stores translate into domain errors.
const (
	codeUniqueViolation  = "23505"
	codeSerialization    = "40001"
	codeDeadlockDetected = "40P01"
	codeCheckViolation   = "23514"
)

// Constraint names from the migrations, used to pick the right domain error
// for a unique violation.
const (
	constraintOwnershipPK       = "ownerships_pkey"
	constraintTransferKeyUnique = "uniq_transactions_transfer_key_kind"
	constraintUsernameUnique    = "accounts_username_key"
	constraintBalanceCheck      = "accounts_balance_check"
)

// mapError translates low-level pgx errors into the domain taxonomy.
// Serialization failures and deadlocks become domain.ErrConflict so the
// engine can retry them transparently.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintOwnershipPK:
			return domain.ErrAlreadyOwned
		case constraintTransferKeyUnique:
			return domain.ErrDuplicateTransfer
		case constraintUsernameUnique:
			return domain.ErrConflict
		}
		return domain.ErrConflict
	case codeSerialization, codeDeadlockDetected:
		return domain.ErrConflict
	case codeCheckViolation:
		if pgErr.ConstraintName == constraintBalanceCheck {
			return domain.ErrInsufficientFunds
		}
	}
	return err
}
