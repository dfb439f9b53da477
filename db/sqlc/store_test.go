package db

import (
	"context"
	"database/sql"
	"testing"

	"accountservice/util"
	"github.com/stretchr/testify/require"
)

func TestReplaceAccountTx(t *testing.T) {
	store := NewStore(testDB)

	account := createRandomAccount(t)

	arg := ReplaceAccountTxParams{
		ID:          account.ID,
		Name:        util.RandomName(),
		Email:       util.RandomEmail(),
		Address:     util.RandomAddress(),
		PhoneNumber: sql.NullString{String: util.RandomPhoneNumber(), Valid: true},
		DateJoined:  util.RandomDate(),
	}

	replacedAccount, err := store.ReplaceAccountTx(context.Background(), arg)

	require.NoError(t, err)

	require.Equal(t, account.ID, replacedAccount.ID)
	require.Equal(t, arg.Name, replacedAccount.Name)
	require.Equal(t, arg.Email, replacedAccount.Email)
	require.Equal(t, arg.Address, replacedAccount.Address)
	require.Equal(t, arg.PhoneNumber, replacedAccount.PhoneNumber)
	require.Equal(t, arg.DateJoined.Format(dateLayout), replacedAccount.DateJoined.Format(dateLayout))

	// the replacement is durable
	foundAccount, err := store.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, arg.Name, foundAccount.Name)
}

func TestReplaceAccountTxNotFound(t *testing.T) {
	store := NewStore(testDB)

	arg := ReplaceAccountTxParams{
		ID:         0,
		Name:       util.RandomName(),
		Email:      util.RandomEmail(),
		Address:    util.RandomAddress(),
		DateJoined: util.RandomDate(),
	}

	_, err := store.ReplaceAccountTx(context.Background(), arg)

	require.ErrorIs(t, err, sql.ErrNoRows)
}
