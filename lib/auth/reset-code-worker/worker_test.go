package resetcodeworker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-tracker-backend/db/testdb"
	usersstore "job-tracker-backend/lib/users/store"
	dbmodels "job-tracker-backend/models/db"
)

func TestHandle(t *testing.T) {
	conn := testdb.New(t)
	store := usersstore.NewInstance(conn)
	expiredID, err := store.Create(dbmodels.User{Email: "old@example.com", UserName: "old",
		ResetCode: "EXPIRED1", ResetCodeExpires: time.Now().Add(-time.Hour)})
	require.Nil(t, err)
	activeID, err := store.Create(dbmodels.User{Email: "new@example.com", UserName: "new",
		ResetCode: "ACTIVE01", ResetCodeExpires: time.Now().Add(time.Hour)})
	require.Nil(t, err)

	newInstance(conn).handle(context.Background())

	expired, err := store.GetByID(expiredID)
	require.Nil(t, err)
	require.Empty(t, expired.ResetCode)
	active, err := store.GetByID(activeID)
	require.Nil(t, err)
	require.Equal(t, "ACTIVE01", active.ResetCode)
}
