package data

import (
	"context"
	"testing"
	"time"

	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEventRepo_RecordAndRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.CleanupTestDB(t, db)

	repo := NewAuthEventRepo(db)
	ctx := context.Background()

	events := []audit.AuthEvent{
		{Principal: "aaaaa-aa", Intent: "signup", Outcome: audit.OutcomeSignupStarted},
		{Principal: "aaaaa-aa", Intent: "signup", Outcome: audit.OutcomeRegistrationConfirmed},
		{Principal: "bbbbb-bb", Intent: "login", Outcome: audit.OutcomeLoginNoProfile},
	}
	for i, ev := range events {
		ev.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Record(ctx, ev))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	assert.Equal(t, audit.OutcomeLoginNoProfile, recent[0].Outcome)
	assert.Equal(t, audit.OutcomeRegistrationConfirmed, recent[1].Outcome)
	assert.NotEmpty(t, recent[0].ID)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestAuthEventRepo_Record_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := NewAuthEventRepo(db)
	ctx := context.Background()

	err := repo.Record(ctx, audit.AuthEvent{Principal: "aaaaa-aa"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "outcome", apperrors.GetField(err))

	err = repo.Record(ctx, audit.AuthEvent{ID: "not-a-uuid", Outcome: audit.OutcomeLogout})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthEventRepo_List_FilterAndPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.CleanupTestDB(t, db)

	repo := NewAuthEventRepo(db)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	events := []audit.AuthEvent{
		{Principal: "aaaaa-aa", Intent: "login", Outcome: audit.OutcomeLoginSucceeded},
		{Principal: "aaaaa-aa", Intent: "login", Outcome: audit.OutcomeLogout},
		{Principal: "aaaaa-aa", Intent: "login", Outcome: audit.OutcomeLoginSucceeded},
		{Principal: "bbbbb-bb", Intent: "signup", Outcome: audit.OutcomeSignupStarted},
	}
	for i, ev := range events {
		ev.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Record(ctx, ev))
	}

	page, err := repo.List(ctx, audit.Filter{Principal: "aaaaa-aa"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Events, 3)
	// Newest first.
	assert.Equal(t, audit.OutcomeLoginSucceeded, page.Events[0].Outcome)

	page, err = repo.List(ctx, audit.Filter{
		Principal: "aaaaa-aa",
		Outcomes:  []audit.Outcome{audit.OutcomeLoginSucceeded},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// The total counts the whole filtered set even when the page is
	// smaller.
	page, err = repo.List(ctx, audit.Filter{Principal: "aaaaa-aa", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Events, 1)
	assert.Equal(t, audit.OutcomeLogout, page.Events[0].Outcome)

	page, err = repo.List(ctx, audit.Filter{Since: base.Add(3 * time.Second)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Events, 1)
	assert.Equal(t, "bbbbb-bb", page.Events[0].Principal)
}

func TestAuthEventRepo_CountsByOutcome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.CleanupTestDB(t, db)

	repo := NewAuthEventRepo(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, audit.AuthEvent{Principal: "p", Outcome: audit.OutcomeLoginSucceeded}))
	}
	require.NoError(t, repo.Record(ctx, audit.AuthEvent{Principal: "p", Outcome: audit.OutcomeLogout}))

	counts, err := repo.CountsByOutcome(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[audit.OutcomeLoginSucceeded])
	assert.Equal(t, int64(1), counts[audit.OutcomeLogout])
}

func TestAuthEventRepo_Recent_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.CleanupTestDB(t, db)

	repo := NewAuthEventRepo(db)

	recent, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
