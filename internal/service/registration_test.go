package service

import (
	"context"
	"encoding/json"
	"testing"

	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
	"github.com/socialnet-labs/ui-api/internal/domain/audit"
	"github.com/socialnet-labs/ui-api/internal/domain/view"
	apperrors "github.com/socialnet-labs/ui-api/internal/errors"
	"github.com/socialnet-labs/ui-api/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerInput(sessionID string) RegisterInput {
	return RegisterInput{
		SessionID: sessionID,
		Profile:   ports.CreateProfileInput{Username: "alice"},
	}
}

func TestConfirmRegistration_Validation(t *testing.T) {
	f := newBootstrapFixture(t)

	_, err := f.svc.ConfirmRegistration(context.Background(), RegisterInput{})
	assert.True(t, apperrors.IsUnauthenticated(err))

	_, err = f.svc.ConfirmRegistration(context.Background(), RegisterInput{
		SessionID: "sess-1",
		Profile:   ports.CreateProfileInput{Username: "   "},
	})
	require.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "username", apperrors.GetField(err))
}

func TestConfirmRegistration_UnknownSession(t *testing.T) {
	f := newBootstrapFixture(t)

	_, err := f.svc.ConfirmRegistration(context.Background(), registerInput("gone"))
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestConfirmRegistration_Success(t *testing.T) {
	f := newBootstrapFixture(t)
	sess := f.seedSession(t, domainauth.IntentSignup)
	f.expectHandle()
	f.handle.EXPECT().CreateUser(gomock.Any(), ports.CreateProfileInput{Username: "alice"}).
		Return("User created successfully", nil)
	f.handle.EXPECT().GetUser(gomock.Any(), testPrincipal).Return(profilePresent, nil)
	f.handle.EXPECT().IsCallerAdmin(gomock.Any()).Return(false, nil)

	res, err := f.svc.ConfirmRegistration(context.Background(), registerInput(sess.ID))
	require.NoError(t, err)

	assert.Equal(t, domainauth.StateReady, res.State)
	assert.Equal(t, view.Feed, res.View)
	assert.True(t, res.HasProfile)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "alice", res.Profile.Username)

	stored, storeErr := f.store.Get(context.Background(), sess.ID)
	require.NoError(t, storeErr)
	assert.Equal(t, domainauth.StateReady, stored.State)
	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, []audit.Outcome{audit.OutcomeRegistrationConfirmed}, f.recorder.Outcomes())
}

func TestConfirmRegistration_CreateRejected(t *testing.T) {
	f := newBootstrapFixture(t)
	sess := f.seedSession(t, domainauth.IntentSignup)
	f.expectHandle()
	f.handle.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return("", apperrors.Conflict("user already exists"))

	_, err := f.svc.ConfirmRegistration(context.Background(), registerInput(sess.ID))
	assert.True(t, apperrors.IsConflict(err))
	assert.Empty(t, f.recorder.Events())
}

func TestConfirmRegistration_NotVisibleOnRefetch(t *testing.T) {
	f := newBootstrapFixture(t)
	sess := f.seedSession(t, domainauth.IntentSignup)
	f.expectHandle()
	f.handle.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return("User created successfully", nil)
	f.handle.EXPECT().GetUser(gomock.Any(), testPrincipal).Return(json.RawMessage(`[]`), nil)

	res, err := f.svc.ConfirmRegistration(context.Background(), registerInput(sess.ID))
	require.NoError(t, err)

	// Server-side success alone never declares the session ready.
	assert.Equal(t, domainauth.StateRegistering, res.State)
	assert.Equal(t, view.Register, res.View)
	assert.Equal(t, MsgRegistrationNotVisible, res.Err)
	assert.True(t, res.Retryable)
	assert.Equal(t, []audit.Outcome{audit.OutcomeRegistrationMissing}, f.recorder.Outcomes())
}

func TestConfirmRegistration_RefetchError(t *testing.T) {
	f := newBootstrapFixture(t)
	sess := f.seedSession(t, domainauth.IntentSignup)
	f.expectHandle()
	f.handle.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return("User created successfully", nil)
	f.handle.EXPECT().GetUser(gomock.Any(), testPrincipal).
		Return(nil, apperrors.Unavailable("backend unreachable"))

	res, err := f.svc.ConfirmRegistration(context.Background(), registerInput(sess.ID))
	require.NoError(t, err)

	assert.Equal(t, domainauth.StateRegistering, res.State)
	assert.True(t, res.Retryable)

	events := f.recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.OutcomeRegistrationMissing, events[0].Outcome)
	assert.NotEmpty(t, events[0].ErrorCode)
}
