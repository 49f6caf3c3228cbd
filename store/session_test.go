package store

import (
	"context"
	"testing"
	"time"

	"amashuri/gateway"
	"amashuri/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(gw gateway.Gateway) *Session {
	return NewSession(gw, TestIdentities(), nil)
}

func TestSignInBypassNeverCallsGateway(t *testing.T) {
	gw := gateway.NewMemory()
	session := newTestSession(gw)

	err := session.SignIn(context.Background(), "student@test.com", "test123")
	require.NoError(t, err)

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "student@test.com", user.Email)
	assert.Empty(t, gw.Calls())
}

func TestSignInBypassTeacher(t *testing.T) {
	session := newTestSession(gateway.NewMemory())

	err := session.SignIn(context.Background(), "teacher@test.com", "test123")
	require.NoError(t, err)

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, models.RoleTeacher, user.Role)
}

func TestSignInThroughGateway(t *testing.T) {
	gw := gateway.NewMemory()
	gw.AddProfile(models.UserProfile{
		ID:       "user-1",
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Role:     models.RoleStudent,
	}, "secret")

	session := newTestSession(gw)
	err := session.SignIn(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Contains(t, gw.Calls(), "sign_in")
	assert.Contains(t, gw.Calls(), "profile")
}

func TestSignInGatewayErrorLeavesUserNil(t *testing.T) {
	gw := gateway.NewMemory()
	gw.FailWith(assert.AnError)

	session := newTestSession(gw)
	err := session.SignIn(context.Background(), "jane@example.com", "secret")
	assert.Error(t, err)
	assert.Nil(t, session.User())
	assert.NotEmpty(t, session.Err())
	assert.False(t, session.Loading())
}

func TestSignInInvalidCredentials(t *testing.T) {
	session := newTestSession(gateway.NewMemory())

	err := session.SignIn(context.Background(), "nobody@example.com", "wrong")
	assert.Error(t, err)
	assert.Nil(t, session.User())
}

func TestSignInProfileMissing(t *testing.T) {
	// Authenticated at the gateway but no profile row: ProfileNotFound.
	gw := gateway.NewMemory()
	gw.AddProfile(models.UserProfile{ID: "user-1", Email: "jane@example.com"}, "secret")

	session := NewSession(&profileless{gw}, nil, nil)
	err := session.SignIn(context.Background(), "jane@example.com", "secret")
	assert.ErrorIs(t, err, gateway.ErrProfileNotFound)
	assert.Nil(t, session.User())
}

// profileless authenticates but has lost its profile rows.
type profileless struct {
	*gateway.Memory
}

func (p *profileless) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return nil, gateway.ErrProfileNotFound
}

func TestSignUpIsOptimistic(t *testing.T) {
	gw := gateway.NewMemory()
	gw.FailWith(assert.AnError) // remote registration will fail

	session := newTestSession(gw)
	remote, err := session.SignUp(context.Background(), "new@example.com", "pw", "New User", models.RoleStudent)
	require.NoError(t, err)

	// The local session is established before the remote call resolves.
	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Contains(t, user.ID, "mock-student-")

	// The remote outcome is still reported for the caller to surface.
	select {
	case err := <-remote:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("remote registration outcome never delivered")
	}

	// The failed remote call did not disturb the local session.
	assert.NotNil(t, session.User())
}

func TestSignOutClearsUser(t *testing.T) {
	session := newTestSession(gateway.NewMemory())
	require.NoError(t, session.SignIn(context.Background(), "student@test.com", "test123"))
	require.NotNil(t, session.User())

	require.NoError(t, session.SignOut(context.Background()))
	assert.Nil(t, session.User())
}

func TestSignOutClearsUserEvenOnGatewayError(t *testing.T) {
	gw := gateway.NewMemory()
	session := newTestSession(gw)
	require.NoError(t, session.SignIn(context.Background(), "student@test.com", "test123"))

	gw.FailWith(assert.AnError)
	err := session.SignOut(context.Background())
	assert.Error(t, err)
	assert.Nil(t, session.User())
}

func TestCheckSessionNoSession(t *testing.T) {
	session := newTestSession(gateway.NewMemory())

	require.NoError(t, session.CheckSession(context.Background()))
	assert.Nil(t, session.User())
	assert.Empty(t, session.Err())
}

func TestCheckSessionResolvesProfile(t *testing.T) {
	gw := gateway.NewMemory()
	gw.AddProfile(models.UserProfile{
		ID:    "user-1",
		Email: "jane@example.com",
		Role:  models.RoleStudent,
	}, "secret")

	// Establish a remote session, then start a fresh store over the same
	// gateway, as an application restart would.
	_, err := gw.SignInWithPassword(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	session := newTestSession(gw)
	require.NoError(t, session.CheckSession(context.Background()))

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
}

func TestSessionSubscribe(t *testing.T) {
	session := newTestSession(gateway.NewMemory())

	notified := 0
	unsubscribe := session.Subscribe(func() { notified++ })

	require.NoError(t, session.SignIn(context.Background(), "student@test.com", "test123"))
	assert.Equal(t, 1, notified)

	unsubscribe()
	require.NoError(t, session.SignOut(context.Background()))
	assert.Equal(t, 1, notified)
}
