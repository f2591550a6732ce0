package usecase

import (
	"context"
	"testing"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.ServiceUser
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.ServiceUser)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.ServiceUser) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ServiceUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.ServiceUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.ServiceUser, error) {
	var out []*entity.ServiceUser
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeUserRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.IsApproved = approved
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	stored := *session
	r.sessions[session.Token.String()] = &stored
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	r.revoked = append(r.revoked, userID)
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

func newAuthService(t *testing.T) (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Auth: utils.AuthConfig{SessionExpiryHours: 24}}

	return NewAuthService(repo, config, zap.NewNop()), users, sessions
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, approved bool) *entity.ServiceUser {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.ServiceUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Type:         entity.UserTypeMechanic,
		IsApproved:   approved,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestRegisterCreatesUnapprovedUser(t *testing.T) {
	svc, users, _ := newAuthService(t)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.False(t, resp.IsApproved)

	stored, err := users.FindByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsApproved)
	assert.Equal(t, entity.UserTypeMechanic, stored.Type)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, users, _ := newAuthService(t)
	seedUser(t, users, "taken@example.com", "secret123", true)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginApprovalGateBeatsPasswordCheck(t *testing.T) {
	svc, users, _ := newAuthService(t)
	seedUser(t, users, "pending@example.com", "secret123", false)

	// even with the correct password, an unapproved account gets the
	// approval message, never "invalid credentials"
	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "pending@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not approved")

	// and the same with a wrong password
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "pending@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not approved")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _ := newAuthService(t)
	seedUser(t, users, "ok@example.com", "secret123", true)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ok@example.com",
		Password: "wrongpass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginSuccessIssuesSession(t *testing.T) {
	svc, users, sessions := newAuthService(t)
	user := seedUser(t, users, "ok@example.com", "secret123", true)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ok@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.UserID)
	require.NotEmpty(t, resp.Token)

	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
}

func TestApproveUserUnlocksLogin(t *testing.T) {
	svc, users, _ := newAuthService(t)
	user := seedUser(t, users, "pending@example.com", "secret123", false)

	resp, err := svc.ApproveUser(context.Background(), user.ID.String(), true)
	require.NoError(t, err)
	assert.True(t, resp.IsApproved)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "pending@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestWithdrawingApprovalRevokesSessions(t *testing.T) {
	svc, users, sessions := newAuthService(t)
	user := seedUser(t, users, "ok@example.com", "secret123", true)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ok@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.ApproveUser(context.Background(), user.ID.String(), false)
	require.NoError(t, err)

	assert.Contains(t, sessions.revoked, user.ID)
	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, users, sessions := newAuthService(t)
	seedUser(t, users, "ok@example.com", "secret123", true)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ok@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	err := svc.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token format")
}
