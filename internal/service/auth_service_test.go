package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		Issuer:                "inventory-service",
		Audience:              "inventory-clients",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}
}

func TestRegisterAssignsUserRole(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())

	user, err := svc.Register(context.Background(), "Jamie Doe", "jamie@example.com", "Secret123!")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, []domain.Role{domain.RoleUser}, user.Roles)
	require.NotEqual(t, "Secret123!", user.PasswordHash, "password must be stored hashed")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jamie Doe", "jamie@example.com", "Secret123!")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Person", "jamie@example.com", "Other123!")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Contains(t, domainErr.Details, "email")
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Jamie Doe", "jamie@example.com", "Secret123!")
	require.NoError(t, err)

	user, token, expiresAt, err := svc.Login(ctx, "jamie@example.com", "Secret123!")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.Subject)
	require.Equal(t, []string{"User"}, claims.Roles)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jamie Doe", "jamie@example.com", "Secret123!")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "Secret123!")
	_, _, _, badPassErr := svc.Login(ctx, "jamie@example.com", "WrongPassword")

	var unknown, badPass *apperrors.DomainError
	require.ErrorAs(t, unknownErr, &unknown)
	require.ErrorAs(t, badPassErr, &badPass)
	require.Equal(t, "UNAUTHORIZED", unknown.Code)
	require.Equal(t, unknown.Code, badPass.Code)
	require.Equal(t, unknown.Message, badPass.Message,
		"unknown email and wrong password must read identically")
}

func TestPromoteGrantsAdmin(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	var promoted []events.Event
	dispatcher.Subscribe(events.EventUserPromoted, func(_ context.Context, e events.Event) error {
		promoted = append(promoted, e)
		return nil
	})

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), dispatcher)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jamie Doe", "jamie@example.com", "Secret123!")
	require.NoError(t, err)

	updated, err := svc.Promote(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, updated.HasRole(domain.RoleAdmin))
	require.True(t, updated.HasRole(domain.RoleUser), "existing roles are kept")

	require.Len(t, promoted, 1)
	require.Equal(t, user.ID, promoted[0].EntityID)
}

func TestPromoteUnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())

	_, err := svc.Promote(context.Background(), "no-such-user")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPromoteAlreadyAdmin(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jamie Doe", "jamie@example.com", "Secret123!")
	require.NoError(t, err)
	_, err = svc.Promote(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.Promote(ctx, user.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "ALREADY_ADMIN", domainErr.Code)
	require.Equal(t, 400, domainErr.HTTPStatus)
}

func TestLogoutIsNoOp(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testAuthConfig(), newFakeUserRepo(), events.NewInMemoryDispatcher())
	require.NoError(t, svc.Logout(context.Background(), "any-token"))
	require.NoError(t, svc.Logout(context.Background(), ""))
}
