package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

func TestStructReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := Struct(dto.RegisterRequest{
		FullName: "X",
		Email:    "not-an-email",
		Password: "short",
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Equal(t, 400, domainErr.HTTPStatus)
	require.Contains(t, domainErr.Details, "full_name")
	require.Contains(t, domainErr.Details, "email")
	require.Contains(t, domainErr.Details, "password")
}

func TestStructAcceptsValidPayload(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(dto.RegisterRequest{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Password: "Secret123!",
	}))
}

func TestPatchValidatesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(dto.ProductPatchRequest{}), "empty patch is valid")

	bad := -1.0
	err := Struct(dto.ProductPatchRequest{Price: &bad})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Contains(t, domainErr.Details, "price")
}
