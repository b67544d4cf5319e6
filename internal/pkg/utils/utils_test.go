package utils

import (
	"careplan-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDURLParam(t *testing.T) {
	parseVia := func(t *testing.T, path string) (uint64, error) {
		t.Helper()
		var id uint64
		var parseErr error
		router := chi.NewRouter()
		router.Get("/care-plans/{care_plan_id}", func(w http.ResponseWriter, r *http.Request) {
			id, parseErr = ParseIDURLParam(r, constvars.URLParamCarePlanID)
		})
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
		return id, parseErr
	}

	t.Run("valid id", func(t *testing.T) {
		id, err := parseVia(t, "/care-plans/42")
		require.NoError(t, err)
		assert.Equal(t, uint64(42), id)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, err := parseVia(t, "/care-plans/abc")
		assert.Error(t, err)
	})

	t.Run("zero is not a valid id", func(t *testing.T) {
		_, err := parseVia(t, "/care-plans/0")
		assert.Error(t, err)
	})

	t.Run("negative id", func(t *testing.T) {
		_, err := parseVia(t, "/care-plans/-5")
		assert.Error(t, err)
	})
}

func TestValidateStructPrincipalRef(t *testing.T) {
	type subject struct {
		Principal string `validate:"required,principal_ref"`
	}

	valid := []string{
		"Patient/alice",
		"Practitioner/bob-2",
		"CareTeam/a.b.c",
	}
	for _, ref := range valid {
		assert.NoError(t, ValidateStruct(&subject{Principal: ref}), ref)
	}

	invalid := []string{
		"",
		"alice",
		"Patient/",
		"/alice",
		"Patient alice",
		"Patient/with space",
	}
	for _, ref := range invalid {
		assert.Error(t, ValidateStruct(&subject{Principal: ref}), ref)
	}
}

func TestPrincipalJWTRoundTrip(t *testing.T) {
	secret := "utils-test-secret"

	token, err := GeneratePrincipalJWT("Patient/alice", "token-9", secret, 1)
	require.NoError(t, err)

	principal, tokenID, err := ParsePrincipalJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "Patient/alice", principal)
	assert.Equal(t, "token-9", tokenID)

	_, _, err = ParsePrincipalJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestAPIKeyHash(t *testing.T) {
	hash, err := HashAPIKey("service-key")
	require.NoError(t, err)

	assert.True(t, CheckAPIKeyHash("service-key", hash))
	assert.False(t, CheckAPIKeyHash("other-key", hash))
}
