package usecases

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/shared/errors"
)

func newRedeemFixture(t *testing.T) (*RedeemTokenUseCase, *fakeTokenRepo, *fakeAccessLogRepo) {
	t.Helper()
	tokenRepo := newFakeTokenRepo()
	accessLog := &fakeAccessLogRepo{}
	uc := NewRedeemTokenUseCase(tokenRepo, accessLog, "https://chat.example.org/invite", testLogger())
	return uc, tokenRepo, accessLog
}

func seedActiveToken(t *testing.T, repo *fakeTokenRepo) string {
	t.Helper()
	value := strings.Repeat("d", 64)
	phone := "+447911123456"
	ipHash := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	tok, err := access.NewAccessToken(value, "student@uni.ac.uk", &phone, vo.MethodUniversityEmail, &ipHash, 24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tok))
	return value
}

func TestRedeemToken_Success(t *testing.T) {
	uc, tokenRepo, accessLog := newRedeemFixture(t)
	value := seedActiveToken(t, tokenRepo)

	result, err := uc.Execute(context.Background(), RedeemTokenCommand{Token: value})
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.org/invite", result.CommunityURL)

	assert.Equal(t, vo.StatusUsed, tokenRepo.tokens[value].Status())

	require.Len(t, accessLog.entries, 1)
	entry := accessLog.entries[0]
	assert.Equal(t, "student@uni.ac.uk", entry.Email())
	assert.Equal(t, "successful_join", entry.Outcome())
	assert.Equal(t, vo.MethodUniversityEmail, entry.Method())
	require.NotNil(t, entry.HashedIP())
}

func TestRedeemToken_SecondAttemptFails(t *testing.T) {
	uc, tokenRepo, accessLog := newRedeemFixture(t)
	value := seedActiveToken(t, tokenRepo)

	_, err := uc.Execute(context.Background(), RedeemTokenCommand{Token: value})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), RedeemTokenCommand{Token: value})
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)

	assert.Len(t, accessLog.entries, 1, "a failed redemption must not add a join record")
}

func TestRedeemToken_MalformedToken(t *testing.T) {
	uc, _, _ := newRedeemFixture(t)

	for _, token := range []string{"", "short", strings.Repeat("d", 63), strings.Repeat("d", 65)} {
		result, err := uc.Execute(context.Background(), RedeemTokenCommand{Token: token})
		assert.Nil(t, result)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	}
}

func TestRedeemToken_UnknownToken(t *testing.T) {
	uc, _, _ := newRedeemFixture(t)

	result, err := uc.Execute(context.Background(), RedeemTokenCommand{Token: strings.Repeat("e", 64)})
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestRedeemToken_LogFailureDoesNotBlockJoin(t *testing.T) {
	uc, tokenRepo, accessLog := newRedeemFixture(t)
	value := seedActiveToken(t, tokenRepo)
	accessLog.appendErr = fmt.Errorf("disk full")

	result, err := uc.Execute(context.Background(), RedeemTokenCommand{Token: value})
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.org/invite", result.CommunityURL)
	assert.Equal(t, vo.StatusUsed, tokenRepo.tokens[value].Status())
}
