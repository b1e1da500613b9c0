package password_test

import (
	"testing"

	"homestay/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("sup3r-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.NoError(t, password.Verify("sup3r-secret", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", ""), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pw", ""), password.ErrInvalidPassword)
}
