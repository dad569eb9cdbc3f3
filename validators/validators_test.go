package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("alice@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("longenough"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 129)), ErrPasswordTooLong)
}

func TestItemValidator(t *testing.T) {
	assert.NoError(t, ItemValidator("Blue backpack", "Left on the 4pm bus"))
	assert.ErrorIs(t, ItemValidator("", "desc"), ErrTitleEmpty)
	assert.ErrorIs(t, ItemValidator(strings.Repeat("a", 201), ""), ErrTitleTooLong)
	assert.ErrorIs(t, ItemValidator("ok", strings.Repeat("a", 1001)), ErrDescriptionTooLong)
}

func TestNameValidator(t *testing.T) {
	assert.NoError(t, NameValidator("Alice"))
	assert.ErrorIs(t, NameValidator(""), ErrNameEmpty)
	assert.ErrorIs(t, NameValidator(strings.Repeat("a", 101)), ErrNameTooLong)
}
