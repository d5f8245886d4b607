package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestIsLuhn(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		valid := []string{
			"4111111111111111", // Visa test number
			"5500000000000004", // Mastercard test number
			"378282246310005",  // Amex test number
			"79927398713",
			"18",
		}
		for _, v := range valid {
			assert.True(t, validator.IsLuhn(v), "value %q", v)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalid := []string{
			"4111111111111112",
			"79927398710",
			"",
			"0",
			"0000",
			"4111-1111-1111-1111",
			"4111 1111 1111 1111",
			"-18",
			"abc",
		}
		for _, v := range invalid {
			assert.False(t, validator.IsLuhn(v), "value %q", v)
		}
	})
}

func TestCreditCard(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.CreditCard("card", "4111111111111111")))

	err := validator.Apply(validator.CreditCard("card", "4111111111111112"))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.credit_card", verrs[0].TranslationKey)
	assert.Equal(t, "invalid credit card number", verrs[0].Message)
}
