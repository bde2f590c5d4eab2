package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanByName(t *testing.T) {
	t.Run("TestKnownPlans", func(t *testing.T) {
		cases := map[string]float64{
			"Go":   100,
			"Pro":  300,
			"Plus": 600,
		}
		for name, amount := range cases {
			plan, err := PlanByName(name)
			require.NoError(t, err)
			assert.Equal(t, amount, plan.Amount)
			assert.Contains(t, plan.PaymentLink, "https://rzp.io/rzp/")
		}
	})

	t.Run("TestUnknownPlan", func(t *testing.T) {
		_, err := PlanByName("Enterprise")
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})

	t.Run("TestNamesAreCaseSensitive", func(t *testing.T) {
		_, err := PlanByName("go")
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})
}
