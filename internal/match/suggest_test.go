package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"Account", "AccountCertificate", "Agreement", "Profile"}

	assert.Equal(t, []string{"Account"}, Suggest("Acount", known, 3, DefaultMinScore))
	assert.Equal(t, []string{"Profile"}, Suggest("profile", known, 3, DefaultMinScore))
	assert.Empty(t, Suggest("Zebra", known, 3, DefaultMinScore))
	assert.Empty(t, Suggest("Account", []string{"Account"}, 3, DefaultMinScore), "exact name is not a suggestion")
}

func TestSuggestOrderAndLimit(t *testing.T) {
	known := []string{"Itemz", "Item", "Items"}

	// "Item" is identical after normalization, then the two one-edit names keep input order.
	assert.Equal(t, []string{"Item", "Itemz", "Items"}, Suggest("ITEM", known, 0, 0.5))
	assert.Equal(t, []string{"Item"}, Suggest("ITEM", known, 1, 0.5))
}
