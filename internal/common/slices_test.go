package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmptyIsSingle(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))
	assert.False(t, IsSingle([]string{}))
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "bean", "avocado", "carrot", "beet", "apricot"}

	groups := GroupBy(words, func(s string) byte { return s[0] })

	assert.Equal(t, [][]string{
		{"apple", "avocado", "apricot"},
		{"bean", "beet"},
		{"carrot"},
	}, groups)
}

func TestGroupByEmpty(t *testing.T) {
	assert.Empty(t, GroupBy([]int(nil), func(i int) int { return i }))
}
