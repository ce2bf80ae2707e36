package rumble

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutations_Triple(t *testing.T) {
	for _, comb := range []string{"000", "555", "777", "999"} {
		assert.Empty(t, Permutations(comb), "triple %s must have no permutations", comb)
	}
}

func TestPermutations_Double(t *testing.T) {
	perms := Permutations("772")

	require.Len(t, perms, 3)
	assert.ElementsMatch(t, []string{"772", "727", "277"}, perms)
}

func TestPermutations_Distinct(t *testing.T) {
	perms := Permutations("123")

	require.Len(t, perms, 6)
	assert.ElementsMatch(t, []string{"123", "132", "213", "231", "312", "321"}, perms)
}

// Перебор всех 1000 трехзначных комбинаций: количество перестановок
// определяется структурой повторов, дубликатов нет, каждая перестановка -
// та же мультимножина цифр
func TestPermutations_AllThreeDigit(t *testing.T) {
	for i := 0; i < 1000; i++ {
		comb := string([]byte{'0' + byte(i/100), '0' + byte(i/10%10), '0' + byte(i%10)})
		perms := Permutations(comb)

		expected := 6
		switch {
		case comb[0] == comb[1] && comb[1] == comb[2]:
			expected = 0
		case comb[0] == comb[1] || comb[1] == comb[2] || comb[0] == comb[2]:
			expected = 3
		}
		require.Len(t, perms, expected, "combination %s", comb)

		seen := make(map[string]struct{})
		for _, p := range perms {
			_, dup := seen[p]
			require.False(t, dup, "duplicate permutation %s of %s", p, comb)
			seen[p] = struct{}{}
			require.Equal(t, sortedDigits(comb), sortedDigits(p))
		}
	}
}

func TestPermutations_ShortInputs(t *testing.T) {
	assert.Equal(t, []string{""}, Permutations(""))
	assert.Equal(t, []string{"7"}, Permutations("7"))
	assert.ElementsMatch(t, []string{"12", "21"}, Permutations("12"))
	assert.Empty(t, Permutations("44"))
}

func TestPermutations_Deterministic(t *testing.T) {
	assert.Equal(t, Permutations("594"), Permutations("594"))
}

func sortedDigits(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}
