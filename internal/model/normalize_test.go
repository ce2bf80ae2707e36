package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPad(t *testing.T) {
	assert.Equal(t, "07", ZeroPad("7", 2))
	assert.Equal(t, "042", ZeroPad("42", 3))
	assert.Equal(t, "123", ZeroPad("123", 3))
	assert.Equal(t, "1234", ZeroPad("1234", 3), "longer input is left as is")
	assert.Equal(t, "00", ZeroPad("", 2))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("042"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("4x"))
	assert.False(t, IsDigits("-42"))
}

func TestNormalizeDrawTime(t *testing.T) {
	assert.Equal(t, "11:00:00", NormalizeDrawTime("11:00"))
	assert.Equal(t, "11:00:00", NormalizeDrawTime("11:00:00"))
	assert.Equal(t, "21:00:00", NormalizeDrawTime(" 21:00 "))
}

func TestGameTitleWidth(t *testing.T) {
	assert.Equal(t, 2, GameLastTwo.Width())
	assert.Equal(t, 3, GameSwertres.Width())
	assert.True(t, GameLastTwo.Valid())
	assert.False(t, GameTitle("PICK_FOUR").Valid())
}
