package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Move(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})

	assert.Equal(t, 0, l.MoveUp(0))
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	assert.Equal(t, 1, l.MoveUp(2))
	assert.Equal(t, []string{"a", "c", "b"}, l.Items())

	assert.Equal(t, 2, l.MoveDown(1))
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	assert.Equal(t, 2, l.MoveDown(2))
	assert.Equal(t, 5, l.MoveDown(5))
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())
}

func TestList_Remove(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d"})
	l.Remove(3, 1, 1, 9, -1)
	assert.Equal(t, []string{"a", "c"}, l.Items())
	assert.Equal(t, 2, l.Len())

	l.Remove()
	assert.Equal(t, 2, l.Len())
}

func TestList_ItemsIsACopy(t *testing.T) {
	names := []string{"a", "b"}
	l := NewList(names)
	names[0] = "z"
	items := l.Items()
	items[1] = "y"
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []int
	}{
		{"empty keeps order", "", 3, []int{0, 1, 2}},
		{"full permutation", "3,1,2", 3, []int{2, 0, 1}},
		{"spaces and semicolons", " 2 ; 3  1 ", 3, []int{1, 2, 0}},
		{"prefix", "4", 4, []int{3, 0, 1, 2}},
		{"prefix of two", "3, 1", 4, []int{2, 0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, text := range []string{"x", "0", "4", "1,1", "2,-1"} {
		_, err := Parse(text, 3)
		assert.ErrorIs(t, err, ErrInvalidOrder, "text %q", text)
	}
}

func TestList_Apply(t *testing.T) {
	l := NewList([]string{"Mat", "Port", "Hist"})
	order, err := Parse("3", l.Len())
	require.NoError(t, err)
	require.NoError(t, l.Apply(order))
	assert.Equal(t, []string{"Hist", "Mat", "Port"}, l.Items())

	assert.ErrorIs(t, l.Apply([]int{0, 1}), ErrInvalidOrder)
	assert.ErrorIs(t, l.Apply([]int{0, 0, 1}), ErrInvalidOrder)
	assert.Equal(t, []string{"Hist", "Mat", "Port"}, l.Items())
}
