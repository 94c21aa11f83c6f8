package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 9}, 7))
	require.Equal(t, -1, FindIndex([]int{4, 7, 9}, 5), "Absent items report -1")
}

func TestRemove(t *testing.T) {
	t.Run("removing a present item keeps the order", func(t *testing.T) {
		got := Remove([]int{4, 7, 9}, 7)
		require.Equal(t, []int{4, 9}, got)
	})

	t.Run("removing an absent item changes nothing", func(t *testing.T) {
		got := Remove([]int{4, 7, 9}, 5)
		require.Equal(t, []int{4, 7, 9}, got)
	})
}
