package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryFieldName(t *testing.T) {
	require.Equal(t, "earthquake", CategoryEarthquake.FieldName())
	require.Equal(t, "flash_flood", CategoryFlashFlood.FieldName())
	require.Equal(t, "forest_fire", CategoryForestFire.FieldName())
	require.Equal(t, "accident", CategoryAccident.FieldName())
	require.Equal(t, "others", CategoryOthers.FieldName())
}

func TestJoinCategories(t *testing.T) {
	require.Equal(t, Uncategorized, JoinCategories(nil))
	require.Equal(t, Uncategorized, JoinCategories(map[Category]bool{CategoryOthers: false}))

	require.Equal(t, "Earthquake", JoinCategories(map[Category]bool{CategoryEarthquake: true}))

	// Vocabulary order regardless of map iteration order.
	require.Equal(t, "Earthquake,Accident", JoinCategories(map[Category]bool{
		CategoryAccident:   true,
		CategoryEarthquake: true,
	}))

	require.Equal(t, "Earthquake,Flash Flood,Forest Fire,Accident,Others", JoinCategories(map[Category]bool{
		CategoryEarthquake: true,
		CategoryFlashFlood: true,
		CategoryForestFire: true,
		CategoryAccident:   true,
		CategoryOthers:     true,
	}))
}
