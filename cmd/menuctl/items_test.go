package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceorder-service/internal/ordering/model"
)

func TestParseItems(t *testing.T) {
	got, err := parseItems([]string{"garlic naan:2", "Gobi Manchurian:1:dry:note: extra spicy", "chai"})
	require.NoError(t, err)
	assert.Equal(t, []model.LineItemRequest{
		{Name: "garlic naan", Quantity: 2},
		{Name: "Gobi Manchurian", Quantity: 1, Style: "dry", Notes: "note: extra spicy"},
		{Name: "chai", Quantity: 1},
	}, got)
}

func TestParseItemsErrors(t *testing.T) {
	_, err := parseItems([]string{":2"})
	assert.Error(t, err)
	_, err = parseItems([]string{"naan:two"})
	assert.Error(t, err)
}
