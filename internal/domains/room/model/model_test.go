package model_test

import (
	"testing"

	"homestay/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistryEmpty(t *testing.T) {
	rooms, err := model.ParseRegistry("")
	require.NoError(t, err)
	assert.Equal(t, model.Defaults(), rooms)
}

func TestParseRegistryOverride(t *testing.T) {
	rooms, err := model.ParseRegistry("2001:Suite A:room;2002:Garden Hut:bungalow;")
	require.NoError(t, err)

	require.Len(t, rooms, 2)
	assert.Equal(t, model.Room{ID: "2001", Label: "Suite A", Category: "room"}, rooms[0])
	assert.Equal(t, model.Room{ID: "2002", Label: "Garden Hut", Category: "bungalow"}, rooms[1])
}

func TestParseRegistryInvalid(t *testing.T) {
	_, err := model.ParseRegistry("2001:Suite A")
	assert.Error(t, err)

	_, err = model.ParseRegistry("2001:Suite A:penthouse")
	assert.Error(t, err)

	_, err = model.ParseRegistry(" ; ")
	assert.Error(t, err)
}
