package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("a"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0195c2f3-1f7e-7d31-8a42-3f9be2a4c0d1"))
	assert.True(t, IsValidUUID("C56A4180-65AA-42EC-A945-5FD21DEC0538"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-01")
	assert.True(t, ok)

	_, ok = IsValidDate("01-03-2025")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("entrada", []string{"entrada", "saida"}))
	assert.False(t, IsInSlice("almoco", []string{"entrada", "saida"}))
}

func TestCoordinateBounds(t *testing.T) {
	assert.True(t, IsValidLatitude(38.7223))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.0001))

	assert.True(t, IsValidLongitude(-9.1393))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}
