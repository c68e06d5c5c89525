package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarInitials(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two names", "Ada Lovelace", "AL"},
		{"single name", "Ada", "A"},
		{"lowercase input", "grace hopper", "GH"},
		{"three names keeps first two", "Jean Luc Picard", "JL"},
		{"empty name", "", "?"},
		{"whitespace only", "   ", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewAvatar(tt.input).Initials())
		})
	}
}

func TestAvatarViewContainsInitials(t *testing.T) {
	assert.Contains(t, NewAvatar("Ada Lovelace").View(), "AL")
}

func TestFamilyForNameIsDeterministic(t *testing.T) {
	first := familyForName("Ada Lovelace")
	second := familyForName("Ada Lovelace")

	assert.Equal(t, first, second)
	assert.Contains(t, avatarFamilies, first)
}

func TestAvatarWithFamilyPinsColour(t *testing.T) {
	avatar := NewAvatar("Ada Lovelace").WithFamily(PaletteRed)

	assert.Equal(t, PaletteRed, avatar.family)
	assert.True(t, avatar.pinned)
}

func TestAvatarSizeChangesPadding(t *testing.T) {
	small := NewAvatar("A").WithSize(SizeSmall).View()
	large := NewAvatar("A").WithSize(SizeLarge).View()

	assert.Less(t, len(small), len(large))
}

func TestAvatarSetNameChangesInitials(t *testing.T) {
	avatar := NewAvatar("Ada Lovelace")
	avatar.SetName("Grace Hopper")

	assert.Equal(t, "GH", avatar.Initials())
	assert.Equal(t, "Grace Hopper", avatar.Name())
}
