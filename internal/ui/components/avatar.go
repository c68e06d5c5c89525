package components

import (
	"hash/fnv"
	"strings"
	"unicode"
)

// Avatar renders a person's initials inside a coloured cell. The colour
// is derived from the name so the same person always gets the same hue.
type Avatar struct {
	BaseComponent
	name   string
	size   ControlSize
	family PaletteFamily
	pinned bool
}

// Colour families avatars rotate through. Slate is excluded so avatars
// stand out against surface backgrounds.
var avatarFamilies = []PaletteFamily{
	PaletteBlue,
	PaletteGreen,
	PaletteRed,
	PaletteYellow,
	PaletteOrange,
	PalettePurple,
	PaletteCyan,
}

// NewAvatar creates an avatar for the given display name.
func NewAvatar(name string) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		name:          name,
		size:          SizeMedium,
	}
}

// View renders the avatar.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar with the given theme context.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	family := a.family
	if !a.pinned {
		family = familyForName(a.name)
	}

	style := BackgroundPalette(theme, family, PaletteShade600).
		Foreground(theme.Colors.Shades(family).Color(PaletteShade50)).
		Bold(true)

	switch a.size {
	case SizeSmall:
		style = style.Padding(0, 0)
	case SizeLarge:
		style = style.Padding(1, 2)
	default:
		style = style.Padding(0, 1)
	}

	return a.ComputeStyle(theme).Inherit(style).Render(a.Initials())
}

// Initials returns up to two uppercase initials from the name.
func (a *Avatar) Initials() string {
	fields := strings.Fields(a.name)
	if len(fields) == 0 {
		return "?"
	}

	var initials []rune
	for _, field := range fields {
		for _, r := range field {
			initials = append(initials, unicode.ToUpper(r))
			break
		}
		if len(initials) == 2 {
			break
		}
	}

	return string(initials)
}

func familyForName(name string) PaletteFamily {
	h := fnv.New32a()
	h.Write([]byte(name))
	return avatarFamilies[int(h.Sum32())%len(avatarFamilies)]
}

// WithSize sets the avatar size.
func (a *Avatar) WithSize(size ControlSize) *Avatar {
	a.size = size
	return a
}

// WithFamily pins the avatar to a specific colour family instead of the
// name-derived one.
func (a *Avatar) WithFamily(family PaletteFamily) *Avatar {
	a.family = family
	a.pinned = true
	return a
}

// Name returns the display name.
func (a *Avatar) Name() string {
	return a.name
}

// SetName updates the display name.
func (a *Avatar) SetName(name string) *Avatar {
	a.name = name
	return a
}
