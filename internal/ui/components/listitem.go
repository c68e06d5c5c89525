package components

import (
	"github.com/curio-ui/curio/internal/ui"
)

// ListItem is a single row in a list: optional leading element, a title,
// an optional subtitle, and an optional trailing accessory. It covers the
// common settings-row and contact-row patterns.
type ListItem struct {
	BaseComponent
	leading  ui.Renderable
	title    string
	subtitle string
	trailing ui.Renderable
	selected bool
}

// NewListItem creates a list item with the given title.
func NewListItem(title string) *ListItem {
	return &ListItem{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the list item.
func (li *ListItem) View() string {
	return li.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the list item with the given theme context.
func (li *ListItem) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var body ui.Renderable
	if li.subtitle != "" {
		body = VStack(
			NewText(li.title).WithAppliers(Typography(TypographyVariantEmphasis)),
			CaptionText(li.subtitle),
		)
	} else {
		body = NewText(li.title)
	}

	row := make([]ui.Renderable, 0, 5)
	if li.leading != nil {
		row = append(row, li.leading, HorizontalSpacer(1))
	}
	row = append(row, body)
	if li.trailing != nil {
		row = append(row, HorizontalSpacer(2), li.trailing)
	}

	stack := HStack(row...).WithCrossAlign(CrossCenter)

	style := li.ComputeStyle(theme)
	if li.selected {
		style = style.
			Background(theme.Palette.Surface.Muted).
			Bold(true)
	}

	return style.Render(stack.ViewWithContext(ctx))
}

// WithLeading sets the leading element, typically an icon or avatar.
func (li *ListItem) WithLeading(leading ui.Renderable) *ListItem {
	li.leading = leading
	return li
}

// WithSubtitle sets the secondary line below the title.
func (li *ListItem) WithSubtitle(subtitle string) *ListItem {
	li.subtitle = subtitle
	return li
}

// WithTrailing sets the trailing accessory, typically a chevron, badge or
// value.
func (li *ListItem) WithTrailing(trailing ui.Renderable) *ListItem {
	li.trailing = trailing
	return li
}

// WithSelected sets the selected state.
func (li *ListItem) WithSelected(selected bool) *ListItem {
	li.selected = selected
	return li
}

// Title returns the item title.
func (li *ListItem) Title() string {
	return li.title
}

// Subtitle returns the item subtitle.
func (li *ListItem) Subtitle() string {
	return li.subtitle
}

// IsSelected reports whether the item is selected.
func (li *ListItem) IsSelected() bool {
	return li.selected
}

// DisclosureItem creates a list item with a trailing chevron, the
// navigation-row pattern.
func DisclosureItem(title string) *ListItem {
	return NewListItem(title).WithTrailing(CaptionText("›"))
}
