package showcase

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// typographyScreen shows the text treatments on the theme's type scale.
type typographyScreen struct {
	viewport viewport.Model
}

func newTypographyScreen() *typographyScreen {
	return &typographyScreen{viewport: newPageViewport()}
}

func (t *typographyScreen) Init() tea.Cmd { return nil }

func (t *typographyScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		resizePage(&t.viewport, size)
		return t, nil
	}

	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

func (t *typographyScreen) View(ctx components.RenderContext) string {
	t.viewport.SetContent(typographyContent(ctx))
	return t.viewport.View()
}

func (t *typographyScreen) CapturesInput() bool { return false }

func typographyContent(ctx components.RenderContext) string {
	page := components.VStack(
		components.NewHeader("Typography").
			WithSubtitle("Text treatments on the theme's type scale"),
		components.VerticalSpacer(1),
		sample("Title", components.TitleText("The quick brown fox")),
		sample("Subtitle", components.SubtitleText("Jumps over the lazy dog")),
		sample("Body", components.NewText("Plain copy for paragraphs and descriptions.")),
		sample("Bold", components.BoldText("Weight for phrases that matter.")),
		sample("Emphasis", components.EmphasisText("Quiet asides and fine print.")),
		sample("Code", components.CodeText("curio gallery --theme dark")),
		sample("Label", components.LabelText("Form labels and annotations")),
		sample("Caption", components.CaptionText("Captions sit under content.")),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Headers"),
		components.NewHeader("Level one heading").WithLevel(1),
		components.NewHeader("Level two heading").WithLevel(2),
		components.NewHeader("Level three heading").WithLevel(3),
	).WithGap(0)

	return page.ViewWithContext(ctx)
}

// sample pairs a swatch name with the rendered treatment.
func sample(name string, text ui.Renderable) ui.Renderable {
	tag := components.NewText(name).
		WithStyle(lipgloss.NewStyle().Width(10)).
		WithAppliers(components.Typography(components.TypographyVariantCaption))
	return components.HStack(tag, text)
}
