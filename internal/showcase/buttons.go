package showcase

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// buttonVariants is the focus order on the buttons screen.
var buttonVariants = []struct {
	label string
	build func(string) *components.Button
}{
	{"Primary", components.PrimaryButton},
	{"Secondary", components.SecondaryButton},
	{"Success", components.SuccessButton},
	{"Danger", components.DangerButton},
	{"Warning", components.WarningButton},
	{"Info", components.InfoButton},
	{"Muted", components.MutedButton},
}

// buttonsScreen walks through the button variants, sizes and states.
// Left and right move focus; enter records a press.
type buttonsScreen struct {
	viewport viewport.Model
	cursor   int
	pressed  string
}

func newButtonsScreen() *buttonsScreen {
	return &buttonsScreen{viewport: newPageViewport()}
}

func (b *buttonsScreen) Init() tea.Cmd { return nil }

func (b *buttonsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		resizePage(&b.viewport, msg)
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			b.cursor--
			if b.cursor < 0 {
				b.cursor = len(buttonVariants) - 1
			}
			return b, nil
		case "right", "l", "tab":
			b.cursor++
			if b.cursor >= len(buttonVariants) {
				b.cursor = 0
			}
			return b, nil
		case "enter", " ":
			b.pressed = buttonVariants[b.cursor].label
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

func (b *buttonsScreen) View(ctx components.RenderContext) string {
	variants := make([]ui.Renderable, 0, len(buttonVariants))
	for i, v := range buttonVariants {
		variants = append(variants, v.build(v.label).WithActive(i == b.cursor))
	}

	feedback := "left/right select, enter press"
	if b.pressed != "" {
		feedback = "pressed " + b.pressed
	}

	page := components.VStack(
		components.NewHeader("Buttons").
			WithSubtitle("Variants, sizes and states"),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Variants"),
		components.HStack(variants...).WithGap(1),
		components.NewText(feedback).
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Sizes"),
		components.HStack(
			components.PrimaryButton("Small").WithSize(components.SizeSmall),
			components.PrimaryButton("Medium"),
			components.PrimaryButton("Large").WithSize(components.SizeLarge),
		).WithGap(1).WithCrossAlign(components.CrossCenter),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("States"),
		components.HStack(
			components.PrimaryButton("Disabled").WithDisabled(true),
			components.PrimaryButton("Active").WithActive(true),
			components.SuccessButton("Save").WithIcon("✓"),
		).WithGap(1),
		components.VerticalSpacer(1),
		components.NewDivider().WithLabel("Quiet styles"),
		components.HStack(
			components.OutlineButton("Outline"),
			components.GhostButton("Ghost"),
			components.LinkButton("Learn more"),
			components.IconButton("⚙"),
		).WithGap(1).WithCrossAlign(components.CrossCenter),
	).WithGap(0)

	b.viewport.SetContent(page.ViewWithContext(ctx))
	return b.viewport.View()
}

func (b *buttonsScreen) CapturesInput() bool { return false }
