package showcase

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/form"
	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// Focus zones on the login screen. Zone zero is the form; the zones
// after it are the submit button and then one per provider.
const (
	zoneFields = 0
	zoneSubmit = 1
)

// loginScreen demonstrates live validation plus a simulated sign-in.
// Nothing authenticates; submit just spins for a moment and succeeds.
type loginScreen struct {
	form      *form.Form
	spinner   spinner.Model
	providers []string

	zone     int
	pending  bool
	provider string
	done     bool
	account  string
	nag      bool
}

func newLoginScreen(withProviders bool) *loginScreen {
	email := form.NewField("Email", form.Email()).
		WithPlaceholder("you@example.com")
	password := form.NewField("Password", form.Password()).
		WithEchoPassword().
		WithPlaceholder("at least 8 characters")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = pendingStyle

	var providers []string
	if withProviders {
		providers = []string{"GitHub", "Google"}
	}

	return &loginScreen{
		form:      form.New(email, password),
		spinner:   s,
		providers: providers,
	}
}

func (l *loginScreen) zoneCount() int {
	return 2 + len(l.providers)
}

func (l *loginScreen) Init() tea.Cmd {
	if l.pending {
		// The completion message may have landed elsewhere while this
		// screen was off the top of the path. Start over.
		l.pending = false
		l.provider = ""
	}
	if l.zone == zoneFields {
		return l.focusForm()
	}
	return nil
}

func (l *loginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !l.pending {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case SignInDoneMsg:
		if msg.Route != router.RouteLogin || !l.pending {
			return l, nil
		}
		l.pending = false
		l.done = true
		l.provider = msg.Provider
		l.account = msg.Account
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l *loginScreen) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	if l.pending {
		return l, nil
	}

	if l.done {
		switch msg.String() {
		case "enter", "r":
			l.done = false
			l.account = ""
			l.provider = ""
			l.zone = zoneFields
			return l, l.form.Reset()
		}
		return l, nil
	}

	switch msg.String() {
	case "tab", "down":
		if l.zone == zoneFields && l.form.FocusIndex() < len(l.form.Fields())-1 {
			return l, l.form.Next()
		}
		return l, l.setZone(l.zone + 1)

	case "shift+tab", "up":
		if l.zone == zoneFields && l.form.FocusIndex() > 0 {
			return l, l.form.Prev()
		}
		return l, l.setZone(l.zone - 1)

	case "enter":
		switch {
		case l.zone == zoneFields:
			if l.form.FocusIndex() < len(l.form.Fields())-1 {
				return l, l.form.Next()
			}
			return l, l.setZone(zoneSubmit)
		case l.zone == zoneSubmit:
			return l, l.submit()
		default:
			return l, l.startProvider(l.providers[l.zone-2])
		}
	}

	if l.zone == zoneFields {
		return l, l.form.Update(msg)
	}
	return l, nil
}

// setZone moves focus with wrapping, blurring the form on the way out.
func (l *loginScreen) setZone(zone int) tea.Cmd {
	count := l.zoneCount()
	zone = ((zone % count) + count) % count

	if l.zone == zoneFields && zone != zoneFields {
		l.blurForm()
	}

	l.zone = zone
	if zone == zoneFields {
		return l.focusForm()
	}
	return nil
}

func (l *loginScreen) focusForm() tea.Cmd {
	fields := l.form.Fields()
	if len(fields) == 0 {
		return nil
	}
	return fields[l.form.FocusIndex()].Focus()
}

func (l *loginScreen) blurForm() {
	for _, field := range l.form.Fields() {
		field.Blur()
	}
}

func (l *loginScreen) submit() tea.Cmd {
	if !l.form.CanSubmit() {
		l.nag = true
		return nil
	}

	l.nag = false
	l.pending = true
	account := l.form.Fields()[0].Value()
	return tea.Batch(l.spinner.Tick, signInCmd(router.RouteLogin, "", account))
}

func (l *loginScreen) startProvider(provider string) tea.Cmd {
	l.nag = false
	l.pending = true
	l.provider = provider
	return tea.Batch(l.spinner.Tick, signInCmd(router.RouteLogin, provider, ""))
}

func (l *loginScreen) View(ctx components.RenderContext) string {
	theme := ctx.Theme

	if l.done {
		message := "Signed in as " + l.account + "."
		if l.provider != "" {
			message = "Signed in with " + l.provider + "."
		}
		page := components.VStack(
			components.NewHeader("Log in"),
			components.VerticalSpacer(1),
			components.SuccessAlert(message).WithTitle("Welcome back"),
			components.VerticalSpacer(1),
			components.NewText("enter starts over").
				WithAppliers(components.Typography(components.TypographyVariantCaption)),
		).WithGap(0)
		return page.ViewWithContext(ctx)
	}

	sections := []ui.Renderable{
		components.NewHeader("Log in").
			WithSubtitle("Validation runs on every keystroke"),
		components.VerticalSpacer(1),
		rawText(l.form.View(theme)),
		components.VerticalSpacer(1),
		components.PrimaryButton("Sign in").
			WithActive(l.zone == zoneSubmit).
			WithDisabled(!l.form.CanSubmit()),
	}

	if l.nag {
		sections = append(sections,
			components.WarningAlert("Complete the form before signing in."))
	}

	if len(l.providers) > 0 {
		buttons := make([]ui.Renderable, 0, len(l.providers))
		for i, provider := range l.providers {
			buttons = append(buttons, components.OutlineButton(provider).
				WithActive(l.zone == i+2))
		}
		sections = append(sections,
			components.VerticalSpacer(1),
			components.NewDivider().WithLabel("or continue with"),
			components.HStack(buttons...).WithGap(1),
		)
	}

	if l.pending {
		target := "your account"
		if l.provider != "" {
			target = l.provider
		}
		sections = append(sections,
			components.VerticalSpacer(1),
			rawText(l.spinner.View()+" Signing in with "+target+"..."),
		)
	}

	sections = append(sections,
		components.VerticalSpacer(1),
		components.NewText("tab moves focus, enter submits").
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
	)

	return components.VStack(sections...).WithGap(0).ViewWithContext(ctx)
}

func (l *loginScreen) CapturesInput() bool {
	return l.zone == zoneFields && !l.pending && !l.done
}

// rawText wraps an already-styled string so stacks can hold it.
func rawText(s string) ui.Renderable {
	return components.NewText(s)
}
