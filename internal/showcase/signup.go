package showcase

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curio-ui/curio/internal/form"
	"github.com/curio-ui/curio/internal/router"
	"github.com/curio-ui/curio/internal/ui"
	"github.com/curio-ui/curio/internal/ui/components"
)

// signupScreen demonstrates the confirmation-matching rule. The confirm
// field re-reads the password on every keystroke, so editing either
// field updates the match state.
type signupScreen struct {
	form    *form.Form
	spinner spinner.Model

	onSubmit bool
	pending  bool
	done     bool
	account  string
	nag      bool
}

func newSignupScreen() *signupScreen {
	name := form.NewField("Name", form.Required()).
		WithPlaceholder("Ada Lovelace")
	email := form.NewField("Email", form.Email()).
		WithPlaceholder("you@example.com")
	password := form.NewField("Password", form.Password()).
		WithEchoPassword().
		WithPlaceholder("at least 8 characters")
	confirm := form.NewField("Confirm password", form.Match(password.Value)).
		WithEchoPassword()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = pendingStyle

	return &signupScreen{
		form:    form.New(name, email, password, confirm),
		spinner: s,
	}
}

func (s *signupScreen) Init() tea.Cmd {
	if s.pending {
		s.pending = false
	}
	if !s.onSubmit {
		fields := s.form.Fields()
		return fields[s.form.FocusIndex()].Focus()
	}
	return nil
}

func (s *signupScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.pending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case SignInDoneMsg:
		if msg.Route != router.RouteSignup || !s.pending {
			return s, nil
		}
		s.pending = false
		s.done = true
		s.account = msg.Account
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *signupScreen) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	if s.pending {
		return s, nil
	}

	if s.done {
		switch msg.String() {
		case "enter", "r":
			s.done = false
			s.account = ""
			s.onSubmit = false
			return s, s.form.Reset()
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		if !s.onSubmit && s.form.FocusIndex() < len(s.form.Fields())-1 {
			return s, s.form.Next()
		}
		if !s.onSubmit {
			s.onSubmit = true
			s.blurForm()
			return s, nil
		}
		s.onSubmit = false
		return s, s.form.Fields()[s.form.FocusIndex()].Focus()

	case "shift+tab", "up":
		if s.onSubmit {
			s.onSubmit = false
			return s, s.form.Fields()[s.form.FocusIndex()].Focus()
		}
		if s.form.FocusIndex() > 0 {
			return s, s.form.Prev()
		}
		return s, nil

	case "enter":
		if !s.onSubmit {
			if s.form.FocusIndex() < len(s.form.Fields())-1 {
				return s, s.form.Next()
			}
			s.onSubmit = true
			s.blurForm()
			return s, nil
		}
		return s, s.submit()
	}

	if !s.onSubmit {
		return s, s.form.Update(msg)
	}
	return s, nil
}

func (s *signupScreen) blurForm() {
	for _, field := range s.form.Fields() {
		field.Blur()
	}
}

func (s *signupScreen) submit() tea.Cmd {
	if !s.form.CanSubmit() {
		s.nag = true
		return nil
	}

	s.nag = false
	s.pending = true
	account := s.form.Fields()[0].Value()
	return tea.Batch(s.spinner.Tick, signInCmd(router.RouteSignup, "", account))
}

func (s *signupScreen) View(ctx components.RenderContext) string {
	theme := ctx.Theme

	if s.done {
		page := components.VStack(
			components.NewHeader("Sign up"),
			components.VerticalSpacer(1),
			components.SuccessAlert("Account created for "+s.account+".").
				WithTitle("All set"),
			components.VerticalSpacer(1),
			components.NewText("enter starts over").
				WithAppliers(components.Typography(components.TypographyVariantCaption)),
		).WithGap(0)
		return page.ViewWithContext(ctx)
	}

	sections := []ui.Renderable{
		components.NewHeader("Sign up").
			WithSubtitle("Both password fields track each other"),
		components.VerticalSpacer(1),
		rawText(s.form.View(theme)),
		components.VerticalSpacer(1),
		components.SuccessButton("Create account").
			WithActive(s.onSubmit).
			WithDisabled(!s.form.CanSubmit()),
	}

	if s.nag {
		sections = append(sections,
			components.WarningAlert("Complete the form before continuing."))
	}

	if s.pending {
		sections = append(sections,
			components.VerticalSpacer(1),
			rawText(s.spinner.View()+" Creating your account..."),
		)
	}

	sections = append(sections,
		components.VerticalSpacer(1),
		components.NewText("tab moves focus, enter submits").
			WithAppliers(components.Typography(components.TypographyVariantCaption)),
	)

	return components.VStack(sections...).WithGap(0).ViewWithContext(ctx)
}

func (s *signupScreen) CapturesInput() bool {
	return !s.onSubmit && !s.pending && !s.done
}
