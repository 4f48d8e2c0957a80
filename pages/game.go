package pages

import (
	"fmt"
	"time"

	"github.com/go-rod/pom"
)

// GamePage is the page with the login form, the help form, the cookies modal and the timer
type GamePage struct {
	*pom.Element
	*AvatarAndInterestsPage
	*HelpForm
	*CookiesForm

	sess *pom.Session

	LoginForm                *pom.Label
	PasswordInput            *pom.Input
	EmailInput               *pom.Input
	DomainInput              *pom.Input
	TLDDropdown              *pom.Dropdown
	CommonDropdown           *pom.Dropdown
	AcceptConditionsCheckbox *pom.Checkbox
	NextButton               *pom.Button
	Timer                    *pom.Label
}

// NewGamePage on the session
func NewGamePage(s *pom.Session) *GamePage {
	root := pom.Page(".game", "Game page")
	row := func(css string) pom.Selector {
		return pom.CSS(".login-form__field-row " + css)
	}
	next := pom.CSS(".button-container__secondary .button--secondary").WithText("Next")

	return &GamePage{
		Element:                s.Element(root),
		AvatarAndInterestsPage: avatarAndInterests(s, root),
		HelpForm:               helpForm(s, root),
		CookiesForm:            cookiesForm(s, root),

		sess: s,

		LoginForm:                s.Label(root.Child(pom.CSS(".login-form__container"), "Login form", pom.RoleLabel)),
		PasswordInput:            s.Input(root.Child(row(`input[placeholder="Choose Password"]`), "Password field", pom.RoleInput)),
		EmailInput:               s.Input(root.Child(row(`input[placeholder="Your email"]`), "Email field", pom.RoleInput)),
		DomainInput:              s.Input(root.Child(row(`input[placeholder="Domain"]`), "Domain field", pom.RoleInput)),
		TLDDropdown:              s.Dropdown(root.Child(row(".dropdown__field"), "TLD dropdown", pom.RoleDropdown)),
		CommonDropdown:           s.Dropdown(root.Child(pom.CSS(".dropdown__list"), "Dropdown", pom.RoleDropdown)),
		AcceptConditionsCheckbox: s.Checkbox(root.Child(pom.CSS(".checkbox"), "Accept conditions checkbox", pom.RoleCheckbox)),
		NextButton:               s.Button(root.Child(next, "Next button", pom.RoleButton)),
		Timer:                    s.Label(root.Child(pom.CSS(".timer"), "Timer", pom.RoleLabel)),
	}
}

func (p *GamePage) element(c Component) *pom.Element {
	return p.sess.Element(c.Descriptor())
}

// IsExisting returns true if the component exists before the wait times out
func (p *GamePage) IsExisting(c Component) (bool, error) {
	return p.element(c).IsExisting()
}

func (p *GamePage) fill(in *pom.Input, text string) error {
	err := in.Clear()
	if err != nil {
		return err
	}
	return in.SendKeys(text)
}

// EnterPassword clears the password field and types the password
func (p *GamePage) EnterPassword(password string) error {
	return p.fill(p.PasswordInput, password)
}

// EnterEmail clears the email field and types the email
func (p *GamePage) EnterEmail(email string) error {
	return p.fill(p.EmailInput, email)
}

// EnterDomain clears the domain field and types the domain
func (p *GamePage) EnterDomain(domain string) error {
	return p.fill(p.DomainInput, domain)
}

// SelectRandomTLD opens the TLD dropdown and selects a random option other than the first one.
// It returns the text of the selected option.
func (p *GamePage) SelectRandomTLD() (string, error) {
	err := p.TLDDropdown.Open()
	if err != nil {
		return "", err
	}

	options, err := p.CommonDropdown.OptionValues()
	if err != nil {
		return "", err
	}
	if len(options) < 2 {
		return "", fmt.Errorf("the TLD dropdown has %d options, at least 2 are required", len(options))
	}

	i := p.Gen.IntInclusive(1, len(options)-1)
	return options[i], p.CommonDropdown.SelectByIndex(i)
}

// AcceptConditions clicks the accept conditions checkbox
func (p *GamePage) AcceptConditions() error {
	return p.AcceptConditionsCheckbox.Click()
}

// GoToNextStep submits the login form
func (p *GamePage) GoToNextStep() error {
	return p.NextButton.Click()
}

// IsCorrectStyle returns true if the css property of the component equals the expected value
// before the wait times out. The optional timeout overrides the wait timeout of the session.
func (p *GamePage) IsCorrectStyle(c Component, name, expected string, timeout ...time.Duration) (bool, error) {
	el := p.element(c)
	if len(timeout) > 0 {
		el = el.Within(timeout[0])
	}
	return el.WaitStyle(name, expected)
}

// Style returns the current value of the css property of the component
func (p *GamePage) Style(c Component, name string) (string, error) {
	return p.element(c).StyleProperty(name)
}

// Attributes of the component
func (p *GamePage) Attributes(c Component) (pom.Attributes, error) {
	return p.element(c).Attributes()
}

// Time on the timer
func (p *GamePage) Time() (string, error) {
	return p.Timer.TextContent()
}

// Register fills the login form with random data from the generator and submits it
func (p *GamePage) Register(passwordLength, emailLength, domainLength int) error {
	password := p.Gen.Password(passwordLength)

	for _, step := range []func() error{
		func() error { return p.EnterPassword(password) },
		func() error { return p.EnterEmail(p.Gen.Email(emailLength, password)) },
		func() error { return p.EnterDomain(p.Gen.Text(domainLength)) },
		func() error { _, err := p.SelectRandomTLD(); return err },
		p.AcceptConditions,
		p.GoToNextStep,
	} {
		err := step()
		if err != nil {
			return err
		}
	}
	return nil
}
