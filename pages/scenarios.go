package pages

import (
	"fmt"

	"github.com/go-rod/pom"
	"github.com/go-rod/pom/lib/cssutil"
	"github.com/go-rod/pom/lib/testdata"
)

// Scenario is an end-to-end check of the game, it starts on the start page
type Scenario struct {
	Name string
	Run  func(s *pom.Session, data *testdata.Data) error
}

// Scenarios of the game
func Scenarios() []Scenario {
	return []Scenario{
		{"Registration", Registration},
		{"Hide help form", HideHelp},
		{"Accept cookies", AcceptCookies},
		{"Check timer placeholder", CheckTimer},
	}
}

// Exec runs the scenario on a fresh load of the url
func (sc Scenario) Exec(s *pom.Session, url string, data *testdata.Data) error {
	err := s.Navigate(url)
	if err != nil {
		return err
	}

	err = sc.Run(s, data)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}
	return nil
}

func startGame(s *pom.Session) (*GamePage, error) {
	err := NewStartPage(s).StartGame()
	if err != nil {
		return nil, err
	}

	game := NewGamePage(s)
	return game, game.LoginForm.WaitExisting()
}

// Registration fills the login form, selects the interests and checks the validation errors
func Registration(s *pom.Session, data *testdata.Data) error {
	game, err := startGame(s)
	if err != nil {
		return err
	}

	err = game.Register(data.PasswordLength, data.EmailLength, data.DomainLength)
	if err != nil {
		return err
	}

	err = game.AvatarAndInterestsForm.WaitExisting()
	if err != nil {
		return err
	}

	err = game.SelectInterests(data.InterestsAmount)
	if err != nil {
		return err
	}

	err = game.ClickNext()
	if err != nil {
		return err
	}

	upload := game.ValidationError(data.UploadErrorText)
	err = upload.WaitExisting()
	if err != nil {
		return err
	}

	err = upload.AssertStyle(data.ColorStyle, data.GreenColorRGB)
	if err != nil {
		return err
	}

	return game.ValidationError(data.InterestsErrorText).WaitAbsent()
}

// HideHelp sends the help form to the bottom and waits for its height to collapse
func HideHelp(s *pom.Session, data *testdata.Data) error {
	game, err := startGame(s)
	if err != nil {
		return err
	}

	err = game.HelpModal.WaitExisting()
	if err != nil {
		return err
	}

	attrs, err := game.Attributes(game.HelpModal)
	if err != nil {
		return err
	}
	if attrs.ClassContains(data.HiddenAttribute) {
		return fmt.Errorf("the help form is hidden before it's sent to the bottom, class: %q", attrs.Get("class"))
	}

	err = game.HideHelpForm()
	if err != nil {
		return err
	}

	attrs, err = game.Attributes(game.HelpModal)
	if err != nil {
		return err
	}
	if !attrs.ClassContains(data.HiddenAttribute) {
		return fmt.Errorf("the help form is not hidden, class: %q", attrs.Get("class"))
	}

	value, err := game.Style(game.HelpModal, data.HideDurationStyle)
	if err != nil {
		return err
	}
	d, err := cssutil.ParseDuration(value)
	if err != nil {
		return err
	}

	ok, err := game.IsCorrectStyle(game.HelpModal, data.HeightStyle, data.HeightValueAfterHide, d)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("the %s of the help form is not %s after %s", data.HeightStyle, data.HeightValueAfterHide, d)
	}
	return nil
}

// AcceptCookies waits for the cookies modal and accepts it
func AcceptCookies(s *pom.Session, _ *testdata.Data) error {
	game, err := startGame(s)
	if err != nil {
		return err
	}

	err = game.WaitCookiesModal()
	if err != nil {
		return err
	}

	err = game.AcceptCookies()
	if err != nil {
		return err
	}

	return game.CookiesModal.WaitAbsent()
}

// CheckTimer checks the timer starts from its placeholder
func CheckTimer(s *pom.Session, data *testdata.Data) error {
	game, err := startGame(s)
	if err != nil {
		return err
	}

	t, err := game.Time()
	if err != nil {
		return err
	}
	if t != data.TimerStartValue {
		return fmt.Errorf("the timer starts from %q, expected %q", t, data.TimerStartValue)
	}
	return nil
}
