package pages

import (
	"fmt"

	"github.com/go-rod/pom"
	"github.com/go-rod/pom/lib/datagen"
)

// CookiesForm is the modal that asks to accept cookies
type CookiesForm struct {
	CookiesModal *pom.Label
	AgreeButton  *pom.Button
}

// NewCookiesForm as a standalone page
func NewCookiesForm(s *pom.Session) *CookiesForm {
	return cookiesForm(s, pom.Page(".cookies", "Cookies Form"))
}

func cookiesForm(s *pom.Session, parent *pom.Descriptor) *CookiesForm {
	return &CookiesForm{
		CookiesModal: s.Label(parent.Child(pom.CSS(".cookies"), "Cookies modal", pom.RoleLabel)),
		AgreeButton:  s.Button(parent.Child(pom.CSS(".cookies .button--transparent"), "Agree button", pom.RoleButton)),
	}
}

// WaitCookiesModal waits until the modal shows up
func (f *CookiesForm) WaitCookiesModal() error {
	return f.CookiesModal.WaitExisting()
}

// AcceptCookies by clicking the agree button
func (f *CookiesForm) AcceptCookies() error {
	return f.AgreeButton.Click()
}

// IsCookiesFormExisting returns true if the modal exists before the wait times out
func (f *CookiesForm) IsCookiesFormExisting() (bool, error) {
	return f.CookiesModal.IsExisting()
}

// HelpForm is the help panel that can be sent to the bottom of the page
type HelpForm struct {
	HelpModal  *pom.Label
	HideButton *pom.Button
}

// NewHelpForm as a standalone page
func NewHelpForm(s *pom.Session) *HelpForm {
	return helpForm(s, pom.Page(".help-form", "Help Form"))
}

func helpForm(s *pom.Session, parent *pom.Descriptor) *HelpForm {
	return &HelpForm{
		HelpModal:  s.Label(parent.Child(pom.CSS(".help-form"), "Help Modal", pom.RoleLabel)),
		HideButton: s.Button(parent.Child(pom.CSS(".help-form__send-to-bottom-button"), "Hide help button", pom.RoleButton)),
	}
}

// HideHelpForm sends the help form to the bottom
func (f *HelpForm) HideHelpForm() error {
	return f.HideButton.Click()
}

// IsHelpFormExisting returns true if the help form exists before the wait times out
func (f *HelpForm) IsHelpFormExisting() (bool, error) {
	return f.HelpModal.IsExisting()
}

// AvatarAndInterestsPage is the second step of the game
type AvatarAndInterestsPage struct {
	sess   *pom.Session
	parent *pom.Descriptor

	// Gen picks the random interests
	Gen *datagen.Gen

	AvatarAndInterestsForm *pom.Label
	InterestCheckbox       *pom.Checkbox
	NextBlueButton         *pom.Button
}

// NewAvatarAndInterestsPage as a standalone page
func NewAvatarAndInterestsPage(s *pom.Session) *AvatarAndInterestsPage {
	return avatarAndInterests(s, pom.Page(".avatar-and-interests", "Avatar and interests"))
}

func avatarAndInterests(s *pom.Session, parent *pom.Descriptor) *AvatarAndInterestsPage {
	return &AvatarAndInterestsPage{
		sess:   s,
		parent: parent,
		Gen:    datagen.Default(),

		AvatarAndInterestsForm: s.Label(parent.Child(pom.CSS(".avatar-and-interests"),
			"Avatar and interests", pom.RoleLabel)),
		InterestCheckbox: s.Checkbox(parent.Child(pom.CSS(".avatar-and-interests__interests-list .checkbox"),
			"Interest checkbox", pom.RoleCheckbox)),
		NextBlueButton: s.Button(parent.Child(pom.CSS(".button--white").WithText("Next"),
			"Blue next button", pom.RoleButton)),
	}
}

// ValidationError label that contains the text
func (p *AvatarAndInterestsPage) ValidationError(text string) *pom.Label {
	return p.sess.Label(p.parent.Child(pom.CSS(".avatar-and-interests__error").WithText(text),
		fmt.Sprintf("Error %s label", text), pom.RoleLabel))
}

// SelectInterests unselects every interest then selects n random ones.
// The last option is the "unselect all" toggle, the "Select all" option is never picked.
func (p *AvatarAndInterestsPage) SelectInterests(n int) error {
	options, err := p.InterestCheckbox.OptionValues()
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("no interest to select")
	}

	selectAll := datagen.IndexOf(options, datagen.SelectAll)
	picked := p.Gen.IntsInRange(n, len(options)-1, selectAll)
	if len(picked) < n {
		return fmt.Errorf("cannot select %d interests out of %d options", n, len(options))
	}

	err = p.InterestCheckbox.SelectByIndex(len(options) - 1)
	if err != nil {
		return err
	}

	for _, i := range picked {
		err = p.InterestCheckbox.SelectByIndex(i)
		if err != nil {
			return err
		}
	}
	return nil
}

// ClickNext submits the step
func (p *AvatarAndInterestsPage) ClickNext() error {
	return p.NextBlueButton.Click()
}

// IsAvatarPageExisting returns true if the step exists before the wait times out
func (p *AvatarAndInterestsPage) IsAvatarPageExisting() (bool, error) {
	return p.AvatarAndInterestsForm.IsExisting()
}

// IsErrorExisting returns true if the validation error exists before the wait times out
func (p *AvatarAndInterestsPage) IsErrorExisting(text string) (bool, error) {
	return p.ValidationError(text).IsExisting()
}
