// Package pages contains the page objects of the User Inyerface game.
package pages

import (
	"github.com/go-rod/pom"
)

// Component is anything built on a pom.Element
type Component interface {
	Descriptor() *pom.Descriptor
}

// StartPage is the landing page of the game
type StartPage struct {
	*pom.Element

	StartLink *pom.Button
}

// NewStartPage on the session
func NewStartPage(s *pom.Session) *StartPage {
	root := pom.Page(".start", "Start page")

	return &StartPage{
		Element:   s.Element(root),
		StartLink: s.Button(root.Child(pom.CSS(".start__link"), "Start link", pom.RoleButton)),
	}
}

// StartGame follows the link to the game page
func (p *StartPage) StartGame() error {
	return p.StartLink.Click()
}
