package pom

// Button component
type Button struct {
	*Element
}

// Label component
type Label struct {
	*Element
}

// Form groups other components, it has no behavior of its own
type Form struct {
	*Element
}

// Button for the descriptor
func (s *Session) Button(d *Descriptor) *Button {
	return &Button{s.Element(d)}
}

// Label for the descriptor
func (s *Session) Label(d *Descriptor) *Label {
	return &Label{s.Element(d)}
}

// Form for the descriptor
func (s *Session) Form(d *Descriptor) *Form {
	return &Form{s.Element(d)}
}

// Input for the descriptor
func (s *Session) Input(d *Descriptor) *Input {
	return &Input{s.Element(d)}
}

// Dropdown for the descriptor
func (s *Session) Dropdown(d *Descriptor) *Dropdown {
	return &Dropdown{s.Element(d)}
}

// Checkbox for the descriptor
func (s *Session) Checkbox(d *Descriptor) *Checkbox {
	return &Checkbox{s.Element(d)}
}
