package pom

// Input component
type Input struct {
	*Element
}

// SendKeysOptions for Input.SendKeys
type SendKeysOptions struct {
	// Clean the value before typing
	Clean bool

	// Append the text to the current value instead of replacing it
	Append bool

	// Paste the text as a single input, inputs of type number are always pasted
	Paste bool
}

// TextContent of an input is its value
func (in *Input) TextContent() (string, error) {
	err := in.WaitExisting()
	if err != nil {
		return "", err
	}
	return in.driver().Value(in.ctx, in.Selector(), 0)
}

// SendKeys types the text into the input, by default it replaces the current value.
// Nothing is typed if the value already equals the text.
func (in *Input) SendKeys(text string, opts ...SendKeysOptions) error {
	opt := SendKeysOptions{}
	if len(opts) > 0 {
		opt = opts[0]
	}

	err := in.WaitExisting()
	if err != nil {
		return err
	}

	err = in.WaitEnabled()
	if err != nil {
		return err
	}

	attrs, err := in.Attributes()
	if err != nil {
		return err
	}
	if attrs.Get("type") == "number" {
		opt.Paste = true
	}

	current, err := in.TextContent()
	if err != nil {
		return err
	}
	if current == text {
		return nil
	}

	if opt.Clean {
		err = in.Clear()
		if err != nil {
			return err
		}
	}

	in.log("type", text)
	return in.driver().Type(in.ctx, in.Selector(), 0, text, TypeOptions{
		Replace: !opt.Append,
		Paste:   opt.Paste,
	})
}

// Clear the value of the input
func (in *Input) Clear() error {
	err := in.Click()
	if err != nil {
		return err
	}

	in.log("clear", "")
	return in.driver().Clear(in.ctx, in.Selector(), 0)
}
