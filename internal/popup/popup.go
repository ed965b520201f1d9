// Package popup implements modal dialogs and the stack that owns them.
package popup

import (
	"rocket/internal/grapheme"
	"rocket/internal/keys"
	"rocket/internal/pathhint"
)

// Kind identifies a dialog variant.
type Kind int

const (
	Help Kind = iota
	Dialogue
	SaveFile
	LoadFile
	IOError
)

// Button is a dialog action.
type Button int

const (
	Ok Button = iota
	Cancel
	Acknowledge
)

// Label is the text drawn on the button.
func (b Button) Label() string {
	switch b {
	case Cancel:
		return "cancel"
	case Acknowledge:
		return "got it"
	default:
		return "okay"
	}
}

// Title returns the heading for a kind.
func (k Kind) Title() string {
	switch k {
	case Help:
		return "help"
	case Dialogue:
		return "dialogue"
	case SaveFile:
		return "save file"
	case LoadFile:
		return "load file"
	case IOError:
		return "io error"
	default:
		return ""
	}
}

// Buttons returns the fixed button row for a kind.
func (k Kind) Buttons() []Button {
	switch k {
	case Help:
		return []Button{Acknowledge}
	case SaveFile, LoadFile:
		return []Button{Cancel, Ok}
	default:
		return []Button{Ok}
	}
}

// editsPath reports whether the payload is a path the user types.
func (k Kind) editsPath() bool { return k == SaveFile || k == LoadFile }

// Target is the editor surface a dialog can act on.
type Target interface {
	SaveActiveTo(path string) error
	LoadActiveFrom(path string) error
}

// Popup is one modal dialog. The payload is the message for Dialogue and
// IOError and the path being typed for SaveFile and LoadFile.
type Popup struct {
	kind     Kind
	payload  string
	buttons  []Button
	selected int
}

// New returns a dialog of kind with the given payload.
func New(kind Kind, payload string) *Popup {
	return &Popup{kind: kind, payload: payload, buttons: kind.Buttons()}
}

// NewHelp returns the help dialog.
func NewHelp() *Popup { return New(Help, "") }

// NewDialogue returns an informational dialog.
func NewDialogue(msg string) *Popup { return New(Dialogue, msg) }

// NewError returns an IOError dialog describing err.
func NewError(err error) *Popup { return New(IOError, err.Error()) }

func (p *Popup) Kind() Kind             { return p.kind }
func (p *Popup) Title() string          { return p.kind.Title() }
func (p *Popup) Payload() string        { return p.payload }
func (p *Popup) Buttons() []Button      { return p.buttons }
func (p *Popup) Selected() int          { return p.selected }
func (p *Popup) SelectedButton() Button { return p.buttons[p.selected] }

// Content is the body text. Help has a fixed body; every other kind shows
// its payload.
func (p *Popup) Content() string {
	if p.kind == Help {
		return HelpText
	}
	return p.payload
}

// Select moves the selection to button i if it exists.
func (p *Popup) Select(i int) {
	if i >= 0 && i < len(p.buttons) {
		p.selected = i
	}
}

// HandleKey applies k and reports whether the dialog should be closed.
func (p *Popup) HandleKey(k keys.Key, t Target) bool {
	switch k.Code {
	case keys.Left:
		p.selected = (p.selected - 1 + len(p.buttons)) % len(p.buttons)
	case keys.Right:
		p.selected = (p.selected + 1) % len(p.buttons)
	case keys.Rune:
		if p.kind.editsPath() && k.Plain() {
			p.payload += string(k.Rune)
		}
	case keys.Backspace:
		if p.kind.editsPath() {
			p.payload = grapheme.DropLast(p.payload)
		}
	case keys.Tab:
		if p.kind.editsPath() {
			if s := pathhint.Suggest(p.payload, 1); len(s) > 0 {
				p.payload = s[0]
			}
		}
	case keys.Enter:
		return p.commit(t)
	}
	return false
}

func (p *Popup) commit(t Target) bool {
	switch p.kind {
	case SaveFile, LoadFile:
		if p.SelectedButton() != Ok {
			return true
		}
		var err error
		if p.kind == SaveFile {
			err = t.SaveActiveTo(p.payload)
		} else {
			err = t.LoadActiveFrom(p.payload)
		}
		if err != nil {
			p.become(IOError, err.Error())
			return false
		}
		return true
	default:
		return true
	}
}

// become replaces the dialog in place, keeping its stack slot.
func (p *Popup) become(kind Kind, payload string) {
	*p = *New(kind, payload)
}
