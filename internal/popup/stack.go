package popup

import "rocket/internal/keys"

// Stack holds open dialogs; only the top one receives input.
type Stack struct {
	items []*Popup
}

func (s *Stack) Push(p *Popup) { s.items = append(s.items, p) }
func (s *Stack) Len() int      { return len(s.items) }
func (s *Stack) Empty() bool   { return len(s.items) == 0 }

// Top returns the active dialog, or nil when the stack is empty.
func (s *Stack) Top() *Popup {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Pop removes the top dialog.
func (s *Stack) Pop() *Popup {
	p := s.Top()
	if p != nil {
		s.items = s.items[:len(s.items)-1]
	}
	return p
}

// HandleKey routes k to the top dialog and pops it when it asks to close.
// It reports whether a dialog was there to receive the key.
func (s *Stack) HandleKey(k keys.Key, t Target) bool {
	top := s.Top()
	if top == nil {
		return false
	}
	if top.HandleKey(k, t) {
		s.Pop()
	}
	return true
}
