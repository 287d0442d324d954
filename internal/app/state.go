package app

// State holds the UI state that is not owned by windows
type State struct {
	ActiveModal   string // empty if no modal
	StatusMessage string
	Paused        bool
}

// NewState creates a new state with defaults
func NewState() *State {
	return &State{}
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// OpenModal shows a modal, replacing any other
func (s *State) OpenModal(name string) {
	s.ActiveModal = name
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}

// SetStatus sets the status bar message
func (s *State) SetStatus(msg string) {
	s.StatusMessage = msg
}
