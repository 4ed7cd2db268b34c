package domain

type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseValidating  Phase = "validating"
	PhaseLoading     Phase = "loading"
	PhaseResultShown Phase = "result_shown"
	PhaseErrorShown  Phase = "error_shown"
)

// Session is the UI state of one form. Result and Error are only meaningful
// while their visibility flag is set.
type Session struct {
	Phase         Phase
	Loading       bool
	SubmitEnabled bool
	Result        string
	ResultVisible bool
	Error         string
	ErrorVisible  bool
}

func NewSession() Session {
	return Session{Phase: PhaseIdle}
}

func (s *Session) HideMessages() {
	s.Result = ""
	s.ResultVisible = false
	s.Error = ""
	s.ErrorVisible = false
	s.Phase = PhaseIdle
}

func (s *Session) ShowResult(text string) {
	s.Result = text
	s.ResultVisible = true
	s.Phase = PhaseResultShown
}

// ShowError makes message visible. A shown result stays visible, so a copy
// failure does not hide the text the user was copying.
func (s *Session) ShowError(message string) {
	s.Error = message
	s.ErrorVisible = true
	if !s.ResultVisible {
		s.Phase = PhaseErrorShown
	}
}

func (s *Session) SetLoading(loading bool) {
	s.Loading = loading
	if loading {
		s.Phase = PhaseLoading
	}
}
