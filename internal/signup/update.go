package signup

// Update applies ev to s and returns the resulting state. It has no side
// effects; the network call belongs to Controller.
func Update(s State, ev Event) State {
	switch e := ev.(type) {
	case NameChanged:
		s.Error = ValidationError{}
		s.Name = e.Value
	case EmailChanged:
		s.Error = ValidationError{}
		s.Email = e.Value
	case ProfileChanged:
		s.Error = ValidationError{}
		s.Profile = e.Upload
	case PasswordChanged:
		s.Error = ValidationError{}
		s.Password = e.Value
	case ConfirmPasswordChanged:
		s.Error = ValidationError{}
		s.ConfirmPassword = e.Value
	case SubmitRequested:
		if s.Phase != PhaseIdle && s.Phase != PhaseFailed {
			return s
		}
		if verr, ok := Validate(s); !ok {
			s.Error = verr
			return s
		}
		s.Error = ValidationError{}
		s.Phase = PhaseSubmitting
	case SubmitSucceeded:
		if s.Phase == PhaseSubmitting {
			s.Phase = PhaseRedirect
		}
	case SubmitFailed:
		if s.Phase == PhaseSubmitting {
			s.Phase = PhaseFailed
		}
	}
	return s
}

// Apply folds a sequence of events over s.
func Apply(s State, events ...Event) State {
	for _, ev := range events {
		s = Update(s, ev)
	}
	return s
}
