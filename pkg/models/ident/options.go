package ident

import "github.com/peter-kozarec/sysid/pkg/lti"

type settings struct {
	delay      int
	forgetting float64
	initialCov float64
	form       lti.Form
}

func defaultSettings() settings {
	return settings{
		delay:      0,
		forgetting: 1,
		initialCov: 1000,
		form:       lti.Controllable,
	}
}

type Option func(*settings)

// WithDelay sets the whole-sample input delay carried on the estimated
// transfer function. Default 0.
func WithDelay(delay int) Option {
	return func(s *settings) {
		s.delay = delay
	}
}

// WithForgetting sets the exponential forgetting factor of the recursive
// estimator. 1 (the default) is infinite-memory least squares; l < 1 keeps
// an effective horizon of about 1/(1-l) samples.
func WithForgetting(l float64) Option {
	return func(s *settings) {
		s.forgetting = l
	}
}

// WithInitialCovariance scales the diffuse prior c*I the recursive estimator
// starts from. Default 1000.
func WithInitialCovariance(c float64) Option {
	return func(s *settings) {
		s.initialCov = c
	}
}

// WithForm selects the canonical form of the realized state-space model.
// Default controllable.
func WithForm(form lti.Form) Option {
	return func(s *settings) {
		s.form = form
	}
}

func (s settings) validate() error {
	if s.delay < 0 {
		return ErrInvalidDelay
	}
	if s.forgetting <= 0 || s.forgetting > 1 {
		return ErrInvalidForgetting
	}
	if s.initialCov <= 0 {
		return ErrInvalidCovariance
	}
	return nil
}
