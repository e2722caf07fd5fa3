package testutil

import "fzf-nav/internal/nav"

// StubPicker records the candidates it was offered and returns a canned answer.
type StubPicker struct {
	Choice    string // returned line when Choose is nil
	Choose    func(candidates []string) string
	Cancel    bool // return nav.ErrCancelled
	Err       error
	Offered   []string
	CallCount int
}

// PickFirst returns a StubPicker that selects the first candidate.
func PickFirst() *StubPicker {
	return &StubPicker{Choose: func(c []string) string { return c[0] + "\n" }}
}

func (p *StubPicker) Pick(candidates []string) (string, error) {
	p.CallCount++
	p.Offered = append([]string(nil), candidates...)
	if p.Err != nil {
		return "", p.Err
	}
	if p.Cancel {
		return "", nav.ErrCancelled
	}
	if p.Choose != nil {
		return p.Choose(candidates), nil
	}
	return p.Choice, nil
}

var _ nav.Picker = (*StubPicker)(nil)
