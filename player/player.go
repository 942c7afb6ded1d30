// Package player drives the alternating A/B preview of a comparison.
package player

import (
	"context"
	"time"
)

// Side identifies which of the two images is showing.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Session holds the mutable state of one comparison run: which image is
// showing, how many switches remain, and the directory the last export
// went to.
type Session struct {
	Current   Side
	Remaining int // switches left; one cycle is two switches
	Interval  time.Duration
	OutputDir string
}

// NewSession returns a session for the given number of alternation cycles.
func NewSession(cycles int, interval time.Duration) *Session {
	return &Session{
		Current:   SideA,
		Remaining: 2 * cycles,
		Interval:  interval,
	}
}

// Player alternates the two sides of a session on a timer.
type Player struct {
	session *Session
}

func New(session *Session) *Player {
	return &Player{session: session}
}

// Run shows side A immediately, then toggles every session interval until
// the session's switches are used up or ctx is cancelled. show is called
// once for each displayed side.
func (p *Player) Run(ctx context.Context, show func(Side)) error {
	s := p.session
	s.Current = SideA
	show(s.Current)
	for s.Remaining > 0 {
		delay := time.NewTimer(s.Interval)
		select {
		case <-ctx.Done():
			delay.Stop()
			return ctx.Err()
		case <-delay.C:
		}
		if s.Current == SideA {
			s.Current = SideB
		} else {
			s.Current = SideA
		}
		s.Remaining--
		show(s.Current)
	}
	return nil
}
