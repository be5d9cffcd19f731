package core

import (
	"fmt"
	"strings"
)

// Screen is a discrete game state gating which entities are active
type Screen uint8

const (
	ScreenWelcome Screen = iota
	ScreenLevel1
	ScreenLevel2
	ScreenLevel3
	ScreenGameOver
	ScreenCount
)

var screenNames = [ScreenCount]string{
	ScreenWelcome:  "welcome",
	ScreenLevel1:   "level1",
	ScreenLevel2:   "level2",
	ScreenLevel3:   "level3",
	ScreenGameOver: "gameover",
}

// Valid reports whether s names a defined screen
func (s Screen) Valid() bool {
	return s < ScreenCount
}

// IsLevel reports whether s is a gameplay screen
func (s Screen) IsLevel() bool {
	return s >= ScreenLevel1 && s <= ScreenLevel3
}

func (s Screen) String() string {
	if !s.Valid() {
		return fmt.Sprintf("screen(%d)", uint8(s))
	}
	return screenNames[s]
}

// ParseScreen resolves a case-insensitive screen name
func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if strings.EqualFold(n, name) {
			return Screen(i), nil
		}
	}
	return 0, fmt.Errorf("unknown screen %q", name)
}

// UnmarshalText lets config formats decode screen names
func (s *Screen) UnmarshalText(text []byte) error {
	parsed, err := ParseScreen(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ScreenSet restricts an entity to a set of screens
// Zero value is unrestricted: the entity participates on every screen
type ScreenSet uint8

// AllScreens is the unrestricted set
const AllScreens ScreenSet = 0

// Only builds a set from the given screens; no arguments yields AllScreens
func Only(screens ...Screen) ScreenSet {
	var set ScreenSet
	for _, s := range screens {
		set |= 1 << s
	}
	return set
}

// Contains reports whether the current screen passes the gate
func (set ScreenSet) Contains(s Screen) bool {
	if set == AllScreens {
		return true
	}
	return set&(1<<s) != 0
}

func (set ScreenSet) String() string {
	if set == AllScreens {
		return "all"
	}
	var names []string
	for s := Screen(0); s < ScreenCount; s++ {
		if set&(1<<s) != 0 {
			names = append(names, s.String())
		}
	}
	return strings.Join(names, "|")
}

// Side identifies the screen edge an entity bounced off
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}
