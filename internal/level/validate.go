package level

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Validate.
var (
	ErrNoGoal      = errors.New("level has no goal")
	ErrNoPlatforms = errors.New("level has no platforms")
	ErrBadPlatform = errors.New("invalid platform")
	ErrEmptySet    = errors.New("level set is empty")
)

// Validate checks that a definition can be turned into a playable world.
func (d Definition) Validate() error {
	if d.Goal == nil {
		return fmt.Errorf("level %s: %w", d.label(), ErrNoGoal)
	}
	if d.PlatformCount() == 0 {
		return fmt.Errorf("level %s: %w", d.label(), ErrNoPlatforms)
	}

	for i, p := range d.Platforms {
		if p.Width <= 0 {
			return d.badPlatform("platforms", i, "width must be positive")
		}
	}
	for i, p := range d.MovingPlatforms {
		switch {
		case p.Width <= 0:
			return d.badPlatform("moving_platforms", i, "width must be positive")
		case p.Speed <= 0:
			return d.badPlatform("moving_platforms", i, "speed must be positive")
		case p.XRange < 0:
			return d.badPlatform("moving_platforms", i, "x_range must not be negative")
		}
	}
	for i, p := range d.VerticalPlatforms {
		switch {
		case p.Width <= 0:
			return d.badPlatform("vertical_platforms", i, "width must be positive")
		case p.Speed <= 0:
			return d.badPlatform("vertical_platforms", i, "speed must be positive")
		case p.YRange < 0:
			return d.badPlatform("vertical_platforms", i, "y_range must not be negative")
		}
	}
	for i, p := range d.DisappearingPlatforms {
		switch {
		case p.Width <= 0:
			return d.badPlatform("disappearing_platforms", i, "width must be positive")
		case p.Duration < 0:
			return d.badPlatform("disappearing_platforms", i, "duration must not be negative")
		}
	}
	return nil
}

// Validate checks every level of the set.
func (s Set) Validate() error {
	if len(s.Levels) == 0 {
		return fmt.Errorf("level set %s: %w", s.ID, ErrEmptySet)
	}
	for _, d := range s.Levels {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("level set %s: %w", s.ID, err)
		}
	}
	return nil
}

func (d Definition) badPlatform(group string, index int, reason string) error {
	return fmt.Errorf("level %s: %w: %s[%d]: %s", d.label(), ErrBadPlatform, group, index, reason)
}

func (d Definition) label() string {
	if d.ID != "" {
		return d.ID
	}
	if d.Name != "" {
		return fmt.Sprintf("%q", d.Name)
	}
	return "<unnamed>"
}
