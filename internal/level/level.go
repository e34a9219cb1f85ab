// Package level defines the immutable level data the simulation is built
// from: platform, hazard and collectible specs plus one goal per level.
package level

// Point is a spec positioned by its top-left corner. Used for spikes,
// collectibles and the goal, whose sizes come from the config.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlatformSpec describes a static platform.
type PlatformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// MovingSpec describes a platform oscillating horizontally around its origin.
type MovingSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	XRange float64 `yaml:"x_range"`
	Speed  float64 `yaml:"speed"`
}

// VerticalSpec describes a platform oscillating vertically around its origin.
type VerticalSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	YRange float64 `yaml:"y_range"`
	Speed  float64 `yaml:"speed"`
}

// DisappearingSpec describes a platform that decays once stood on.
// Duration is in milliseconds of simulated time; zero means the config default.
type DisappearingSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Duration int     `yaml:"duration,omitempty"`
}

// Definition is one level. It is read-only input: sessions build their
// mutable world from it and never write back.
type Definition struct {
	ID                    string             `yaml:"id"`
	Name                  string             `yaml:"name"`
	Platforms             []PlatformSpec     `yaml:"platforms"`
	MovingPlatforms       []MovingSpec       `yaml:"moving_platforms,omitempty"`
	VerticalPlatforms     []VerticalSpec     `yaml:"vertical_platforms,omitempty"`
	DisappearingPlatforms []DisappearingSpec `yaml:"disappearing_platforms,omitempty"`
	Spikes                []Point            `yaml:"spikes,omitempty"`
	Coins                 []Point            `yaml:"coins,omitempty"`
	ChallengeTokens       []Point            `yaml:"challenge_tokens,omitempty"`
	Goal                  *Point             `yaml:"goal"`
}

// PlatformCount returns the number of platforms of every kind.
func (d Definition) PlatformCount() int {
	return len(d.Platforms) + len(d.MovingPlatforms) + len(d.VerticalPlatforms) + len(d.DisappearingPlatforms)
}

// Set is an ordered collection of levels played as one run.
type Set struct {
	ID     string
	Title  string
	Levels []Definition
}

// Len returns the number of levels in the set.
func (s Set) Len() int {
	return len(s.Levels)
}

// Valid reports whether index addresses a level of the set.
func (s Set) Valid(index int) bool {
	return index >= 0 && index < len(s.Levels)
}
