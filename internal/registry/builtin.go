package registry

import "github.com/vovakirdan/star-hopper/internal/level"

func init() {
	Register(DefaultSet, level.Classic)
}
