package level

// groundY is the top of the full-width ground platform in every built-in level.
const groundY = 750

func ground() PlatformSpec {
	return PlatformSpec{X: 0, Y: groundY, Width: 1200}
}

// spikeRow places spikes resting on the ground at the given x positions.
func spikeRow(xs ...float64) []Point {
	spikes := make([]Point, len(xs))
	for i, x := range xs {
		spikes[i] = Point{X: x, Y: groundY - 20}
	}
	return spikes
}

// Classic returns the built-in eight-level campaign.
func Classic() Set {
	return Set{
		ID:    "classic",
		Title: "Classic",
		Levels: []Definition{
			{
				ID:   "01-tutorial",
				Name: "Tutorial",
				Platforms: []PlatformSpec{
					ground(),
					{X: 300, Y: 600, Width: 200},
					{X: 600, Y: 450, Width: 200},
				},
				Coins: []Point{
					{X: 350, Y: 550},
					{X: 650, Y: 400},
				},
				ChallengeTokens: []Point{
					{X: 400, Y: 300},
				},
				Goal: &Point{X: 1100, Y: 700},
			},
			{
				ID:   "02-moving",
				Name: "Moving Platforms",
				Platforms: []PlatformSpec{
					ground(),
					{X: 300, Y: 600, Width: 200},
				},
				MovingPlatforms: []MovingSpec{
					{X: 350, Y: 600, Width: 150, XRange: 300, Speed: 2},
				},
				DisappearingPlatforms: []DisappearingSpec{
					{X: 800, Y: 500, Width: 150},
				},
				Spikes: spikeRow(400, 600, 800),
				Coins: []Point{
					{X: 400, Y: 550},
					{X: 850, Y: 450},
				},
				Goal: &Point{X: 1100, Y: 700},
			},
			{
				ID:   "03-vertical",
				Name: "Vertical and Moving Platforms",
				Platforms: []PlatformSpec{
					ground(),
					{X: 400, Y: 600, Width: 200},
				},
				MovingPlatforms: []MovingSpec{
					{X: 700, Y: 500, Width: 150, XRange: 200, Speed: 3},
				},
				VerticalPlatforms: []VerticalSpec{
					{X: 200, Y: 400, Width: 150, YRange: 200, Speed: 2},
				},
				Spikes: spikeRow(300, 500, 700, 900),
				Coins: []Point{
					{X: 450, Y: 550},
					{X: 750, Y: 450},
					{X: 250, Y: 350},
				},
				Goal: &Point{X: 1100, Y: 700},
			},
			{
				ID:   "04-timing",
				Name: "Timing Challenge",
				Platforms: []PlatformSpec{
					ground(),
					{X: 300, Y: 600, Width: 100},
				},
				MovingPlatforms: []MovingSpec{
					{X: 300, Y: 600, Width: 100, XRange: 150, Speed: 3},
					{X: 600, Y: 450, Width: 100, XRange: 150, Speed: 3},
				},
				VerticalPlatforms: []VerticalSpec{
					{X: 900, Y: 300, Width: 100, YRange: 300, Speed: 3},
				},
				DisappearingPlatforms: []DisappearingSpec{
					{X: 400, Y: 500, Width: 100},
					{X: 700, Y: 350, Width: 100},
				},
				Spikes: spikeRow(300, 500, 700, 900),
				Coins: []Point{
					{X: 320, Y: 550},
					{X: 620, Y: 400},
					{X: 920, Y: 250},
				},
				Goal: &Point{X: 1100, Y: 700},
			},
			{
				ID:   "05-disappearing",
				Name: "Disappearing Path",
				Platforms: []PlatformSpec{
					ground(),
					{X: 200, Y: 600, Width: 100},
					{X: 350, Y: 500, Width: 100},
					{X: 500, Y: 400, Width: 100},
					{X: 650, Y: 300, Width: 100},
					{X: 800, Y: 400, Width: 100},
				},
				DisappearingPlatforms: []DisappearingSpec{
					{X: 200, Y: 600, Width: 100},
					{X: 350, Y: 500, Width: 100},
					{X: 500, Y: 400, Width: 100},
					{X: 650, Y: 300, Width: 100},
					{X: 800, Y: 400, Width: 100},
				},
				Spikes: spikeRow(250, 450, 650, 850),
				Coins: []Point{
					{X: 220, Y: 550},
					{X: 520, Y: 350},
					{X: 820, Y: 350},
				},
				Goal: &Point{X: 1100, Y: 700},
			},
			{
				ID:   "06-climb",
				Name: "Vertical Challenge",
				Platforms: []PlatformSpec{
					ground(),
					{X: 200, Y: 600, Width: 100},
				},
				MovingPlatforms: []MovingSpec{
					{X: 400, Y: 650, Width: 150, XRange: 200, Speed: 3},
				},
				VerticalPlatforms: []VerticalSpec{
					{X: 200, Y: 400, Width: 100, YRange: 250, Speed: 4},
					{X: 600, Y: 300, Width: 100, YRange: 300, Speed: 4},
					{X: 1000, Y: 200, Width: 100, YRange: 400, Speed: 4},
				},
				Spikes: spikeRow(350, 550, 750),
				Coins: []Point{
					{X: 220, Y: 300},
					{X: 620, Y: 200},
					{X: 1020, Y: 150},
				},
				Goal: &Point{X: 1100, Y: 100},
			},
			{
				ID:   "07-sync",
				Name: "Synchronized Platforms",
				Platforms: []PlatformSpec{
					ground(),
					{X: 200, Y: 600, Width: 100},
				},
				MovingPlatforms: []MovingSpec{
					{X: 200, Y: 600, Width: 100, XRange: 150, Speed: 4},
					{X: 500, Y: 450, Width: 100, XRange: 150, Speed: 4},
					{X: 800, Y: 300, Width: 100, XRange: 150, Speed: 4},
				},
				VerticalPlatforms: []VerticalSpec{
					{X: 350, Y: 500, Width: 100, YRange: 150, Speed: 3},
					{X: 650, Y: 350, Width: 100, YRange: 150, Speed: 3},
					{X: 950, Y: 200, Width: 100, YRange: 150, Speed: 3},
				},
				Spikes: spikeRow(200, 400, 600, 800, 1000),
				Coins: []Point{
					{X: 220, Y: 550},
					{X: 520, Y: 400},
					{X: 820, Y: 250},
				},
				Goal: &Point{X: 1100, Y: 150},
			},
			{
				ID:   "08-ultimate",
				Name: "The Ultimate Test",
				Platforms: []PlatformSpec{
					ground(),
					{X: 200, Y: 600, Width: 100},
				},
				MovingPlatforms: []MovingSpec{
					{X: 200, Y: 650, Width: 80, XRange: 200, Speed: 5},
					{X: 600, Y: 500, Width: 80, XRange: 200, Speed: 5},
				},
				VerticalPlatforms: []VerticalSpec{
					{X: 400, Y: 300, Width: 80, YRange: 300, Speed: 4},
					{X: 800, Y: 200, Width: 80, YRange: 400, Speed: 4},
				},
				DisappearingPlatforms: []DisappearingSpec{
					{X: 300, Y: 550, Width: 80},
					{X: 500, Y: 400, Width: 80},
					{X: 700, Y: 300, Width: 80},
					{X: 900, Y: 200, Width: 80},
				},
				Spikes: spikeRow(200, 400, 600, 800, 1000),
				Coins: []Point{
					{X: 320, Y: 500},
					{X: 520, Y: 350},
					{X: 720, Y: 250},
					{X: 920, Y: 150},
				},
				Goal: &Point{X: 1100, Y: 100},
			},
		},
	}
}
