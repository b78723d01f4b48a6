// Package level holds the hand-authored stage templates, the strict template
// parser, and the seeded procedural generator that expands 10 base shapes
// into the full 10-world campaign.
package level

// Template is one hand-authored base stage shape. Templates carry only
// structure (walls, spawn, exit); items, obstacles and portals are added by
// the generator.
type Template struct {
	Name        string
	StartLength int // Initial serpent length for this stage
	Theme       int // Display theme index (UI concern only)
	Rows        []string
}

// Templates defines the 10 base stage shapes. Index i is stage i+1.
// Every row is exactly board.Width runes and there are board.Height rows;
// ParseRows enforces this at startup.
var Templates = []Template{
	{
		Name:        "Atrium",
		StartLength: 3,
		Theme:       0,
		Rows: []string{
			"###############",
			"#S............#",
			"#.............#",
			"#....#####....#",
			"#....#...#....#",
			"#....#...#....#",
			"#....##.##....#",
			"#.............#",
			"#.............#",
			"#............E#",
			"###############",
		},
	},
	{
		Name:        "Twin Halls",
		StartLength: 3,
		Theme:       0,
		Rows: []string{
			"###############",
			"#S.....#......#",
			"#......#......#",
			"#......#......#",
			"#......#......#",
			"#.............#",
			"#......#......#",
			"#......#......#",
			"#......#......#",
			"#......#.....E#",
			"###############",
		},
	},
	{
		Name:        "Serpentine",
		StartLength: 3,
		Theme:       1,
		Rows: []string{
			"###############",
			"#S............#",
			"############..#",
			"#.............#",
			"#..############",
			"#.............#",
			"############..#",
			"#.............#",
			"#..############",
			"#............E#",
			"###############",
		},
	},
	{
		Name:        "Pillars",
		StartLength: 4,
		Theme:       1,
		Rows: []string{
			"###############",
			"#S............#",
			"#.#.#.#.#.#.#.#",
			"#.............#",
			"#.#.#.#.#.#.#.#",
			"#.............#",
			"#.#.#.#.#.#.#.#",
			"#.............#",
			"#.#.#.#.#.#.#.#",
			"#............E#",
			"###############",
		},
	},
	{
		Name:        "Chambers",
		StartLength: 4,
		Theme:       2,
		Rows: []string{
			"###############",
			"#S....#.......#",
			"#.....#.......#",
			"#.....#.......#",
			"###.#####.#####",
			"#.............#",
			"#####.#####.###",
			"#.....#.......#",
			"#.....#.......#",
			"#.....#......E#",
			"###############",
		},
	},
	{
		Name:        "Spiral",
		StartLength: 4,
		Theme:       2,
		Rows: []string{
			"###############",
			"#S............#",
			"#.###########.#",
			"#.#.........#.#",
			"#.#.#######.#.#",
			"#.#.#E....#.#.#",
			"#.#.#####.#.#.#",
			"#.#.......#.#.#",
			"#.#########.#.#",
			"#.............#",
			"###############",
		},
	},
	{
		Name:        "Catacombs",
		StartLength: 5,
		Theme:       3,
		Rows: []string{
			"###############",
			"#S.#...#...#..#",
			"#..#.#.#.#.#..#",
			"#....#...#....#",
			"#.##.##.##.##.#",
			"#.............#",
			"#.##.##.##.##.#",
			"#....#...#....#",
			"#..#.#.#.#.#..#",
			"#..#...#...#.E#",
			"###############",
		},
	},
	{
		Name:        "Gauntlet",
		StartLength: 5,
		Theme:       3,
		Rows: []string{
			"###############",
			"#S#...#...#...#",
			"#.#.#.#.#.#.#.#",
			"#.............#",
			"#..##..##..##.#",
			"#.............#",
			"#.##..##..##..#",
			"#.............#",
			"#.#.#.#.#.#.#.#",
			"#...#...#...#E#",
			"###############",
		},
	},
	{
		Name:        "Bastion",
		StartLength: 5,
		Theme:       4,
		Rows: []string{
			"###############",
			"#S............#",
			"#..#######....#",
			"#..#.....#....#",
			"#..#.###.#....#",
			"#..#.#E#.#....#",
			"#..#.#.#.#....#",
			"#..#.....#....#",
			"#..####.##....#",
			"#.............#",
			"###############",
		},
	},
	{
		Name:        "Longest Night",
		StartLength: 6,
		Theme:       4,
		Rows: []string{
			"###############",
			"#S.#.....#....#",
			"#..#.###.#.##.#",
			"#..#.#...#..#.#",
			"#....#.#....#.#",
			"#.####.####.#.#",
			"#.#....#....#.#",
			"#.#.##.#.##.#.#",
			"#.#.#......#..#",
			"#...#......#.E#",
			"###############",
		},
	},
}

// TemplateCount returns the number of base stage shapes.
func TemplateCount() int {
	return len(Templates)
}

// GetTemplate returns the template for a stage (1-based).
// Returns nil if the stage is out of range.
func GetTemplate(stage int) *Template {
	if stage < 1 || stage > len(Templates) {
		return nil
	}
	return &Templates[stage-1]
}
