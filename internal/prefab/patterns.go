package prefab

// NotATrapRows is a treasure room ringed with danger markers
const NotATrapRows = `
......
.^^^^.
.^$$^.
.^^^^.
......
`

// CombinationRows is a tall 11x50 maze segment used to stitch two halves of
// a map together
const CombinationRows = `
.#####.....
.....#.....
.#...#.....
.#.###.....
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#######.
.#.#.....#.
.#.#.....#.
.#.#.....#.
.#.......#.
.#.#######.
...........
...........
.#.#######.
.#.......#.
.#.#.....#.
.#.#.....#.
.#.#.....#.
.#.#######.
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.#.......
.#.###.....
.#...#.....
.#...#.....
.####......
`

// Built-in patterns
var (
	NotATrap    = MustParse(NotATrapRows)
	Combination = MustParse(CombinationRows)
)
