// Package all registers every generator with the default registry
package all

import (
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/bsp"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/cellular"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/combination"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/dla"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/drunkard"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/reachability"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/rooms"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/terrain"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/traps"
	_ "github.com/KirkDiggler/rpg-mapgen/internal/mapgen/voronoi"
)
