package universe

// File is the top-level structure of a universe YAML file.
//
// Example:
//
//	galaxy:
//	  id: "orion-arm"
//	  width: 8
//	  height: 8
//	factions:
//	  - id: federation
//	    name: "Terran Federation"
//	sectors:
//	  - x: 2
//	    y: 2
//	    star: Sol
//	    orbits: 7
//	ships:
//	  - name: Player
//	    controller: player
//	    location: {kind: orbital, x: 2, y: 2, orbit: 3}
type File struct {
	Galaxy        GalaxyMeta        `yaml:"galaxy"`
	Factions      []FactionDef      `yaml:"factions"`
	Relationships []RelationshipDef `yaml:"relationships"`
	Sectors       []SectorDef       `yaml:"sectors"`
	Ships         []ShipDef         `yaml:"ships"`
}

type GalaxyMeta struct {
	ID     string `yaml:"id"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FactionDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// RelationshipDef sets how two factions stand: peace, war or alliance
type RelationshipDef struct {
	Between [2]string `yaml:"between"`
	Status  string    `yaml:"status"`
}

type SectorDef struct {
	X        int          `yaml:"x"`
	Y        int          `yaml:"y"`
	Star     string       `yaml:"star"`
	Orbits   int          `yaml:"orbits"`
	Owner    string       `yaml:"owner"`
	Planets  []PlanetDef  `yaml:"planets"`
	Stations []StationDef `yaml:"stations"`
}

type PlanetDef struct {
	Name     string      `yaml:"name"`
	Orbit    int         `yaml:"orbit"`
	Landable bool        `yaml:"landable"`
	OrbitOre string      `yaml:"orbit_ore"`
	Owner    string      `yaml:"owner"`
	Regions  []RegionDef `yaml:"regions"`
}

type RegionDef struct {
	Name  string `yaml:"name"`
	Ore   string `yaml:"ore"`
	Owner string `yaml:"owner"`
}

type StationDef struct {
	Name   string         `yaml:"name"`
	Orbit  int            `yaml:"orbit"`
	Owner  string         `yaml:"owner"`
	Prices map[string]int `yaml:"prices"`
	Stock  []string       `yaml:"stock"`
}

// ShipDef spawns one ship. Omitted credits keep the starting balance.
type ShipDef struct {
	Name           string         `yaml:"name"`
	Controller     string         `yaml:"controller"`
	Specialization string         `yaml:"specialization"`
	Faction        string         `yaml:"faction"`
	Credits        *int           `yaml:"credits"`
	Location       LocationDef    `yaml:"location"`
	Modules        []string       `yaml:"modules"`
	Resources      map[string]int `yaml:"resources"`
	Expanders      map[string]int `yaml:"expanders"`
	Reputation     map[string]int `yaml:"reputation"`
}

// LocationDef names a place by kind: interstellar, orbital, surface or docked
type LocationDef struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Orbit  int    `yaml:"orbit"`
	Region string `yaml:"region"`
}
