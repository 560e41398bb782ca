package rct12

// ObjectType classifies loadable object entries.
type ObjectType uint8

const (
	ObjectTypeRide ObjectType = iota
	ObjectTypeSmallScenery
	ObjectTypeLargeScenery
	ObjectTypeWalls
	ObjectTypeBanners
	ObjectTypePaths
	ObjectTypePathBits
	ObjectTypeSceneryGroup
	ObjectTypeParkEntrance
	ObjectTypeWater
	ObjectTypeScenarioText
	ObjectTypeTerrainSurface
	ObjectTypeTerrainEdge
	ObjectTypeStation
	ObjectTypeMusic
)

// ObjectList collects the object identifiers a converted park
// requires, grouped by object type. The caller-owned object repository
// resolves the identifiers.
type ObjectList struct {
	entries map[ObjectType][]string
}

// NewObjectList returns an empty list.
func NewObjectList() *ObjectList {
	return &ObjectList{entries: make(map[ObjectType][]string)}
}

// Add appends an identifier unless it is already present.
func (l *ObjectList) Add(objectType ObjectType, identifier string) {
	for _, existing := range l.entries[objectType] {
		if existing == identifier {
			return
		}
	}
	l.entries[objectType] = append(l.entries[objectType], identifier)
}

// Entries returns the identifiers recorded for an object type.
func (l *ObjectList) Entries(objectType ObjectType) []string {
	return l.entries[objectType]
}

// Station style values of the legacy format. Invisible was added by
// the modern engine.
const (
	StationStylePlain uint8 = iota
	StationStyleWooden
	StationStyleCanvasTent
	StationStyleCastleGrey
	StationStyleCastleBrown
	StationStyleJungle
	StationStyleLogCabin
	StationStyleClassical
	StationStyleAbstract
	StationStyleSnow
	StationStylePagoda
	StationStyleSpace
	StationStyleInvisible
)

var stationIdentifiers = [...]string{
	"rct2.station.plain",
	"rct2.station.wooden",
	"rct2.station.canvas_tent",
	"rct2.station.castle_grey",
	"rct2.station.castle_brown",
	"rct2.station.jungle",
	"rct2.station.log",
	"rct2.station.classical",
	"rct2.station.abstract",
	"rct2.station.snow",
	"rct2.station.pagoda",
	"rct2.station.space",
	"openrct2.station.noentrance",
}

// StationIdentifierFromStyle returns the object identifier of a
// station style.
func StationIdentifierFromStyle(style uint8) (string, bool) {
	if int(style) >= len(stationIdentifiers) {
		return "", false
	}
	return stationIdentifiers[style], true
}

// Music style identifiers, indexed by the legacy style byte. The two
// empty slots are the custom music styles, which have no object.
var musicIdentifiers = [...]string{
	"rct2.music.dodgems",
	"rct2.music.fairground",
	"rct2.music.roman",
	"rct2.music.oriental",
	"rct2.music.martian",
	"rct2.music.jungle",
	"rct2.music.egyptian",
	"rct2.music.toyland",
	"rct2.music.circus",
	"rct2.music.space",
	"rct2.music.horror",
	"rct2.music.techno",
	"rct2.music.gentle",
	"rct2.music.summer",
	"rct2.music.water",
	"rct2.music.wildwest",
	"rct2.music.jurassic",
	"rct2.music.rock1",
	"rct2.music.ragtime",
	"rct2.music.fantasy",
	"rct2.music.rock2",
	"rct2.music.ice",
	"rct2.music.snow",
	"",
	"",
	"rct2.music.medieval",
	"rct2.music.urban",
	"rct2.music.organ",
	"rct2.music.mechanical",
	"rct2.music.modern",
	"rct2.music.pirate",
	"rct2.music.rock3",
	"rct2.music.candy",
}

// MusicStyleFromIdentifier returns the legacy music style byte for an
// object identifier.
func MusicStyleFromIdentifier(identifier string) (uint8, bool) {
	for style, id := range musicIdentifiers {
		if id != "" && id == identifier {
			return uint8(style), true
		}
	}
	return 0, false
}

var defaultTerrainSurfaces = [...]string{
	"rct2.surface.grass",
	"rct2.surface.sand",
	"rct2.surface.dirt",
	"rct2.surface.rock",
	"rct2.surface.martian",
	"rct2.surface.chequerboard",
	"rct2.surface.grassclumps",
	"rct2.surface.ice",
	"rct2.surface.gridred",
	"rct2.surface.gridyellow",
	"rct2.surface.gridpurple",
	"rct2.surface.gridgreen",
	"rct2.surface.sanddark",
	"rct2.surface.sandbrown",
}

var defaultTerrainEdges = [...]string{
	"rct2.edge.rock",
	"rct2.edge.woodred",
	"rct2.edge.woodblack",
	"rct2.edge.ice",
}

// AddDefaultObjects records the default object set every legacy park
// implicitly depends on: terrain surfaces and edges, station styles
// and music styles.
func AddDefaultObjects(list *ObjectList) {
	for _, id := range defaultTerrainSurfaces {
		list.Add(ObjectTypeTerrainSurface, id)
	}
	for _, id := range defaultTerrainEdges {
		list.Add(ObjectTypeTerrainEdge, id)
	}
	for _, id := range stationIdentifiers {
		list.Add(ObjectTypeStation, id)
	}
	for _, id := range musicIdentifiers {
		if id != "" {
			list.Add(ObjectTypeMusic, id)
		}
	}
}

// AppendRequiredObjects records a batch of identifiers of one object
// type.
func AppendRequiredObjects(list *ObjectList, objectType ObjectType, identifiers []string) {
	for _, id := range identifiers {
		list.Add(objectType, id)
	}
}
