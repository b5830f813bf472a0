package format

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores compressed pieces as raw sentinel chunks.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Wire constants shared by the savegame and scenario formats.
const (
	// SavegameVersion is the only savegame file version this engine reads and writes.
	SavegameVersion int32 = 0x66

	// UncompressedSentinel replaces the length prefix of a chunk whose payload is stored raw.
	UncompressedSentinel uint32 = 0x80000000

	// MaxChunkSize is the capacity of the compression scratch buffer. Compressed
	// payloads larger than this are never written and never accepted.
	MaxChunkSize = 600000

	// ChunkHeaderSize is the size of the length prefix in front of every compressed chunk.
	ChunkHeaderSize = 4

	// SavegameSlots is the number of piece slots reserved for the savegame table.
	SavegameSlots = 300

	// ScenarioSlots is the number of piece slots reserved for the scenario table.
	ScenarioSlots = 12

	// EndMarkerSize is the size of the reserved trailer at the end of a savegame.
	EndMarkerSize = 284
)

// Map grid dimensions. Every grid layer covers GridWidth x GridWidth tiles.
const (
	GridWidth = 162
	GridSize  = GridWidth * GridWidth
)

// Mission pack constants.
const (
	MissionPackFile = "mission1.pak"
	MissionCount    = 12
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2", "lz4")
// to its CompressionType. The second return value is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "NONE", "":
		return CompressionNone, true
	case "zstd", "Zstd", "ZSTD":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
