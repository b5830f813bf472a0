package city

import "github.com/arloliu/citysave/endian"

// Byte offsets of the scenario fields this module interprets.
const (
	scenarioStartYear    = 0
	scenarioEmpireID     = 4
	scenarioInitialFunds = 336
	scenarioEnemyID      = 340
	scenarioMapWidth     = 348
	scenarioMapHeight    = 352
	scenarioGridStart    = 356
	scenarioGridBorder   = 360
	scenarioClimate      = 1714
)

// ScenarioConfig is the fixed-size scenario description block.
//
// The block is stored verbatim so files round-trip byte for byte; the
// accessors read and write the few fields the engine needs.
type ScenarioConfig struct {
	Raw [ScenarioSize]byte
}

func (s *ScenarioConfig) i32(off int) int32 {
	return int32(endian.Wire().Uint32(s.Raw[off:]))
}

func (s *ScenarioConfig) setI32(off int, v int32) {
	endian.Wire().PutUint32(s.Raw[off:], uint32(v))
}

func (s *ScenarioConfig) StartYear() int32       { return s.i32(scenarioStartYear) }
func (s *ScenarioConfig) EmpireID() int32        { return s.i32(scenarioEmpireID) }
func (s *ScenarioConfig) InitialFunds() int32    { return s.i32(scenarioInitialFunds) }
func (s *ScenarioConfig) EnemyID() int32         { return s.i32(scenarioEnemyID) }
func (s *ScenarioConfig) MapWidth() int32        { return s.i32(scenarioMapWidth) }
func (s *ScenarioConfig) MapHeight() int32       { return s.i32(scenarioMapHeight) }
func (s *ScenarioConfig) GridStartOffset() int32 { return s.i32(scenarioGridStart) }
func (s *ScenarioConfig) GridBorderSize() int32  { return s.i32(scenarioGridBorder) }

// Climate returns the climate index (0 central, 1 northern, 2 desert).
func (s *ScenarioConfig) Climate() uint8 { return s.Raw[scenarioClimate] }

func (s *ScenarioConfig) SetStartYear(v int32)    { s.setI32(scenarioStartYear, v) }
func (s *ScenarioConfig) SetEmpireID(v int32)     { s.setI32(scenarioEmpireID, v) }
func (s *ScenarioConfig) SetInitialFunds(v int32) { s.setI32(scenarioInitialFunds, v) }
func (s *ScenarioConfig) SetEnemyID(v int32)      { s.setI32(scenarioEnemyID, v) }
func (s *ScenarioConfig) SetClimate(v uint8)      { s.Raw[scenarioClimate] = v }

// SetMapSize stores the playable map dimensions.
func (s *ScenarioConfig) SetMapSize(width, height int32) {
	s.setI32(scenarioMapWidth, width)
	s.setI32(scenarioMapHeight, height)
}

// SetGridBounds stores the offset of the first playable tile and the border width.
func (s *ScenarioConfig) SetGridBounds(start, border int32) {
	s.setI32(scenarioGridStart, start)
	s.setI32(scenarioGridBorder, border)
}
