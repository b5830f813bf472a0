package city

import "github.com/arloliu/citysave/buffer"

const MaxEnemyArmies = 25

// EnemyArmy is the last known position and strength of one invading army.
type EnemyArmy struct {
	FormationID           int32
	Layout                int32
	HomeX                 int32
	HomeY                 int32
	DestinationX          int32
	DestinationY          int32
	DestinationBuildingID int32
	IgnoreRomanSoldiers   int32
	Strength              int32
}

// EnemyArmies is the army table plus the strength totals.
//
// The table is stored column by column: all formation ids first, then all
// layouts, and so on.
type EnemyArmies struct {
	List                               [MaxEnemyArmies]EnemyArmy
	EnemyFormations                    int32
	EnemyStrength                      int32
	RomanFormations                    int32
	RomanStrength                      int32
	DaysSinceRomanInfluenceCalculation int32
}

func (e *EnemyArmies) columns(i int) []*int32 {
	a := &e.List[i]
	return []*int32{
		&a.FormationID, &a.Layout, &a.HomeX, &a.HomeY,
		&a.DestinationX, &a.DestinationY, &a.DestinationBuildingID,
		&a.IgnoreRomanSoldiers, &a.Strength,
	}
}

const enemyArmyColumns = 9

func (e *EnemyArmies) LoadState(armies, totals *buffer.Cursor) error {
	for col := 0; col < enemyArmyColumns; col++ {
		for i := range e.List {
			*e.columns(i)[col] = armies.ReadI32()
		}
	}
	readI32s(totals, &e.EnemyFormations, &e.EnemyStrength, &e.RomanFormations,
		&e.RomanStrength, &e.DaysSinceRomanInfluenceCalculation)

	return firstErr(armies, totals)
}

func (e *EnemyArmies) SaveState(armies, totals *buffer.Cursor) error {
	for col := 0; col < enemyArmyColumns; col++ {
		for i := range e.List {
			armies.WriteI32(*e.columns(i)[col])
		}
	}
	writeI32s(totals, e.EnemyFormations, e.EnemyStrength, e.RomanFormations,
		e.RomanStrength, e.DaysSinceRomanInfluenceCalculation)

	return firstErr(armies, totals)
}
