package city

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/buffer"
	"github.com/arloliu/citysave/endian"
)

func TestFormationsRoundTrip(t *testing.T) {
	require := require.New(t)

	in := &Formations{IDLastInUse: 12, IDLastLegion: 3, NumLegions: 2}
	in.List[0] = Formation{InUse: 1, Faction: 1, LegionID: 2, FigureType: 14, BuildingID: 301, NumFigures: 2, MaxFigures: 16, X: 40, Y: 51, Morale: 80}
	in.List[0].Figures[0] = 17
	in.List[0].Figures[1] = 18
	in.List[49].Reserved[71] = 0xAB

	list := buffer.New(MaxFormations * FormationRecordSize)
	totals := buffer.New(12)
	require.NoError(in.SaveState(list, totals))
	require.True(list.Drained())
	require.True(totals.Drained())

	list.Reset()
	totals.Reset()
	out := &Formations{}
	require.NoError(out.LoadState(list, totals))
	require.True(list.Drained())
	require.Equal(in, out)
}

func TestEnemyArmiesColumnMajor(t *testing.T) {
	require := require.New(t)

	in := &EnemyArmies{EnemyStrength: 900, DaysSinceRomanInfluenceCalculation: 4}
	in.List[0].FormationID = 7
	in.List[1].FormationID = 8
	in.List[0].Layout = 3

	armies := buffer.New(MaxEnemyArmies * enemyArmyColumns * 4)
	totals := buffer.New(20)
	require.NoError(in.SaveState(armies, totals))
	require.True(armies.Drained())
	require.True(totals.Drained())

	wire := endian.Wire()
	b := armies.Bytes()
	require.Equal(uint32(7), wire.Uint32(b[0:]))
	require.Equal(uint32(8), wire.Uint32(b[4:]))
	require.Equal(uint32(3), wire.Uint32(b[MaxEnemyArmies*4:]), "layouts follow all formation ids")

	armies.Reset()
	totals.Reset()
	out := &EnemyArmies{}
	require.NoError(out.LoadState(armies, totals))
	require.Equal(in, out)
}

func TestTradersRoundTrip(t *testing.T) {
	in := &Traders{NextIndex: 5}
	in.List[4] = Trader{TotalBought: 10, TotalSold: 3, BoughtValue: 400, SoldValue: 90}
	in.List[4].Bought[2] = 6
	in.List[4].Sold[15] = 1

	c := buffer.New(MaxTraders*48 + 4)
	require.NoError(t, in.SaveState(c))
	require.True(t, c.Drained())

	c.Reset()
	out := &Traders{}
	require.NoError(t, out.LoadState(c))
	require.Equal(t, in, out)
}

func TestSmallCollaborators(t *testing.T) {
	require := require.New(t)

	clock := GameTime{Tick: 1, Day: 2, Month: 3, Year: 4, TotalDays: 500}
	random := Random{IV1: 0xDEADBEEF, IV2: 1}
	prices := TradePrices{}
	prices.Reset()
	names := FigureNames{}
	names[20] = 9

	cClock, cRandom, cPrices, cNames := buffer.New(20), buffer.New(8), buffer.New(128), buffer.New(84)
	require.NoError(clock.SaveState(cClock))
	require.NoError(random.SaveState(cRandom))
	require.NoError(prices.SaveState(cPrices))
	require.NoError(names.SaveState(cNames))
	for _, c := range []*buffer.Cursor{cClock, cRandom, cPrices, cNames} {
		require.True(c.Drained())
		c.Reset()
	}

	var gotClock GameTime
	var gotRandom Random
	var gotPrices TradePrices
	var gotNames FigureNames
	require.NoError(gotClock.LoadState(cClock))
	require.NoError(gotRandom.LoadState(cRandom))
	require.NoError(gotPrices.LoadState(cPrices))
	require.NoError(gotNames.LoadState(cNames))
	require.Equal(clock, gotClock)
	require.Equal(random, gotRandom)
	require.Equal(prices, gotPrices)
	require.Equal(names, gotNames)
	require.Equal(TradePrice{Buy: 28, Sell: 22}, gotPrices[1])
}

func TestBuildingCountsAndLists(t *testing.T) {
	require := require.New(t)

	counts := BuildingCounts{}
	counts.Industry[31] = 2
	counts.Culture1[32] = 5
	counts.Support[5] = 1
	cs := []*buffer.Cursor{buffer.New(128), buffer.New(132), buffer.New(32), buffer.New(40), buffer.New(16), buffer.New(24)}
	require.NoError(counts.SaveState(cs[0], cs[1], cs[2], cs[3], cs[4], cs[5]))
	for _, c := range cs {
		require.True(c.Drained())
		c.Reset()
	}
	var gotCounts BuildingCounts
	require.NoError(gotCounts.LoadState(cs[0], cs[1], cs[2], cs[3], cs[4], cs[5]))
	require.Equal(counts, gotCounts)

	lists := BuildingLists{}
	lists.Small[0] = 12
	lists.Large[1999] = -1
	small, large := buffer.New(1000), buffer.New(4000)
	require.NoError(lists.SaveState(small, large))
	small.Reset()
	large.Reset()
	var gotLists BuildingLists
	require.NoError(gotLists.LoadState(small, large))
	require.Equal(lists, gotLists)
}

func TestTradeRoutesShortPiece(t *testing.T) {
	routes := TradeRoutes{}
	err := routes.SaveState(buffer.New(1280), buffer.New(1276))
	require.Error(t, err)
}

func TestPlayerNames(t *testing.T) {
	require := require.New(t)

	var extra CityExtra
	extra.SetPlayerName(1, "Gaius Julius")
	require.Equal("Gaius Julius", extra.PlayerName(1))
	require.Equal("", extra.PlayerName(0))

	long := "Marcus Aurelius Antoninus Augustus Imperator"
	extra.SetPlayerName(1, long)
	require.Equal(long[:PlayerNameLength-1], extra.PlayerName(1))

	c := buffer.New(2 * PlayerNameLength)
	require.NoError(extra.SaveNames(c))
	require.True(c.Drained())
	c.Reset()

	var got CityExtra
	require.NoError(got.LoadNames(c))
	require.Equal(extra.PlayerNames, got.PlayerNames)
}

func TestScenarioAccessors(t *testing.T) {
	require := require.New(t)

	var sc ScenarioConfig
	sc.SetStartYear(-350)
	sc.SetEmpireID(3)
	sc.SetInitialFunds(8000)
	sc.SetEnemyID(5)
	sc.SetMapSize(10, 12)
	sc.SetGridBounds(int32(Offset(2, 2)), 2)
	sc.SetClimate(2)

	require.Equal(int32(-350), sc.StartYear())
	require.Equal(int32(3), sc.EmpireID())
	require.Equal(int32(8000), sc.InitialFunds())
	require.Equal(int32(5), sc.EnemyID())
	require.Equal(int32(10), sc.MapWidth())
	require.Equal(int32(12), sc.MapHeight())
	require.Equal(int32(2*162+2), sc.GridStartOffset())
	require.Equal(int32(2), sc.GridBorderSize())
	require.Equal(uint8(2), sc.Climate())
	require.Equal(byte(10), sc.Raw[348])
}

func TestPoints(t *testing.T) {
	in := []Point{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	c := buffer.New(32)
	require.NoError(t, SavePoints(c, in))
	c.Reset()

	out := make([]Point, 4)
	require.NoError(t, LoadPoints(c, out))
	require.Equal(t, in, out)
}
