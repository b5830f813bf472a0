package city

import "github.com/arloliu/citysave/buffer"

const (
	MaxResources   = 16
	MaxTradeRoutes = 20
	MaxTraders     = 100
)

// TradePrice is the buy and sell price of one resource.
type TradePrice struct {
	Buy  int32
	Sell int32
}

// TradePrices holds the current price of every resource.
type TradePrices [MaxResources]TradePrice

var defaultTradePrices = TradePrices{
	{0, 0}, {28, 22}, {38, 30}, {38, 30}, {42, 34}, {44, 36}, {44, 36}, {215, 160},
	{180, 140}, {60, 40}, {50, 35}, {40, 30}, {200, 140}, {250, 180}, {200, 150}, {180, 140},
}

// Reset restores the default price list.
func (p *TradePrices) Reset() {
	*p = defaultTradePrices
}

func (p *TradePrices) LoadState(c *buffer.Cursor) error {
	for i := range p {
		readI32s(c, &p[i].Buy, &p[i].Sell)
	}

	return c.Err()
}

func (p *TradePrices) SaveState(c *buffer.Cursor) error {
	for _, price := range p {
		writeI32s(c, price.Buy, price.Sell)
	}

	return c.Err()
}

// TradeRoutes holds the per-route, per-resource trade limits and the amounts
// traded this year.
type TradeRoutes struct {
	Limit  [MaxTradeRoutes][MaxResources]int32
	Traded [MaxTradeRoutes][MaxResources]int32
}

func (t *TradeRoutes) LoadState(limit, traded *buffer.Cursor) error {
	for route := range t.Limit {
		if err := buffer.ReadInts(limit, t.Limit[route][:]); err != nil {
			return err
		}
		if err := buffer.ReadInts(traded, t.Traded[route][:]); err != nil {
			return err
		}
	}

	return nil
}

func (t *TradeRoutes) SaveState(limit, traded *buffer.Cursor) error {
	for route := range t.Limit {
		if err := buffer.WriteInts(limit, t.Limit[route][:]); err != nil {
			return err
		}
		if err := buffer.WriteInts(traded, t.Traded[route][:]); err != nil {
			return err
		}
	}

	return nil
}

// Trader tracks the goods one trade caravan or ship has exchanged.
type Trader struct {
	TotalBought int32
	TotalSold   int32
	Bought      [MaxResources]uint8
	Sold        [MaxResources]uint8
	BoughtValue int32
	SoldValue   int32
}

// Traders is the trader table and the index of the next free slot.
type Traders struct {
	List      [MaxTraders]Trader
	NextIndex int32
}

func (t *Traders) LoadState(c *buffer.Cursor) error {
	for i := range t.List {
		tr := &t.List[i]
		readI32s(c, &tr.TotalBought, &tr.TotalSold)
		if err := c.ReadRaw(tr.Bought[:]); err != nil {
			return err
		}
		if err := c.ReadRaw(tr.Sold[:]); err != nil {
			return err
		}
		readI32s(c, &tr.BoughtValue, &tr.SoldValue)
	}
	t.NextIndex = c.ReadI32()

	return c.Err()
}

func (t *Traders) SaveState(c *buffer.Cursor) error {
	for i := range t.List {
		tr := &t.List[i]
		writeI32s(c, tr.TotalBought, tr.TotalSold)
		if err := c.WriteRaw(tr.Bought[:]); err != nil {
			return err
		}
		if err := c.WriteRaw(tr.Sold[:]); err != nil {
			return err
		}
		writeI32s(c, tr.BoughtValue, tr.SoldValue)
	}
	c.WriteI32(t.NextIndex)

	return c.Err()
}
