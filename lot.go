package valuation

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is the direction of a lot.
type Side int

const (
	// Buy adds to the open quantity.
	Buy Side = iota
	// Sell reduces the open quantity.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown side: %q", s)
	}
}

// Lot is a single buy or sell transaction event contributing to a position.
// Lots are immutable once created; a position's lot sequence grows by append
// and shrinks only by explicit removal by identifier.
//
// Quantity is a magnitude (> 0); direction is carried by Side. Short
// positions are a different position side, never a negative quantity here.
type Lot struct {
	ID       string
	Side     Side
	Quantity Quantity
	Price    Money // per unit
	Fees     Money
	Date     Date
	Note     string
}

// NewLot creates a lot with a fresh identifier.
func NewLot(side Side, quantity Quantity, price Money, fees Money, on Date) Lot {
	return Lot{
		ID:       uuid.NewString(),
		Side:     side,
		Quantity: quantity,
		Price:    price,
		Fees:     fees,
		Date:     on,
	}
}

// Signed returns the lot quantity signed by its direction (buys positive,
// sells negative).
func (l Lot) Signed() Quantity {
	if l.Side == Sell {
		return l.Quantity.Neg()
	}
	return l.Quantity
}

// Cost returns quantity × price, excluding fees.
func (l Lot) Cost() Money { return l.Price.Mul(l.Quantity) }

func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", l.ID)
	w.Append("side", l.Side.String())
	w.Append("quantity", l.Quantity)
	w.Append("price", l.Price.value)
	w.Optional("currency", l.Price.Currency())
	if !l.Fees.IsZero() {
		w.Append("fees", l.Fees.value)
	}
	w.Append("date", l.Date)
	w.Optional("note", l.Note)
	return w.MarshalJSON()
}

func (l *Lot) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string          `json:"id"`
		Side     string          `json:"side"`
		Quantity Quantity        `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		Fees     decimal.Decimal `json:"fees"`
		Date     Date            `json:"date"`
		Note     string          `json:"note"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	side, err := ParseSide(raw.Side)
	if err != nil {
		return err
	}
	*l = Lot{
		ID:       raw.ID,
		Side:     side,
		Quantity: raw.Quantity,
		Price:    M(raw.Price, raw.Currency),
		Fees:     M(raw.Fees, raw.Currency),
		Date:     raw.Date,
		Note:     raw.Note,
	}
	return nil
}

// Lots is an ordered sequence of lots belonging to one position.
type Lots []Lot

// Sorted returns a copy sorted by trade date, keeping the input order for
// lots traded the same day. The realized-P/L walks depend on this order.
func (ls Lots) Sorted() Lots {
	sorted := make(Lots, len(ls))
	copy(sorted, ls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// OpenQuantity returns the signed sum of all lot quantities.
func (ls Lots) OpenQuantity() Quantity {
	var open Quantity
	for _, l := range ls {
		open = open.Add(l.Signed())
	}
	return open
}

// TotalFees returns the sum of fees across all lots.
func (ls Lots) TotalFees() Money {
	var fees Money
	for _, l := range ls {
		fees = fees.Add(l.Fees)
	}
	return fees
}

// Remove returns the sequence without the lot carrying the given identifier.
func (ls Lots) Remove(id string) Lots {
	kept := make(Lots, 0, len(ls))
	for _, l := range ls {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return kept
}

// remainder is the unsold part of a buy lot in the FIFO queue.
type remainder struct {
	quantity Quantity
	price    Money // per unit
}

// consume takes quantityToSell from the front of the queue, oldest first,
// and reports each (price, quantity) consumption to visit. A partial
// consumption splits the front remainder. Sells that exceed the open buys
// are silently truncated: validation is the caller's job.
func consume(queue []remainder, quantityToSell Quantity, visit func(price Money, quantity Quantity)) []remainder {
	for len(queue) > 0 && quantityToSell.IsPositive() {
		front := queue[0]
		if front.quantity.GreaterThan(quantityToSell) {
			// Partial sale from this remainder.
			visit(front.price, quantityToSell)
			queue[0].quantity = front.quantity.Sub(quantityToSell)
			return queue
		}
		// Full sale of this remainder.
		visit(front.price, front.quantity)
		quantityToSell = quantityToSell.Sub(front.quantity)
		queue = queue[1:]
	}
	return queue
}
