package order

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
)

// row mirrors one orders table row. Monetary columns are text-encoded
// scaled integers; the store carries no 128-bit numeric type. Trades are
// serialized to JSON only at this boundary.
type row struct {
	ID          string
	UserID      string
	Symbol      string
	Side        string
	Type        string
	Price       string
	Amount      string
	Filled      string
	Remaining   string
	Cost        string
	Fee         string
	FeeCurrency string
	Status      string
	Trades      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type tradeRecord struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Price     string    `json:"price"`
	Cost      string    `json:"cost"`
	Side      string    `json:"side"`
	Timestamp time.Time `json:"timestamp"`
}

func fromOrder(o *orderv1.Order) (*row, error) {
	records := make([]tradeRecord, 0, len(o.Trades))
	for _, t := range o.Trades {
		records = append(records, tradeRecord{
			ID:        t.ID,
			Amount:    encode(t.Amount),
			Price:     encode(t.Price),
			Cost:      encode(t.Cost),
			Side:      string(t.Side),
			Timestamp: t.Timestamp,
		})
	}
	trades, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trades for order %s: %w", o.ID, err)
	}

	return &row{
		ID:          o.ID,
		UserID:      o.UserID,
		Symbol:      o.Symbol,
		Side:        string(o.Side),
		Type:        string(o.Type),
		Price:       encode(o.Price),
		Amount:      encode(o.Amount),
		Filled:      encode(o.Filled),
		Remaining:   encode(o.Remaining),
		Cost:        encode(o.Cost),
		Fee:         encode(o.Fee),
		FeeCurrency: o.FeeCurrency,
		Status:      string(o.Status),
		Trades:      string(trades),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}, nil
}

func (r *row) toOrder() (*orderv1.Order, error) {
	var records []tradeRecord
	if r.Trades != "" {
		if err := json.Unmarshal([]byte(r.Trades), &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal trades for order %s: %w", r.ID, err)
		}
	}
	trades := make([]orderv1.Trade, 0, len(records))
	for _, record := range records {
		amount, err := decode(record.Amount)
		if err != nil {
			return nil, fmt.Errorf("order %s trade amount: %w", r.ID, err)
		}
		price, err := decode(record.Price)
		if err != nil {
			return nil, fmt.Errorf("order %s trade price: %w", r.ID, err)
		}
		cost, err := decode(record.Cost)
		if err != nil {
			return nil, fmt.Errorf("order %s trade cost: %w", r.ID, err)
		}
		trades = append(trades, orderv1.Trade{
			ID:        record.ID,
			Amount:    amount,
			Price:     price,
			Cost:      cost,
			Side:      orderv1.Side(record.Side),
			Timestamp: record.Timestamp,
		})
	}

	fields := map[string]*big.Int{}
	for name, value := range map[string]string{
		"price": r.Price, "amount": r.Amount, "filled": r.Filled,
		"remaining": r.Remaining, "cost": r.Cost, "fee": r.Fee,
	} {
		parsed, err := decode(value)
		if err != nil {
			return nil, fmt.Errorf("order %s column %s: %w", r.ID, name, err)
		}
		fields[name] = parsed
	}

	return &orderv1.Order{
		ID:          r.ID,
		UserID:      r.UserID,
		Symbol:      r.Symbol,
		Side:        orderv1.Side(r.Side),
		Type:        orderv1.Type(r.Type),
		Price:       fields["price"],
		Amount:      fields["amount"],
		Filled:      fields["filled"],
		Remaining:   fields["remaining"],
		Cost:        fields["cost"],
		Fee:         fields["fee"],
		FeeCurrency: r.FeeCurrency,
		Status:      orderv1.Status(r.Status),
		Trades:      trades,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		// Loaded orders had their resting amount published before the
		// row was written.
		InBook: true,
	}, nil
}

func encode(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return x.String()
}

func decode(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed scaled integer %q", s)
	}
	return x, nil
}
