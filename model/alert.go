package model

import "strings"

type AlertCondition string

const (
	AlertPriceAbove AlertCondition = "price_above"
	AlertPriceBelow AlertCondition = "price_below"
)

// Alert is a stored price alert, keyed by symbol+condition.
type Alert struct {
	ID        string         `bson:"_id" json:"id"`
	Symbol    string         `bson:"symbol" json:"symbol"`
	Exchange  string         `bson:"exchange" json:"exchange"`
	Condition AlertCondition `bson:"condition" json:"condition"`
	Value     float64        `bson:"value" json:"value"`
	Active    bool           `bson:"active" json:"active"`
}

type AlertDto struct {
	Symbol    string         `json:"symbol"`
	Exchange  string         `json:"exchange"`
	Condition AlertCondition `json:"condition"`
	Value     float64        `json:"value"`
	Active    bool           `json:"active"`
}

func (d *AlertDto) ToEntity() Alert {
	symbol := strings.ToUpper(strings.TrimSpace(d.Symbol))
	return Alert{
		ID:        symbol + ":" + string(d.Condition),
		Symbol:    symbol,
		Exchange:  strings.ToUpper(d.Exchange),
		Condition: d.Condition,
		Value:     d.Value,
		Active:    d.Active,
	}
}

// TriggeredAlert pairs an alert with the quote that tripped it.
type TriggeredAlert struct {
	Alert        Alert   `json:"alert"`
	CurrentPrice float64 `json:"current_price"`
}
