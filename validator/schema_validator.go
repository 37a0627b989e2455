package validator

import (
	"github.com/Oudwins/zog"
)

var AnalyzeStockShape = zog.Shape{
	"Symbol":   zog.String().Trim().Min(1).Max(20).Required(),
	"Exchange": zog.String().OneOf([]string{"", "NSE", "BSE", "NASDAQ", "NYSE"}),
}

var LoginShape = zog.Shape{
	"Email":    zog.String().Email().Required(),
	"Password": zog.String().Min(8).Required(),
}

var AlertShape = zog.Shape{
	"Symbol": zog.String().Trim().Min(1).Max(20).Required(),
	"Value":  zog.Float64().GT(0).Required(),
}
