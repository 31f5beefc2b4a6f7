package tariff

import (
	"math"
	"strings"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
)

// Статические таблицы ставок. Это не прайс-движок: оценка мультипликативная,
// value*duty + value*tax, по префиксу HS-кода и стране назначения.

// Ставка пошлины по двузначному префиксу HS-кода (глава Гармонизированной системы).
var dutyRateByHSChapter = map[string]float64{
	"61": 0.12, // одежда трикотажная
	"62": 0.12, // одежда текстильная
	"64": 0.10, // обувь
	"71": 0.05, // ювелирные изделия
	"84": 0.02, // машины и механизмы
	"85": 0.03, // электроника
	"87": 0.06, // транспортные средства
	"90": 0.02, // оптика и приборы
	"95": 0.04, // игрушки
}

const defaultDutyRate = 0.05

// Ставка налога (VAT/GST) по стране назначения, ISO 3166-1 alpha-2.
var taxRateByCountry = map[string]float64{
	"TZ": 0.18,
	"KE": 0.16,
	"UG": 0.18,
	"RW": 0.18,
	"ZA": 0.15,
	"GB": 0.20,
	"DE": 0.19,
	"FR": 0.20,
	"US": 0.00,
	"AE": 0.05,
	"CN": 0.13,
	"IN": 0.18,
}

const defaultTaxRate = 0.10

func dutyRate(hsCode string) float64 {
	if len(hsCode) < 2 {
		return defaultDutyRate
	}
	if rate, ok := dutyRateByHSChapter[hsCode[:2]]; ok {
		return rate
	}
	return defaultDutyRate
}

func taxRate(country string) float64 {
	if rate, ok := taxRateByCountry[strings.ToUpper(country)]; ok {
		return rate
	}
	return defaultTaxRate
}

// Estimate считает оценку пошлины и налога по позициям декларации.
func Estimate(items []entities.CustomsItem, destinationCountry string) entities.CustomsCharges {
	var duty, tax float64

	rate := taxRate(destinationCountry)
	for _, item := range items {
		value := item.UnitValue * float64(item.Quantity)
		duty += value * dutyRate(item.HSCode)
		tax += value * rate
	}

	duty = round2(duty)
	tax = round2(tax)

	return entities.CustomsCharges{
		DutyAmount:  duty,
		TaxAmount:   tax,
		TotalAmount: round2(duty + tax),
		Currency:    "USD",
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
