package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PriceConvention represents how a unit price relates to GST
type PriceConvention int

const (
	// PriceExclusive treats the unit price as a tax-exclusive rate.
	PriceExclusive PriceConvention = 0
	// PriceInclusive treats the unit price as a GST-inclusive MRP.
	PriceInclusive PriceConvention = 1
)

func (p PriceConvention) String() string {
	names := [...]string{"exclusive", "inclusive"}
	if int(p) < 0 || int(p) >= len(names) {
		return "exclusive"
	}
	return names[p]
}

func (p PriceConvention) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PriceConvention) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PriceConvention(i)
		return nil
	}
	switch str {
	case "exclusive":
		*p = PriceExclusive
	case "inclusive":
		*p = PriceInclusive
	}
	return nil
}

func (p PriceConvention) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PriceConvention) Scan(value interface{}) error {
	if value == nil {
		*p = PriceExclusive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PriceConvention(v)
	case int:
		*p = PriceConvention(v)
	}
	return nil
}

// ParsePriceConvention maps a config string to a PriceConvention.
func ParsePriceConvention(s string) PriceConvention {
	if s == "inclusive" {
		return PriceInclusive
	}
	return PriceExclusive
}
