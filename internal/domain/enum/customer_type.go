package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType distinguishes business receivers from individuals
type CustomerType int

const (
	CustomerTypeBusiness   CustomerType = 0
	CustomerTypeIndividual CustomerType = 1
)

func (c CustomerType) String() string {
	names := [...]string{"business", "individual"}
	if int(c) < 0 || int(c) >= len(names) {
		return "business"
	}
	return names[c]
}

func (c CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = CustomerType(i)
		return nil
	}
	switch str {
	case "business":
		*c = CustomerTypeBusiness
	case "individual":
		*c = CustomerTypeIndividual
	}
	return nil
}

func (c CustomerType) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*c = CustomerTypeBusiness
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = CustomerType(v)
	case int:
		*c = CustomerType(v)
	}
	return nil
}
