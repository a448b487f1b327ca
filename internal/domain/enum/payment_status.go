package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents whether an invoice has been paid
type PaymentStatus int

const (
	PaymentStatusUnpaid PaymentStatus = 0
	PaymentStatusPaid   PaymentStatus = 1
)

func (p PaymentStatus) String() string {
	names := [...]string{"unpaid", "paid"}
	if int(p) < 0 || int(p) >= len(names) {
		return "unpaid"
	}
	return names[p]
}

func (p PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*p = PaymentStatusUnpaid
	case "paid":
		*p = PaymentStatusPaid
	}
	return nil
}

func (p PaymentStatus) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentStatus(v)
	case int:
		*p = PaymentStatus(v)
	}
	return nil
}
