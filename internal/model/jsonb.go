package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbValue marshals a Go value into the string form gorm hands to the
// postgres driver for a jsonb column.
func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// jsonbScan decodes a jsonb column into dst, accepting both []byte and
// string representations from the driver. NULL and "null" leave dst untouched.
func jsonbScan(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("jsonb scan: unsupported type %T", value)
	}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dst)
}
