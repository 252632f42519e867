package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// CustomerRef is the customer reference attached to a checkout. Inbound
// payloads carry it in two shapes: a bare id ("42" or 42) or the embedded
// customer object. Both are accepted here so the handlers never have to
// unwrap the two forms themselves.
type CustomerRef struct {
	ID       uint
	Customer *Customer
}

func (r *CustomerRef) UnmarshalJSON(b []byte) error {
	var asNumber uint
	if err := json.Unmarshal(b, &asNumber); err == nil {
		r.ID = asNumber
		r.Customer = nil
		return nil
	}

	var asString string
	if err := json.Unmarshal(b, &asString); err == nil {
		if asString == "" {
			r.ID = 0
			r.Customer = nil
			return nil
		}
		id, err := strconv.ParseUint(asString, 10, 64)
		if err != nil {
			return fmt.Errorf("customer reference %q is not a valid id", asString)
		}
		r.ID = uint(id)
		r.Customer = nil
		return nil
	}

	var embedded Customer
	if err := json.Unmarshal(b, &embedded); err != nil {
		return fmt.Errorf("customer reference must be an id or an object: %w", err)
	}
	r.ID = embedded.ID
	r.Customer = &embedded
	return nil
}

func (r CustomerRef) MarshalJSON() ([]byte, error) {
	if r.Customer != nil {
		return json.Marshal(r.Customer)
	}
	return json.Marshal(r.ID)
}

// Resolve returns the full customer record, loading it by id when only the
// reference was supplied. An embedded customer without an id is created so
// the checkout always ends up pointing at a stored row.
func (r *CustomerRef) Resolve(db *gorm.DB) (*Customer, error) {
	if r.Customer != nil && r.Customer.ID == 0 {
		if err := db.Create(r.Customer).Error; err != nil {
			return nil, err
		}
		r.ID = r.Customer.ID
		return r.Customer, nil
	}
	if r.Customer != nil {
		return r.Customer, nil
	}
	var customer Customer
	if err := db.First(&customer, r.ID).Error; err != nil {
		return nil, err
	}
	r.Customer = &customer
	return &customer, nil
}
