package domain

import (
	"fmt"
	"strconv"
)

// Amount is a quantity of funds in the smallest indivisible currency unit.
type Amount uint64

// String renders the amount as a base-10 integer.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// ParseAmount parses a base-10 integer amount.
func ParseAmount(s string) (Amount, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount(v), nil
}

// ActorID identifies a caller. Identities are attributed by the transport
// layer and are never taken from request payloads.
type ActorID string

// VaultActor returns the custody account that holds a campaign's funds.
func VaultActor(campaignID fmt.Stringer) ActorID {
	return ActorID("campaign:" + campaignID.String())
}
