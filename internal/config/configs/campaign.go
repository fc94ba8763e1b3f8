package configs

import (
	"time"

	"github.com/google/uuid"
)

// Campaign describes the single campaign served by this process. The
// values are only used the first time the campaign is created; later
// starts load it from the journal.
type Campaign struct {
	ID       uuid.UUID     `env:"ID" envDefault:"6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"`
	Owner    string        `env:"OWNER,required"`
	Duration time.Duration `env:"DURATION" envDefault:"86400s"`
	// Goal is expressed in the smallest currency unit.
	Goal uint64 `env:"GOAL" envDefault:"100000000000000000"`
}
