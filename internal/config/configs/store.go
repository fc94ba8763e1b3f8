package configs

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the journal and custody backend. The memory driver keeps
// everything in process and is meant for local demos.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
