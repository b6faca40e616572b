package cmd

// Config holds the application settings read from the environment.
//
// StoreDriver selects the persistence adapter: "sqlite", "postgres" or
// "memory". The DB* fields only matter for the postgres driver, SQLitePath
// only for the sqlite one.
type Config struct {
	HTTPPort                string
	StoreDriver             string
	SQLitePath              string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	SnapshotIntervalSeconds int
	AutoTick                bool
}
