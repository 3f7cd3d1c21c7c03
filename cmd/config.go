package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	// OfferTTLMinutes is how long an offer may stay pending before the
	// expiry job settles it as Expired.
	OfferTTLMinutes int
}

// DSN assembles the postgres connection string shared by gorm and the
// change feed listener.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
