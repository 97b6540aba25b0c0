package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	CalibrationCollection() string
	InventoryCollection() string
	UsersCollection() string
	OptionCollections() map[string]string
	DSN() string
}

type Auth interface {
	JWTSecret() []byte
	JWTTTL() time.Duration
	GoogleClientID() string
	AdminEmails() []string
}
