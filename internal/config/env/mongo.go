package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host     string `env:"MONGO_HOST,required"`
	Port     int    `env:"MONGO_PORT,required"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME,required"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD,required"`
	DBName   string `env:"MONGO_DATABASE,required"`
	AuthDB   string `env:"MONGO_AUTH_DB,required"`

	CalibrationCollection string `env:"MONGO_CALIBRATION_COLLECTION" envDefault:"calibration_data"`
	InventoryCollection   string `env:"MONGO_INVENTORY_COLLECTION" envDefault:"inventory_data"`
	UsersCollection       string `env:"MONGO_USERS_COLLECTION" envDefault:"users"`

	ToolsCollection  string `env:"MONGO_TOOLS_COLLECTION" envDefault:"tools"`
	BrandsCollection string `env:"MONGO_BRANDS_COLLECTION" envDefault:"brands"`
	RoomsCollection  string `env:"MONGO_ROOMS_COLLECTION" envDefault:"rooms"`
	UnitsCollection  string `env:"MONGO_UNITS_COLLECTION" envDefault:"units"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) CalibrationCollection() string { return cfg.raw.CalibrationCollection }
func (cfg *mongo) InventoryCollection() string   { return cfg.raw.InventoryCollection }
func (cfg *mongo) UsersCollection() string       { return cfg.raw.UsersCollection }

// OptionCollections maps option kind names to their collections.
func (cfg *mongo) OptionCollections() map[string]string {
	return map[string]string{
		"tool":  cfg.raw.ToolsCollection,
		"brand": cfg.raw.BrandsCollection,
		"room":  cfg.raw.RoomsCollection,
		"unit":  cfg.raw.UnitsCollection,
	}
}

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
