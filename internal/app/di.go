package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/candrasdkd/easywork/internal/config"
	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/closer"
	calrepo "github.com/candrasdkd/easywork/internal/repository/calibration"
	invrepo "github.com/candrasdkd/easywork/internal/repository/inventory"
	optrepo "github.com/candrasdkd/easywork/internal/repository/option"
	userrepo "github.com/candrasdkd/easywork/internal/repository/user"
	authsvc "github.com/candrasdkd/easywork/internal/service/auth"
	calsvc "github.com/candrasdkd/easywork/internal/service/calibration"
	dashsvc "github.com/candrasdkd/easywork/internal/service/dashboard"
	invsvc "github.com/candrasdkd/easywork/internal/service/inventory"
	optsvc "github.com/candrasdkd/easywork/internal/service/option"
	usersvc "github.com/candrasdkd/easywork/internal/service/user"
	thttp "github.com/candrasdkd/easywork/internal/transport/http/easywork/v1"
)

type UserRepository interface {
	authsvc.UserRepository
	usersvc.UserRepository
	calsvc.ProfileReader
}

type di struct {
	mongo *mongo.Client
	db    *mongo.Database

	calibrationCollection *mongo.Collection
	inventoryCollection   *mongo.Collection
	usersCollection       *mongo.Collection

	calibrationRepository calsvc.CalibrationRepository
	inventoryRepository   invsvc.InventoryRepository
	optionRepository      optsvc.OptionRepository
	userRepository        UserRepository

	googleVerifier authsvc.GoogleTokenVerifier

	authService        thttp.AuthService
	userService        thttp.UserService
	calibrationService thttp.CalibrationService
	inventoryService   thttp.InventoryService
	optionService      thttp.OptionService
	dashboardService   thttp.DashboardService

	handler *thttp.Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Database(ctx context.Context) *mongo.Database {
	if d.db == nil {
		d.db = d.MongoDB(ctx).Database(config.C().Mongo.DatabaseName())
	}

	return d.db
}

func (d *di) CalibrationCollection(ctx context.Context) *mongo.Collection {
	if d.calibrationCollection == nil {
		d.calibrationCollection = d.Database(ctx).
			Collection(config.C().Mongo.CalibrationCollection())

		if err := ensureRecordIndexes(ctx, d.calibrationCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.calibrationCollection
}

func (d *di) InventoryCollection(ctx context.Context) *mongo.Collection {
	if d.inventoryCollection == nil {
		d.inventoryCollection = d.Database(ctx).
			Collection(config.C().Mongo.InventoryCollection())

		if err := ensureRecordIndexes(ctx, d.inventoryCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.inventoryCollection
}

func (d *di) UsersCollection(ctx context.Context) *mongo.Collection {
	if d.usersCollection == nil {
		d.usersCollection = d.Database(ctx).
			Collection(config.C().Mongo.UsersCollection())

		if err := ensureUserIndexes(ctx, d.usersCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.usersCollection
}

func (d *di) CalibrationRepository(ctx context.Context) calsvc.CalibrationRepository {
	if d.calibrationRepository == nil {
		d.calibrationRepository = calrepo.NewCalibrationRepository(d.CalibrationCollection(ctx))
	}

	return d.calibrationRepository
}

func (d *di) InventoryRepository(ctx context.Context) invsvc.InventoryRepository {
	if d.inventoryRepository == nil {
		d.inventoryRepository = invrepo.NewInventoryRepository(d.InventoryCollection(ctx))
	}

	return d.inventoryRepository
}

func (d *di) OptionRepository(ctx context.Context) optsvc.OptionRepository {
	if d.optionRepository == nil {
		collections := make(map[model.OptionKind]string)
		for kind, name := range config.C().Mongo.OptionCollections() {
			parsed, err := model.ParseOptionKind(kind)
			if err != nil {
				panic(fmt.Sprintf("bad option collection config: %v\n", err))
			}
			collections[parsed] = name
		}

		d.optionRepository = optrepo.NewOptionRepository(d.Database(ctx), collections)
	}

	return d.optionRepository
}

func (d *di) UserRepository(ctx context.Context) UserRepository {
	if d.userRepository == nil {
		d.userRepository = userrepo.NewUserRepository(d.UsersCollection(ctx))
	}

	return d.userRepository
}

func (d *di) GoogleVerifier(_ context.Context) authsvc.GoogleTokenVerifier {
	if d.googleVerifier == nil {
		verifier, err := authsvc.NewGoogleVerifier(nil, config.C().Auth.GoogleClientID())
		if err != nil {
			panic(fmt.Sprintf("failed to create google verifier: %v\n", err))
		}

		d.googleVerifier = verifier
	}

	return d.googleVerifier
}

func (d *di) AuthService(ctx context.Context) thttp.AuthService {
	if d.authService == nil {
		cfg := config.C()

		d.authService = authsvc.NewAuthService(
			d.UserRepository(ctx),
			d.GoogleVerifier(ctx),
			cfg.Auth.JWTSecret(),
			cfg.Auth.JWTTTL(),
			cfg.Auth.AdminEmails(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.authService
}

func (d *di) UserService(ctx context.Context) thttp.UserService {
	if d.userService == nil {
		d.userService = usersvc.NewUserService(
			d.UserRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.userService
}

func (d *di) CalibrationService(ctx context.Context) thttp.CalibrationService {
	if d.calibrationService == nil {
		d.calibrationService = calsvc.NewCalibrationService(
			d.CalibrationRepository(ctx),
			d.UserRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.calibrationService
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = invsvc.NewInventoryService(
			d.InventoryRepository(ctx),
			d.UserRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) OptionService(ctx context.Context) thttp.OptionService {
	if d.optionService == nil {
		d.optionService = optsvc.NewOptionService(
			d.OptionRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.optionService
}

func (d *di) DashboardService(ctx context.Context) thttp.DashboardService {
	if d.dashboardService == nil {
		d.dashboardService = dashsvc.NewDashboardService(d.CalibrationService(ctx))
	}

	return d.dashboardService
}

func (d *di) Handler(ctx context.Context) *thttp.Handler {
	if d.handler == nil {
		d.handler = thttp.NewHandler(
			d.AuthService(ctx),
			d.UserService(ctx),
			d.CalibrationService(ctx),
			d.InventoryService(ctx),
			d.OptionService(ctx),
			d.DashboardService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensureRecordIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "implementation_date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}, options.CreateIndexes())

	return err
}

func ensureUserIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uuid_account", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
