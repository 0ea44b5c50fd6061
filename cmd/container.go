package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roster-ats/roster/pkg/fsx"
	"github.com/roster-ats/roster/pkg/fsx/fsxlocal"
	"github.com/roster-ats/roster/pkg/fsx/fsxs3"
	"github.com/roster-ats/roster/pkg/logx"
	"github.com/roster-ats/roster/tracking/applicant"
	"github.com/roster-ats/roster/tracking/applicant/applicantapi"
	"github.com/roster-ats/roster/tracking/applicant/applicantinfra"
	"github.com/roster-ats/roster/tracking/applicant/applicantsrv"
	"github.com/roster-ats/roster/tracking/asset/assetapi"
	"github.com/roster-ats/roster/tracking/asset/assetsrv"
)

// Config is loaded from the environment (and .env when present)
type Config struct {
	Port string `env:"PORT,default=8080"`

	// StoreBackend selects the record store: "file" (flat JSON document)
	// or "mongo" (one document per applicant in a collection). Both expose
	// the identical HTTP surface.
	StoreBackend string `env:"STORE_BACKEND,default=file"`
	DataFile     string `env:"DATA_FILE,default=data/applicants.json"`

	// AssetBackend selects where the file backend keeps resume files:
	// "local" (disk under AssetDir) or "s3".
	AssetBackend string `env:"ASSET_BACKEND,default=local"`
	AssetDir     string `env:"ASSET_DIR,default=public/applications"`

	MongoURI        string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	MongoDatabase   string `env:"MONGO_DB,default=roster"`
	MongoCollection string `env:"MONGO_COLLECTION,default=applicants"`

	AWSRegion string `env:"AWS_REGION"`
	AWSBucket string `env:"AWS_BUCKET"`
}

// Container holds all application dependencies
type Container struct {
	Config Config

	// Infrastructure
	Mongo   *mongo.Client
	AssetFS fsx.FileSystem

	// Domain
	Store        applicant.Repository
	AssetManager *assetsrv.AssetManager

	// Services
	ApplicantService *applicantsrv.ApplicantService

	// API Handlers (AssetHandlers is nil on the mongo backend: resume
	// files belong to the file backend only)
	ApplicantHandlers *applicantapi.Handlers
	AssetHandlers     *assetapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.loadConfig()
	c.initStore()
	c.initServices()
	return c
}

// Close releases infrastructure connections
func (c *Container) Close() {
	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Disconnect(ctx); err != nil {
			logx.Warnf("Failed to disconnect from MongoDB: %v", err)
		}
	}
}

func (c *Container) loadConfig() {
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}
	if err := envdecode.Decode(&c.Config); err != nil {
		logx.Fatalf("Failed to decode configuration: %v", err)
	}
}

func (c *Container) initStore() {
	switch c.Config.StoreBackend {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.Config.MongoURI))
		if err != nil {
			logx.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			logx.Fatalf("Failed to ping MongoDB: %v", err)
		}
		c.Mongo = client

		coll := client.Database(c.Config.MongoDatabase).Collection(c.Config.MongoCollection)
		c.Store = applicantinfra.NewMongoApplicantRepository(coll)
		logx.Infof("Record store: mongo (%s/%s)", c.Config.MongoDatabase, c.Config.MongoCollection)

	case "file":
		repo, err := applicantinfra.NewFileApplicantRepository(c.Config.DataFile)
		if err != nil {
			logx.Fatalf("Failed to open data file: %v", err)
		}
		c.Store = repo
		c.initAssetStorage()
		logx.Infof("Record store: file (%s)", c.Config.DataFile)

	default:
		logx.Fatalf("Unknown STORE_BACKEND %q (want \"file\" or \"mongo\")", c.Config.StoreBackend)
	}
}

func (c *Container) initAssetStorage() {
	switch c.Config.AssetBackend {
	case "s3":
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(c.Config.AWSRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.AssetFS = fsxs3.NewS3FileSystem(s3.NewFromConfig(cfg), c.Config.AWSBucket, "applications")
		logx.Infof("Asset storage: s3 (%s)", c.Config.AWSBucket)

	case "local":
		local, err := fsxlocal.NewLocalFileSystem(c.Config.AssetDir)
		if err != nil {
			logx.Fatalf("Failed to create asset directory: %v", err)
		}
		c.AssetFS = local
		logx.Infof("Asset storage: local (%s)", c.Config.AssetDir)

	default:
		logx.Fatalf("Unknown ASSET_BACKEND %q (want \"local\" or \"s3\")", c.Config.AssetBackend)
	}

	c.AssetManager = assetsrv.NewAssetManager(c.AssetFS)
}

func (c *Container) initServices() {
	c.ApplicantService = applicantsrv.NewApplicantService(c.Store, c.AssetManager)
	c.ApplicantHandlers = applicantapi.NewHandlers(c.ApplicantService)

	if c.AssetManager != nil {
		c.AssetHandlers = assetapi.NewHandlers(c.AssetManager)
	}
}
