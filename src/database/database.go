package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // connect only once
	connectErr error

	UserCollection              *mongo.Collection
	CategoryCollection          *mongo.Collection
	ServiceCollection           *mongo.Collection
	SubmissionCollection        *mongo.Collection
	JobNotificationCollection   *mongo.Collection
	WalletTransactionCollection *mongo.Collection
	LoginHistoryCollection      *mongo.Collection
)

// DatabaseName is the default database used by all collections.
const DatabaseName = "GovSevaDB"

// ConnectMongoDB connects to MongoDB exactly once and wires the collections.
func ConnectMongoDB() error {

	// Load environment variables from .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(DatabaseName)
		UserCollection = db.Collection("users")
		CategoryCollection = db.Collection("categories")
		ServiceCollection = db.Collection("services")
		SubmissionCollection = db.Collection("submissions")
		JobNotificationCollection = db.Collection("job_notifications")
		WalletTransactionCollection = db.Collection("wallet_transactions")
		LoginHistoryCollection = db.Collection("login_history")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// Client returns the connected mongo client (needed for transactions).
func Client() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}

// GetCollection returns a collection from MongoDB.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
