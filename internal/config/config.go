// config.go
package config

import "os"

type Config struct {
	MongoURI    string
	MongoDBName string
	RabbitURL   string
	Port        string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	ImageHostURL string
	ImageHostKey string
}

func Load() *Config {
	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://host.docker.internal:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "luxe_store_db"),
		RabbitURL:   getEnv("RABBIT_URL", "amqp://host.docker.internal"),
		Port:        getEnv("PORT", "8080"),

		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		ImageHostURL: getEnv("IMAGE_HOST_URL", "https://api.imgbb.com/1/upload"),
		ImageHostKey: getEnv("IMAGE_HOST_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
