package configuration

import (
	"fmt"
	"os"
	"strconv"

	"axlas-recipes/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	TikTok      TikTok      `json:"tiktok"`
	Sanity      Sanity      `json:"sanity"`
	SMTP        SMTP        `json:"smtp"`
	Pubsub      Pubsub      `json:"pubsub"`
	ImageProxy  ImageProxy  `json:"imageProxy"`
	Cors        Cors        `json:"cors"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port        int    `json:"port"`
	SecretKey   string `json:"secretKey"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type Database struct {
	Psql  Db `json:"psql"`
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Password     string `json:"password"`
	DatabaseName string `json:"databaseName"`
	Username     string `json:"username"`
}

// TikTok holds the fixed creator identity plus the public endpoints the
// discovery cascade talks to. FallbackVideos are known-good watch URLs used
// when both live strategies come back empty.
type TikTok struct {
	Handle         string   `json:"handle"`
	OEmbedURL      string   `json:"oembedURL"`
	WebBaseURL     string   `json:"webBaseURL"`
	FallbackVideos []string `json:"fallbackVideos"`
}

type Sanity struct {
	ProjectID  string `json:"projectId"`
	Dataset    string `json:"dataset"`
	APIVersion string `json:"apiVersion"`
	Token      string `json:"token"`
}

type SMTP struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	To       string `json:"to"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

// ImageProxy lists extra CDN hostnames allowed beyond the built-in set.
type ImageProxy struct {
	ExtraHosts []string `json:"extraHosts"`
}

type Cors struct {
	Origins []string `json:"origins"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initTikTok(&C)
	initSanity(&C)
	initSMTP(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}

	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		if v := os.Getenv("MONGO_PORT"); v != "" {
			C.Database.Mongo.Port = v
		} else {
			C.Database.Mongo.Port = "27017"
		}
	}
	if C.Database.Mongo.Name == "" {
		if v := os.Getenv("MONGO_DB_NAME"); v != "" {
			C.Database.Mongo.Name = v
		} else {
			C.Database.Mongo.Name = "axlas_recipes"
		}
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment overrides the config file when provided
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; admin endpoints will reject all tokens. Provide SECRET_KEY via environment.")
	}
}

func initTikTok(C *Config) {
	if C.TikTok.Handle == "" {
		if v := os.Getenv("TIKTOK_HANDLE"); v != "" {
			C.TikTok.Handle = v
		} else {
			C.TikTok.Handle = "@axlas.cooks"
		}
	}
	if C.TikTok.OEmbedURL == "" {
		C.TikTok.OEmbedURL = "https://www.tiktok.com/oembed"
	}
	if C.TikTok.WebBaseURL == "" {
		C.TikTok.WebBaseURL = "https://www.tiktok.com"
	}
	if len(C.TikTok.FallbackVideos) == 0 {
		base := fmt.Sprintf("%s/%s/video/", C.TikTok.WebBaseURL, C.TikTok.Handle)
		C.TikTok.FallbackVideos = []string{
			base + "7563006717324217622",
			base + "7562963997083831574",
			base + "7562229699628272918",
		}
	}
}

func initSanity(C *Config) {
	if C.Sanity.ProjectID == "" {
		C.Sanity.ProjectID = os.Getenv("SANITY_PROJECT_ID")
	}
	if C.Sanity.Dataset == "" {
		if v := os.Getenv("SANITY_DATASET"); v != "" {
			C.Sanity.Dataset = v
		} else {
			C.Sanity.Dataset = "production"
		}
	}
	if C.Sanity.APIVersion == "" {
		C.Sanity.APIVersion = "2024-01-01"
	}
	if C.Sanity.Token == "" {
		C.Sanity.Token = os.Getenv("SANITY_TOKEN")
	}
}

func initSMTP(C *Config) {
	if C.SMTP.Host == "" {
		C.SMTP.Host = os.Getenv("SMTP_HOST")
	}
	if C.SMTP.Port == 0 {
		if v := os.Getenv("SMTP_PORT"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				C.SMTP.Port = p
			}
		}
	}
	if C.SMTP.Port == 0 {
		C.SMTP.Port = 587
	}
	if C.SMTP.User == "" {
		C.SMTP.User = os.Getenv("SMTP_USER")
	}
	if C.SMTP.Password == "" {
		C.SMTP.Password = os.Getenv("SMTP_PASS")
	}
	if C.SMTP.To == "" {
		if v := os.Getenv("CONTACT_TO"); v != "" {
			C.SMTP.To = v
		} else {
			C.SMTP.To = C.SMTP.User
		}
	}
}
