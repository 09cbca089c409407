package config

import (
	"strings"
	"time"

	"elevation-service/internal/utils/runtime"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	kafkaHostFlag         = "kafka-host"
	kafkaPortFlag         = "kafka-port"
	kafkaTopicFlag        = "kafka-topic"
	mongoDBURIFlag        = "mongodb-uri"
	developmentFlag       = "development"
	grpcPortFlag          = "port"
	httpPortFlag          = "http-port"
	jwtSecretFlag         = "jwt-secret"
	reconcileIntervalFlag = "reconcile-interval"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig
	Auth    AuthConfig

	Development bool

	GRPCPort int
	HTTPPort int

	// ReconcileInterval is how often approved applications are checked for a missing role grant.
	// Zero disables the reconciler.
	ReconcileInterval time.Duration
}

type KafkaConfig struct {
	Host  string
	Port  int
	Topic string
}

type MongoDBConfig struct {
	URI string
}

type AuthConfig struct {
	JWTSecret string
}

func LoadGlobalConfig() (*Config, error) {
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(kafkaTopicFlag, "role-applications")
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(developmentFlag, true)
	viper.SetDefault(grpcPortFlag, 10010)
	viper.SetDefault(httpPortFlag, 8080)
	viper.SetDefault(jwtSecretFlag, "")
	viper.SetDefault(reconcileIntervalFlag, 5*time.Minute)

	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(kafkaTopicFlag, viper.GetString(kafkaTopicFlag), "Kafka topic for application notifications")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Int32(grpcPortFlag, viper.GetInt32(grpcPortFlag), "gRPC port")
	pflag.Int32(httpPortFlag, viper.GetInt32(httpPortFlag), "HTTP port for the gate, health and metrics endpoints")
	pflag.String(jwtSecretFlag, viper.GetString(jwtSecretFlag), "HMAC secret used to verify session tokens")
	pflag.Duration(reconcileIntervalFlag, viper.GetDuration(reconcileIntervalFlag), "Interval of the role grant reconciler, 0 to disable")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(kafkaTopicFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(developmentFlag))
	runtime.Must(viper.BindEnv(grpcPortFlag))
	runtime.Must(viper.BindEnv(httpPortFlag))
	runtime.Must(viper.BindEnv(jwtSecretFlag))
	runtime.Must(viper.BindEnv(reconcileIntervalFlag))

	return &Config{
		Kafka: KafkaConfig{
			Host:  viper.GetString(kafkaHostFlag),
			Port:  int(viper.GetInt32(kafkaPortFlag)),
			Topic: viper.GetString(kafkaTopicFlag),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString(jwtSecretFlag),
		},
		Development:       viper.GetBool(developmentFlag),
		GRPCPort:          int(viper.GetInt32(grpcPortFlag)),
		HTTPPort:          int(viper.GetInt32(httpPortFlag)),
		ReconcileInterval: viper.GetDuration(reconcileIntervalFlag),
	}, nil
}
