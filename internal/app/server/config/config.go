package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Export  export
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type storage struct {
	// DSN хранилища черновиков. По умолчанию :memory: - черновики живут
	// только пока жив сервер.
	DSN string `env:"STORAGE_DSN"`
}

type export struct {
	Compress bool    `env:"EXPORT_COMPRESS"`
	Scale    float64 `env:"EXPORT_SCALE"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("storage_dsn", ":memory:")
	viper.SetDefault("export_compress", true)
	viper.SetDefault("export_scale", 1.0)

	return &Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		Storage: storage{
			DSN: viper.GetString("storage_dsn"),
		},
		Export: export{
			Compress: viper.GetBool("export_compress"),
			Scale:    viper.GetFloat64("export_scale"),
		},
	}
}
