package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Run      Run      `mapstructure:"run" validate:"required"`
	Workload Workload `mapstructure:"workload" validate:"required"`
	Logging  Logging  `mapstructure:"logging" validate:"required"`
	Output   Output   `mapstructure:"output"`
}

type Run struct {
	Name      *string `mapstructure:"name" validate:"required"`
	Repeat    *int    `mapstructure:"repeat" validate:"required,min=0"`
	DisableGC *bool   `mapstructure:"disableGC" validate:"required"`
	// CollectorWindow selects the live iteration-duration collector: 0
	// keeps every sample, a positive value keeps a sliding window of
	// that size.
	CollectorWindow *int `mapstructure:"collectorWindow" validate:"required,min=0"`
}

type Workload struct {
	Driver    *string   `mapstructure:"driver" validate:"oneof=simulated http checksum"`
	Simulated Simulated `mapstructure:"simulated" validate:"required_if=Driver simulated"`
	HTTP      HTTP      `mapstructure:"http" validate:"required_if=Driver http"`
	Checksum  Checksum  `mapstructure:"checksum" validate:"required_if=Driver checksum"`
}

type Simulated struct {
	MeanMs   *float64 `mapstructure:"meanMs" validate:"required"`
	StddevMs *float64 `mapstructure:"stddevMs" validate:"required"`
	MinMs    *float64 `mapstructure:"minMs" validate:"required"`
	MaxMs    *float64 `mapstructure:"maxMs" validate:"required"`
}

type HTTP struct {
	URL *string `mapstructure:"url" validate:"required"`
}

type Checksum struct {
	Bytes *int `mapstructure:"bytes" validate:"required,min=1"`
}

type Logging struct {
	Driver   *string  `mapstructure:"driver" validate:"oneof=noop stdout influxdb"`
	InfluxDB InfluxDB `mapstructure:"influxdb" validate:"required_if=Driver influxdb"`
}

type InfluxDB struct {
	Host   *string `mapstructure:"host" validate:"required"`
	Token  *string `mapstructure:"token" validate:"required"`
	Org    *string `mapstructure:"org" validate:"required"`
	Bucket *string `mapstructure:"bucket" validate:"required"`
}

type Output struct {
	// PlotPath, when set, is where a PNG chart of the per-iteration
	// durations is written after the run.
	PlotPath *string `mapstructure:"plotPath"`
}

func setDefaults() {
	viper.SetDefault("Run.Name", "benchmark")
	viper.SetDefault("Run.Repeat", 10)
	viper.SetDefault("Run.DisableGC", true)
	viper.SetDefault("Run.CollectorWindow", 0)

	viper.SetDefault("Workload.Driver", "simulated")
	viper.SetDefault("Workload.Simulated.MeanMs", 10)
	viper.SetDefault("Workload.Simulated.StddevMs", 2)
	viper.SetDefault("Workload.Simulated.MinMs", 1)
	viper.SetDefault("Workload.Simulated.MaxMs", 50)

	viper.SetDefault("Logging.Driver", "noop")
}

func ReadConfig() *Config {
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error when reading config file: err = %s", err)
		}
		// Defaults cover every required field, so a missing file is fine.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("error occured while reading configuration file: err = %s", err)
	}
	validate := validator.New()
	err := validate.Struct(&config)
	if err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			log.Printf("unable to validate config: err = %s", err)
		}

		log.Printf("encountered validation errors:\n")

		for _, err := range err.(validator.ValidationErrors) {
			fmt.Printf("\t%s\n", err.Error())
		}

		fmt.Println("Check your configuration file and try again.")
		os.Exit(1)
	}

	return &config
}
