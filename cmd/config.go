package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageBolt     = "bolt"
	StoragePostgres = "postgres"
)

// Config is read from the environment. Values from a .env file fill in
// variables that are not already set.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBHost        string `env:"DB_HOST"        envDefault:"localhost"`
	DBPort        string `env:"DB_PORT"        envDefault:"5432"`
	DBUser        string `env:"DB_USER"        envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"        envDefault:"chapatis"`
	DBSslMode     string `env:"DB_SSLMODE"     envDefault:"disable"`
	BoltPath      string `env:"BOLT_PATH"      envDefault:"chapatis.db"`

	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"chapatis.orders.confirmed"`

	SessionTTL           time.Duration `env:"SESSION_TTL"            envDefault:"24h"`
	SessionPurgeSchedule string        `env:"SESSION_PURGE_SCHEDULE" envDefault:"0 */15 * * * *"`

	DeliveryTimezone   string   `env:"DELIVERY_TIMEZONE"    envDefault:"Europe/London"`
	DeliveryWeekdays   []string `env:"DELIVERY_WEEKDAYS"    envDefault:"Wednesday,Saturday" envSeparator:","`
	LookaheadDays      int      `env:"LOOKAHEAD_DAYS"       envDefault:"28"`
	MaxSlots           int      `env:"MAX_SLOTS"            envDefault:"6"`
	DailyCapacityBoxes int      `env:"DAILY_CAPACITY_BOXES" envDefault:"100"`

	MinOrderBoxes    int   `env:"MIN_ORDER_BOXES"     envDefault:"5"`
	MaxOrderBoxes    int   `env:"MAX_ORDER_BOXES"     envDefault:"50"`
	PricePerBoxPence int64 `env:"PRICE_PER_BOX_PENCE" envDefault:"450"`
	ChapatisPerBox   int   `env:"CHAPATIS_PER_BOX"    envDefault:"10"`
}

// LoadConfig loads the given .env files, when they exist, and parses the
// environment.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that are not validated by the domain
// constructors.
func (c Config) Validate() error {
	var storageErr error
	switch c.StorageDriver {
	case StorageMemory, StorageBolt, StoragePostgres:
	default:
		storageErr = errs.NewValueIsInvalidErrorWithCause(
			"STORAGE_DRIVER",
			fmt.Errorf("%q is not one of %s, %s, %s", c.StorageDriver, StorageMemory, StorageBolt, StoragePostgres),
		)
	}

	var ttlErr error
	if c.SessionTTL <= 0 {
		ttlErr = errs.NewValueIsOutOfRangeError("SESSION_TTL", c.SessionTTL, "1ns", "unbounded")
	}

	return errors.Join(storageErr, ttlErr)
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DeliveryTimezone)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("DELIVERY_TIMEZONE", err)
	}
	return loc, nil
}

// SlotPolicy builds the delivery calendar.
func (c Config) SlotPolicy() (slot.Policy, error) {
	loc, err := c.Location()
	if err != nil {
		return slot.Policy{}, err
	}

	weekdays := make([]time.Weekday, 0, len(c.DeliveryWeekdays))
	for _, name := range c.DeliveryWeekdays {
		if strings.TrimSpace(name) == "" {
			continue
		}
		day, parseErr := slot.ParseWeekday(name)
		if parseErr != nil {
			return slot.Policy{}, parseErr
		}
		weekdays = append(weekdays, day)
	}

	return slot.NewPolicy(weekdays, c.LookaheadDays, c.MaxSlots, c.DailyCapacityBoxes, loc)
}

// Catalog builds the product offer.
func (c Config) Catalog() (order.Catalog, error) {
	limits, err := order.NewLimits(c.MinOrderBoxes, c.MaxOrderBoxes)
	if err != nil {
		return order.Catalog{}, err
	}

	price, err := kernel.NewMoney(c.PricePerBoxPence)
	if err != nil {
		return order.Catalog{}, err
	}

	return order.NewCatalog(limits, price, c.ChapatisPerBox)
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
