package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type ConsoleConfig struct {
	AdminToken string `mapstructure:"admin_token"`
}

// PlatformConfig points at the external messaging platform's REST surface.
type PlatformConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

// TicketsConfig holds the lifecycle tuning knobs. All values are read once at
// startup and treated as immutable.
type TicketsConfig struct {
	GateWindow        time.Duration `mapstructure:"gate_window"`
	Cooldown          time.Duration `mapstructure:"cooldown"`
	MaxOpenPerUser    int           `mapstructure:"max_open_per_user"`
	PlatformTimeout   time.Duration `mapstructure:"platform_timeout"`
	DeleteDelay       time.Duration `mapstructure:"delete_delay"`
	ReconcileInterval time.Duration `mapstructure:"reconcile_interval"`
}
