package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	Retell      RetellConfig
	Order       OrderConfig
	Gateway     GatewayConfig
	Environment string
}

type ServerConfig struct {
	Port int
}

type CORSConfig struct {
	Origin string
}

type LogConfig struct {
	Level string
}

type RetellConfig struct {
	APIKey  string
	AgentID string
	BaseURL string
}

type OrderConfig struct {
	LeadTime time.Duration
}

type GatewayConfig struct {
	AMQPURL    string
	Exchange   string
	RoutingKey string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 3001)
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("RETELL_API_KEY", "")
	viper.SetDefault("RETELL_AGENT_ID", "")
	viper.SetDefault("RETELL_API_BASE", "https://api.retellai.com/v2")
	viper.SetDefault("ORDER_LEAD_TIME", "15m")
	viper.SetDefault("GATEWAY_AMQP_URL", "")
	viper.SetDefault("GATEWAY_EXCHANGE", "orders_topic")
	viper.SetDefault("GATEWAY_ROUTING_KEY", "orders.confirmed")

	leadTime, err := time.ParseDuration(viper.GetString("ORDER_LEAD_TIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		CORS: CORSConfig{
			Origin: viper.GetString("CORS_ORIGIN"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Retell: RetellConfig{
			APIKey:  viper.GetString("RETELL_API_KEY"),
			AgentID: viper.GetString("RETELL_AGENT_ID"),
			BaseURL: viper.GetString("RETELL_API_BASE"),
		},
		Order: OrderConfig{
			LeadTime: leadTime,
		},
		Gateway: GatewayConfig{
			AMQPURL:    viper.GetString("GATEWAY_AMQP_URL"),
			Exchange:   viper.GetString("GATEWAY_EXCHANGE"),
			RoutingKey: viper.GetString("GATEWAY_ROUTING_KEY"),
		},
		Environment: viper.GetString("ENVIRONMENT"),
	}

	return cfg, nil
}
