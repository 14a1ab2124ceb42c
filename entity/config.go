package entity

type Config struct {
	Server         ServerConfig   `yaml:"server"`
	PostgresConfig PostgresConfig `yaml:"database"`
	JWTSecretKey   string         `yaml:"jwt_secret"`
	MediaDir       string         `yaml:"media_dir"`
	FontDir        string         `yaml:"font_dir"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}
