package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
)

type Config struct {
	DB *gorm.DB

	Prod_env bool

	// env-sourced, never in the toml file
	Secrets Secrets `toml:"-"`

	Postgres struct {
		Host     string
		User     string
		Password string
		Db_name  string
		Port     uint16
		Ssl_mode string
	}

	// upstream settlement-mutation feed
	Mutations struct {
		BaseUrl         string   `toml:"base_url"` // GET {base_url}/{memberid}/{apiid}
		MirrorUrls      []string `toml:"mirror_urls"`
		Timeout_seconds int      `toml:"timeout_seconds"`
	} `toml:"mutations"`

	// S3-compatible object storage for QR images
	Storage struct {
		Endpoint   string
		Region     string
		Bucket     string
		Public_url string // prefix of the returned image urls
	} `toml:"storage"`

	Api struct {
		Ipv4  string
		Proto string
	} `toml:"qris_web"`
}

type Secrets struct {
	AccessKeyMerchant string `envconfig:"ACCESS_KEY_MERCHANT" required:"true"`
	AccessKeyDelete   string `envconfig:"ACCESS_KEY_DELETE" required:"true"`
	StorageKeyId      string `envconfig:"STORAGE_ACCESS_KEY_ID" required:"true"`
	StorageKeySecret  string `envconfig:"STORAGE_SECRET_ACCESS_KEY" required:"true"`
}

func ReadConfig() *Config {
	byte_config, err := os.ReadFile(os.Getenv("CONFIG"))
	if err != nil {
		panic(err)
	}

	var config Config
	_, err = toml.Decode(string(byte_config), &config)
	if err != nil {
		panic(err)
	}

	if err := envconfig.Process("", &config.Secrets); err != nil {
		panic("secrets: " + err.Error())
	}

	if config.Mutations.Timeout_seconds <= 0 {
		config.Mutations.Timeout_seconds = 5
	}

	return &config
}

func (c *Config) MutationsTimeout() time.Duration {
	return time.Duration(c.Mutations.Timeout_seconds) * time.Second
}

// MutationsUrls returns the feed hosts, base first then mirrors.
func (c *Config) MutationsUrls() []string {
	urls := make([]string, 0, 1+len(c.Mutations.MirrorUrls))
	if c.Mutations.BaseUrl != "" {
		urls = append(urls, c.Mutations.BaseUrl)
	}
	for _, u := range c.Mutations.MirrorUrls {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
