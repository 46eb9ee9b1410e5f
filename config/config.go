package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// 콘텐츠 백엔드
const (
	BackendSanity = "sanity"
	BackendMongo  = "mongo"
)

// 조회수 집계 방식
const (
	ViewsModeDirect = "direct"
	ViewsModeKafka  = "kafka"
)

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Listing ListingConfig `yaml:"listing"`
	Views   ViewsConfig   `yaml:"views"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Session SessionConfig `yaml:"session"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type SiteConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	// Timezone 은 날짜 표시에 쓰는 IANA 이름이다. CMS 타임스탬프는 UTC 로 온다.
	Timezone string `yaml:"timezone"`
}

// Location 은 사이트 타임존을 반환한다. 이름을 읽지 못하면 UTC 다.
func (s SiteConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ContentConfig 는 CMS 조회 백엔드를 선택한다.
// backend 가 sanity 이면 HTTP GROQ API 를, mongo 이면 MongoDB 컬렉션을 직접 읽는다.
type ContentConfig struct {
	Backend string       `yaml:"backend"`
	Sanity  SanityConfig `yaml:"sanity"`
	Mongo   MongoConfig  `yaml:"mongo"`
}

type SanityConfig struct {
	ProjectID  string        `yaml:"project_id"`
	Dataset    string        `yaml:"dataset"`
	APIVersion string        `yaml:"api_version"`
	Token      string        `yaml:"token"`
	UseCDN     bool          `yaml:"use_cdn"`
	Timeout    time.Duration `yaml:"timeout"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// ListingConfig 는 페이지별로 가져오는 기사 수를 정의한다.
type ListingConfig struct {
	FeaturedLimit        int `yaml:"featured_limit"`
	TrendingLimit        int `yaml:"trending_limit"`
	BreakingLimit        int `yaml:"breaking_limit"`
	CategoryPreviewLimit int `yaml:"category_preview_limit"`
	CategoryPageSize     int `yaml:"category_page_size"`
	SearchLimit          int `yaml:"search_limit"`
	RelatedLimit         int `yaml:"related_limit"`
	FeedLimit            int `yaml:"feed_limit"`
	// nil 이면 기본값 2. 0 은 현재 페이지만 보여준다.
	PaginationRadius *int `yaml:"pagination_radius"`
}

const defaultPaginationRadius = 2

// Radius 는 설정된 페이지네이션 반경을 반환한다.
func (l ListingConfig) Radius() int {
	if l.PaginationRadius == nil {
		return defaultPaginationRadius
	}
	return *l.PaginationRadius
}

// ViewsConfig 는 조회수 증가를 어떻게 전달할지 정한다.
// direct: 웹 서버가 CMS 에 바로 patch, kafka: article.viewed 이벤트 발행 후 viewcounter 가 처리.
type ViewsConfig struct {
	Mode    string        `yaml:"mode"`
	Timeout time.Duration `yaml:"timeout"`
}

type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	GroupID string `yaml:"group_id"`
	Topic   string `yaml:"topic"`
}

type SessionConfig struct {
	Name   string `yaml:"name"`
	Secret string `yaml:"secret"`
}

var config *AppConfig

func InitApp() {
	// 환경변수 로드
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
}

// Load 는 yaml 설정 파일을 읽고 환경변수 덮어쓰기와 기본값을 적용한다.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.applyEnv()
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// SetConfig 는 전역 설정을 교체한다. 테스트와 도구에서 사용한다.
func SetConfig(c AppConfig) {
	config = &c
}

// applyEnv 는 비밀값/주소를 환경변수로 덮어쓴다. (.env 또는 컨테이너 환경)
// session.secret 은 config.yaml 에 두지 않고 SESSION_SECRET 으로만 주입한다.
func (c *AppConfig) applyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.Content.Sanity.ProjectID, "SANITY_PROJECT_ID")
	override(&c.Content.Sanity.Dataset, "SANITY_DATASET")
	override(&c.Content.Sanity.Token, "SANITY_TOKEN")
	override(&c.Content.Mongo.URI, "MONGO_URI")
	override(&c.Kafka.Brokers, "KAFKA_BOOTSTRAP_SERVERS")
	override(&c.Kafka.GroupID, "KAFKA_GROUP_ID")
	override(&c.Session.Secret, "SESSION_SECRET")
	override(&c.Site.BaseURL, "SITE_URL")
	override(&c.Logging.Level, "LOG_LEVEL")
}

// ApplyDefaults 는 비어 있는 값을 사이트 기본값으로 채운다.
func (c *AppConfig) ApplyDefaults() {
	setString := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if *dst <= 0 {
			*dst = v
		}
	}

	setString(&c.Server.Addr, ":8080")
	setString(&c.Logging.Level, "info")
	setString(&c.Site.Name, "বাংলা নিউজ")
	setString(&c.Site.BaseURL, "https://banglanews.com")
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	setString(&c.Site.Timezone, "Asia/Dhaka")

	setString(&c.Content.Backend, BackendSanity)
	setString(&c.Content.Sanity.Dataset, "production")
	setString(&c.Content.Sanity.APIVersion, "2023-12-01")
	if c.Content.Sanity.Timeout <= 0 {
		c.Content.Sanity.Timeout = 10 * time.Second
	}
	setString(&c.Content.Mongo.URI, "mongodb://localhost:27017")
	setString(&c.Content.Mongo.Database, "banglanews")

	setInt(&c.Listing.FeaturedLimit, 5)
	setInt(&c.Listing.TrendingLimit, 5)
	setInt(&c.Listing.BreakingLimit, 10)
	setInt(&c.Listing.CategoryPreviewLimit, 6)
	setInt(&c.Listing.CategoryPageSize, 12)
	setInt(&c.Listing.SearchLimit, 20)
	setInt(&c.Listing.RelatedLimit, 4)
	setInt(&c.Listing.FeedLimit, 20)
	if c.Listing.PaginationRadius == nil {
		radius := defaultPaginationRadius
		c.Listing.PaginationRadius = &radius
	}

	setString(&c.Views.Mode, ViewsModeDirect)
	if c.Views.Timeout <= 0 {
		c.Views.Timeout = 5 * time.Second
	}
	setString(&c.Kafka.GroupID, "banglanews-viewcounter")
	setString(&c.Kafka.Topic, "banglanews.article.views")

	setString(&c.Session.Name, "banglanews_session")
}

// Validate 는 기본값을 둘 수 없는 값을 검사한다.
func (c *AppConfig) Validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("session.secret is required (set SESSION_SECRET)")
	}
	if _, err := time.LoadLocation(c.Site.Timezone); err != nil {
		return fmt.Errorf("site.timezone %q: %w", c.Site.Timezone, err)
	}
	if c.Listing.Radius() < 0 {
		return fmt.Errorf("listing.pagination_radius must not be negative")
	}
	switch c.Content.Backend {
	case BackendSanity:
		if c.Content.Sanity.ProjectID == "" {
			return fmt.Errorf("content.sanity.project_id is required for the sanity backend")
		}
	case BackendMongo:
	default:
		return fmt.Errorf("unknown content.backend %q", c.Content.Backend)
	}
	switch c.Views.Mode {
	case ViewsModeDirect:
	case ViewsModeKafka:
		if c.Kafka.Brokers == "" {
			return fmt.Errorf("kafka.brokers is required when views.mode is kafka")
		}
	default:
		return fmt.Errorf("unknown views.mode %q", c.Views.Mode)
	}
	return nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
