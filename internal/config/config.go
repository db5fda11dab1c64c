package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

const (
	AppName = "virtual-view-estate"

	LDConnectionTimeout = 5 * time.Second

	// Admin write operations are abandoned client-side after this long even
	// though the underlying statement may still land (no idempotency key).
	WriteTimeout = 15 * time.Second
)

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Database / cache
	DBUrl     string
	RedisAddr string // empty disables the listing cache
	RedisPass string

	// Notification relay (token never leaves the server)
	TelegramBotToken string
	TelegramChatID   string
	SendgridAPIKey   string
	NotifyEmailTo    string
	NotifyEmailFrom  string

	// Geocoding
	GMapsAPIKey      string
	NominatimBaseURL string

	// Media uploads
	MediaDir       string
	MaxUploadBytes int64

	// Auth
	AdminEmails       []string
	AdminPasswordHash string
	RSAPrivateKey     *rsa.PrivateKey
	RSAPublicKey      *rsa.PublicKey

	// Feature-flag snapshots (LaunchDarkly when LD_SDK_KEY is set, env fallback otherwise)
	LDFlag_SeedDemoData     bool
	LDFlag_CORSAllowAll     bool
	LDFlag_TelegramDisabled bool
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}

	adminEmails := parseAdminEmails(os.Getenv("ADMIN_EMAILS"))
	if len(adminEmails) == 0 {
		utils.Logger.Fatal("ADMIN_EMAILS env var is missing or empty")
	}
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminHash == "" {
		utils.Logger.Fatal("ADMIN_PASSWORD_HASH env var is missing")
	}

	privKey, err := parseRSAPrivateKey(os.Getenv("JWT_RSA_PRIVATE_KEY"))
	if err != nil {
		utils.Logger.WithError(err).Fatal("JWT_RSA_PRIVATE_KEY invalid or missing")
	}

	telegramToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramChat := os.Getenv("TELEGRAM_CHAT_ID")
	if telegramToken == "" || telegramChat == "" {
		utils.Logger.Warn("Telegram bot not configured; contact messages will not be relayed")
	}

	nominatimURL := os.Getenv("NOMINATIM_BASE_URL")
	if nominatimURL == "" {
		nominatimURL = "https://nominatim.openstreetmap.org"
	}

	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "./media"
	}

	cfg := &Config{
		AppName:           AppName,
		AppPort:           appPort,
		AppUrl:            strings.TrimRight(appUrl, "/"),
		DBUrl:             dbUrl,
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		TelegramBotToken:  telegramToken,
		TelegramChatID:    telegramChat,
		SendgridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		NotifyEmailTo:     os.Getenv("NOTIFY_EMAIL_TO"),
		NotifyEmailFrom:   os.Getenv("NOTIFY_EMAIL_FROM"),
		GMapsAPIKey:       os.Getenv("GMAPS_API_KEY"),
		NominatimBaseURL:  strings.TrimRight(nominatimURL, "/"),
		MediaDir:          mediaDir,
		MaxUploadBytes:    50 << 20,
		AdminEmails:       adminEmails,
		AdminPasswordHash: adminHash,
		RSAPrivateKey:     privKey,
		RSAPublicKey:      &privKey.PublicKey,
	}

	loadFlags(cfg)

	utils.Logger.Infof("Loaded config for %s on :%s", AppName, appPort)
	return cfg
}

// IsAdminEmail is the whole authorization policy: a normalized membership
// test against the configured allowlist.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range c.AdminEmails {
		if allowed == email {
			return true
		}
	}
	return false
}

func parseAdminEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// parseRSAPrivateKey decodes a base64-wrapped PEM PKCS#1 or PKCS#8 RSA key.
func parseRSAPrivateKey(b64 string) (*rsa.PrivateKey, error) {
	if b64 == "" {
		return nil, errors.New("empty key")
	}
	pemBytes, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return key, nil
}

// loadFlags snapshots feature flags at boot. When LD_SDK_KEY is present the
// values come from LaunchDarkly; otherwise plain env vars take over so the
// service boots without an LD connection.
func loadFlags(cfg *Config) {
	cfg.LDFlag_SeedDemoData = os.Getenv("SEED_DEMO_DATA") == "true"
	cfg.LDFlag_CORSAllowAll = os.Getenv("CORS_ALLOW_ALL") == "true"
	cfg.LDFlag_TelegramDisabled = os.Getenv("TELEGRAM_DISABLED") == "true"

	sdkKey := os.Getenv("LD_SDK_KEY")
	if sdkKey == "" {
		return
	}

	ldClient, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Warn("LaunchDarkly client failed; keeping env flag values")
		return
	}
	defer ldClient.Close()
	if !ldClient.Initialized() {
		utils.Logger.Warn("LaunchDarkly client not initialized; keeping env flag values")
		return
	}

	ctx := ldcontext.NewWithKind("service", AppName)

	if v, err := ldClient.BoolVariation("seed_demo_data", ctx, cfg.LDFlag_SeedDemoData); err == nil {
		cfg.LDFlag_SeedDemoData = v
	}
	if v, err := ldClient.BoolVariation("cors_allow_all", ctx, cfg.LDFlag_CORSAllowAll); err == nil {
		cfg.LDFlag_CORSAllowAll = v
	}
	if v, err := ldClient.BoolVariation("telegram_disabled", ctx, cfg.LDFlag_TelegramDisabled); err == nil {
		cfg.LDFlag_TelegramDisabled = v
	}

	utils.Logger.Debugf("LD flags: seed_demo_data=%t cors_allow_all=%t telegram_disabled=%t",
		cfg.LDFlag_SeedDemoData, cfg.LDFlag_CORSAllowAll, cfg.LDFlag_TelegramDisabled)
}
