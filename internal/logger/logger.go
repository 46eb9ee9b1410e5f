package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Log 는 전역 로거 인스턴스다. Init 전에도 info 레벨로 동작한다.
var Log Logger = NewLogger("info")

// Init 은 전역 로거의 레벨을 설정한다. config 의 logging.level 을 그대로 넘긴다.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// InitFromEnv 는 환경변수 키에서 로그 레벨을 읽어 전역 로거를 초기화한다.
func InitFromEnv(envKey string) {
	Init(os.Getenv(envKey))
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 JSON 로거를 생성한다.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	// 기본 필드는 datetime/level/message 만 두고 나머지는 Fields 로 출력한다.
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

// withServiceName 은 service_name 필드를 SERVICE_NAME 환경변수 기준으로 보강한다.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			fields["service_name"] = sn
		}
	}
	return fields
}

func logWithFields(level slog.Level, msg string, fields Fields) {
	fields = withServiceName(fields)
	var target Logger = Log
	if lg, ok := Log.(*slog.Logger); ok {
		target = lg.WithFields(slog.M(fields))
	}
	switch level {
	case slog.DebugLevel:
		target.Debug(msg)
	case slog.WarnLevel:
		target.Warn(msg)
	case slog.ErrorLevel:
		target.Error(msg)
	default:
		target.Info(msg)
	}
}

// InfoWithFields 는 request_id, span_id 등 구조화 필드를 포함한 JSON 로그를 출력한다.
func InfoWithFields(msg string, fields Fields) {
	logWithFields(slog.InfoLevel, msg, fields)
}

func DebugWithFields(msg string, fields Fields) {
	logWithFields(slog.DebugLevel, msg, fields)
}

// WarnWithFields 는 페이지 섹션 하나가 비어서 나가는 것처럼 응답은 했지만 저하된 상황에 쓴다.
func WarnWithFields(msg string, fields Fields) {
	logWithFields(slog.WarnLevel, msg, fields)
}

func ErrorWithFields(msg string, fields Fields) {
	logWithFields(slog.ErrorLevel, msg, fields)
}
