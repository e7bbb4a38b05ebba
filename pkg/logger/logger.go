package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

// New - логгер, который пишет только в буфер (для веб-страницы и тестов)
func New() *ZapLogger {
	return build(nil, zap.DebugLevel)
}

// NewConsole дополнительно дублирует записи в w начиная с уровня level
func NewConsole(w io.Writer, level zapcore.Level) *ZapLogger {
	return build(zapcore.AddSync(w), level)
}

func build(console zapcore.WriteSyncer, level zapcore.Level) *ZapLogger {
	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(logBuf), zap.DebugLevel),
	}
	if console != nil {
		cores = append(cores, zapcore.NewCore(encoder, console, level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

var au = aurora.NewAurora(true)

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colored aurora.Value
	switch level {
	case zapcore.DebugLevel:
		colored = au.Cyan(level.String())
	case zapcore.InfoLevel:
		colored = au.Green(level.String())
	case zapcore.WarnLevel:
		colored = au.Yellow(level.String())
	case zapcore.ErrorLevel:
		colored = au.Red(level.String())
	default:
		colored = au.Reset(level.String())
	}
	enc.AppendString(colored.String())
}

var ansiRe = regexp.MustCompile(`\x1b\[(\d+)m`)

// Converts ANSI color codes to HTML span with inline styles
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiRe.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]

		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}

		colorCode := input[match[2]:match[3]]
		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

func (z *ZapLogger) UpdateLogs() {
	htmlLogs := ansiToHTML(z.logBuf.String())
	z.Logs = []string{htmlLogs}
}

func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
	z.Logs = nil
}

// With возвращает логгер с постоянными полями, буфер общий с родителем
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{
		log:    z.log.With(fields...),
		logBuf: z.logBuf,
	}
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
	z.UpdateLogs()
}
