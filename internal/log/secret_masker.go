package log

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

const secretMask = "***masked***"

// SecretMaskerHandler оборачивает slog.Handler и маскирует значения cookie
// сессии FunPay (golden_key, PHPSESSID) в сообщениях и атрибутах.
type SecretMaskerHandler struct {
	handler slog.Handler
}

// NewSecretMaskerHandler создает новый обработчик с маскировкой секретов.
func NewSecretMaskerHandler(handler slog.Handler) *SecretMaskerHandler {
	return &SecretMaskerHandler{handler: handler}
}

// Имя секрета, разделитель ("=" в cookie, ":" в JSON) и значение до ограничителя.
var secretRegex = regexp.MustCompile(`(?i)((?:golden_key|phpsessid)["']?\s*[=:]\s*["']?)[^;,&\s"']+`)

var secretKeys = map[string]struct{}{
	"golden_key": {},
	"phpsessid":  {},
}

func maskSecrets(text string) string {
	return secretRegex.ReplaceAllString(text, "${1}"+secretMask)
}

func (h *SecretMaskerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle маскирует копию записи. Исходная запись не меняется: slog может
// переиспользовать ее после возврата.
func (h *SecretMaskerHandler) Handle(ctx context.Context, record slog.Record) error {
	r := slog.NewRecord(record.Time, record.Level, maskSecrets(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		r.AddAttrs(maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, r)
}

func (h *SecretMaskerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		masked[i] = maskAttr(attr)
	}
	return &SecretMaskerHandler{handler: h.handler.WithAttrs(masked)}
}

func (h *SecretMaskerHandler) WithGroup(name string) slog.Handler {
	return &SecretMaskerHandler{handler: h.handler.WithGroup(name)}
}

func maskAttr(a slog.Attr) slog.Attr {
	if _, secret := secretKeys[strings.ToLower(a.Key)]; secret && a.Value.Kind() != slog.KindGroup {
		return slog.String(a.Key, secretMask)
	}
	return slog.Attr{Key: a.Key, Value: maskValue(a.Value)}
}

func maskValue(value slog.Value) slog.Value {
	switch value.Kind() {
	case slog.KindString:
		return slog.StringValue(maskSecrets(value.String()))
	case slog.KindAny:
		if err, ok := value.Any().(error); ok {
			return slog.StringValue(maskSecrets(err.Error()))
		}
		return value
	case slog.KindGroup:
		group := value.Group()
		masked := make([]slog.Attr, len(group))
		for i, attr := range group {
			masked[i] = maskAttr(attr)
		}
		return slog.GroupValue(masked...)
	default:
		return value
	}
}
