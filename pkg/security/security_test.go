package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidateImage(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	webp := append([]byte("RIFF\x00\x00\x00\x00"), []byte("WEBPVP8 ")...)
	wav := append([]byte("RIFF\x00\x00\x00\x00"), []byte("WAVEfmt ")...)

	tests := []struct {
		name     string
		filename string
		data     []byte
		valid    bool
		mime     string
	}{
		{"png", "icons/github.PNG", png, true, "image/png"},
		{"jpeg", "profile.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, true, "image/jpeg"},
		{"webp", "cover.webp", webp, true, "image/webp"},
		{"riff but not webp", "cover.webp", wav, false, "image/webp"},
		{"spoofed png", "logo.png", []byte("<svg></svg>"), false, "image/png"},
		{"svg not allowed", "logo.svg", []byte("<svg></svg>"), false, ""},
		{"no extension", "README", png, false, ""},
		{"too small", "a.png", []byte{0x89}, false, "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateImage(tt.filename, tt.data)
			assert.Equal(t, tt.valid, result.Valid, result.Error)
			assert.Equal(t, tt.mime, result.MIME)
		})
	}
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, ValidateFileExtension("x.GIF"))
	assert.Error(t, ValidateFileExtension("x.pdf"))
	assert.Error(t, ValidateFileExtension("x"))
	assert.Equal(t, []string{".gif", ".jpeg", ".jpg", ".png", ".webp"}, GetAllowedExtensions())
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, "***", MaskEmail("no-at-sign"))
}

func TestSecurityLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "test", "development")
	ctx := context.Background()

	sl.LogRateLimitTriggered(ctx, "10.0.0.1", "curl", "req-1", "/v1/contact")
	sl.LogAssetRejected(ctx, "assets/icons/x.png", "file content does not match extension")
	sl.LogValidationFailed(ctx, "jane@example.com", "10.0.0.1", "req-2", []string{"phone"})

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "rate_limit_triggered", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.True(t, IsHighOrAbove(EventAssetRejected))

	assert.Equal(t, "j***@example.com", entries[2].ContextMap()["subject_value"])
	assert.NotContains(t, entries[2].ContextMap()["subject_value"], "jane")
}

func TestGetSeverityDefault(t *testing.T) {
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unknown")))
}
