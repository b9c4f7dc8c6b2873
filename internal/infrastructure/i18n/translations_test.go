package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"absensi/internal/infrastructure/i18n"
)

func TestTranslator(t *testing.T) {
	translator := i18n.NewTranslator("id")

	t.Run("renders default locale", func(t *testing.T) {
		assert.Equal(t, "NIK sudah terdaftar", translator.T("", "error.nik_taken", nil))
	})

	t.Run("renders requested locale", func(t *testing.T) {
		assert.Equal(t, "NIK is already registered", translator.T("en", "error.nik_taken", nil))
	})

	t.Run("templates placeholder data", func(t *testing.T) {
		got := translator.T("id", "checkin.success", map[string]any{"Name": "Ann"})
		assert.Equal(t, "Check-in berhasil: Ann", got)
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		assert.Equal(t, "Peserta tidak ditemukan", translator.T("fr", "error.not_found", nil))
	})

	t.Run("unknown key falls back to the key", func(t *testing.T) {
		assert.Equal(t, "error.missing", translator.T("id", "error.missing", nil))
	})
}
