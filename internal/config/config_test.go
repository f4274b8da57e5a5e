package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("Deve montar DSN e timezone a partir das variáveis de ambiente", func(t *testing.T) {
		viper.Reset()
		t.Setenv("DATABASE_USER", "compras")
		t.Setenv("DATABASE_PASSWORD", "segredo")
		t.Setenv("DATABASE_URL", "db:5432/procurement")
		t.Setenv("TIMEZONE", "America/Sao_Paulo")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://painel.exemplo.com")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "postgres://compras:segredo@db:5432/procurement", cfg.Database.DSN)
		assert.Equal(t, "America/Sao_Paulo", cfg.App.Location.String())
		assert.Equal(t, []string{"http://localhost:3000", "https://painel.exemplo.com"}, cfg.Cors.AllowedOrigins)
		assert.Equal(t, "0 7 * * *", cfg.OverdueReport.CronSchedule)
		assert.False(t, cfg.OverdueReport.Enabled)
	})

	t.Run("Deve falhar com timezone inexistente", func(t *testing.T) {
		viper.Reset()
		t.Setenv("TIMEZONE", "Marte/Base_Alfa")

		_, err := NewConfig()
		assert.Error(t, err)
	})
}
