package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "root", cfg.DB.User)
	assert.Equal(t, "", cfg.DB.Password)
	assert.Equal(t, "stock_market", cfg.DB.Name)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.True(t, cfg.DB.RunMigrations)
}

func TestLoadConfig_DBVars(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "stocks_prod")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "stocks_prod", cfg.DB.Name)
	assert.Equal(t, "8080", cfg.App.Port)
}

// マネージドMySQLホスティングが注入するMYSQL*形式の変数名も受け付ける。
func TestLoadConfig_ManagedMySQLVars(t *testing.T) {
	t.Setenv("MYSQLHOST", "mysql.railway.internal")
	t.Setenv("MYSQLUSER", "svc")
	t.Setenv("MYSQLDATABASE", "railway")
	t.Setenv("MYSQLPORT", "6033")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mysql.railway.internal", cfg.DB.Host)
	assert.Equal(t, "svc", cfg.DB.User)
	assert.Equal(t, "railway", cfg.DB.Name)
	assert.Equal(t, "6033", cfg.DB.Port)
}

func TestLoadConfig_DBVarWinsOverManaged(t *testing.T) {
	t.Setenv("DB_HOST", "primary")
	t.Setenv("MYSQLHOST", "secondary")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "primary", cfg.DB.Host)
}
