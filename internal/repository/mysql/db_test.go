package mysql

import (
	"testing"

	"UAsync_Community/internal/config"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(&config.Config{
		DBHost:     "db.local",
		DBPort:     "3306",
		DBName:     "community",
		DBUser:     "app",
		DBPassword: "p@ss:word",
	})

	parsed, err := gomysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p@ss:word", parsed.Passwd)
	assert.Equal(t, "db.local:3306", parsed.Addr)
	assert.Equal(t, "community", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(&config.Config{
		DBHost:     "db.local",
		DBPort:     "5432",
		DBName:     "community",
		DBUser:     "app",
		DBPassword: "p w'd@/x",
	})

	parsed, err := pgconn.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p w'd@/x", parsed.Password)
	assert.Equal(t, "db.local", parsed.Host)
	assert.Equal(t, uint16(5432), parsed.Port)
	assert.Equal(t, "community", parsed.Database)
	assert.Nil(t, parsed.TLSConfig)
}

func TestConnectRejectsUnknownType(t *testing.T) {
	_, err := Connect(&config.Config{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type")
}
