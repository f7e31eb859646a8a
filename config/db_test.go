package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		dialect string
		err     string
	}{
		{"sqlite", Config{DBDriver: "sqlite", SQLitePath: "x.db"}, "sqlite", ""},
		{"mysql", Config{DBDriver: "mysql", MySQLDSN: "u:p@tcp(localhost:3306)/db"}, "mysql", ""},
		{"postgres", Config{DBDriver: "postgres", PostgresDSN: "host=localhost"}, "postgres", ""},
		{"sqlserver", Config{DBDriver: "sqlserver", SQLServerDSN: "sqlserver://localhost"}, "sqlserver", ""},
		{"mysql-no-dsn", Config{DBDriver: "mysql"}, "", "mysql selected but mysql_dsn empty"},
		{"unknown", Config{DBDriver: "oracle"}, "", `unknown db_driver: "oracle"`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d, err := dialector(&tc.cfg)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.dialect, d.Name())
		})
	}
}

func TestInitRedis_Disabled(t *testing.T) {
	rdb, err := InitRedis(&Config{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}
