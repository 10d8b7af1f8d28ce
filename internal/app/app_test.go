package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
srv_port: ":9090"
catalog_path: "config/catalog.yaml"
checkout_timeout: 3s
db:
  host: "localhost"
  port: 5432
  database: "orders"
kafka:
  brokers: ["localhost:9092"]
  topic: "orders"
  group_id: "orders-recorder"
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := NewConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ":9090", c.ServerPort)
	assert.Equal(t, "₱", c.Currency)
	assert.Equal(t, 3*time.Second, c.CheckoutTimeout)
	assert.Equal(t, uint(5432), c.CfgDB.Port)
	assert.Equal(t, []string{"localhost:9092"}, c.CfgKafka.Brokers)
	assert.Equal(t, "orders-recorder", c.CfgKafka.GroupID)
}

func TestNewConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("catalog_path: \"\"\n"), 0o600))

	c, err := NewConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, defaultServerPort, c.ServerPort)
	assert.Equal(t, defaultCheckoutTimeout, c.CheckoutTimeout)
}

func TestNewConfig_Missing(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
