package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, "users", Identity{}.TargetTable("users"))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "staging_users", Prefix("staging_").TargetTable("users"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "users", Plural{}.TargetTable("user"))
	assert.Equal(t, "people", Plural{}.TargetTable("person"))
	assert.Equal(t, "orders", Plural{}.TargetTable("orders"))
}
