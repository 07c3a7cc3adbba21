package record

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "INSERT", KindInsert.String())
	assert.Equal(t, "UPDATE", KindUpdate.String())
	assert.Equal(t, "DELETE", KindDelete.String())
}

func TestPrimaryColumns(t *testing.T) {
	r := Record{
		Table: "events",
		Columns: []Column{
			{Name: "tenant", PrimaryKey: true},
			{Name: "payload"},
			{Name: "seq", PrimaryKey: true},
		},
	}

	primary := PrimaryColumns(r)
	require.Len(t, primary, 2)
	assert.Equal(t, "tenant", primary[0].Name)
	assert.Equal(t, "seq", primary[1].Name)
}

func TestPrimaryColumnsUniqueKeyFallback(t *testing.T) {
	r := Record{
		Table: "accounts",
		Columns: []Column{
			{Name: "email", UniqueKey: true},
			{Name: "name"},
		},
	}

	primary := PrimaryColumns(r)
	require.Len(t, primary, 1)
	assert.Equal(t, "email", primary[0].Name)

	assert.Empty(t, PrimaryColumns(Record{Columns: []Column{{Name: "payload"}}}))
}

func TestUpdatedColumns(t *testing.T) {
	r := Record{
		Columns: []Column{
			{Name: "id", PrimaryKey: true},
			{Name: "status", Updated: true},
			{Name: "total", Updated: true},
			{Name: "created_at"},
		},
	}

	updated := UpdatedColumns(r)
	require.Len(t, updated, 2)
	assert.Equal(t, "status", updated[0].Name)
	assert.Equal(t, "total", updated[1].Name)
}

func TestArgOrders(t *testing.T) {
	r := Record{
		Table: "orders",
		Columns: []Column{
			{Name: "id", Value: 7, PrimaryKey: true},
			{Name: "status", Value: "shipped", Updated: true},
			{Name: "total", Value: 99.5, Updated: true},
		},
	}

	assert.Equal(t, []any{7, "shipped", 99.5}, InsertArgs(r))
	assert.Equal(t, []any{"shipped", 99.5, 7}, UpdateArgs(r), "updated values first, key values last")
	assert.Equal(t, []any{7}, DeleteArgs(r))
}

func TestNewBatch(t *testing.T) {
	records := []Record{{Kind: KindInsert, Table: "users"}}
	b := NewBatch(records)

	_, err := ulid.Parse(b.ID)
	require.NoError(t, err)
	assert.Equal(t, records, b.Records)

	other := NewBatch(nil)
	assert.NotEqual(t, b.ID, other.ID)
}
