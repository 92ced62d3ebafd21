package payment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2027, time.March, 9))
	require.NoError(t, err)
	assert.JSONEq(t, `"2027-03-09"`, string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2027-03-09"`), &d))
	assert.Equal(t, NewDate(2027, time.March, 9), d)

	assert.Error(t, json.Unmarshal([]byte(`"03/09/2027"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20270309`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 10, 18, 0, 0, 0, 0, time.FixedZone("CAT", 2*3600))))
	assert.Equal(t, "2026-10-18", d.String())

	require.NoError(t, d.Scan([]byte("2025-01-31")))
	assert.Equal(t, NewDate(2025, time.January, 31), d)

	require.NoError(t, d.Scan("2025-02-01T00:00:00Z"))
	assert.Equal(t, NewDate(2025, time.February, 1), d)

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2025, time.December, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", v)
}
