package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsStringsAndNumbers(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":" 42 ","b":42,"c":null}`), &v))

	assert.Equal(t, ID("42"), v.A)
	assert.Equal(t, v.A, v.B)
	assert.True(t, v.C.IsZero())
}

func TestIDRejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestAmountIsLenient(t *testing.T) {
	cases := map[string]float64{
		`150000`:     150000,
		`"150000.5"`: 150000.5,
		`null`:       0,
		`"abc"`:      0,
		`true`:       0,
		`""`:         0,
	}
	for in, want := range cases {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(in), &a), in)
		assert.Equal(t, want, a.Float(), in)
	}
}

func TestTimestampLayouts(t *testing.T) {
	ict := time.FixedZone("ICT", 7*60*60)

	cases := []struct {
		in        string
		want      time.Time
		wallClock bool
	}{
		{`"2026-10-17T09:30:00+07:00"`, time.Date(2026, 10, 17, 9, 30, 0, 0, ict), false},
		{`"2026-10-17T02:30:00Z"`, time.Date(2026, 10, 17, 9, 30, 0, 0, ict), false},
		{`"2026-10-17T09:30:00"`, time.Date(2026, 10, 17, 9, 30, 0, 0, ict), true},
		{`"2026-10-17T09:30:00.250"`, time.Date(2026, 10, 17, 9, 30, 0, 250e6, ict), true},
		{`"2026-10-17 09:30:00"`, time.Date(2026, 10, 17, 9, 30, 0, 0, ict), true},
		{`"2026-10-17"`, time.Date(2026, 10, 17, 0, 0, 0, 0, ict), true},
		{`1792200600000`, time.UnixMilli(1792200600000), false},
	}
	for _, tc := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tc.in), &ts), tc.in)
		assert.Equal(t, tc.wallClock, ts.WallClock(), tc.in)
		assert.True(t, tc.want.Equal(ts.In(ict)), "%s: got %s", tc.in, ts.In(ict))
	}
}

func TestWallClockTimestampKeepsLocalDate(t *testing.T) {
	ict := time.FixedZone("ICT", 7*60*60)

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-31T20:00:00"`), &ts))

	local := ts.In(ict)
	assert.Equal(t, time.October, local.Month())
	assert.Equal(t, 31, local.Day())
	assert.Equal(t, 20, local.Hour())

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-31T20:00:00"`, string(b))

	assert.Equal(t, ts, WallClockTimestamp(time.Date(2026, 10, 31, 20, 0, 0, 0, ict)))
}

func TestTimestampInvalidIsZero(t *testing.T) {
	for _, in := range []string{`"yesterday"`, `null`, `""`, `-5`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.True(t, ts.IsZero(), in)
	}

	b, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestBookingDecodesWeakFields(t *testing.T) {
	raw := `{
		"id": 7,
		"salonId": "s1",
		"customerId": 12,
		"serviceIds": ["sv1", 2],
		"startTime": "2026-10-17T09:00:00",
		"status": "success",
		"totalPrice": "350000"
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, ID("7"), b.ID)
	assert.Equal(t, ID("12"), b.CustomerID)
	assert.Equal(t, []ID{"sv1", "2"}, b.ServiceIDs)
	assert.Equal(t, 350000.0, b.TotalPrice.Float())
	assert.Equal(t, 17, b.StartTime.Day())
}

func TestTimestampScan(t *testing.T) {
	var ts Timestamp
	require.NoError(t, ts.Scan("2026-10-17 09:00:00"))
	assert.Equal(t, 9, ts.Hour())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))

	v, err := Timestamp{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
