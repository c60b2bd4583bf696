package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityHandler_CreateAndPatch(t *testing.T) {
	api := newTestAPI(t)

	created := api.create("/api/activities/", `{"user_id":"7","activity_type":"Running","duration":45,"distance":5.25,"calories":400,"date":"2025-01-15T07:30:00Z"}`)
	assert.EqualValues(t, 7, created["user_id"])
	assert.Equal(t, 5.25, created["distance"])
	assert.EqualValues(t, 400, created["calories"])
	assert.Equal(t, "2025-01-15T07:30:00Z", created["date"])
	id := idOf(created)

	w := api.do(http.MethodPatch, "/api/activities/"+id+"/", `{"calories":null,"distance":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decodeObject(t, w)
	assert.Nil(t, patched["calories"])
	assert.Nil(t, patched["distance"])
	assert.EqualValues(t, 45, patched["duration"])

	w = api.do(http.MethodPut, "/api/activities/"+id+"/", `{"duration":50}`)
	fields := fieldErrors(t, w)
	assert.Contains(t, fields, "user_id")
	assert.Contains(t, fields, "activity_type")
	assert.Contains(t, fields, "date")
}

func TestActivityHandler_ReportsEveryBadField(t *testing.T) {
	api := newTestAPI(t)

	fields := fieldErrors(t, api.do(http.MethodPost, "/api/activities/", `{"user_id":"x","duration":-5,"date":"tomorrow"}`))
	assert.Equal(t, []string{"A valid integer is required."}, fields["user_id"])
	assert.Equal(t, []string{"This field is required."}, fields["activity_type"])
	assert.Contains(t, fields["date"][0], "Datetime has wrong format")
	// duration is well typed, so its range error surfaces once the type errors are fixed
	fields = fieldErrors(t, api.do(http.MethodPost, "/api/activities/", `{"user_id":1,"activity_type":"Run","duration":-5,"date":"2025-01-01T00:00:00Z"}`))
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 0."}, fields["duration"])
}

func TestActivityHandler_DatetimeShapes(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-10T08:00:00", "2025-01-10T08:00:00Z"},
		{"2025-01-10T08:00", "2025-01-10T08:00:00Z"},
		{"2025-01-10T08:00+02:00", "2025-01-10T06:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			created := api.create("/api/activities/", `{"user_id":1,"activity_type":"Walk","duration":10,"date":"`+tt.in+`"}`)
			assert.Equal(t, tt.want, created["date"])
		})
	}
}
