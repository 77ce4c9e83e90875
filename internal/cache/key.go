package cache

import "strconv"

// PredictionKey builds the Prediction Cache key: (drawTypeId or "all",
// dayOfWeek or "all").
func PredictionKey(drawTypeID *int, dayOfWeek *int) string {
	dt := "all"
	if drawTypeID != nil {
		dt = strconv.Itoa(*drawTypeID)
	}
	dow := "all"
	if dayOfWeek != nil {
		dow = strconv.Itoa(*dayOfWeek)
	}
	return dt + ":" + dow
}
