package database

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/travelease/backend/internal/domain/entities"
)

// JSON-bearing columns are stored as text and materialized here at the row
// boundary. Decoding never fails: corrupt legacy data degrades to the typed
// empty default and is logged with the owning record for diagnosis.

func encodeJSONList(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return raw
}

func encodeTravelDates(dates entities.TravelDates) []byte {
	raw, _ := json.Marshal(dates)
	return raw
}

func decodeJSONList(raw []byte, table string, id int64) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		log.Warn().
			Err(err).
			Str("table", table).
			Int64("record_id", id).
			Msg("malformed JSON list column, substituting empty list")
		return []string{}
	}
	if values == nil {
		return []string{}
	}
	return values
}

func decodeJSONMap(raw []byte, table string, id int64) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Warn().
			Err(err).
			Str("table", table).
			Int64("record_id", id).
			Msg("malformed JSON object column, substituting empty object")
		return map[string]interface{}{}
	}
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}

func decodeTravelDates(raw []byte, id int64) entities.TravelDates {
	if len(raw) == 0 {
		return entities.TravelDates{}
	}
	var dates entities.TravelDates
	if err := json.Unmarshal(raw, &dates); err != nil {
		log.Warn().
			Err(err).
			Str("table", "traveler_connections").
			Int64("record_id", id).
			Msg("malformed travel_dates column, substituting empty dates")
		return entities.TravelDates{}
	}
	return dates
}
