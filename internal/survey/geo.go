package survey

import (
	"sort"
	"strconv"
	"strings"
)

// MapCoordinate is one reconstructed (latitude, longitude) pair. Valor
// carries "lat,lon" as raw strings; RespuestaID and PreguntaID refer to
// the latitude answer the pair was built from.
type MapCoordinate struct {
	ID            int64  `json:"id"`
	RespuestaID   int64  `json:"respuestaId"`
	Valor         string `json:"valor"`
	PreguntaID    int64  `json:"preguntaId"`
	TextoPregunta string `json:"textoPregunta"`
}

// No pairing key exists in the data: latitude and longitude live in two
// independent answer columns, so pairs are reconstructed positionally.
// PairCoordinates normalizes both sides by answer id before zipping;
// unparseable or out-of-range pairs are dropped silently. Surviving
// pairs get synthetic sequential ids starting at 1.
func PairCoordinates(lats, lons []AnswerRow) []MapCoordinate {
	sortedLats := make([]AnswerRow, len(lats))
	copy(sortedLats, lats)
	sort.Slice(sortedLats, func(i, j int) bool { return sortedLats[i].AnswerID < sortedLats[j].AnswerID })

	sortedLons := make([]AnswerRow, len(lons))
	copy(sortedLons, lons)
	sort.Slice(sortedLons, func(i, j int) bool { return sortedLons[i].AnswerID < sortedLons[j].AnswerID })

	return zipCoordinates(sortedLats, sortedLons)
}

// PairFilteredCoordinates pairs the latitude/longitude lists in storage
// order, capped to the shortest of the three lists. Weaker than
// PairCoordinates: without the sort-by-id normalization the positional
// correlation only holds if all three lists came back in the same
// relative order.
func PairFilteredCoordinates(targets, lats, lons []AnswerRow) []MapCoordinate {
	n := len(targets)
	if len(lats) < n {
		n = len(lats)
	}
	if len(lons) < n {
		n = len(lons)
	}
	return zipCoordinates(lats[:n], lons[:n])
}

func zipCoordinates(lats, lons []AnswerRow) []MapCoordinate {
	n := len(lats)
	if len(lons) < n {
		n = len(lons)
	}

	out := []MapCoordinate{}
	for i := 0; i < n; i++ {
		latStr := strings.TrimSpace(lats[i].Value)
		lonStr := strings.TrimSpace(lons[i].Value)

		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			continue
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			continue
		}

		out = append(out, MapCoordinate{
			ID:            int64(len(out) + 1),
			RespuestaID:   lats[i].AnswerID,
			Valor:         latStr + "," + lonStr,
			PreguntaID:    lats[i].QuestionID,
			TextoPregunta: lats[i].QuestionText,
		})
	}
	return out
}
