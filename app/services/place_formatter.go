package services

import (
	"fmt"
	"strings"

	"github.com/map-api/app/models"
	"github.com/map-api/helpers/utils"
	"github.com/map-api/internal/geocode"
)

// Source tags identifying which upstream produced a batch.
const (
	SourceChatbot = "chatbot"
	SourcePython  = "python"
)

// pinStyles maps a category to its marker style, exact match on the Korean
// category string.
var pinStyles = map[string]models.PinOptions{
	"음식점": {Color: "#FF6B6B", Icon: "restaurant"},
	"카페":  {Color: "#4ECDC4", Icon: "local_cafe"},
	"병원":  {Color: "#45B7D1", Icon: "local_hospital"},
	"편의점": {Color: "#96CEB4", Icon: "store"},
	"호텔":  {Color: "#9B59B6", Icon: "hotel"},
	"헤어샵": {Color: "#F39C12", Icon: "content_cut"},
	"약국":  {Color: "#E74C3C", Icon: "local_pharmacy"},
}

// legacyPinStyles is the reduced table the external-backend entry point has
// always used. Kept intentionally different from pinStyles pending product
// clarification.
var legacyPinStyles = map[string]models.PinOptions{
	"음식점": {Color: "#FF6B6B", Icon: "restaurant"},
	"카페":  {Color: "#4ECDC4", Icon: "local_cafe"},
	"병원":  {Color: "#45B7D1", Icon: "local_hospital"},
}

var defaultPin = models.PinOptions{Color: "#95A5A6", Icon: "place"}

func pinFor(category, source string) models.PinOptions {
	table := pinStyles
	if source == SourcePython {
		table = legacyPinStyles
	}
	if pin, ok := table[category]; ok {
		return pin
	}
	return defaultPin
}

func idPrefix(source string) string {
	if source == SourcePython {
		return "python-place-"
	}
	return "chat-place-"
}

// FormatPlace builds the response record for one successfully geocoded input.
// Deterministic and pure given its inputs; index is the item's position in
// the ORIGINAL request array, so ids stay aligned with what the caller sent
// even after failed items are dropped.
func FormatPlace(item models.PlaceInput, geo *geocode.Result, index int, source string) models.PlaceOutput {
	name := item.Name
	if name == "" {
		name = "알 수 없는 장소"
	}

	category := item.Category
	if category == "" {
		category = "기타"
	}

	description := item.Description
	if description == "" {
		description = fmt.Sprintf("%s에 대한 정보입니다.", name)
	}

	features := item.Features
	if features == nil && item.Feature != "" {
		for _, f := range strings.Split(item.Feature, ",") {
			if f = strings.TrimSpace(f); f != "" {
				features = append(features, f)
			}
		}
	}
	if features == nil {
		features = []string{}
	}

	coords := models.Coordinates{Lat: geo.Lat, Lng: geo.Lng}

	return models.PlaceOutput{
		ID:          fmt.Sprintf("%s%d", idPrefix(source), index),
		Name:        name,
		Location:    item.Location,
		Address:     geo.FormattedAddress,
		Coordinates: coords,
		Category:    category,
		Info: models.PlaceInfo{
			Phone:       item.Phone,
			Rating:      item.Rating,
			OpenHours:   item.OpenHours,
			Description: description,
			Features:    features,
		},
		GoogleMapsURL: utils.GoogleMapsURL(name, geo.FormattedAddress, &coords),
		PinOptions:    pinFor(category, source),
	}
}
