package services

import (
	"reflect"
	"testing"

	"github.com/map-api/app/models"
	"github.com/map-api/internal/geocode"
)

var testGeo = &geocode.Result{Lat: 37.498, Lng: 127.028, FormattedAddress: "서울특별시 강남구 테헤란로 427"}

func TestFormatPlace_CategoryPinTable(t *testing.T) {
	testCases := []struct {
		category string
		color    string
		icon     string
	}{
		{"음식점", "#FF6B6B", "restaurant"},
		{"카페", "#4ECDC4", "local_cafe"},
		{"병원", "#45B7D1", "local_hospital"},
		{"편의점", "#96CEB4", "store"},
		{"호텔", "#9B59B6", "hotel"},
		{"헤어샵", "#F39C12", "content_cut"},
		{"약국", "#E74C3C", "local_pharmacy"},
		{"분식", "#95A5A6", "place"}, // unknown category falls back to default
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			out := FormatPlace(models.PlaceInput{Name: "테스트", Category: tc.category}, testGeo, 0, SourceChatbot)
			if out.PinOptions.Color != tc.color || out.PinOptions.Icon != tc.icon {
				t.Errorf("category %q: got %+v, want {%s %s}", tc.category, out.PinOptions, tc.color, tc.icon)
			}
		})
	}
}

// The external-backend entry point keeps its historical reduced table:
// only restaurant/cafe/hospital are styled, everything else is the default.
func TestFormatPlace_LegacyPinTable(t *testing.T) {
	out := FormatPlace(models.PlaceInput{Name: "테스트", Category: "편의점"}, testGeo, 0, SourcePython)
	if out.PinOptions.Color != "#95A5A6" || out.PinOptions.Icon != "place" {
		t.Errorf("python source should use the reduced table, got %+v", out.PinOptions)
	}

	out = FormatPlace(models.PlaceInput{Name: "테스트", Category: "카페"}, testGeo, 0, SourcePython)
	if out.PinOptions.Color != "#4ECDC4" || out.PinOptions.Icon != "local_cafe" {
		t.Errorf("cafe should still be styled for python source, got %+v", out.PinOptions)
	}
}

func TestFormatPlace_IDFromSourceAndIndex(t *testing.T) {
	out := FormatPlace(models.PlaceInput{Name: "테스트"}, testGeo, 3, SourceChatbot)
	if out.ID != "chat-place-3" {
		t.Errorf("expected chat-place-3, got %q", out.ID)
	}

	out = FormatPlace(models.PlaceInput{Name: "테스트"}, testGeo, 7, SourcePython)
	if out.ID != "python-place-7" {
		t.Errorf("expected python-place-7, got %q", out.ID)
	}
}

func TestFormatPlace_Defaults(t *testing.T) {
	out := FormatPlace(models.PlaceInput{}, testGeo, 0, SourceChatbot)

	if out.Name != "알 수 없는 장소" {
		t.Errorf("expected sentinel name, got %q", out.Name)
	}
	if out.Category != "기타" {
		t.Errorf("expected default category, got %q", out.Category)
	}
	if out.Info.Description != "알 수 없는 장소에 대한 정보입니다." {
		t.Errorf("unexpected default description %q", out.Info.Description)
	}
	if out.Info.Features == nil || len(out.Info.Features) != 0 {
		t.Errorf("expected empty features list, got %v", out.Info.Features)
	}
	if out.Address != testGeo.FormattedAddress {
		t.Errorf("expected formatted address, got %q", out.Address)
	}
}

func TestFormatPlace_FeatureSplitting(t *testing.T) {
	// feature singular: comma-joined string from the external backend
	out := FormatPlace(models.PlaceInput{Name: "테스트", Feature: "WiFi, 주차가능 ,포장가능"}, testGeo, 0, SourcePython)
	want := []string{"WiFi", "주차가능", "포장가능"}
	if !reflect.DeepEqual(out.Info.Features, want) {
		t.Errorf("expected %v, got %v", want, out.Info.Features)
	}

	// features plural: already a list, passes through as-is
	out = FormatPlace(models.PlaceInput{Name: "테스트", Features: []string{"24시간", "배달가능"}}, testGeo, 0, SourceChatbot)
	want = []string{"24시간", "배달가능"}
	if !reflect.DeepEqual(out.Info.Features, want) {
		t.Errorf("expected %v, got %v", want, out.Info.Features)
	}
}

func TestFormatPlace_GoogleMapsURL(t *testing.T) {
	out := FormatPlace(models.PlaceInput{Name: "스타벅스", Category: "카페"}, testGeo, 0, SourceChatbot)
	want := "https://www.google.com/maps/search/?api=1&query=37.498,127.028"
	if out.GoogleMapsURL != want {
		t.Errorf("expected %q, got %q", want, out.GoogleMapsURL)
	}
}
